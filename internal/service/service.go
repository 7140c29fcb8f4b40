package service

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/CapsLuky/api.flow.core.user/internal/config"
)

// App holds all application dependencies. Components receive their
// collaborators from here via constructors; there is no registry and
// no global state beyond the shared Mongo client.
type App struct {
	Config *config.Config
	Client *mongo.Client
	DB     *mongo.Database
	Logger *zap.Logger
}

// NewApp creates the application dependency container
func NewApp(cfg *config.Config, client *mongo.Client, logger *zap.Logger) *App {
	return &App{
		Config: cfg,
		Client: client,
		DB:     client.Database(cfg.Mongo.Database),
		Logger: logger,
	}
}
