package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/CapsLuky/api.flow.core.user/internal/models"
)

// UserRepository serves the read-only user query endpoints. It reads
// the multi-tenant collection; the webhook pipeline is the only writer.
type UserRepository struct {
	db     *mongo.Database
	logger *zap.Logger
}

func NewUserRepository(db *mongo.Database, logger *zap.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

// GetUsers returns every user in the multi-tenant collection.
func (r *UserRepository) GetUsers(ctx context.Context) ([]models.ClerkUser, error) {
	cursor, err := r.db.Collection(CollectionUsers).Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error("failed to query users", zap.Error(err))
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	users := []models.ClerkUser{}
	if err := cursor.All(ctx, &users); err != nil {
		r.logger.Error("failed to decode users", zap.Error(err))
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}

// GetUserByID looks a user up by its Mongo object id. A missing user
// is returned as (nil, nil) so the handler can answer 404.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*models.ClerkUser, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", id, err)
	}

	var user models.ClerkUser
	err = r.db.Collection(CollectionUsers).FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to query user by id",
			zap.String("user_id", id),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to query user by id: %w", err)
	}

	return &user, nil
}
