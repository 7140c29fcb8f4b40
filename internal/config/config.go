package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Clerk  ClerkConfig
}

type ServerConfig struct {
	Host string
	Port string
}

type MongoConfig struct {
	URI      string
	Database string
}

// ClerkConfig holds the per-tenant webhook signing secrets. A secret
// may legitimately be empty: events for that tenant are then rejected
// at intake instead of failing startup.
type ClerkConfig struct {
	WebhookSecret       string
	WebhookSecretComgas string
	TimestampTolerance  time.Duration
}

func Load() (*Config, error) {
	var missing []string

	get := func(key string) string {
		val := os.Getenv(key)
		if val == "" {
			missing = append(missing, key)
		}
		return val
	}

	config := &Config{
		Server: ServerConfig{
			Host: get("SERVER_HOST"),
			Port: get("SERVER_PORT"),
		},
		Mongo: MongoConfig{
			URI:      get("MONGODB_URI"),
			Database: get("MONGODB_DATABASE"),
		},
		Clerk: ClerkConfig{
			WebhookSecret:       os.Getenv("CLERK_WEBHOOK_SECRET"),
			WebhookSecretComgas: os.Getenv("CLERK_WEBHOOK_SECRET_COMGAS"),
		},
	}

	if tolerance := os.Getenv("CLERK_TIMESTAMP_TOLERANCE"); tolerance != "" {
		parsed, err := time.ParseDuration(tolerance)
		if err != nil {
			return nil, fmt.Errorf("invalid CLERK_TIMESTAMP_TOLERANCE: %w", err)
		}
		config.Clerk.TimestampTolerance = parsed
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %v", missing)
	}

	return config, nil
}

// MigrationURL returns the connection string the migration tool uses.
// golang-migrate expects the database name in the URI path.
func (c *MongoConfig) MigrationURL() string {
	return strings.TrimRight(c.URI, "/") + "/" + c.Database
}
