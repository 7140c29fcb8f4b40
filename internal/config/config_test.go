package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DATABASE", "user_account")
}

func Test_Load(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CLERK_WEBHOOK_SECRET", "whsec_aaa")
	t.Setenv("CLERK_WEBHOOK_SECRET_COMGAS", "whsec_bbb")
	t.Setenv("CLERK_TIMESTAMP_TOLERANCE", "5m")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	require.Equal(t, "user_account", cfg.Mongo.Database)
	require.Equal(t, "whsec_aaa", cfg.Clerk.WebhookSecret)
	require.Equal(t, "whsec_bbb", cfg.Clerk.WebhookSecretComgas)
	require.Equal(t, 5*time.Minute, cfg.Clerk.TimestampTolerance)
}

func Test_Load_SecretsAreOptional(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CLERK_WEBHOOK_SECRET", "")
	t.Setenv("CLERK_WEBHOOK_SECRET_COMGAS", "")

	cfg, err := Load()

	require.NoError(t, err)
	require.Empty(t, cfg.Clerk.WebhookSecret)
	require.Zero(t, cfg.Clerk.TimestampTolerance)
}

func Test_Load_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MONGODB_URI", "")

	_, err := Load()

	require.Error(t, err)
	require.Contains(t, err.Error(), "MONGODB_URI")
}

func Test_Load_InvalidTolerance(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CLERK_TIMESTAMP_TOLERANCE", "five minutes")

	_, err := Load()

	require.Error(t, err)
}

func Test_MigrationURL(t *testing.T) {
	cfg := MongoConfig{URI: "mongodb://localhost:27017/", Database: "user_account"}
	require.Equal(t, "mongodb://localhost:27017/user_account", cfg.MigrationURL())

	cfg = MongoConfig{URI: "mongodb://localhost:27017", Database: "user_account"}
	require.Equal(t, "mongodb://localhost:27017/user_account", cfg.MigrationURL())
}
