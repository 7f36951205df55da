package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"agrirent/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("should read yaml and apply defaults", func(t *testing.T) {
		path := writeConfig(t, `
db_host: db.internal
db_name: agrirent
db_user: rentals
jwt_secret: s3cret
nats_url: nats://nats:4222
enforce_single_primary_operator: true
lease_activation_schedule: "0 */5 * * * *"
`)
		cfg, err := cmd.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, "db.internal", cfg.DBHost)
		assert.Equal(t, "nats://nats:4222", cfg.NATSURL)
		assert.True(t, cfg.EnforceSinglePrimaryOperator)
		assert.Equal(t, "0 */5 * * * *", cfg.LeaseActivationSchedule)
		assert.Equal(t, "host=db.internal port=5432 user=rentals password= dbname=agrirent sslmode=disable", cfg.DSN())
	})

	t.Run("should let the environment win", func(t *testing.T) {
		path := writeConfig(t, "db_host: db.internal\ndb_name: agrirent\njwt_secret: file\n")
		t.Setenv("JWT_SECRET", "env")
		t.Setenv("REDIS_DB", "3")
		t.Setenv("LEASE_ENFORCE_SINGLE_PRIMARY_OPERATOR", "true")

		cfg, err := cmd.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "env", cfg.JWTSecret)
		assert.Equal(t, 3, cfg.RedisDB)
		assert.True(t, cfg.EnforceSinglePrimaryOperator)
	})

	t.Run("should reject malformed numbers", func(t *testing.T) {
		path := writeConfig(t, "db_host: h\ndb_name: n\njwt_secret: s\n")
		t.Setenv("EVENT_QUEUE_SIZE", "lots")

		_, err := cmd.LoadConfig(path)

		require.ErrorContains(t, err, "EVENT_QUEUE_SIZE")
	})

	t.Run("should require db and jwt settings", func(t *testing.T) {
		path := writeConfig(t, "http_port: \"9000\"\n")

		_, err := cmd.LoadConfig(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "db host")
		assert.Contains(t, err.Error(), "jwt secret")
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorContains(t, err, "read config file")
	})
}
