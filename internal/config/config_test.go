// AngelaMos | 2026
// config_test.go

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_SECRET", "dev-secret")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("NODE_ENV", "development")
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "5000")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	c, err := load("")
	require.NoError(t, err)

	assert.Equal(t, "bookHaven", c.Database.Name)
	assert.Equal(t, 24*time.Hour, c.JWT.Expire)
	assert.Equal(t, 5000, c.Server.Port)
	assert.True(t, c.IsDevelopment())
	assert.Equal(t, "0.0.0.0:5000", c.Server.Address())
}

func TestLoadLegacyEnvNames(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://legacy:27017")
	t.Setenv("URI", "mongodb://legacy:27017")
	t.Setenv("ACCESS_TOKEN", "legacy-secret")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("DEMO_ADMIN", " Demo@Example.com ")

	c, err := load("")
	require.NoError(t, err)

	assert.Equal(t, "mongodb://legacy:27017", c.Database.URI)
	assert.Equal(t, "legacy-secret", c.JWT.Secret)
	assert.Equal(t, "demo@example.com", c.Access.DemoAdminEmail)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("jwt:\n  expire: 1h\ndatabase:\n  name: shelf\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	c, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, time.Hour, c.JWT.Expire)
	assert.Equal(t, "shelf", c.Database.Name)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ACCESS_TOKEN", "")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	_, err := load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadRejectsShortSecretInProduction(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("NODE_ENV", "production")

	_, err := load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")
}
