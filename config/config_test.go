package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "CORS_ALLOWED_ORIGIN", "DB_DRIVER", "DB_URL", "JWT_SECRET",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL", "LOG_LEVEL", "LOG_FORMAT",
		"TOKEN_TTL", "GENERATION_TIMEOUT", "SEED_DEFAULTS", "CONFIG_FILE",
		"ADMIN_EMAIL", "ADMIN_PASSWORD", "ADMIN_FULL_NAME",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_DevelopmentFallbacks(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Server.Port)
	assert.Equal(t, EnvDevelopment, cfg.Server.Environment)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.Origins)
	assert.Equal(t, devJWTSecret, cfg.JWT.Secret)
	assert.Equal(t, devPostgresURL, cfg.Database.URL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.TokenTTL)
	assert.Equal(t, 60*time.Second, cfg.OpenAI.Timeout)
	assert.Len(t, cfg.Warnings, 3)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "sandbox")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_URL", "file::memory:")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("GENERATION_TIMEOUT", "5s")
	t.Setenv("SEED_DEFAULTS", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
	assert.Equal(t, []string{"https://flasheng-sandbox.onrender.com"}, cfg.Server.Origins)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, time.Hour, cfg.JWT.TokenTTL)
	assert.Equal(t, 5*time.Second, cfg.OpenAI.Timeout)
	assert.False(t, cfg.Database.SeedDefaults)
	assert.Empty(t, cfg.Warnings)
}

func TestLoad_TOMLFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "flasheng.toml")
	content := `
[server]
port = "7000"
allowed_origin = "https://example.test"

[jwt]
secret = "from-file"
token_ttl = "48h"

[log]
level = "debug"
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("PORT", "7100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7100", cfg.Server.Port)
	assert.Equal(t, []string{"https://example.test"}, cfg.Server.Origins)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, 48*time.Hour, cfg.JWT.TokenTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ProductionRequiresSecrets(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrInsecureSecret)

	t.Setenv("JWT_SECRET", "prod-secret")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)

	t.Setenv("DB_URL", "postgres://db/flasheng")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrMissingOpenAIKey)

	t.Setenv("OPENAI_API_KEY", "sk-prod")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://flasheng-production.onrender.com"}, cfg.Server.Origins)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"unknown environment": {"ENVIRONMENT", "staging"},
		"unknown driver":      {"DB_DRIVER", "mongo"},
		"bad ttl":             {"TOKEN_TTL", "soon"},
		"bad seed flag":       {"SEED_DEFAULTS", "maybe"},
		"admin without pass":  {"ADMIN_EMAIL", "root@x.com"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestAllowedOriginsFor(t *testing.T) {
	origins, err := AllowedOriginsFor(EnvDevelopment)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:5173"}, origins)

	_, err = AllowedOriginsFor("nowhere")
	assert.Error(t, err)
}
