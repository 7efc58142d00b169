package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_NAME", "APP_ENV", "PORT", "LOG_LEVEL", "DATABASE_URL", "DB_CONNECT",
		"REDIS_URL", "TOKEN_SECRET", tokenTTLEnvVar, bcryptCostEnvVar,
		shutdownSecondsEnvVar, shutdownDurationEnvVar, idemTTLSecondsEnvVar, idemTTLDurEnvVar,
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultAppName, cfg.AppName)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, defaultTokenTTL, cfg.TokenTTL)
	assert.Equal(t, defaultBcryptCost, cfg.BcryptCost)
	assert.Equal(t, defaultShutdownDelay, cfg.ShutdownPeriod)
	assert.Equal(t, defaultIdempotencyTTL, cfg.IdempotencyTTL)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, ":3000", cfg.Address())
}

func TestLoadRequiresTokenSecret(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_SECRET")
}

func TestLoadRequiresDatabaseOutsideDev(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadFallsBackToDBConnect(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_CONNECT", "postgres://u:p@localhost:5432/users")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost:5432/users", cfg.DatabaseURL)
	assert.False(t, cfg.IsDev())
}

func TestLoadDurationsAndCost(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv(tokenTTLEnvVar, "90m")
	t.Setenv(bcryptCostEnvVar, "12")
	t.Setenv(shutdownSecondsEnvVar, "3")
	t.Setenv(idemTTLDurEnvVar, "5m")
	t.Setenv("PORT", ":9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 3*time.Second, cfg.ShutdownPeriod)
	assert.Equal(t, 5*time.Minute, cfg.IdempotencyTTL)
	assert.Equal(t, ":9000", cfg.Address())
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	cases := map[string]string{
		tokenTTLEnvVar:        "forever",
		bcryptCostEnvVar:      "ten",
		shutdownSecondsEnvVar: "x",
		idemTTLDurEnvVar:      "soon",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("TOKEN_SECRET", "s3cret")
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadRejectsNegativeTokenTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv(tokenTTLEnvVar, "-1h")

	_, err := Load()
	require.Error(t, err)
}
