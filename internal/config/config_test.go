package config

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	c, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "5000", c.Port)
	assert.Equal(t, "s3cret", c.JWTSecret)
	assert.Equal(t, 24*time.Hour, c.TokenTTL)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, []string{"*"}, c.CORSOrigins)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "8081")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://localhost:5173")
	t.Setenv("LOG_LEVEL", "debug")

	c, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8081", c.Port)
	assert.Equal(t, 15*time.Minute, c.TokenTTL)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, c.CORSOrigins)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := load(viper.New())
	assert.True(t, errors.Is(err, ErrMissingSecret))
}
