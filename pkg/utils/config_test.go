package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "movie-ticket-booking", config.App.Name)
	assert.Equal(t, ModeConsole, config.App.Mode)
	assert.Equal(t, "8080", config.App.Port)
	assert.False(t, config.App.Debug)
	assert.False(t, config.App.LogStdout)
	assert.True(t, config.Inventory.Seed)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_MODE", ModeHTTP)
	t.Setenv("PORT", "9090")
	t.Setenv("SEED_MOVIES", "false")
	t.Setenv("DEBUG", "true")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ModeHTTP, config.App.Mode)
	assert.Equal(t, "9090", config.App.Port)
	assert.True(t, config.App.Debug)
	assert.False(t, config.Inventory.Seed)
}

func TestLoadConfigRejectsUnknownMode(t *testing.T) {
	t.Setenv("APP_MODE", "grpc")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mode: Must be one of: console, http")
}
