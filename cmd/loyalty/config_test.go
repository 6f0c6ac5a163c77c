package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("REDIS_ADDR", "redis://localhost:6379")
	t.Setenv("SERVICE_PORT_HTTP", "4100")
	t.Setenv("REGISTRY_ADDR", "http://localhost:3100")
	t.Setenv("SERVICE_HOST", "10.0.0.9")
}

func TestLoadConfig_RedisAddrRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_ADDR", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "REDIS_ADDR is required")
}

func TestLoadConfig_RegistryAddrRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REGISTRY_ADDR", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "REGISTRY_ADDR is required")
}

func TestLoadConfig_Ok(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 4100, cfg.HTTPPort)
	assert.Equal(t, "http://localhost:3100", cfg.RegistryAddr)
	assert.Equal(t, "10.0.0.9", cfg.ServiceHost)
	assert.Equal(t, "1.0.0", cfg.ServiceVersion)
	assert.Equal(t, 20*time.Second, cfg.RenewInterval)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVICE_PORT_HTTP", "not-a-number")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SERVICE_PORT_HTTP")
}
