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
	t.Setenv("SERVICE_PORT_HTTP", "3000")
	t.Setenv("REGISTRY_ADDR", "http://localhost:3100")
	t.Setenv("SERVICE_HOST", "10.0.0.7")
}

func TestLoadConfig_RedisAddrRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_ADDR", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "REDIS_ADDR is required")
}

func TestLoadConfig_ServicePortRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVICE_PORT_HTTP", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SERVICE_PORT_HTTP is required")
}

func TestLoadConfig_RegistryAddrRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REGISTRY_ADDR", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "REGISTRY_ADDR is required")
}

func TestLoadConfig_ServiceHostRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVICE_HOST", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SERVICE_HOST is required")
}

func TestLoadConfig_Ok(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 3000, cfg.HTTPPort)
	assert.Equal(t, "http://localhost:3100", cfg.RegistryAddr)
	assert.Equal(t, "10.0.0.7", cfg.ServiceHost)
	assert.Equal(t, "1.0.0", cfg.ServiceVersion)
	assert.Equal(t, 20*time.Second, cfg.RenewInterval)
}

func TestLoadConfig_CustomVersionAndRenewInterval(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVICE_VERSION", "2.1.0")
	t.Setenv("RENEW_INTERVAL_SECONDS", "15")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "2.1.0", cfg.ServiceVersion)
	assert.Equal(t, 15*time.Second, cfg.RenewInterval)
}

func TestLoadConfig_InvalidRenewInterval(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RENEW_INTERVAL_SECONDS", "zero")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "RENEW_INTERVAL_SECONDS")
}
