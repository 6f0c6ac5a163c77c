package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"myplatform/adapters/myredis"
)

// defaultRenewInterval is deliberately well under the registry's default
// 120s expiry window so a transient failure does not get us evicted.
const defaultRenewInterval = 20 * time.Second

type AuthConfig struct {
	Redis          myredis.RedisConfig
	HTTPPort       int
	RegistryAddr   string
	ServiceHost    string
	ServiceVersion string
	RenewInterval  time.Duration
}

// LoadConfig loads configuration from environment variables.
// REDIS_ADDR, SERVICE_PORT_HTTP, REGISTRY_ADDR and SERVICE_HOST are
// required; SERVICE_VERSION and RENEW_INTERVAL_SECONDS are optional.
func LoadConfig() (*AuthConfig, error) {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is required")
	}

	httpPortStr := os.Getenv("SERVICE_PORT_HTTP")
	if httpPortStr == "" {
		return nil, fmt.Errorf("SERVICE_PORT_HTTP is required")
	}
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVICE_PORT_HTTP: %w", err)
	}

	registryAddr := os.Getenv("REGISTRY_ADDR")
	if registryAddr == "" {
		return nil, fmt.Errorf("REGISTRY_ADDR is required")
	}

	serviceHost := os.Getenv("SERVICE_HOST")
	if serviceHost == "" {
		return nil, fmt.Errorf("SERVICE_HOST is required")
	}

	serviceVersion := os.Getenv("SERVICE_VERSION")
	if serviceVersion == "" {
		serviceVersion = "1.0.0"
	}

	renewInterval := defaultRenewInterval
	if raw := os.Getenv("RENEW_INTERVAL_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid RENEW_INTERVAL_SECONDS: must be a positive number of seconds")
		}
		renewInterval = time.Duration(seconds) * time.Second
	}

	return &AuthConfig{
		Redis: myredis.RedisConfig{
			Addr: redisAddr,
		},
		HTTPPort:       httpPort,
		RegistryAddr:   registryAddr,
		ServiceHost:    serviceHost,
		ServiceVersion: serviceVersion,
		RenewInterval:  renewInterval,
	}, nil
}
