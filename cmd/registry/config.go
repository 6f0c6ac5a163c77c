package main

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults for the eviction sweep. The expiry window is deliberately
// several times the clients' renew interval so one or two missed renewals
// do not evict a live instance.
const (
	defaultExpiryWindow  = 120 * time.Second
	defaultSweepInterval = 30 * time.Second
)

type RegistryConfig struct {
	HTTPPort      int
	ExpiryWindow  time.Duration
	SweepInterval time.Duration
}

// LoadConfig loads configuration from environment variables.
// SERVICE_PORT_HTTP is required; EXPIRY_WINDOW_SECONDS and
// SWEEP_INTERVAL_SECONDS are optional.
func LoadConfig() (*RegistryConfig, error) {
	httpPortStr := os.Getenv("SERVICE_PORT_HTTP")
	if httpPortStr == "" {
		return nil, fmt.Errorf("SERVICE_PORT_HTTP is required")
	}
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVICE_PORT_HTTP: %w", err)
	}

	expiryWindow, err := secondsEnv("EXPIRY_WINDOW_SECONDS", defaultExpiryWindow)
	if err != nil {
		return nil, err
	}
	sweepInterval, err := secondsEnv("SWEEP_INTERVAL_SECONDS", defaultSweepInterval)
	if err != nil {
		return nil, err
	}
	if expiryWindow <= sweepInterval {
		return nil, fmt.Errorf("EXPIRY_WINDOW_SECONDS must be greater than SWEEP_INTERVAL_SECONDS")
	}

	return &RegistryConfig{
		HTTPPort:      httpPort,
		ExpiryWindow:  expiryWindow,
		SweepInterval: sweepInterval,
	}, nil
}

func secondsEnv(name string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive number of seconds", name)
	}
	return time.Duration(seconds) * time.Second, nil
}
