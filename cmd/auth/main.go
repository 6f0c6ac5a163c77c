package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myplatform/adapters/myredis"
	"myplatform/adapters/registryhttp"
	"myplatform/domain"
	"myplatform/handlers"
	"myplatform/interfaces"
	"myplatform/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

const serviceName = "auth"

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting auth service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"redis_addr", config.Redis.Addr,
		"registry_addr", config.RegistryAddr,
	)

	// Connect to Redis and build the stores and the event bus
	var (
		users    interfaces.UserStore
		sessions interfaces.SessionStore
		bus      interfaces.EventBus
	)
	{
		redisClient, err := myredis.NewRedisUniversalClient(config.Redis.Addr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")

		users = myredis.NewUserStore(redisClient)
		sessions = myredis.NewSessionStore(redisClient)
		bus = myredis.NewEventBus(redisClient, logger)
	}

	clock := service.NewTimeProvider(func() time.Time { return time.Now().UTC() })

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		handlers.NewAuthServer(users, sessions, bus, clock, logger).RegisterRoutes(e)
	}

	// Keep this instance registered in the directory
	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()
	{
		registryClient := registryhttp.NewClient(config.RegistryAddr, &http.Client{Timeout: 10 * time.Second})
		registrar := service.NewRegistrar(registryClient, domain.ServiceInstance{
			Name:    serviceName,
			Version: config.ServiceVersion,
			Host:    config.ServiceHost,
			Port:    config.HTTPPort,
		}, config.RenewInterval, logger)
		go registrar.Run(runCtx)
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")
	runCancel()

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
