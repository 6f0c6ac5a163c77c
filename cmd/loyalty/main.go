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

const serviceName = "loyalty"

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting loyalty service")

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

	// Connect to Redis and build the points store and the event bus
	var (
		points interfaces.PointsStore
		bus    interfaces.EventBus
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

		points = myredis.NewPointsStore(redisClient)
		bus = myredis.NewEventBus(redisClient, logger)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	// React to completed orders
	{
		awarder := service.NewLoyaltyAwarder(points, logger)
		if err := bus.Subscribe(runCtx, domain.ChannelOrderEvents, awarder.Handle); err != nil {
			level.Error(logger).Log("msg", "Failed to subscribe to order events", "err", err)
			os.Exit(1)
		}
	}

	// Keep this instance registered in the directory
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

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		handlers.NewLoyaltyServer(points, logger).RegisterRoutes(e)
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
