package service

import (
	"context"
	"time"

	"myplatform/domain"
	"myplatform/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Registrar keeps one service instance registered in the directory. It
// registers once at startup and then renews on a fixed interval. Every
// attempt is independent: a failure is logged and the loop continues, so a
// service never crashes because the directory is unreachable.
//
// The renew interval must be shorter than the directory's expiry window so
// one or two missed renewals do not cause a spurious eviction; config
// enforces that relation.
type Registrar struct {
	client        interfaces.RegistryClient
	instance      domain.ServiceInstance
	renewInterval time.Duration
	logger        log.Logger
}

// NewRegistrar creates a registrar for instance. renewInterval must be
// positive.
func NewRegistrar(client interfaces.RegistryClient, instance domain.ServiceInstance, renewInterval time.Duration, logger log.Logger) *Registrar {
	if client == nil {
		panic("service.registrar.go: client is required")
	}
	if renewInterval <= 0 {
		panic("service.registrar.go: renewInterval must be positive")
	}
	logger = log.WithPrefix(logger, "component", "Registrar", "service", instance.Name)
	return &Registrar{
		client:        client,
		instance:      instance,
		renewInterval: renewInterval,
		logger:        logger,
	}
}

// Run registers immediately, then renews every renewInterval until ctx is
// done. On shutdown it sends one best-effort deregistration.
func (r *Registrar) Run(ctx context.Context) {
	r.attempt(ctx)

	ticker := time.NewTicker(r.renewInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.deregister()
			return
		case <-ticker.C:
			r.attempt(ctx)
		}
	}
}

// attempt sends one registration. Failures are not retried out-of-band;
// the next tick is the retry.
func (r *Registrar) attempt(ctx context.Context) {
	if err := r.client.Register(ctx, r.instance); err != nil {
		level.Error(r.logger).Log("msg", "registration failed", "err", err)
		return
	}
	level.Info(r.logger).Log("msg", "registered", "id", r.instance.DeriveID())
}

func (r *Registrar) deregister() {
	// Fresh context: the run context is already done at this point.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.client.Deregister(ctx, r.instance.DeriveID()); err != nil {
		level.Error(r.logger).Log("msg", "deregistration failed", "err", err)
		return
	}
	level.Info(r.logger).Log("msg", "deregistered", "id", r.instance.DeriveID())
}
