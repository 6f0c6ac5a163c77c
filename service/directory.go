package service

import (
	"context"
	"sync"
	"time"

	"myplatform/domain"
	"myplatform/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Directory is the in-memory service directory. Instances are partitioned
// by "name:version"; within a partition the derived instance id is unique,
// so repeated registrations from a live instance refresh its heartbeat in
// place instead of growing the partition. State is volatile and rebuilt
// from renewals after a restart.
//
// A single mutex guards the partition map, so concurrent renewals of the
// same partition and the background sweep cannot lose updates.
type Directory struct {
	mu         sync.RWMutex
	partitions map[string][]domain.ServiceInstance

	clock         interfaces.TimeProvider
	expiryWindow  time.Duration
	sweepInterval time.Duration
	logger        log.Logger
}

// NewDirectory creates an empty directory. Instances whose heartbeat is
// older than expiryWindow are evicted by the sweep running every
// sweepInterval; both must be positive.
func NewDirectory(clock interfaces.TimeProvider, expiryWindow, sweepInterval time.Duration, logger log.Logger) *Directory {
	if clock == nil {
		panic("service.directory.go: clock is required")
	}
	if expiryWindow <= 0 || sweepInterval <= 0 {
		panic("service.directory.go: expiryWindow and sweepInterval must be positive")
	}
	logger = log.WithPrefix(logger, "component", "Directory")
	return &Directory{
		partitions:    make(map[string][]domain.ServiceInstance),
		clock:         clock,
		expiryWindow:  expiryWindow,
		sweepInterval: sweepInterval,
		logger:        logger,
	}
}

// Register validates and upserts an instance. Missing name, version, host
// or port fail with a bad_parameter error. An existing instance with the
// same derived id is overwritten and its heartbeat refreshed (renewal);
// otherwise the instance is appended to its partition. Returns the stored
// instance with derived id and health check URL filled in.
func (d *Directory) Register(instance domain.ServiceInstance) (domain.ServiceInstance, error) {
	if instance.Name == "" || instance.Version == "" || instance.Host == "" || instance.Port == 0 {
		return domain.ServiceInstance{}, NewBadParameterError("Missing required fields", nil)
	}

	instance.ID = instance.DeriveID()
	if instance.HealthCheckURL == "" {
		instance.HealthCheckURL = instance.DefaultHealthCheckURL()
	}
	instance.LastHeartbeat = d.clock.Now()

	key := domain.PartitionKey(instance.Name, instance.Version)

	d.mu.Lock()
	defer d.mu.Unlock()

	partition := d.partitions[key]
	replaced := false
	for i := range partition {
		if partition[i].ID == instance.ID {
			partition[i] = instance
			replaced = true
			break
		}
	}
	if !replaced {
		partition = append(partition, instance)
		level.Info(d.logger).Log(
			"msg", "instance registered",
			"id", instance.ID,
			"partition", key,
		)
	}
	d.partitions[key] = partition

	return instance, nil
}

// Deregister scans all partitions and removes any instance matching id.
// A partition left empty is deleted entirely. Reports whether a removal
// occurred.
func (d *Directory) Deregister(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	removed := false
	for key, partition := range d.partitions {
		kept := partition[:0]
		for _, inst := range partition {
			if inst.ID == id {
				removed = true
				continue
			}
			kept = append(kept, inst)
		}
		if len(kept) == 0 {
			delete(d.partitions, key)
		} else {
			d.partitions[key] = kept
		}
	}
	if removed {
		level.Info(d.logger).Log("msg", "instance deregistered", "id", id)
	}

	return removed
}

// List returns a snapshot of the whole directory keyed by "name:version".
// The snapshot is a copy; callers cannot corrupt directory state through it.
func (d *Directory) List() map[string][]domain.ServiceInstance {
	d.mu.RLock()
	defer d.mu.RUnlock()

	snapshot := make(map[string][]domain.ServiceInstance, len(d.partitions))
	for key, partition := range d.partitions {
		instances := make([]domain.ServiceInstance, len(partition))
		copy(instances, partition)
		snapshot[key] = instances
	}
	return snapshot
}

// Lookup returns the instances registered for (name, version). With an
// empty version it aggregates instances across all versions of name and
// fails with entity_not_found only when the aggregate is empty.
func (d *Directory) Lookup(name, version string) ([]domain.ServiceInstance, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if version != "" {
		partition, ok := d.partitions[domain.PartitionKey(name, version)]
		if !ok {
			return nil, NewEntityNotFoundError("service not found", nil)
		}
		instances := make([]domain.ServiceInstance, len(partition))
		copy(instances, partition)
		return instances, nil
	}

	var instances []domain.ServiceInstance
	for _, partition := range d.partitions {
		for _, inst := range partition {
			if inst.Name == name {
				instances = append(instances, inst)
			}
		}
	}
	if len(instances) == 0 {
		return nil, NewEntityNotFoundError("service not found", nil)
	}
	return instances, nil
}

// Run executes the eviction sweep every sweepInterval until ctx is done.
// The sweep runs independently of registrations and lookups; it holds the
// write lock only for the eviction pass itself.
func (d *Directory) Run(ctx context.Context) {
	ticker := time.NewTicker(d.sweepInterval)
	defer ticker.Stop()

	level.Info(d.logger).Log(
		"msg", "eviction sweep started",
		"sweep_interval", d.sweepInterval,
		"expiry_window", d.expiryWindow,
	)

	for {
		select {
		case <-ctx.Done():
			level.Info(d.logger).Log("msg", "eviction sweep stopped")
			return
		case <-ticker.C:
			d.Sweep()
		}
	}
}

// Sweep performs one eviction pass: every instance whose heartbeat is
// older than the expiry window is removed and logged, and partitions left
// empty are deleted.
func (d *Directory) Sweep() {
	now := d.clock.Now()

	d.mu.Lock()
	defer d.mu.Unlock()

	for key, partition := range d.partitions {
		kept := partition[:0]
		for _, inst := range partition {
			if now.Sub(inst.LastHeartbeat) > d.expiryWindow {
				level.Info(d.logger).Log(
					"msg", "instance expired",
					"id", inst.ID,
					"partition", key,
					"last_heartbeat", inst.LastHeartbeat.Format(time.RFC3339),
				)
				continue
			}
			kept = append(kept, inst)
		}
		if len(kept) == 0 {
			delete(d.partitions, key)
		} else {
			d.partitions[key] = kept
		}
	}
}
