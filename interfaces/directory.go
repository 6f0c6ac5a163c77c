package interfaces

import "myplatform/domain"

// Directory is the in-memory service directory. It is volatile: rebuilt
// empty on process restart.
//
//go:generate moq -stub -out mock/directory.go -pkg mock . Directory
type Directory interface {
	// Register validates and upserts an instance. Re-registration with the
	// same derived id refreshes the heartbeat in place (renewal).
	Register(instance domain.ServiceInstance) (domain.ServiceInstance, error)
	// Deregister removes the instance with the given id from whichever
	// partition holds it. Reports whether a removal occurred.
	Deregister(id string) bool
	// List returns a full snapshot keyed by "name:version".
	List() map[string][]domain.ServiceInstance
	// Lookup returns the instances for (name, version), or for all versions
	// of name when version is empty. Returns an entity_not_found error when
	// nothing matches.
	Lookup(name, version string) ([]domain.ServiceInstance, error)
}
