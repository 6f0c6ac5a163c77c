package interfaces

import (
	"context"

	"myplatform/domain"
)

// RegistryClient talks to a remote service directory. Implementations
// bound every call so a renewal tick never stalls past the next tick.
//
//go:generate moq -stub -out mock/registry_client.go -pkg mock . RegistryClient
type RegistryClient interface {
	// Register sends one registration (or renewal) for instance.
	Register(ctx context.Context, instance domain.ServiceInstance) error
	// Deregister removes the instance with the given id.
	Deregister(ctx context.Context, id string) error
}
