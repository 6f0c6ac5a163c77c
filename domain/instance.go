package domain

import (
	"fmt"
	"time"
)

// ServiceInstance represents one live instance of a logical service
// registered in the directory. Fields match API: name, version, host,
// port, healthCheck.
type ServiceInstance struct {
	Name           string    `json:"name"`
	Version        string    `json:"version"`
	Host           string    `json:"host"`
	Port           int       `json:"port"`
	HealthCheckURL string    `json:"healthCheck"`
	ID             string    `json:"id"`            // composite key, see DeriveID
	LastHeartbeat  time.Time `json:"lastHeartbeat"` // refreshed on every renewal
}

// DeriveID returns the composite instance key "name-version-host-port".
// Registering twice with the same key is a renewal, not a new instance.
func (i ServiceInstance) DeriveID() string {
	return fmt.Sprintf("%s-%s-%s-%d", i.Name, i.Version, i.Host, i.Port)
}

// DefaultHealthCheckURL returns "http://{host}:{port}/health", used when
// the registration request does not supply an explicit health check URL.
func (i ServiceInstance) DefaultHealthCheckURL() string {
	return fmt.Sprintf("http://%s:%d/health", i.Host, i.Port)
}

// PartitionKey returns the directory partition key "name:version".
func PartitionKey(name, version string) string {
	return name + ":" + version
}
