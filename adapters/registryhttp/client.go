// Package registryhttp is an HTTP client adapter for the service
// directory: POST baseURL/register and DELETE baseURL/register/{id}.
package registryhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"myplatform/domain"
	"myplatform/interfaces"
)

const requestTimeout = 5 * time.Second

// NewClient creates an interfaces.RegistryClient that talks to the
// directory over HTTP. Panics on empty baseURL or nil client; baseURL has
// no trailing slash (e.g. http://registry:3100).
func NewClient(baseURL string, client *http.Client) interfaces.RegistryClient {
	if baseURL == "" {
		panic("registryhttp.client.go: baseURL is required")
	}
	if client == nil {
		panic("registryhttp.client.go: http client is required")
	}
	return &registryClient{
		baseURL: baseURL,
		client:  client,
	}
}

type registryClient struct {
	baseURL string
	client  *http.Client
}

// registerRequest is the JSON body of POST /register.
type registerRequest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Host        string `json:"host"`
	Port        int    `json:"port"`
	HealthCheck string `json:"healthCheck,omitempty"`
}

// Register performs POST baseURL/register with a bounded timeout so a
// renewal tick never stalls past the next scheduled tick.
func (c *registryClient) Register(ctx context.Context, instance domain.ServiceInstance) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	body, err := json.Marshal(registerRequest{
		Name:        instance.Name,
		Version:     instance.Version,
		Host:        instance.Host,
		Port:        instance.Port,
		HealthCheck: instance.HealthCheckURL,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/register", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("registry returned %d", resp.StatusCode)
	}
	return nil
}

// Deregister performs DELETE baseURL/register/{id}.
func (c *registryClient) Deregister(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	reqURL := c.baseURL + "/register/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("registry returned %d", resp.StatusCode)
	}
	return nil
}
