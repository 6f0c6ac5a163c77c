// Package handlers contains the echo HTTP handlers for the service
// directory and the auth gateway.
package handlers

import (
	"net/http"
	"time"

	"myplatform/domain"
	"myplatform/interfaces"
	"myplatform/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// RegistryServer serves the directory HTTP surface.
type RegistryServer struct {
	directory interfaces.Directory
	logger    log.Logger
}

// NewRegistryServer creates a RegistryServer.
func NewRegistryServer(directory interfaces.Directory, logger log.Logger) *RegistryServer {
	logger = log.WithPrefix(logger, "component", "RegistryServer")
	return &RegistryServer{
		directory: directory,
		logger:    logger,
	}
}

// RegisterRoutes attaches the directory routes to e.
func (s *RegistryServer) RegisterRoutes(e *echo.Echo) {
	e.POST("/register", s.Register)
	e.DELETE("/register/:id", s.Deregister)
	e.GET("/services", s.ListServices)
	e.GET("/services/:name", s.LookupService)
	e.GET("/health", Health)
}

// registerRequest is the JSON body of POST /register.
type registerRequest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Host        string `json:"host"`
	Port        int    `json:"port"`
	HealthCheck string `json:"healthCheck,omitempty"`
}

// instanceResponse is the API shape of one registered instance.
type instanceResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Version       string    `json:"version"`
	Host          string    `json:"host"`
	Port          int       `json:"port"`
	HealthCheck   string    `json:"healthCheck"`
	LastHeartbeat time.Time `json:"lastHeartbeat"`
}

// instancesResponse is the JSON shape of lookup responses.
type instancesResponse struct {
	Instances []instanceResponse `json:"instances"`
}

// messageResponse is the JSON shape of confirmation responses.
type messageResponse struct {
	Message string `json:"message"`
}

// Register (POST /register) registers or renews one instance. Returns 200
// with the stored instance, or 400 when required fields are missing.
// Registration is deliberately unauthenticated: any caller may register
// any service name. That trust boundary is part of the protocol.
func (s *RegistryServer) Register(ectx echo.Context) error {
	var req registerRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	stored, err := s.directory.Register(domain.ServiceInstance{
		Name:           req.Name,
		Version:        req.Version,
		Host:           req.Host,
		Port:           req.Port,
		HealthCheckURL: req.HealthCheck,
	})
	if err != nil {
		return err
	}

	return ectx.JSON(http.StatusOK, toInstanceResponse(stored))
}

// Deregister (DELETE /register/:id) removes one instance. Returns 200 with
// a confirmation, or 404 when no instance matches the id.
func (s *RegistryServer) Deregister(ectx echo.Context) error {
	id := ectx.Param("id")
	if !s.directory.Deregister(id) {
		return service.NewEntityNotFoundError("instance not found", nil)
	}

	return ectx.JSON(http.StatusOK, messageResponse{Message: "Service deregistered"})
}

// ListServices (GET /services) returns the full directory snapshot keyed
// by "name:version".
func (s *RegistryServer) ListServices(ectx echo.Context) error {
	snapshot := s.directory.List()

	out := make(map[string][]instanceResponse, len(snapshot))
	for key, instances := range snapshot {
		out[key] = toInstanceResponses(instances)
	}

	return ectx.JSON(http.StatusOK, out)
}

// LookupService (GET /services/:name?version=) returns instances for one
// service, all versions unless a version is given. 404 when nothing matches.
func (s *RegistryServer) LookupService(ectx echo.Context) error {
	name := ectx.Param("name")
	version := ectx.QueryParam("version")

	instances, err := s.directory.Lookup(name, version)
	if err != nil {
		return err
	}

	return ectx.JSON(http.StatusOK, instancesResponse{Instances: toInstanceResponses(instances)})
}

// Health (GET /health) reports liveness.
func Health(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, map[string]string{"status": "UP"})
}

func toInstanceResponse(inst domain.ServiceInstance) instanceResponse {
	return instanceResponse{
		ID:            inst.ID,
		Name:          inst.Name,
		Version:       inst.Version,
		Host:          inst.Host,
		Port:          inst.Port,
		HealthCheck:   inst.HealthCheckURL,
		LastHeartbeat: inst.LastHeartbeat,
	}
}

func toInstanceResponses(instances []domain.ServiceInstance) []instanceResponse {
	out := make([]instanceResponse, 0, len(instances))
	for _, inst := range instances {
		out = append(out, toInstanceResponse(inst))
	}
	return out
}
