package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"myplatform/domain"
	"myplatform/interfaces"
	"myplatform/interfaces/mock"
	"myplatform/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistryEcho(directory interfaces.Directory) *echo.Echo {
	e := echo.New()
	service.RegisterErrorHandler(e, log.NewNopLogger())
	NewRegistryServer(directory, log.NewNopLogger()).RegisterRoutes(e)
	return e
}

type errorBody struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	return body
}

func TestRegistryServer_Register(t *testing.T) {
	validBody := `{"name":"cart","version":"1.0","host":"10.0.0.5","port":4001}`

	tests := []struct {
		name           string
		body           string
		directory      *mock.DirectoryMock
		expectedStatus int
	}{
		{
			name: "ok",
			body: validBody,
			directory: &mock.DirectoryMock{
				RegisterFunc: func(instance domain.ServiceInstance) (domain.ServiceInstance, error) {
					assert.Equal(t, "cart", instance.Name)
					assert.Equal(t, "1.0", instance.Version)
					assert.Equal(t, "10.0.0.5", instance.Host)
					assert.Equal(t, 4001, instance.Port)
					instance.ID = instance.DeriveID()
					instance.HealthCheckURL = instance.DefaultHealthCheckURL()
					return instance, nil
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "400 invalid JSON",
			body:           `{invalid`,
			directory:      &mock.DirectoryMock{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "400 missing fields",
			body: `{"name":"cart"}`,
			directory: &mock.DirectoryMock{
				RegisterFunc: func(instance domain.ServiceInstance) (domain.ServiceInstance, error) {
					return domain.ServiceInstance{}, service.NewBadParameterError("Missing required fields", nil)
				},
			},
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newRegistryEcho(tt.directory)
			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRegistryServer_Register_MissingFieldsMessage(t *testing.T) {
	clock := service.NewTimeProvider(func() time.Time { return time.Now().UTC() })
	directory := service.NewDirectory(clock, 120*time.Second, 30*time.Second, log.NewNopLogger())
	e := newRegistryEcho(directory)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"name":"cart","version":"1.0"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", decodeErrorBody(t, rec).Error.Message)
}

func TestRegistryServer_Deregister(t *testing.T) {
	directory := &mock.DirectoryMock{
		DeregisterFunc: func(id string) bool { return id == "cart-1.0-10.0.0.5-4001" },
	}
	e := newRegistryEcho(directory)

	req := httptest.NewRequest(http.MethodDelete, "/register/cart-1.0-10.0.0.5-4001", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")

	req = httptest.NewRequest(http.MethodDelete, "/register/unknown-id", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegistryServer_ListServices(t *testing.T) {
	directory := &mock.DirectoryMock{
		ListFunc: func() map[string][]domain.ServiceInstance {
			return map[string][]domain.ServiceInstance{
				"cart:1.0": {{Name: "cart", Version: "1.0", Host: "10.0.0.5", Port: 4001}},
			}
		},
	}
	e := newRegistryEcho(directory)

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string][]instanceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Contains(t, body, "cart:1.0")
	assert.Equal(t, "10.0.0.5", body["cart:1.0"][0].Host)
}

func TestRegistryServer_LookupService(t *testing.T) {
	directory := &mock.DirectoryMock{
		LookupFunc: func(name string, version string) ([]domain.ServiceInstance, error) {
			assert.Equal(t, "cart", name)
			if version == "9.9" {
				return nil, service.NewEntityNotFoundError("service not found", nil)
			}
			return []domain.ServiceInstance{{Name: name, Version: "1.0", Host: "10.0.0.5", Port: 4001}}, nil
		},
	}
	e := newRegistryEcho(directory)

	req := httptest.NewRequest(http.MethodGet, "/services/cart", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body instancesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Instances, 1)
	assert.Equal(t, 4001, body.Instances[0].Port)

	req = httptest.NewRequest(http.MethodGet, "/services/cart?version=9.9", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegistryServer_Health(t *testing.T) {
	e := newRegistryEcho(&mock.DirectoryMock{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"UP"}`, rec.Body.String())
}

// Full lifecycle against a real directory: register, look up, let the
// heartbeat go stale, sweep, and observe the 404.
func TestRegistryServer_InstanceLifecycle(t *testing.T) {
	now := time.Date(2026, 2, 21, 12, 0, 0, 0, time.UTC)
	clock := &mock.TimeProviderMock{NowFunc: func() time.Time { return now }}
	directory := service.NewDirectory(clock, 120*time.Second, 30*time.Second, log.NewNopLogger())
	e := newRegistryEcho(directory)

	body := `{"name":"cart","version":"1.0","host":"10.0.0.5","port":4001}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/services/cart", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var lookup instancesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&lookup))
	require.Len(t, lookup.Instances, 1)
	assert.Equal(t, "10.0.0.5", lookup.Instances[0].Host)
	assert.Equal(t, 4001, lookup.Instances[0].Port)
	assert.Equal(t, "http://10.0.0.5:4001/health", lookup.Instances[0].HealthCheck)

	// No renewal arrives before the expiry window closes.
	now = now.Add(121 * time.Second)
	directory.Sweep()

	req = httptest.NewRequest(http.MethodGet, "/services/cart", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
