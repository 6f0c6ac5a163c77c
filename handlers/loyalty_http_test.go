package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"myplatform/interfaces/mock"
	"myplatform/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoyaltyServer_GetPoints(t *testing.T) {
	points := &mock.PointsStoreMock{
		GetFunc: func(ctx context.Context, userID string) (int64, error) {
			assert.Equal(t, "u-1", userID)
			return 75, nil
		},
	}
	e := echo.New()
	service.RegisterErrorHandler(e, log.NewNopLogger())
	NewLoyaltyServer(points, log.NewNopLogger()).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/loyalty/u-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body pointsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "u-1", body.UserID)
	assert.Equal(t, int64(75), body.Points)
}

func TestLoyaltyServer_GetPoints_StoreError(t *testing.T) {
	points := &mock.PointsStoreMock{
		GetFunc: func(ctx context.Context, userID string) (int64, error) {
			return 0, assert.AnError
		},
	}
	e := echo.New()
	service.RegisterErrorHandler(e, log.NewNopLogger())
	NewLoyaltyServer(points, log.NewNopLogger()).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/loyalty/u-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
