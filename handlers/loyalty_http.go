package handlers

import (
	"net/http"

	"myplatform/interfaces"
	"myplatform/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// LoyaltyServer serves the loyalty service HTTP surface.
type LoyaltyServer struct {
	points interfaces.PointsStore
	logger log.Logger
}

// NewLoyaltyServer creates a LoyaltyServer.
func NewLoyaltyServer(points interfaces.PointsStore, logger log.Logger) *LoyaltyServer {
	logger = log.WithPrefix(logger, "component", "LoyaltyServer")
	return &LoyaltyServer{
		points: points,
		logger: logger,
	}
}

// RegisterRoutes attaches the loyalty routes to e.
func (s *LoyaltyServer) RegisterRoutes(e *echo.Echo) {
	e.GET("/loyalty/:userId", s.GetPoints)
	e.GET("/health", Health)
}

type pointsResponse struct {
	UserID string `json:"userId"`
	Points int64  `json:"points"`
}

// GetPoints (GET /loyalty/:userId) returns the user's loyalty balance.
// Users that never earned points have balance zero.
func (s *LoyaltyServer) GetPoints(ectx echo.Context) error {
	userID := ectx.Param("userId")

	points, err := s.points.Get(ectx.Request().Context(), userID)
	if err != nil {
		return service.NewInternalServerError("failed to read points", err)
	}

	return ectx.JSON(http.StatusOK, pointsResponse{UserID: userID, Points: points})
}
