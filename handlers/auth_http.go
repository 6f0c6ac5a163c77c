package handlers

import (
	"net/http"
	"strings"

	"myplatform/domain"
	"myplatform/interfaces"
	"myplatform/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// identityContextKey is the echo context key the VerifyToken middleware
// stores the authenticated identity under.
const identityContextKey = "auth.identity"

// invalidCredentialsMessage is returned verbatim for both unknown email
// and wrong password so the response never leaks which one failed.
const invalidCredentialsMessage = "invalid email or password"

// AuthServer serves the auth gateway HTTP surface: it issues and validates
// session tokens and emits domain events on login and registration.
type AuthServer struct {
	users    interfaces.UserStore
	sessions interfaces.SessionStore
	bus      interfaces.EventBus
	clock    interfaces.TimeProvider
	logger   log.Logger
}

// NewAuthServer creates an AuthServer.
func NewAuthServer(
	users interfaces.UserStore,
	sessions interfaces.SessionStore,
	bus interfaces.EventBus,
	clock interfaces.TimeProvider,
	logger log.Logger,
) *AuthServer {
	logger = log.WithPrefix(logger, "component", "AuthServer")
	return &AuthServer{
		users:    users,
		sessions: sessions,
		bus:      bus,
		clock:    clock,
		logger:   logger,
	}
}

// RegisterRoutes attaches the auth routes to e.
func (s *AuthServer) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/auth/login", s.Login)
	e.POST("/api/auth/register", s.Register)
	e.GET("/api/auth/me", s.Me, s.VerifyToken)
	e.POST("/api/auth/logout", s.Logout, s.VerifyToken)
	e.GET("/health", Health)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

type registerUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	User domain.PublicUser `json:"user"`
}

// Login (POST /api/auth/login) checks credentials, creates a session and
// publishes a user_login event. Both "email not found" and "wrong
// password" produce 401 with the identical message.
func (s *AuthServer) Login(ectx echo.Context) error {
	var req loginRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	if req.Email == "" || req.Password == "" {
		return service.NewBadParameterError("email and password are required", nil)
	}

	ctx := ectx.Request().Context()

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if service.IsEntityNotFoundError(err) {
			return service.NewInvalidUserOrPasswordError(invalidCredentialsMessage, err)
		}
		return service.NewInternalServerError("failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return service.NewInvalidUserOrPasswordError(invalidCredentialsMessage, err)
	}

	token, err := s.sessions.Create(ctx, domain.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return service.NewInternalServerError("failed to create session", err)
	}

	s.publish(ectx, domain.EventUserLogin, map[string]any{
		"userId": user.ID,
		"email":  user.Email,
	})

	return ectx.JSON(http.StatusOK, loginResponse{
		Token: token,
		User:  user.Public(),
	})
}

// Register (POST /api/auth/register) creates an account. Duplicate email
// is a 400 conflict; the response never carries the password hash.
func (s *AuthServer) Register(ectx echo.Context) error {
	var req registerUserRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return service.NewBadParameterError("name, email and password are required", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return service.NewInternalServerError("failed to hash password", err)
	}

	ctx := ectx.Request().Context()

	user, err := s.users.Create(ctx, domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         "customer",
	})
	if err != nil {
		if service.IsConflictError(err) {
			return err
		}
		return service.NewInternalServerError("failed to create user", err)
	}

	s.publish(ectx, domain.EventUserRegistered, map[string]any{
		"userId": user.ID,
		"email":  user.Email,
	})

	return ectx.JSON(http.StatusCreated, userResponse{User: user.Public()})
}

// Me (GET /api/auth/me) returns the current user for the bearer token.
func (s *AuthServer) Me(ectx echo.Context) error {
	identity := IdentityFromContext(ectx)

	user, err := s.users.GetByID(ectx.Request().Context(), identity.UserID)
	if err != nil {
		if service.IsEntityNotFoundError(err) {
			return err
		}
		return service.NewInternalServerError("failed to look up user", err)
	}

	return ectx.JSON(http.StatusOK, userResponse{User: user.Public()})
}

// Logout (POST /api/auth/logout) deletes the session so the token stops
// working immediately instead of lingering until TTL expiry.
func (s *AuthServer) Logout(ectx echo.Context) error {
	token := bearerToken(ectx)
	if err := s.sessions.Delete(ectx.Request().Context(), token); err != nil {
		return service.NewInternalServerError("failed to delete session", err)
	}

	return ectx.JSON(http.StatusOK, messageResponse{Message: "Logged out"})
}

// VerifyToken extracts the bearer token, resolves it against the session
// store and attaches the identity to the request context. Absent, unknown
// and expired tokens all fail with the same 401.
func (s *AuthServer) VerifyToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ectx echo.Context) error {
		token := bearerToken(ectx)
		if token == "" {
			return service.NewUnauthenticatedError("missing bearer token", nil)
		}

		identity, err := s.sessions.Get(ectx.Request().Context(), token)
		if err != nil {
			if service.IsUnauthenticatedError(err) {
				return err
			}
			return service.NewInternalServerError("failed to read session", err)
		}

		ectx.Set(identityContextKey, identity)
		return next(ectx)
	}
}

// IdentityFromContext returns the identity attached by VerifyToken, or the
// zero identity when the middleware did not run.
func IdentityFromContext(ectx echo.Context) domain.Identity {
	identity, _ := ectx.Get(identityContextKey).(domain.Identity)
	return identity
}

// publish emits one event on the user_events channel. A bus failure is
// logged and swallowed: event propagation must never fail the request.
func (s *AuthServer) publish(ectx echo.Context, eventType string, payload map[string]any) {
	event := domain.NewEvent(eventType, payload, s.clock.Now())
	if err := s.bus.Publish(ectx.Request().Context(), domain.ChannelUserEvents, event); err != nil {
		level.Error(s.logger).Log("msg", "failed to publish event", "type", eventType, "err", err)
	}
}

func bearerToken(ectx echo.Context) string {
	header := ectx.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}
