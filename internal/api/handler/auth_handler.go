package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/multirole/auth-api/internal/api/metrics"
	"github.com/multirole/auth-api/internal/core/domain"
	"github.com/multirole/auth-api/internal/core/ports"
	"github.com/multirole/auth-api/internal/i18n"
)

// LoginThrottle limits failed login attempts per username. Advisory only:
// errors from the throttle never block a login.
type LoginThrottle interface {
	IsBlocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

type AuthHandler struct {
	authService ports.AuthService
	tokens      ports.TokenIssuer
	audit       ports.AuditRecorder
	throttle    LoginThrottle
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, tokens ports.TokenIssuer, audit ports.AuditRecorder, throttle LoginThrottle, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
		audit:       audit,
		throttle:    throttle,
		log:         log,
	}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  registerResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	role, _ := domain.ParseRole(req.Role) // validated above

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     role,
	})
	if err != nil {
		if err == domain.ErrUserExists {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, registerResponse{
		Message: i18n.Resolve("auth.register.success", RequestLocale(c)),
		UserID:  user.ID,
	})
}

// Login authenticates a user and returns a JWT bearer token.
//
// The audit outcome is recorded here, not in the service, so a failed
// attempt can still be attributed to the attempted username. Unknown user,
// wrong password and a throttled account all surface as the same 401.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]any
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	if h.throttle != nil {
		blocked, err := h.throttle.IsBlocked(ctx, req.Username)
		if err != nil {
			h.log.Warn().Err(err).Msg("login throttle unavailable")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			h.audit.LogFailure(ctx, "", req.Username, domain.ActionUserLogin, "User", "", "too many failed attempts")
			return domain.ErrAuthenticationFailed
		}
	}

	user, err := h.authService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return err
	}
	if user == nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		h.audit.LogFailure(ctx, "", req.Username, domain.ActionUserLogin, "User", "", "authentication failed")
		if h.throttle != nil {
			if err := h.throttle.RecordFailure(ctx, req.Username); err != nil {
				h.log.Warn().Err(err).Msg("login throttle record failed")
			}
		}
		return domain.ErrAuthenticationFailed
	}

	token, err := h.tokens.GenerateToken(user)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	h.audit.LogSuccess(ctx, user.ID, user.Username, domain.ActionUserLogin, "User", user.ID)
	if h.throttle != nil {
		if err := h.throttle.Reset(ctx, user.Username); err != nil {
			h.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User: loginUser{
			ID:       user.ID,
			Username: user.Username,
			Role:     string(user.Role),
		},
	})
}
