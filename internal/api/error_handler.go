package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/multirole/auth-api/internal/api/handler"
	"github.com/multirole/auth-api/internal/core/domain"
	"github.com/multirole/auth-api/internal/i18n"
)

// errorResponse is the canonical error envelope for all API errors. Message
// is localized; ErrorCode is the stable machine-readable contract.
type errorResponse struct {
	ErrorCode   string              `json:"errorCode"`
	Message     string              `json:"message"`
	Path        string              `json:"path"`
	Timestamp   time.Time           `json:"timestamp"`
	FieldErrors []domain.FieldError `json:"fieldErrors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps validation and business errors to stable error codes with
//     localized messages.
//   - Keeps the envelope identical for "unknown user" and "wrong password"
//     so responses cannot be used to enumerate accounts.
//   - Logs unexpected errors server-side and returns a generic 500 without
//     leaking the cause.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		locale := handler.RequestLocale(c)
		path := c.Request().URL.Path

		resp := errorResponse{
			Path:      path,
			Timestamp: time.Now().UTC(),
		}

		var code int
		var ve *domain.ValidationError
		var he *echo.HTTPError

		switch {
		case errors.As(err, &ve):
			code = http.StatusBadRequest
			resp.ErrorCode = "VALIDATION_ERROR"
			resp.Message = i18n.Resolve("error.validation.error", locale)
			resp.FieldErrors = ve.Fields

		case errors.Is(err, domain.ErrUserExists):
			code = http.StatusBadRequest
			resp.ErrorCode = "USER_ALREADY_EXISTS"
			resp.Message = i18n.Resolve("error.user.already.exists", locale)

		case errors.Is(err, domain.ErrAuthenticationFailed):
			code = http.StatusUnauthorized
			resp.ErrorCode = "AUTHENTICATION_FAILED"
			resp.Message = i18n.Resolve("error.authentication.failed", locale)

		case errors.As(err, &he):
			// Echo's own errors (bind failures, 404 from router, auth middleware)
			code = he.Code
			resp.ErrorCode = http.StatusText(he.Code)
			resp.Message = fmt.Sprintf("%v", he.Message)

		default:
			// Unexpected error: log the real cause, return a generic message.
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", path).
				Msg("unhandled error")
			code = http.StatusInternalServerError
			resp.ErrorCode = "INTERNAL_SERVER_ERROR"
			resp.Message = i18n.Resolve("error.internal.server.error", locale)
		}

		_ = c.JSON(code, resp)
	}
}
