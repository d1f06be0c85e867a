package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/multirole/auth-api/internal/pkg/reqctx"
)

// RequestMeta packs the request id (set by Echo's RequestID middleware),
// client IP and user agent into an explicit context value. The audit layer
// reads it from there; no process-global request state exists.
func RequestMeta() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			ctx := reqctx.WithMeta(req.Context(), reqctx.Meta{
				RequestID: requestID,
				IPAddress: c.RealIP(),
				UserAgent: req.UserAgent(),
			})
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
