package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/multirole/auth-api/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty role
// proves the middleware ran.
func ctxClaims(c echo.Context) (username string, role domain.Role, err error) {
	r, _ := c.Get("role").(string)
	if r == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	username, _ = c.Get("username").(string)
	return username, domain.Role(r), nil
}
