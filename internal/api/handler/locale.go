package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/multirole/auth-api/internal/i18n"
)

// RequestLocale negotiates the response language: an explicit lang query
// parameter wins, then the Accept-Language header, then the default.
func RequestLocale(c echo.Context) i18n.Locale {
	if lang := c.QueryParam("lang"); lang != "" {
		if locale, ok := i18n.ParseLocale(lang); ok {
			return locale
		}
	}
	return i18n.ParseAcceptLanguage(c.Request().Header.Get("Accept-Language"))
}
