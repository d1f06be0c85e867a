package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/multirole/auth-api/internal/pkg/reqctx"
)

func TestRequestMeta_InjectsContextValue(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-42")
	req.Header.Set("User-Agent", "curl/8.0")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequestMeta()
	handler := mw(func(c echo.Context) error {
		meta, ok := reqctx.FromContext(c.Request().Context())
		if !ok {
			t.Fatalf("expected request metadata in context")
		}
		if meta.RequestID != "req-42" {
			t.Fatalf("unexpected request id: %q", meta.RequestID)
		}
		if meta.UserAgent != "curl/8.0" {
			t.Fatalf("unexpected user agent: %q", meta.UserAgent)
		}
		if meta.IPAddress == "" {
			t.Fatalf("expected client ip to be captured")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
