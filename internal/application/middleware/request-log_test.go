package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestRequestIDIsGeneratedOrKept(t *testing.T) {
	e := echo.New()
	SetupRequestID(e)
	SetupRequestLogger(e)
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	generated := rec.Header().Get(echo.HeaderXRequestID)
	if _, err := uuid.Parse(generated); err != nil {
		t.Fatalf("expected a uuid request id, got %q", generated)
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "caller-id")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if got := rec.Header().Get(echo.HeaderXRequestID); got != "caller-id" {
		t.Fatalf("expected caller request id to be kept, got %q", got)
	}
}
