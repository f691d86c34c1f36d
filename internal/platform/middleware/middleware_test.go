package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func run(t *testing.T, mw echo.MiddlewareFunc, req *http.Request, h echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := mw(h)(c)
	return rec, err
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequestIDGenerates(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, err := run(t, RequestID(), req, okHandler)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	rid := rec.Header().Get(RequestIDHeader)
	if rid == "" {
		t.Fatal("no request id on response")
	}
	if _, err := uuid.Parse(rid); err != nil {
		t.Errorf("generated id %q is not a uuid", rid)
	}
}

func TestRequestIDPreservesClientHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")

	var seen string
	rec, err := run(t, RequestID(), req, func(c echo.Context) error {
		seen, _ = c.Get("request_id").(string)
		return c.NoContent(http.StatusOK)
	})
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Header().Get(RequestIDHeader) != "client-supplied-id" {
		t.Errorf("response header = %q", rec.Header().Get(RequestIDHeader))
	}
	if seen != "client-supplied-id" {
		t.Errorf("context value = %q", seen)
	}
}

func TestRateLimitAllowsWithinBurst(t *testing.T) {
	mw := RateLimit(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 3})
	h := mw(okHandler)
	e := echo.New()

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		if err := h(e.NewContext(req, rec)); err != nil {
			t.Fatalf("request %d rejected: %v", i, err)
		}
		if rec.Header().Get("X-RateLimit-Limit") == "" {
			t.Error("missing X-RateLimit-Limit header")
		}
	}
}

func TestRateLimitRejectsOverBurst(t *testing.T) {
	mw := RateLimit(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1})
	h := mw(okHandler)
	e := echo.New()

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.0.0.2:1234"
	if err := h(e.NewContext(first, httptest.NewRecorder())); err != nil {
		t.Fatalf("first request rejected: %v", err)
	}

	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	err := h(e.NewContext(second, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}
}

func TestRateLimitSeparatesClients(t *testing.T) {
	mw := RateLimit(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1})
	h := mw(okHandler)
	e := echo.New()

	a := httptest.NewRequest(http.MethodGet, "/", nil)
	a.RemoteAddr = "10.0.0.3:1234"
	if err := h(e.NewContext(a, httptest.NewRecorder())); err != nil {
		t.Fatalf("client a rejected: %v", err)
	}

	b := httptest.NewRequest(http.MethodGet, "/", nil)
	b.RemoteAddr = "10.0.0.4:1234"
	if err := h(e.NewContext(b, httptest.NewRecorder())); err != nil {
		t.Fatalf("client b should have its own bucket: %v", err)
	}
}

func TestRecoveryConvertsPanic(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := run(t, Recovery(zerolog.Nop()), req, func(c echo.Context) error {
		panic("boom")
	})
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %v", err)
	}
}

func TestRecoveryPassesThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, err := run(t, Recovery(zerolog.Nop()), req, okHandler)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
