package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medihive/medihive/internal/platform/token"
)

func testCodec(t *testing.T) *token.Codec {
	t.Helper()
	codec, err := token.NewCodec("test-secret")
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return codec
}

func runAuthenticated(t *testing.T, codec *token.Codec, header string) (error, Identity, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var ident Identity
	var found bool
	handler := Authenticate(codec)(func(c echo.Context) error {
		ident, found = IdentityFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	return handler(c), ident, found
}

func TestAuthenticateValidToken(t *testing.T) {
	codec := testCodec(t)
	userID := uuid.New()
	tok, err := codec.Sign(userID, "pat@example.com", "patient")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	err, ident, found := runAuthenticated(t, codec, "Bearer "+tok)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !found {
		t.Fatal("identity missing from context")
	}
	if ident.UserID != userID || ident.Role != RolePatient {
		t.Errorf("identity = %+v", ident)
	}
}

func TestAuthenticateMissingHeader(t *testing.T) {
	err, _, _ := runAuthenticated(t, testCodec(t), "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthenticateBadFormat(t *testing.T) {
	err, _, _ := runAuthenticated(t, testCodec(t), "Token abc")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	err, _, _ := runAuthenticated(t, testCodec(t), "Bearer garbage")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthenticateUnknownRole(t *testing.T) {
	codec := testCodec(t)
	tok, err := codec.Sign(uuid.New(), "x@example.com", "superuser")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	err, _, _ = runAuthenticated(t, codec, "Bearer "+tok)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthenticateCaseInsensitiveBearer(t *testing.T) {
	codec := testCodec(t)
	tok, _ := codec.Sign(uuid.New(), "pat@example.com", "patient")

	err, _, found := runAuthenticated(t, codec, "bearer "+tok)
	if err != nil || !found {
		t.Fatalf("lowercase bearer should be accepted: err=%v found=%v", err, found)
	}
}
