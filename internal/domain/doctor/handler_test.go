package doctor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medihive/medihive/internal/platform/auth"
	"github.com/medihive/medihive/pkg/pagination"
)

func TestListHandlerReturnsPaginatedDirectory(t *testing.T) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo))
	seedDoctor(t, repo, "Gregory", "House", "Diagnostics")
	seedDoctor(t, repo, "James", "Wilson", "Oncology")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/doctors?limit=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp pagination.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("total = %d", resp.Total)
	}
	if !resp.HasMore {
		t.Error("expected has_more with limit 1")
	}
}

func TestListHandlerEmptyDirectory(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if strings.Contains(rec.Body.String(), `"data":null`) {
		t.Error("data should be an empty array, not null")
	}
}

func TestCreateProfileHandler(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))

	ident := auth.Identity{UserID: uuid.New(), Email: "doc@example.com", Role: auth.RoleDoctor}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/doctors/profile",
		strings.NewReader(`{"first_name":"Gregory","last_name":"House","specialty":"Diagnostics"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = req.WithContext(auth.WithIdentity(req.Context(), ident))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateProfile(c); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var p Profile
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.UserID != ident.UserID {
		t.Error("profile should belong to the caller")
	}
}

func TestCreateProfileHandlerMissingIdentity(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/doctors/profile",
		strings.NewReader(`{"first_name":"Gregory","last_name":"House","specialty":"Diagnostics"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateProfile(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestCreateProfileHandlerValidation(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))

	ident := auth.Identity{UserID: uuid.New(), Email: "doc@example.com", Role: auth.RoleDoctor}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/doctors/profile", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = req.WithContext(auth.WithIdentity(req.Context(), ident))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateProfile(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
