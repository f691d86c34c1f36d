package rating

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medihive/medihive/internal/platform/auth"
)

func TestSubmitHandler(t *testing.T) {
	f := newFixture(t, "completed")
	h := NewHandler(f.svc)

	e := echo.New()
	body := fmt.Sprintf(`{"appointment_id":%q,"rating":5,"comment":"excellent"}`, f.apptID)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = req.WithContext(auth.WithIdentity(req.Context(), f.patient))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/doctors/:id/ratings")
	c.SetParamNames("id")
	c.SetParamValues(f.doctorID.String())

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Rating Rating `json:"rating"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Rating.Rating != 5 {
		t.Errorf("rating = %d", resp.Rating.Rating)
	}
}

func TestSubmitHandlerIneligible(t *testing.T) {
	f := newFixture(t, "scheduled")
	h := NewHandler(f.svc)

	e := echo.New()
	body := fmt.Sprintf(`{"appointment_id":%q,"rating":5}`, f.apptID)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = req.WithContext(auth.WithIdentity(req.Context(), f.patient))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/doctors/:id/ratings")
	c.SetParamNames("id")
	c.SetParamValues(f.doctorID.String())

	err := h.Submit(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestSubmitHandlerBadDoctorID(t *testing.T) {
	f := newFixture(t, "completed")
	h := NewHandler(f.svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"rating":5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = req.WithContext(auth.WithIdentity(req.Context(), f.patient))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/doctors/:id/ratings")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.Submit(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestStatsHandler(t *testing.T) {
	f := newFixture(t, "completed")
	h := NewHandler(f.svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/doctors/:id/ratings")
	c.SetParamNames("id")
	c.SetParamValues(f.doctorID.String())

	if err := h.Stats(c); err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Stats Stats `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Stats.RatingCount != 0 {
		t.Errorf("count = %d, want 0", resp.Stats.RatingCount)
	}
}
