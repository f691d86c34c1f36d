package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medihive/medihive/internal/platform/auth"
	"github.com/medihive/medihive/pkg/pagination"
)

func adminContext(path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	ident := auth.Identity{UserID: uuid.New(), Email: "admin@example.com", Role: auth.RoleAdmin}
	req = req.WithContext(auth.WithIdentity(req.Context(), ident))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestStatsHandler(t *testing.T) {
	repo := &mockRepo{stats: Stats{TotalUsers: 3, TotalDoctors: 1, TotalAppointments: 2, ScheduledAppointments: 1}}
	h := NewHandler(NewService(repo))

	c, rec := adminContext("/api/admin/stats")
	if err := h.Stats(c); err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var s Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.TotalUsers != 3 {
		t.Errorf("total_users = %d", s.TotalUsers)
	}
}

func TestListUsersHandler(t *testing.T) {
	repo := &mockRepo{}
	for i := 0; i < 3; i++ {
		repo.users = append(repo.users, &UserRow{UserID: uuid.New(), Email: "u@example.com", Role: "patient", CreatedAt: time.Now()})
	}
	h := NewHandler(NewService(repo))

	c, rec := adminContext("/api/admin/users?limit=2")
	if err := h.ListUsers(c); err != nil {
		t.Fatalf("ListUsers: %v", err)
	}

	var resp pagination.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("total = %d", resp.Total)
	}
	if !resp.HasMore {
		t.Error("expected has_more")
	}
}

func TestListAppointmentsHandlerEmpty(t *testing.T) {
	h := NewHandler(NewService(&mockRepo{}))

	c, rec := adminContext("/api/admin/appointments")
	if err := h.ListAppointments(c); err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}

	var resp pagination.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 0 {
		t.Errorf("total = %d", resp.Total)
	}
	if resp.Data == nil {
		t.Error("data should be an empty array, not null")
	}
}
