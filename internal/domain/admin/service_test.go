package admin

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	stats Stats
	users []*UserRow
	appts []*AppointmentRow
}

func (m *mockRepo) Stats(_ context.Context) (*Stats, error) {
	s := m.stats
	return &s, nil
}

func (m *mockRepo) ListUsers(_ context.Context, limit, offset int) ([]*UserRow, int, error) {
	return page(m.users, limit, offset), len(m.users), nil
}

func (m *mockRepo) ListAppointments(_ context.Context, limit, offset int) ([]*AppointmentRow, int, error) {
	return page(m.appts, limit, offset), len(m.appts), nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset > len(items) {
		offset = len(items)
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func TestStatsPassthrough(t *testing.T) {
	repo := &mockRepo{stats: Stats{TotalUsers: 7, TotalDoctors: 2, TotalAppointments: 5, ScheduledAppointments: 3}}
	svc := NewService(repo)

	s, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if s.TotalUsers != 7 || s.ScheduledAppointments != 3 {
		t.Errorf("stats = %+v", s)
	}
}

func TestListUsersPagination(t *testing.T) {
	repo := &mockRepo{}
	for i := 0; i < 5; i++ {
		repo.users = append(repo.users, &UserRow{UserID: uuid.New(), Email: "u@example.com", Role: "patient", CreatedAt: time.Now()})
	}
	svc := NewService(repo)

	items, total, err := svc.ListUsers(context.Background(), 2, 4)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d", total)
	}
	if len(items) != 1 {
		t.Errorf("len = %d, want 1", len(items))
	}
}
