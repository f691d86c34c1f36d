package admin

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}

func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]*UserRow, int, error) {
	return s.repo.ListUsers(ctx, limit, offset)
}

func (s *Service) ListAppointments(ctx context.Context, limit, offset int) ([]*AppointmentRow, int, error) {
	return s.repo.ListAppointments(ctx, limit, offset)
}
