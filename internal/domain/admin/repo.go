package admin

import "context"

type Repository interface {
	Stats(ctx context.Context) (*Stats, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*UserRow, int, error)
	ListAppointments(ctx context.Context, limit, offset int) ([]*AppointmentRow, int, error)
}
