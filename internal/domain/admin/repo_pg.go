package admin

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ conn queryable }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{conn: pool} }

func (r *repoPG) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	err := r.conn.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM doctor_profiles WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM appointments WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM appointments WHERE status = 'scheduled' AND deleted_at IS NULL)`).
		Scan(&s.TotalUsers, &s.TotalDoctors, &s.TotalAppointments, &s.ScheduledAppointments)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repoPG) ListUsers(ctx context.Context, limit, offset int) ([]*UserRow, int, error) {
	var total int
	if err := r.conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn.Query(ctx, `
		SELECT user_id, email, role, created_at
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*UserRow
	for rows.Next() {
		var u UserRow
		if err := rows.Scan(&u.UserID, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &u)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListAppointments(ctx context.Context, limit, offset int) ([]*AppointmentRow, int, error) {
	var total int
	if err := r.conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointments WHERE deleted_at IS NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn.Query(ctx, `
		SELECT a.appointment_id, a.appointment_time, a.status,
			p.first_name, p.last_name,
			d.first_name, d.last_name, d.specialty
		FROM appointments a
		JOIN patient_profiles p ON a.patient_id = p.patient_id
		JOIN doctor_profiles d ON a.doctor_id = d.doctor_id
		WHERE a.deleted_at IS NULL
		ORDER BY a.appointment_time DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*AppointmentRow
	for rows.Next() {
		var a AppointmentRow
		if err := rows.Scan(&a.AppointmentID, &a.AppointmentTime, &a.Status,
			&a.PatientFirstName, &a.PatientLastName,
			&a.DoctorFirstName, &a.DoctorLastName, &a.Specialty); err != nil {
			return nil, 0, err
		}
		items = append(items, &a)
	}
	return items, total, rows.Err()
}
