package rating

import (
	"context"
	"errors"

	"github.com/google/uuid"
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

// Create is a single INSERT ... SELECT so the eligibility check and the
// copy of doctor_id/patient_id from the appointment row are atomic.
func (r *repoPG) Create(ctx context.Context, rt *Rating, callerUserID uuid.UUID) error {
	rt.ID = uuid.New()
	err := r.conn.QueryRow(ctx, `
		INSERT INTO doctor_ratings (rating_id, doctor_id, patient_id, appointment_id, rating, comment)
		SELECT $1, a.doctor_id, a.patient_id, a.appointment_id, $2, $3
		FROM appointments a
		JOIN patient_profiles p ON a.patient_id = p.patient_id
		WHERE a.appointment_id = $4
			AND a.doctor_id = $5
			AND p.user_id = $6
			AND a.status = 'completed'
			AND a.deleted_at IS NULL
		RETURNING doctor_id, patient_id, created_at`,
		rt.ID, rt.Rating, rt.Comment, rt.AppointmentID, rt.DoctorID, callerUserID).
		Scan(&rt.DoctorID, &rt.PatientID, &rt.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotEligible
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyRated
	}
	return err
}

func (r *repoPG) Stats(ctx context.Context, doctorID uuid.UUID) (*Stats, error) {
	var s Stats
	err := r.conn.QueryRow(ctx, `
		SELECT COALESCE(AVG(rating), 0)::float8, COUNT(*)::int
		FROM doctor_ratings
		WHERE doctor_id = $1`, doctorID).Scan(&s.AvgRating, &s.RatingCount)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
