package appointment

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

const apptCols = `appointment_id, patient_id, doctor_id, appointment_time, status, notes, created_at, updated_at, deleted_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.AppointmentTime,
		&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	a.Status = StatusScheduled
	err := r.conn.QueryRow(ctx, `
		INSERT INTO appointments (appointment_id, patient_id, doctor_id, appointment_time, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		a.ID, a.PatientID, a.DoctorID, a.AppointmentTime, a.Status, a.Notes).Scan(&a.CreatedAt, &a.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateBooking
	}
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return scanAppointment(r.conn.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE appointment_id = $1 AND deleted_at IS NULL`, id))
}

func (r *repoPG) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*PatientView, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT a.appointment_id, a.appointment_time, a.status,
			d.first_name, d.last_name, d.specialty
		FROM appointments a
		JOIN doctor_profiles d ON a.doctor_id = d.doctor_id
		WHERE a.patient_id = $1 AND a.deleted_at IS NULL
		ORDER BY a.appointment_time DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*PatientView
	for rows.Next() {
		var v PatientView
		if err := rows.Scan(&v.AppointmentID, &v.AppointmentTime, &v.Status,
			&v.DoctorFirstName, &v.DoctorLastName, &v.Specialty); err != nil {
			return nil, err
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}

func (r *repoPG) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*DoctorView, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT a.appointment_id, a.appointment_time, a.status,
			p.first_name, p.last_name
		FROM appointments a
		JOIN patient_profiles p ON a.patient_id = p.patient_id
		WHERE a.doctor_id = $1 AND a.deleted_at IS NULL
		ORDER BY a.appointment_time DESC`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*DoctorView
	for rows.Next() {
		var v DoctorView
		if err := rows.Scan(&v.AppointmentID, &v.AppointmentTime, &v.Status,
			&v.PatientFirstName, &v.PatientLastName); err != nil {
			return nil, err
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}

// TransitionStatus is a single atomic statement so two concurrent
// transitions cannot both succeed.
func (r *repoPG) TransitionStatus(ctx context.Context, id uuid.UUID, to string) (bool, error) {
	tag, err := r.conn.Exec(ctx, `
		UPDATE appointments SET status = $2, updated_at = NOW()
		WHERE appointment_id = $1 AND status = $3 AND deleted_at IS NULL`,
		id, to, StatusScheduled)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repoPG) PatientIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.conn.QueryRow(ctx,
		`SELECT patient_id FROM patient_profiles WHERE user_id = $1 AND deleted_at IS NULL`,
		userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, ErrNoProfile
	}
	return id, err
}

func (r *repoPG) DoctorIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.conn.QueryRow(ctx,
		`SELECT doctor_id FROM doctor_profiles WHERE user_id = $1 AND deleted_at IS NULL`,
		userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, ErrNoProfile
	}
	return id, err
}

func (r *repoPG) BookingParties(ctx context.Context, patientID, doctorID uuid.UUID) (*BookingParties, error) {
	var b BookingParties
	var pFirst, pLast, dFirst, dLast string
	err := r.conn.QueryRow(ctx, `
		SELECT u.email, p.first_name, p.last_name, d.first_name, d.last_name, d.specialty
		FROM patient_profiles p
		JOIN users u ON p.user_id = u.user_id
		CROSS JOIN doctor_profiles d
		WHERE p.patient_id = $1 AND d.doctor_id = $2`,
		patientID, doctorID).Scan(&b.PatientEmail, &pFirst, &pLast, &dFirst, &dLast, &b.Specialty)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	b.PatientName = pFirst + " " + pLast
	b.DoctorName = dFirst + " " + dLast
	return &b, nil
}
