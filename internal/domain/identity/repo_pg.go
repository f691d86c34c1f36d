package identity

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

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

const userCols = `user_id, email, password_hash, role, created_at, updated_at, deleted_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &u, err
}

func (r *repoPG) CreateUser(ctx context.Context, u *User) error {
	u.ID = uuid.New()
	err := r.conn.QueryRow(ctx, `
		INSERT INTO users (user_id, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		u.ID, u.Email, u.PasswordHash, u.Role).Scan(&u.CreatedAt, &u.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func (r *repoPG) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return scanUser(r.conn.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE email = $1 AND deleted_at IS NULL`, email))
}

func (r *repoPG) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return scanUser(r.conn.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE user_id = $1 AND deleted_at IS NULL`, id))
}

const patientCols = `patient_id, user_id, first_name, last_name, phone_number, address, created_at, updated_at`

func scanPatient(row pgx.Row) (*PatientProfile, error) {
	var p PatientProfile
	err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Phone, &p.Address, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *repoPG) CreatePatientProfile(ctx context.Context, p *PatientProfile) error {
	p.ID = uuid.New()
	return r.conn.QueryRow(ctx, `
		INSERT INTO patient_profiles (patient_id, user_id, first_name, last_name, phone_number, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		p.ID, p.UserID, p.FirstName, p.LastName, p.Phone, p.Address).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *repoPG) GetPatientProfileByUser(ctx context.Context, userID uuid.UUID) (*PatientProfile, error) {
	return scanPatient(r.conn.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient_profiles WHERE user_id = $1 AND deleted_at IS NULL`, userID))
}

func (r *repoPG) UpdatePatientProfile(ctx context.Context, p *PatientProfile) error {
	tag, err := r.conn.Exec(ctx, `
		UPDATE patient_profiles SET first_name=$2, last_name=$3, phone_number=$4, address=$5, updated_at=NOW()
		WHERE patient_id = $1 AND deleted_at IS NULL`,
		p.ID, p.FirstName, p.LastName, p.Phone, p.Address)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const doctorCols = `doctor_id, user_id, first_name, last_name, specialty, phone_number, address, created_at, updated_at`

func scanDoctor(row pgx.Row) (*DoctorProfile, error) {
	var d DoctorProfile
	err := row.Scan(&d.ID, &d.UserID, &d.FirstName, &d.LastName, &d.Specialty, &d.Phone, &d.Address, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &d, err
}

func (r *repoPG) CreateDoctorProfile(ctx context.Context, d *DoctorProfile) error {
	d.ID = uuid.New()
	return r.conn.QueryRow(ctx, `
		INSERT INTO doctor_profiles (doctor_id, user_id, first_name, last_name, specialty, phone_number, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		d.ID, d.UserID, d.FirstName, d.LastName, d.Specialty, d.Phone, d.Address).Scan(&d.CreatedAt, &d.UpdatedAt)
}

func (r *repoPG) GetDoctorProfileByUser(ctx context.Context, userID uuid.UUID) (*DoctorProfile, error) {
	return scanDoctor(r.conn.QueryRow(ctx,
		`SELECT `+doctorCols+` FROM doctor_profiles WHERE user_id = $1 AND deleted_at IS NULL`, userID))
}

func (r *repoPG) UpdateDoctorProfile(ctx context.Context, d *DoctorProfile) error {
	tag, err := r.conn.Exec(ctx, `
		UPDATE doctor_profiles SET first_name=$2, last_name=$3, phone_number=$4, address=$5, updated_at=NOW()
		WHERE doctor_id = $1 AND deleted_at IS NULL`,
		d.ID, d.FirstName, d.LastName, d.Phone, d.Address)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
