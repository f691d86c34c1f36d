package doctor

import (
	"context"
	"errors"
	"fmt"

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

func (r *repoPG) List(ctx context.Context, f Filter, limit, offset int) ([]*Listing, int, error) {
	where := ` WHERE d.deleted_at IS NULL`
	var args []interface{}
	idx := 1

	if f.Specialty != "" {
		where += fmt.Sprintf(` AND LOWER(d.specialty) = LOWER($%d)`, idx)
		args = append(args, f.Specialty)
		idx++
	}
	if f.Search != "" {
		where += fmt.Sprintf(` AND (d.first_name ILIKE $%d OR d.last_name ILIKE $%d)`, idx, idx)
		args = append(args, "%"+f.Search+"%")
		idx++
	}

	var total int
	if err := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM doctor_profiles d`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT d.doctor_id, d.first_name, d.last_name, d.specialty, d.phone_number, d.address,
			COALESCE(AVG(r.rating), 0)::float8 AS avg_rating,
			COUNT(r.rating_id)::int AS rating_count
		FROM doctor_profiles d
		LEFT JOIN doctor_ratings r ON r.doctor_id = d.doctor_id` + where + `
		GROUP BY d.doctor_id, d.first_name, d.last_name, d.specialty, d.phone_number, d.address
		ORDER BY d.last_name ASC` + fmt.Sprintf(` LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Listing
	for rows.Next() {
		var l Listing
		if err := rows.Scan(&l.DoctorID, &l.FirstName, &l.LastName, &l.Specialty,
			&l.Phone, &l.Address, &l.AvgRating, &l.RatingCount); err != nil {
			return nil, 0, err
		}
		items = append(items, &l)
	}
	return items, total, rows.Err()
}

func (r *repoPG) CreateProfile(ctx context.Context, p *Profile) error {
	p.ID = uuid.New()
	err := r.conn.QueryRow(ctx, `
		INSERT INTO doctor_profiles (doctor_id, user_id, first_name, last_name, specialty, phone_number, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		p.ID, p.UserID, p.FirstName, p.LastName, p.Specialty, p.Phone, p.Address).Scan(&p.CreatedAt, &p.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrProfileExists
	}
	return err
}
