package doctor

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrProfileExists = errors.New("doctor profile already exists")
	ErrNotFound      = errors.New("not found")
)

// Profile maps to the doctor_profiles table.
type Profile struct {
	ID        uuid.UUID `db:"doctor_id" json:"doctor_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Specialty string    `db:"specialty" json:"specialty"`
	Phone     *string   `db:"phone_number" json:"phone_number,omitempty"`
	Address   *string   `db:"address" json:"address,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Listing is a directory entry with rating aggregates folded in.
type Listing struct {
	DoctorID    uuid.UUID `json:"doctor_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Specialty   string    `json:"specialty"`
	Phone       *string   `json:"phone_number,omitempty"`
	Address     *string   `json:"address,omitempty"`
	AvgRating   float64   `json:"avg_rating"`
	RatingCount int       `json:"rating_count"`
}

// Filter narrows the directory. Specialty is an exact case-insensitive
// match, Search is a substring match on either name.
type Filter struct {
	Specialty string
	Search    string
}

type CreateProfileRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Specialty string  `json:"specialty"`
	Phone     *string `json:"phone_number"`
	Address   *string `json:"address"`
}
