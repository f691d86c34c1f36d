package identity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)

// User maps to the users table. PasswordHash never leaves the API.
type User struct {
	ID           uuid.UUID  `db:"user_id" json:"user_id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         string     `db:"role" json:"role"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at" json:"-"`
}

// PatientProfile maps to the patient_profiles table.
type PatientProfile struct {
	ID        uuid.UUID `db:"patient_id" json:"patient_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Phone     *string   `db:"phone_number" json:"phone_number,omitempty"`
	Address   *string   `db:"address" json:"address,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DoctorProfile maps to the doctor_profiles table.
type DoctorProfile struct {
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

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo is the public view of a user embedded in auth responses.
type UserInfo struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// Me bundles the account with whichever profile its role carries.
type Me struct {
	User           UserInfo        `json:"user"`
	PatientProfile *PatientProfile `json:"patient_profile,omitempty"`
	DoctorProfile  *DoctorProfile  `json:"doctor_profile,omitempty"`
}

// UpdateMeRequest applies partial profile updates. Nil fields are untouched.
type UpdateMeRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone_number"`
	Address   *string `json:"address"`
}
