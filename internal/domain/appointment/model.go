package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("appointment not found")
	ErrForbidden        = errors.New("forbidden")
	ErrNoProfile        = errors.New("profile not found for this user")
	ErrDuplicateBooking = errors.New("duplicate booking")
	ErrAlreadyFinal     = errors.New("appointment already finalized")
)

// Lifecycle: scheduled is the only non-terminal state.
const (
	StatusScheduled = "scheduled"
	StatusCanceled  = "canceled"
	StatusCompleted = "completed"
)

// Appointment maps to the appointments table.
type Appointment struct {
	ID              uuid.UUID  `db:"appointment_id" json:"appointment_id"`
	PatientID       uuid.UUID  `db:"patient_id" json:"patient_id"`
	DoctorID        uuid.UUID  `db:"doctor_id" json:"doctor_id"`
	AppointmentTime time.Time  `db:"appointment_time" json:"appointment_time"`
	Status          string     `db:"status" json:"status"`
	Notes           *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at" json:"-"`
}

// PatientView is a patient's appointment joined with the doctor's details.
type PatientView struct {
	AppointmentID   uuid.UUID `json:"appointment_id"`
	AppointmentTime time.Time `json:"appointment_time"`
	Status          string    `json:"status"`
	DoctorFirstName string    `json:"doctor_first_name"`
	DoctorLastName  string    `json:"doctor_last_name"`
	Specialty       string    `json:"specialty"`
}

// DoctorView is a doctor's appointment joined with the patient's name.
type DoctorView struct {
	AppointmentID    uuid.UUID `json:"appointment_id"`
	AppointmentTime  time.Time `json:"appointment_time"`
	Status           string    `json:"status"`
	PatientFirstName string    `json:"patient_first_name"`
	PatientLastName  string    `json:"patient_last_name"`
}

type CreateRequest struct {
	DoctorID        uuid.UUID `json:"doctor_id"`
	AppointmentTime time.Time `json:"appointment_time"`
	Notes           *string   `json:"notes"`
}

// BookingParties feeds the confirmation email after a booking commits.
type BookingParties struct {
	PatientEmail string
	PatientName  string
	DoctorName   string
	Specialty    string
}
