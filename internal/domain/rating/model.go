package rating

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrForbidden    = errors.New("forbidden")
	ErrNotEligible  = errors.New("no matching completed appointment")
	ErrAlreadyRated = errors.New("appointment already rated")
)

// Rating maps to the doctor_ratings table. DoctorID and PatientID are
// copied from the appointment row on insert, never from client input.
type Rating struct {
	ID            uuid.UUID `db:"rating_id" json:"rating_id"`
	DoctorID      uuid.UUID `db:"doctor_id" json:"doctor_id"`
	PatientID     uuid.UUID `db:"patient_id" json:"patient_id"`
	AppointmentID uuid.UUID `db:"appointment_id" json:"appointment_id"`
	Rating        int       `db:"rating" json:"rating"`
	Comment       *string   `db:"comment" json:"comment,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Stats aggregates a doctor's ratings; zeros when unrated.
type Stats struct {
	AvgRating   float64 `json:"avg_rating"`
	RatingCount int     `json:"rating_count"`
}

type SubmitRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	Rating        int       `json:"rating"`
	Comment       *string   `json:"comment"`
}
