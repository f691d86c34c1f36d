package appointment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*PatientView, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*DoctorView, error)

	// TransitionStatus moves a scheduled appointment to a terminal state.
	// Returns false when the row exists but is no longer scheduled.
	TransitionStatus(ctx context.Context, id uuid.UUID, to string) (bool, error)

	PatientIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	DoctorIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	BookingParties(ctx context.Context, patientID, doctorID uuid.UUID) (*BookingParties, error)
}
