package rating

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create inserts a rating iff a completed appointment exists matching
	// the appointment id, the target doctor, and the calling user's
	// patient profile. Returns ErrNotEligible otherwise and
	// ErrAlreadyRated when the appointment was rated before.
	Create(ctx context.Context, r *Rating, callerUserID uuid.UUID) error

	Stats(ctx context.Context, doctorID uuid.UUID) (*Stats, error)
}
