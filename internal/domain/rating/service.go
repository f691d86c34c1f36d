package rating

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medihive/medihive/internal/platform/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(ctx context.Context, ident auth.Identity, doctorID uuid.UUID, req SubmitRequest) (*Rating, error) {
	if ident.Role != auth.RolePatient {
		return nil, fmt.Errorf("%w: only patients can rate doctors", ErrForbidden)
	}
	if req.AppointmentID == uuid.Nil {
		return nil, fmt.Errorf("%w: appointment_id is required", ErrValidation)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	rt := &Rating{
		DoctorID:      doctorID,
		AppointmentID: req.AppointmentID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if err := s.repo.Create(ctx, rt, ident.UserID); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *Service) DoctorStats(ctx context.Context, doctorID uuid.UUID) (*Stats, error) {
	return s.repo.Stats(ctx, doctorID)
}
