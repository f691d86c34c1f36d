package doctor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListDoctors(ctx context.Context, f Filter, limit, offset int) ([]*Listing, int, error) {
	return s.repo.List(ctx, f, limit, offset)
}

func (s *Service) CreateProfile(ctx context.Context, userID uuid.UUID, req CreateProfileRequest) (*Profile, error) {
	if req.FirstName == "" || req.LastName == "" || req.Specialty == "" {
		return nil, fmt.Errorf("%w: first_name, last_name, specialty required", ErrValidation)
	}
	p := &Profile{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Specialty: req.Specialty,
		Phone:     req.Phone,
		Address:   req.Address,
	}
	if err := s.repo.CreateProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
