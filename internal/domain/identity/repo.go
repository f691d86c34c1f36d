package identity

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)

	CreatePatientProfile(ctx context.Context, p *PatientProfile) error
	GetPatientProfileByUser(ctx context.Context, userID uuid.UUID) (*PatientProfile, error)
	UpdatePatientProfile(ctx context.Context, p *PatientProfile) error

	CreateDoctorProfile(ctx context.Context, d *DoctorProfile) error
	GetDoctorProfileByUser(ctx context.Context, userID uuid.UUID) (*DoctorProfile, error)
	UpdateDoctorProfile(ctx context.Context, d *DoctorProfile) error
}
