package identity

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/medihive/medihive/internal/platform/auth"
	"github.com/medihive/medihive/internal/platform/token"
)

// bcryptCost is deliberately above bcrypt.DefaultCost for credential storage.
const bcryptCost = 12

type Service struct {
	repo  Repository
	codec *token.Codec
}

func NewService(repo Repository, codec *token.Codec) *Service {
	return &Service{repo: repo, codec: codec}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return nil, fmt.Errorf("%w: email, password, role required", ErrValidation)
	}
	if !strings.Contains(req.Email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	role, err := auth.ParseRole(req.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid role", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{Email: req.Email, PasswordHash: string(hash), Role: role.String()}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	// Every patient and doctor account gets a profile immediately so
	// booking and the directory never see a profile-less user.
	switch role {
	case auth.RolePatient:
		p := &PatientProfile{
			UserID:    u.ID,
			FirstName: defaultStr(req.FirstName, "New"),
			LastName:  defaultStr(req.LastName, "Patient"),
		}
		if err := s.repo.CreatePatientProfile(ctx, p); err != nil {
			return nil, fmt.Errorf("create patient profile: %w", err)
		}
	case auth.RoleDoctor:
		d := &DoctorProfile{
			UserID:    u.ID,
			FirstName: defaultStr(req.FirstName, "New"),
			LastName:  defaultStr(req.LastName, "Doctor"),
			Specialty: "General Practice",
		}
		if err := s.repo.CreateDoctorProfile(ctx, d); err != nil {
			return nil, fmt.Errorf("create doctor profile: %w", err)
		}
	}

	return s.authResponse(u)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password required", ErrValidation)
	}

	u, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if err == ErrNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(u)
}

func (s *Service) authResponse(u *User) (*AuthResponse, error) {
	tok, err := s.codec.Sign(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &AuthResponse{
		Token: tok,
		User:  UserInfo{UserID: u.ID, Email: u.Email, Role: u.Role},
	}, nil
}

func (s *Service) GetMe(ctx context.Context, ident auth.Identity) (*Me, error) {
	u, err := s.repo.GetUserByID(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}

	me := &Me{User: UserInfo{UserID: u.ID, Email: u.Email, Role: u.Role}}
	switch ident.Role {
	case auth.RolePatient:
		p, err := s.repo.GetPatientProfileByUser(ctx, u.ID)
		if err != nil && err != ErrNotFound {
			return nil, err
		}
		me.PatientProfile = p
	case auth.RoleDoctor:
		d, err := s.repo.GetDoctorProfileByUser(ctx, u.ID)
		if err != nil && err != ErrNotFound {
			return nil, err
		}
		me.DoctorProfile = d
	}
	return me, nil
}

func (s *Service) UpdateMe(ctx context.Context, ident auth.Identity, req UpdateMeRequest) (*Me, error) {
	switch ident.Role {
	case auth.RolePatient:
		p, err := s.repo.GetPatientProfileByUser(ctx, ident.UserID)
		if err != nil {
			return nil, err
		}
		if req.FirstName != nil {
			p.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			p.LastName = *req.LastName
		}
		if req.Phone != nil {
			p.Phone = req.Phone
		}
		if req.Address != nil {
			p.Address = req.Address
		}
		if err := s.repo.UpdatePatientProfile(ctx, p); err != nil {
			return nil, err
		}
	case auth.RoleDoctor:
		d, err := s.repo.GetDoctorProfileByUser(ctx, ident.UserID)
		if err != nil {
			return nil, err
		}
		if req.FirstName != nil {
			d.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			d.LastName = *req.LastName
		}
		if req.Phone != nil {
			d.Phone = req.Phone
		}
		if req.Address != nil {
			d.Address = req.Address
		}
		if err := s.repo.UpdateDoctorProfile(ctx, d); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: no profile for role %s", ErrValidation, ident.Role)
	}
	return s.GetMe(ctx, ident)
}

func defaultStr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
