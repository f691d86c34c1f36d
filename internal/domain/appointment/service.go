package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medihive/medihive/internal/platform/auth"
	"github.com/medihive/medihive/internal/platform/mail"
)

type Service struct {
	repo   Repository
	mailer mail.Sender
	logger zerolog.Logger
}

func NewService(repo Repository, mailer mail.Sender, logger zerolog.Logger) *Service {
	return &Service{repo: repo, mailer: mailer, logger: logger}
}

// Create books a scheduled appointment for the calling patient. The
// confirmation email is best-effort: a mail failure is logged and the
// booking still succeeds.
func (s *Service) Create(ctx context.Context, ident auth.Identity, req CreateRequest) (*Appointment, error) {
	if ident.Role != auth.RolePatient {
		return nil, fmt.Errorf("%w: only patients can book", ErrForbidden)
	}
	if req.DoctorID == uuid.Nil || req.AppointmentTime.IsZero() {
		return nil, fmt.Errorf("%w: doctor_id and appointment_time are required", ErrValidation)
	}

	patientID, err := s.repo.PatientIDForUser(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}

	a := &Appointment{
		PatientID:       patientID,
		DoctorID:        req.DoctorID,
		AppointmentTime: req.AppointmentTime,
		Notes:           req.Notes,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, a)
	return a, nil
}

func (s *Service) sendConfirmation(ctx context.Context, a *Appointment) {
	parties, err := s.repo.BookingParties(ctx, a.PatientID, a.DoctorID)
	if err != nil {
		s.logger.Error().Err(err).
			Str("appointment_id", a.ID.String()).
			Msg("confirmation email skipped, parties lookup failed")
		return
	}
	err = s.mailer.SendAppointmentConfirmation(ctx, mail.Confirmation{
		PatientEmail:    parties.PatientEmail,
		PatientName:     parties.PatientName,
		DoctorName:      parties.DoctorName,
		Specialty:       parties.Specialty,
		AppointmentTime: a.AppointmentTime,
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("appointment_id", a.ID.String()).
			Msg("confirmation email failed")
	}
}

func (s *Service) ListForPatientUser(ctx context.Context, userID uuid.UUID) ([]*PatientView, error) {
	patientID, err := s.repo.PatientIDForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListForPatient(ctx, patientID)
}

func (s *Service) ListForDoctorUser(ctx context.Context, userID uuid.UUID) ([]*DoctorView, error) {
	doctorID, err := s.repo.DoctorIDForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListForDoctor(ctx, doctorID)
}

// Cancel moves a scheduled appointment to canceled. Only the owning
// patient or owning doctor may cancel; admins are not owners.
func (s *Service) Cancel(ctx context.Context, ident auth.Identity, id uuid.UUID) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	var callerProfileID uuid.UUID
	switch ident.Role {
	case auth.RolePatient:
		callerProfileID, err = s.repo.PatientIDForUser(ctx, ident.UserID)
	case auth.RoleDoctor:
		callerProfileID, err = s.repo.DoctorIDForUser(ctx, ident.UserID)
	default:
		return fmt.Errorf("%w: admins are not appointment owners", ErrForbidden)
	}
	if err != nil {
		return err
	}
	if !auth.IsOwner(a.PatientID, a.DoctorID, callerProfileID) {
		return fmt.Errorf("%w: you can cancel only your appointments", ErrForbidden)
	}

	ok, err := s.repo.TransitionStatus(ctx, id, StatusCanceled)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyFinal
	}
	return nil
}

// Complete moves a scheduled appointment to completed. Doctor-only, and
// only on the doctor's own appointments.
func (s *Service) Complete(ctx context.Context, ident auth.Identity, id uuid.UUID) error {
	if ident.Role != auth.RoleDoctor {
		return fmt.Errorf("%w: only doctors can complete appointments", ErrForbidden)
	}
	doctorID, err := s.repo.DoctorIDForUser(ctx, ident.UserID)
	if err != nil {
		return err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.DoctorID != doctorID {
		return fmt.Errorf("%w: not your appointment", ErrForbidden)
	}

	ok, err := s.repo.TransitionStatus(ctx, id, StatusCompleted)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyFinal
	}
	return nil
}
