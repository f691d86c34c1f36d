package admin

import (
	"time"

	"github.com/google/uuid"
)

// Stats counts non-deleted rows across the platform.
type Stats struct {
	TotalUsers            int `json:"total_users"`
	TotalDoctors          int `json:"total_doctors"`
	TotalAppointments     int `json:"total_appointments"`
	ScheduledAppointments int `json:"scheduled_appointments"`
}

// UserRow is the admin listing view of an account.
type UserRow struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AppointmentRow joins an appointment with both parties for reporting.
type AppointmentRow struct {
	AppointmentID    uuid.UUID `json:"appointment_id"`
	AppointmentTime  time.Time `json:"appointment_time"`
	Status           string    `json:"status"`
	PatientFirstName string    `json:"patient_first_name"`
	PatientLastName  string    `json:"patient_last_name"`
	DoctorFirstName  string    `json:"doctor_first_name"`
	DoctorLastName   string    `json:"doctor_last_name"`
	Specialty        string    `json:"specialty"`
}
