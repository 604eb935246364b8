package model

import "time"

type ID = uint

type Patient struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	FirstName    string `json:"firstName" db:"first_name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type Doctor struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"-" db:"created_at"`

	FirstName      string `json:"firstName" db:"first_name"`
	LastName       string `json:"lastName" db:"last_name"`
	Email          string `json:"-" db:"email"`
	Specialization string `json:"specialization" db:"specialization"`
	Schedule       string `json:"schedule" db:"schedule"`
}

const (
	AppointmentPending   = "pending"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Patient ID `json:"patientId" db:"patient_id"`
	Doctor  ID `json:"doctorId" db:"doctor_id"`

	Date   string `json:"appointmentDate" db:"appointment_date"`
	Time   string `json:"appointmentTime" db:"appointment_time"`
	Status string `json:"status" db:"status"`
}

// Session is the server-side record behind a session cookie.
type Session struct {
	Token     string    `json:"token" db:"token"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`

	Patient     ID     `json:"patientId" db:"patient_id"`
	PatientName string `json:"patientName" db:"patient_name"`
	IsAdmin     bool   `json:"isAdmin" db:"is_admin"`
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
