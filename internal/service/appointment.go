package service

import (
	"context"
	"log/slog"

	"github.com/protomem/clinic-api/internal/database"
	"github.com/protomem/clinic-api/internal/model"
)

const (
	MsgAppointmentFields = "Please provide doctor_id, appointment_date, and appointment_time"
	MsgAppointmentFormat = "appointment_date must be YYYY-MM-DD and appointment_time HH:MM"
)

type AppointmentRepository interface {
	FindByPatient(ctx context.Context, patient model.ID) ([]model.Appointment, error)
	GetByPatient(ctx context.Context, id, patient model.ID) (model.Appointment, error)
	Insert(ctx context.Context, dto database.InsertAppointmentDTO) (model.ID, error)
	SetStatus(ctx context.Context, id, patient model.ID, status string) error
}

type AppointmentService struct {
	logger       *slog.Logger
	appointments AppointmentRepository
}

func NewAppointmentService(logger *slog.Logger, appointments AppointmentRepository) *AppointmentService {
	return &AppointmentService{
		logger:       logger.With("service", "appointment"),
		appointments: appointments,
	}
}

type BookInput struct {
	Doctor model.ID `validate:"required"`
	Date   string   `validate:"required,datetime=2006-01-02"`
	Time   string   `validate:"required,datetime=15:04"`
}

// Book creates a pending appointment for the patient.
func (s *AppointmentService) Book(ctx context.Context, patient model.ID, input BookInput) (model.ID, error) {
	if err := _validate.Struct(input); err != nil {
		if missingRequired(err) {
			return 0, model.NewValidationError(MsgAppointmentFields)
		}
		return 0, model.NewValidationError(MsgAppointmentFormat)
	}

	id, err := s.appointments.Insert(ctx, database.InsertAppointmentDTO{
		Patient: patient,
		Doctor:  input.Doctor,
		Date:    input.Date,
		Time:    input.Time,
		Status:  model.AppointmentPending,
	})
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			s.logger.Debug("unknown doctor", "doctorId", input.Doctor)
		}
		return 0, err
	}

	s.logger.Info("appointment booked", "appointmentId", id, "patientId", patient, "doctorId", input.Doctor)

	return id, nil
}

func (s *AppointmentService) ListForPatient(ctx context.Context, patient model.ID) ([]model.Appointment, error) {
	return s.appointments.FindByPatient(ctx, patient)
}

func (s *AppointmentService) GetForPatient(ctx context.Context, patient, id model.ID) (model.Appointment, error) {
	return s.appointments.GetByPatient(ctx, id, patient)
}

// CancelForPatient marks the patient's own appointment as cancelled.
func (s *AppointmentService) CancelForPatient(ctx context.Context, patient, id model.ID) error {
	return s.appointments.SetStatus(ctx, id, patient, model.AppointmentCancelled)
}
