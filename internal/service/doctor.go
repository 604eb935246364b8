package service

import (
	"context"
	"log/slog"

	"github.com/protomem/clinic-api/internal/database"
	"github.com/protomem/clinic-api/internal/model"
)

const (
	MsgDoctorFields       = "All fields are required"
	MsgDoctorUpdateFields = "Provide at least one field to update"
)

type DoctorRepository interface {
	List(ctx context.Context) ([]model.Doctor, error)
	Get(ctx context.Context, id model.ID) (model.Doctor, error)
	Insert(ctx context.Context, dto database.InsertDoctorDTO) (model.ID, error)
	Update(ctx context.Context, id model.ID, dto database.UpdateDoctorDTO) error
	Delete(ctx context.Context, id model.ID) error
}

type DoctorService struct {
	logger  *slog.Logger
	doctors DoctorRepository
}

func NewDoctorService(logger *slog.Logger, doctors DoctorRepository) *DoctorService {
	return &DoctorService{
		logger:  logger.With("service", "doctor"),
		doctors: doctors,
	}
}

type CreateDoctorInput struct {
	FirstName      string `validate:"required"`
	LastName       string `validate:"required"`
	Email          string `validate:"required"`
	Specialization string `validate:"required"`
	Schedule       string `validate:"required"`
}

func (s *DoctorService) Create(ctx context.Context, input CreateDoctorInput) (model.ID, error) {
	if err := check(input, MsgDoctorFields); err != nil {
		s.logger.Debug("missing doctor fields", "error", err)
		return 0, err
	}

	return s.doctors.Insert(ctx, database.InsertDoctorDTO(input))
}

func (s *DoctorService) List(ctx context.Context) ([]model.Doctor, error) {
	return s.doctors.List(ctx)
}

func (s *DoctorService) Get(ctx context.Context, id model.ID) (model.Doctor, error) {
	return s.doctors.Get(ctx, id)
}

// UpdateDoctorInput holds the fields to change. Empty fields are left as
// they are.
type UpdateDoctorInput struct {
	FirstName      string
	LastName       string
	Specialization string
	Schedule       string
}

func (s *DoctorService) Update(ctx context.Context, id model.ID, input UpdateDoctorInput) error {
	dto := database.UpdateDoctorDTO(input)
	if dto.IsEmpty() {
		return model.NewValidationError(MsgDoctorUpdateFields)
	}

	return s.doctors.Update(ctx, id, dto)
}

// Delete removes the doctor. Missing ids are not reported.
func (s *DoctorService) Delete(ctx context.Context, id model.ID) error {
	return s.doctors.Delete(ctx, id)
}
