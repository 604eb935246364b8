package service

import (
	"context"
	"log/slog"

	"github.com/protomem/clinic-api/internal/database"
	"github.com/protomem/clinic-api/internal/model"
	"github.com/protomem/clinic-api/internal/password"
	"github.com/protomem/clinic-api/internal/session"
)

const (
	MsgRegisterFields = "Please provide first_name, email, and password"
	MsgLoginFields    = "Please provide email and password"
	MsgProfileFields  = "Please provide a new first_name"
)

type PatientRepository interface {
	Get(ctx context.Context, id model.ID) (model.Patient, error)
	GetByEmail(ctx context.Context, email string) (model.Patient, error)
	Insert(ctx context.Context, dto database.InsertPatientDTO) (model.ID, error)
	Update(ctx context.Context, id model.ID, dto database.UpdatePatientDTO) error
}

type AccountService struct {
	logger   *slog.Logger
	patients PatientRepository
	sessions *session.Manager
}

func NewAccountService(logger *slog.Logger, patients PatientRepository, sessions *session.Manager) *AccountService {
	return &AccountService{
		logger:   logger.With("service", "account"),
		patients: patients,
		sessions: sessions,
	}
}

type RegisterInput struct {
	FirstName string `validate:"required"`
	Email     string `validate:"required"`
	Password  string `validate:"required"`
}

// Register creates a patient. A duplicate email comes back as an ordinary
// storage error.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (model.ID, error) {
	if err := check(input, MsgRegisterFields); err != nil {
		return 0, err
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return 0, err
	}

	id, err := s.patients.Insert(ctx, database.InsertPatientDTO{
		FirstName:    input.FirstName,
		Email:        input.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("patient registered", "patientId", id)

	return id, nil
}

type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// Login checks the credentials and starts a session. Unknown emails give
// model.ErrNotFound, wrong passwords model.ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, input LoginInput) (model.Session, error) {
	if err := check(input, MsgLoginFields); err != nil {
		return model.Session{}, err
	}

	patient, err := s.patients.GetByEmail(ctx, input.Email)
	if err != nil {
		return model.Session{}, err
	}

	ok, err := password.Verify(input.Password, patient.PasswordHash)
	if err != nil {
		return model.Session{}, err
	}
	if !ok {
		s.logger.Debug("wrong password", "patientId", patient.ID)
		return model.Session{}, model.NewError("patient", model.ErrInvalidCredentials)
	}

	return s.sessions.Create(ctx, patient.ID, patient.FirstName)
}

func (s *AccountService) Profile(ctx context.Context, patient model.ID) (model.Patient, error) {
	return s.patients.Get(ctx, patient)
}

func (s *AccountService) UpdateProfile(ctx context.Context, patient model.ID, firstName string) error {
	if firstName == "" {
		return model.NewValidationError(MsgProfileFields)
	}

	return s.patients.Update(ctx, patient, database.UpdatePatientDTO{FirstName: &firstName})
}

func (s *AccountService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}
