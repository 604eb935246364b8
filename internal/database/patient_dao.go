package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/clinic-api/internal/model"
)

type PatientDAO struct {
	Logger *slog.Logger
	*DB
}

func NewPatientDAO(logger *slog.Logger, db *DB) *PatientDAO {
	return &PatientDAO{
		Logger: logger.With("dao", "patient"),
		DB:     db,
	}
}

func (dao *PatientDAO) Get(ctx context.Context, id model.ID) (model.Patient, error) {
	return dao.getBy(ctx, "get", squirrel.Eq{"id": id})
}

func (dao *PatientDAO) GetByEmail(ctx context.Context, email string) (model.Patient, error) {
	return dao.getBy(ctx, "getByEmail", squirrel.Eq{"email": email})
}

func (dao *PatientDAO) getBy(ctx context.Context, name string, pred squirrel.Eq) (model.Patient, error) {
	logger := dao.Logger.With("query", name)

	query, args, err := dao.Builder.
		Select("*").
		From("patients").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Patient{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var patient model.Patient
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&patient); err != nil {
		if IsNoRows(err) {
			logger.Debug("no rows")
			return model.Patient{}, model.NewError("patient", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Patient{}, err
	}

	logger.Debug("success query execute", "patientId", patient.ID)

	return patient, nil
}

type InsertPatientDTO struct {
	FirstName    string
	Email        string
	PasswordHash string
}

func (dao *PatientDAO) Insert(ctx context.Context, dto InsertPatientDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("patients").
		Columns("first_name", "email", "password_hash").
		Values(dto.FirstName, dto.Email, dto.PasswordHash).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	// args carry the password hash
	logger.Debug("build query", "sql", query)

	var id model.ID
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&id); err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsUniqueViolation(err) {
			return 0, model.NewError("patient", model.ErrExists)
		}

		return 0, err
	}

	logger.Debug("success query execute", "insertId", id)

	return id, nil
}

type UpdatePatientDTO struct {
	FirstName *string
}

func (dao *PatientDAO) Update(ctx context.Context, id model.ID, dto UpdatePatientDTO) error {
	logger := dao.Logger.With("query", "update")

	data := make(map[string]any, 2)
	data["updated_at"] = time.Now()
	if dto.FirstName != nil {
		data["first_name"] = *dto.FirstName
	}

	query, args, err := dao.Builder.
		Update("patients").
		SetMap(data).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	logger.Debug("success query execute", "updateId", id, "countUpdatedFields", len(data))

	return nil
}
