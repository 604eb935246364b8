package database

import (
	"context"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/clinic-api/internal/model"
)

type AppointmentDAO struct {
	Logger *slog.Logger
	*DB
}

func NewAppointmentDAO(logger *slog.Logger, db *DB) *AppointmentDAO {
	return &AppointmentDAO{
		Logger: logger.With("dao", "appointment"),
		DB:     db,
	}
}

func (dao *AppointmentDAO) FindByPatient(ctx context.Context, patient model.ID) ([]model.Appointment, error) {
	logger := dao.Logger.With("query", "findByPatient")

	query, args, err := dao.Builder.
		Select("*").
		From("appointments").
		Where(squirrel.Eq{"patient_id": patient}).
		OrderBy("appointment_date ASC", "appointment_time ASC").
		ToSql()
	if err != nil {
		return []model.Appointment{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	appointments := make([]model.Appointment, 0)
	if err := dao.SelectContext(ctx, &appointments, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.Appointment{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.Appointment{}, err
	}

	logger.Debug("success query execute", "countAppointments", len(appointments))

	return appointments, nil
}

func (dao *AppointmentDAO) GetByPatient(ctx context.Context, id, patient model.ID) (model.Appointment, error) {
	logger := dao.Logger.With("query", "getByPatient")

	query, args, err := dao.Builder.
		Select("*").
		From("appointments").
		Where(squirrel.Eq{"id": id, "patient_id": patient}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Appointment{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var appointment model.Appointment
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&appointment); err != nil {
		if IsNoRows(err) {
			return model.Appointment{}, model.NewError("appointment", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Appointment{}, err
	}

	return appointment, nil
}

type InsertAppointmentDTO struct {
	Patient model.ID
	Doctor  model.ID
	Date    string
	Time    string
	Status  string
}

func (dao *AppointmentDAO) Insert(ctx context.Context, dto InsertAppointmentDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("appointments").
		Columns("patient_id", "doctor_id", "appointment_date", "appointment_time", "status").
		Values(dto.Patient, dto.Doctor, dto.Date, dto.Time, dto.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var id model.ID
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&id); err != nil {
		logger.Warn("failed query execute", "error", err)

		return 0, err
	}

	logger.Debug("success query execute", "insertId", id)

	return id, nil
}

// SetStatus changes the status of an appointment owned by patient.
func (dao *AppointmentDAO) SetStatus(ctx context.Context, id, patient model.ID, status string) error {
	logger := dao.Logger.With("query", "setStatus")

	query, args, err := dao.Builder.
		Update("appointments").
		Set("status", status).
		Where(squirrel.Eq{"id": id, "patient_id": patient}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	res, err := dao.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.NewError("appointment", model.ErrNotFound)
	}

	logger.Debug("success query execute", "updateId", id, "status", status)

	return nil
}
