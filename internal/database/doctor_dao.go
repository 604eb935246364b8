package database

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/clinic-api/internal/model"
)

var ErrNoFields = errors.New("no fields to update")

type DoctorDAO struct {
	Logger *slog.Logger
	*DB
}

func NewDoctorDAO(logger *slog.Logger, db *DB) *DoctorDAO {
	return &DoctorDAO{
		Logger: logger.With("dao", "doctor"),
		DB:     db,
	}
}

func (dao *DoctorDAO) List(ctx context.Context) ([]model.Doctor, error) {
	logger := dao.Logger.With("query", "list")

	query, args, err := dao.Builder.
		Select("*").
		From("doctors").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return []model.Doctor{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	doctors := make([]model.Doctor, 0)
	if err := dao.SelectContext(ctx, &doctors, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.Doctor{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.Doctor{}, err
	}

	logger.Debug("success query execute", "countDoctors", len(doctors))

	return doctors, nil
}

func (dao *DoctorDAO) Get(ctx context.Context, id model.ID) (model.Doctor, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("*").
		From("doctors").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Doctor{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var doctor model.Doctor
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&doctor); err != nil {
		if IsNoRows(err) {
			return model.Doctor{}, model.NewError("doctor", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Doctor{}, err
	}

	logger.Debug("success query execute", "doctor", doctor)

	return doctor, nil
}

type InsertDoctorDTO struct {
	FirstName      string
	LastName       string
	Email          string
	Specialization string
	Schedule       string
}

func (dao *DoctorDAO) Insert(ctx context.Context, dto InsertDoctorDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("doctors").
		Columns("first_name", "last_name", "email", "specialization", "schedule").
		Values(dto.FirstName, dto.LastName, dto.Email, dto.Specialization, dto.Schedule).
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

// UpdateDoctorDTO holds a partial update. Empty strings mean "leave as is".
type UpdateDoctorDTO struct {
	FirstName      string
	LastName       string
	Specialization string
	Schedule       string
}

func (dto UpdateDoctorDTO) IsEmpty() bool {
	return len(dto.columns()) == 0
}

type column struct {
	name  string
	value string
}

// columns keeps a fixed order so that the generated statement is stable.
func (dto UpdateDoctorDTO) columns() []column {
	all := []column{
		{"first_name", dto.FirstName},
		{"last_name", dto.LastName},
		{"specialization", dto.Specialization},
		{"schedule", dto.Schedule},
	}

	cols := make([]column, 0, len(all))
	for _, c := range all {
		if c.value != "" {
			cols = append(cols, c)
		}
	}
	return cols
}

func (dao *DoctorDAO) updateQuery(id model.ID, dto UpdateDoctorDTO) (string, []any, error) {
	cols := dto.columns()
	if len(cols) == 0 {
		return "", nil, ErrNoFields
	}

	builder := dao.Builder.Update("doctors")
	for _, c := range cols {
		builder = builder.Set(c.name, c.value)
	}

	return builder.Where(squirrel.Eq{"id": id}).ToSql()
}

func (dao *DoctorDAO) Update(ctx context.Context, id model.ID, dto UpdateDoctorDTO) error {
	logger := dao.Logger.With("query", "update")

	query, args, err := dao.updateQuery(id, dto)
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	logger.Debug("success query execute", "updateId", id, "countUpdatedFields", len(args)-1)

	return nil
}

func (dao *DoctorDAO) Delete(ctx context.Context, id model.ID) error {
	logger := dao.Logger.With("query", "delete")

	query, args, err := dao.Builder.
		Delete("doctors").
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

	logger.Debug("success query execute", "deleteId", id)

	return nil
}
