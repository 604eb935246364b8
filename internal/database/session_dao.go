package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/clinic-api/internal/model"
)

// SessionDAO keeps login sessions in the sessions table so that several
// api-server instances can share them.
type SessionDAO struct {
	Logger *slog.Logger
	*DB
}

func NewSessionDAO(logger *slog.Logger, db *DB) *SessionDAO {
	return &SessionDAO{
		Logger: logger.With("dao", "session"),
		DB:     db,
	}
}

func (dao *SessionDAO) Get(ctx context.Context, token string) (model.Session, error) {
	query, args, err := dao.Builder.
		Select("*").
		From("sessions").
		Where(squirrel.Eq{"token": token}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Session{}, err
	}

	dao.Logger.Debug("query", "sql", query)

	var session model.Session
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&session); err != nil {
		if IsNoRows(err) {
			return model.Session{}, model.NewError("session", model.ErrNotFound)
		}

		return model.Session{}, err
	}

	return session, nil
}

func (dao *SessionDAO) Put(ctx context.Context, session model.Session) error {
	query, args, err := dao.Builder.
		Insert("sessions").
		Columns("token", "created_at", "expires_at", "patient_id", "patient_name", "is_admin").
		Values(session.Token, session.CreatedAt, session.ExpiresAt, session.Patient, session.PatientName, session.IsAdmin).
		ToSql()
	if err != nil {
		return err
	}

	dao.Logger.Debug("query", "sql", query)

	if _, err := dao.ExecContext(ctx, query, args...); err != nil {
		if IsUniqueViolation(err) {
			return model.NewError("session", model.ErrExists)
		}

		return err
	}

	return nil
}

func (dao *SessionDAO) Delete(ctx context.Context, token string) error {
	query, args, err := dao.Builder.
		Delete("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return err
	}

	dao.Logger.Debug("query", "sql", query)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func (dao *SessionDAO) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := dao.Builder.
		Delete("sessions").
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, err
	}

	dao.Logger.Debug("query", "sql", query, "args", args)

	res, err := dao.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
