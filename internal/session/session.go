// Package session issues, validates and destroys server-side login
// sessions. A session is referenced by an opaque token which the HTTP layer
// carries in a cookie.
package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/protomem/clinic-api/internal/model"
)

const DefaultTTL = 24 * time.Hour

// Store persists sessions by token. Get returns an error wrapping
// model.ErrNotFound for unknown tokens. Delete of an unknown token is not
// an error.
type Store interface {
	Get(ctx context.Context, token string) (model.Session, error)
	Put(ctx context.Context, session model.Session) error
	Delete(ctx context.Context, token string) error
}

// Sweeper is implemented by stores that need expired sessions removed
// periodically.
type Sweeper interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type Manager struct {
	logger *slog.Logger
	store  Store
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(logger *slog.Logger, store Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Manager{
		logger: logger.With("module", "session"),
		store:  store,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create starts a new session for the patient. Earlier sessions of the same
// patient stay valid.
func (m *Manager) Create(ctx context.Context, patient model.ID, displayName string) (model.Session, error) {
	token, err := newToken()
	if err != nil {
		return model.Session{}, err
	}

	now := m.now()
	sess := model.Session{
		Token:       token,
		CreatedAt:   now,
		ExpiresAt:   now.Add(m.ttl),
		Patient:     patient,
		PatientName: displayName,
	}

	if err := m.store.Put(ctx, sess); err != nil {
		return model.Session{}, err
	}

	m.logger.Debug("session created", "patientId", patient, "expiresAt", sess.ExpiresAt)

	return sess, nil
}

// Validate looks the token up. The boolean is false for an empty, unknown
// or expired token.
func (m *Manager) Validate(ctx context.Context, token string) (model.Session, bool, error) {
	if token == "" {
		return model.Session{}, false, nil
	}

	sess, err := m.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Session{}, false, nil
		}
		return model.Session{}, false, err
	}

	if sess.Expired(m.now()) {
		if err := m.store.Delete(ctx, token); err != nil {
			m.logger.Warn("failed to delete expired session", "error", err)
		}
		return model.Session{}, false, nil
	}

	return sess, true, nil
}

func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// Sweep removes expired sessions when the store supports it.
func (m *Manager) Sweep(ctx context.Context) (int64, error) {
	sweeper, ok := m.store.(Sweeper)
	if !ok {
		return 0, nil
	}
	return sweeper.DeleteExpired(ctx, m.now())
}

func newToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
