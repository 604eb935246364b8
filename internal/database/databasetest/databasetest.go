// Package databasetest provides a throwaway SQLite database with the same
// tables as the PostgreSQL migrations, for tests that exercise the DAOs.
package databasetest

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/protomem/clinic-api/internal/database"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

const _schema = `
CREATE TABLE patients (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    first_name    TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL
);

CREATE TABLE doctors (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    first_name     TEXT NOT NULL,
    last_name      TEXT NOT NULL,
    email          TEXT NOT NULL,
    specialization TEXT NOT NULL,
    schedule       TEXT NOT NULL
);

CREATE TABLE appointments (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    patient_id       INTEGER NOT NULL REFERENCES patients (id),
    doctor_id        INTEGER NOT NULL REFERENCES doctors (id),
    appointment_date TEXT NOT NULL,
    appointment_time TEXT NOT NULL,
    status           TEXT NOT NULL DEFAULT 'pending'
);

CREATE TABLE sessions (
    token        TEXT PRIMARY KEY,
    created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    expires_at   TIMESTAMP NOT NULL,
    patient_id   INTEGER NOT NULL,
    patient_name TEXT NOT NULL,
    is_admin     BOOLEAN NOT NULL DEFAULT FALSE
);
`

var _seq atomic.Int64

// New returns an empty database that is closed when the test ends.
func New(t testing.TB) *database.DB {
	t.Helper()

	// each call gets its own in-memory database
	dsn := fmt.Sprintf("file:clinic%d?mode=memory&cache=shared&_foreign_keys=on", _seq.Add(1))

	db, err := sqlx.Open("sqlite3", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(_schema)
	require.NoError(t, err)

	return database.Wrap(db)
}
