package database_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/protomem/clinic-api/internal/database"
	"github.com/protomem/clinic-api/internal/database/databasetest"
	"github.com/protomem/clinic-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestPatientDAO(t *testing.T) {
	ctx := context.Background()
	dao := database.NewPatientDAO(_discard, databasetest.New(t))

	id, err := dao.Insert(ctx, database.InsertPatientDTO{FirstName: "Ann", Email: "a@x.com", PasswordHash: "hash"})
	require.NoError(t, err)
	require.NotZero(t, id)

	patient, err := dao.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, id, patient.ID)
	assert.Equal(t, "Ann", patient.FirstName)
	assert.Equal(t, "hash", patient.PasswordHash)

	name := "Anna"
	require.NoError(t, dao.Update(ctx, id, database.UpdatePatientDTO{FirstName: &name}))

	patient, err = dao.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Anna", patient.FirstName)
	assert.Equal(t, "a@x.com", patient.Email)

	_, err = dao.Get(ctx, id+100)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = dao.GetByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = dao.Insert(ctx, database.InsertPatientDTO{FirstName: "Dup", Email: "a@x.com", PasswordHash: "hash"})
	assert.Error(t, err)
}

func TestDoctorDAO_UpdateOneColumn(t *testing.T) {
	ctx := context.Background()
	dao := database.NewDoctorDAO(_discard, databasetest.New(t))

	id, err := dao.Insert(ctx, database.InsertDoctorDTO{
		FirstName:      "Gregory",
		LastName:       "House",
		Email:          "house@ppth.org",
		Specialization: "Diagnostics",
		Schedule:       "Mon-Fri 9-17",
	})
	require.NoError(t, err)

	require.NoError(t, dao.Update(ctx, id, database.UpdateDoctorDTO{Specialization: "Nephrology"}))

	doctor, err := dao.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Gregory", doctor.FirstName)
	assert.Equal(t, "House", doctor.LastName)
	assert.Equal(t, "house@ppth.org", doctor.Email)
	assert.Equal(t, "Nephrology", doctor.Specialization)
	assert.Equal(t, "Mon-Fri 9-17", doctor.Schedule)

	doctors, err := dao.List(ctx)
	require.NoError(t, err)
	assert.Len(t, doctors, 1)

	require.NoError(t, dao.Delete(ctx, id))
	require.NoError(t, dao.Delete(ctx, id), "deleting a missing doctor is not an error")

	_, err = dao.Get(ctx, id)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAppointmentDAO(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)

	patients := database.NewPatientDAO(_discard, db)
	doctors := database.NewDoctorDAO(_discard, db)
	dao := database.NewAppointmentDAO(_discard, db)

	ann, err := patients.Insert(ctx, database.InsertPatientDTO{FirstName: "Ann", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	bob, err := patients.Insert(ctx, database.InsertPatientDTO{FirstName: "Bob", Email: "b@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	doc, err := doctors.Insert(ctx, database.InsertDoctorDTO{FirstName: "G", LastName: "H", Email: "g@h", Specialization: "S", Schedule: "any"})
	require.NoError(t, err)

	id, err := dao.Insert(ctx, database.InsertAppointmentDTO{
		Patient: ann, Doctor: doc, Date: "2026-11-02", Time: "10:30", Status: model.AppointmentPending,
	})
	require.NoError(t, err)

	list, err := dao.FindByPatient(ctx, ann)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2026-11-02", list[0].Date)
	assert.Equal(t, model.AppointmentPending, list[0].Status)

	list, err = dao.FindByPatient(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = dao.GetByPatient(ctx, id, bob)
	assert.ErrorIs(t, err, model.ErrNotFound)

	err = dao.SetStatus(ctx, id, bob, model.AppointmentCancelled)
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, dao.SetStatus(ctx, id, ann, model.AppointmentCancelled))

	appointment, err := dao.GetByPatient(ctx, id, ann)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentCancelled, appointment.Status)
}

func TestSessionDAO(t *testing.T) {
	ctx := context.Background()
	dao := database.NewSessionDAO(_discard, databasetest.New(t))

	now := time.Now().UTC()
	live := model.Session{Token: "live", CreatedAt: now, ExpiresAt: now.Add(time.Hour), Patient: 1, PatientName: "Ann"}
	stale := model.Session{Token: "stale", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour), Patient: 2, PatientName: "Bob"}

	require.NoError(t, dao.Put(ctx, live))
	require.NoError(t, dao.Put(ctx, stale))

	got, err := dao.Get(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, live.Patient, got.Patient)
	assert.Equal(t, "Ann", got.PatientName)
	assert.False(t, got.IsAdmin)

	n, err := dao.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = dao.Get(ctx, "stale")
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, dao.Delete(ctx, "live"))
	require.NoError(t, dao.Delete(ctx, "live"))

	_, err = dao.Get(ctx, "live")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
