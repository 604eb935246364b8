package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/protomem/clinic-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointments(t *testing.T) {
	ts := newTestServer(t)

	status, _, _ := ts.do(t, ts.adminClient(t), http.MethodPost, "/doctors", _houseJSON)
	require.Equal(t, http.StatusCreated, status)

	ann, bob := ts.client(t), ts.client(t)
	ts.register(t, ann, "Ann", "a@x.com", "pw123")
	ts.register(t, bob, "Bob", "b@x.com", "pw456")
	ts.login(t, ann, "a@x.com", "pw123")
	ts.login(t, bob, "b@x.com", "pw456")

	status, body, _ := ts.do(t, ts.client(t), http.MethodGet, "/appointments", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized: Please log in first", body)

	status, body, _ = ts.do(t, ann, http.MethodPost, "/appointments", `{"doctorId":1}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please provide doctor_id, appointment_date, and appointment_time", body)

	status, _, _ = ts.do(t, ann, http.MethodPost, "/appointments",
		`{"doctorId":1,"appointmentDate":"tomorrow","appointmentTime":"10:30"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body, _ = ts.do(t, ann, http.MethodPost, "/appointments",
		`{"doctorId":1,"appointmentDate":"2026-11-02","appointmentTime":"10:30"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Appointment booked successfully", body)

	status, body, _ = ts.do(t, ann, http.MethodGet, "/appointments", "")
	require.Equal(t, http.StatusOK, status)

	var list []model.Appointment
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list, 1)
	assert.Equal(t, model.ID(1), list[0].Doctor)
	assert.Equal(t, "2026-11-02", list[0].Date)
	assert.Equal(t, "10:30", list[0].Time)
	assert.Equal(t, model.AppointmentPending, list[0].Status)

	status, body, _ = ts.do(t, bob, http.MethodGet, "/appointments", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "[]", body)

	status, body, _ = ts.do(t, bob, http.MethodGet, "/appointments/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Appointment not found", body)

	status, _, _ = ts.do(t, bob, http.MethodDelete, "/appointments/1", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body, _ = ts.do(t, ann, http.MethodDelete, "/appointments/1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Appointment cancelled successfully", body)

	status, body, _ = ts.do(t, ann, http.MethodGet, "/appointments/1", "")
	require.Equal(t, http.StatusOK, status)

	var appointment model.Appointment
	require.NoError(t, json.Unmarshal([]byte(body), &appointment))
	assert.Equal(t, model.AppointmentCancelled, appointment.Status)

	status, _, _ = ts.do(t, ann, http.MethodGet, "/appointments/zero", "")
	assert.Equal(t, http.StatusBadRequest, status)
}
