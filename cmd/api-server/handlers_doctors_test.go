package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const _houseJSON = `{"firstName":"Gregory","lastName":"House","email":"house@ppth.org","specialization":"Diagnostics","schedule":"Mon-Fri 9-17"}`

func TestDoctorsAdminGate(t *testing.T) {
	ts := newTestServer(t)

	patient := ts.client(t)
	ts.register(t, patient, "Ann", "a@x.com", "pw123")
	ts.login(t, patient, "a@x.com", "pw123")

	for _, client := range []*http.Client{ts.client(t), patient} {
		for _, req := range []struct{ method, path, body string }{
			{http.MethodPost, "/doctors", _houseJSON},
			{http.MethodPut, "/doctors/1", `{"schedule":"Sat"}`},
			{http.MethodDelete, "/doctors/1", ""},
		} {
			status, body, _ := ts.do(t, client, req.method, req.path, req.body)
			assert.Equal(t, http.StatusUnauthorized, status, req.method+" "+req.path)
			assert.Equal(t, "Unauthorized: Admin access only", body)
		}
	}
}

func TestDoctorsCRUD(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminClient(t)
	anon := ts.client(t)

	status, body, _ := ts.do(t, admin, http.MethodPost, "/doctors", `{"firstName":"Gregory","lastName":"House"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "All fields are required", body)

	status, body, _ = ts.do(t, admin, http.MethodPost, "/doctors", _houseJSON)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Doctor created with ID: 1", body)

	status, body, _ = ts.do(t, anon, http.MethodGet, "/doctors", "")
	require.Equal(t, http.StatusOK, status)

	var doctors []map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &doctors))
	require.Len(t, doctors, 1)
	assert.Equal(t, map[string]any{
		"id":             float64(1),
		"firstName":      "Gregory",
		"lastName":       "House",
		"specialization": "Diagnostics",
		"schedule":       "Mon-Fri 9-17",
	}, doctors[0])

	status, body, _ = ts.do(t, admin, http.MethodPut, "/doctors/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Provide at least one field to update", body)

	status, body, _ = ts.do(t, admin, http.MethodPut, "/doctors/1", `{"firstName":"","schedule":"Sat 10-14"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Doctor updated successfully", body)

	status, body, _ = ts.do(t, anon, http.MethodGet, "/doctors/1", "")
	require.Equal(t, http.StatusOK, status)

	var doctor map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &doctor))
	assert.Equal(t, "Gregory", doctor["firstName"])
	assert.Equal(t, "House", doctor["lastName"])
	assert.Equal(t, "Diagnostics", doctor["specialization"])
	assert.Equal(t, "Sat 10-14", doctor["schedule"])

	status, body, _ = ts.do(t, admin, http.MethodDelete, "/doctors/1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Doctor deleted successfully", body)

	status, body, _ = ts.do(t, anon, http.MethodGet, "/doctors/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Doctor not found", body)

	status, body, _ = ts.do(t, anon, http.MethodGet, "/doctors", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "[]", body)
}

func TestDeleteMissingDoctor(t *testing.T) {
	ts := newTestServer(t)

	status, body, _ := ts.do(t, ts.adminClient(t), http.MethodDelete, "/doctors/424242", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Doctor deleted successfully", body)
}

func TestDeleteDoctorUnusableID(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminClient(t)

	for _, id := range []string{"0", "-1", "abc"} {
		status, body, _ := ts.do(t, admin, http.MethodDelete, "/doctors/"+id, "")
		assert.Equal(t, http.StatusOK, status, id)
		assert.Equal(t, "Doctor deleted successfully", body, id)
	}

	status, _, _ := ts.do(t, ts.client(t), http.MethodDelete, "/doctors/0", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestDoctorBadID(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminClient(t)

	status, _, _ := ts.do(t, admin, http.MethodGet, "/doctors/abc", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _, _ = ts.do(t, admin, http.MethodPut, "/doctors/abc", `{"schedule":"Sat"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestStatusAndFallbacks(t *testing.T) {
	ts := newTestServer(t)
	client := ts.client(t)

	status, body, _ := ts.do(t, client, http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"OK"}`, body)

	status, _, _ = ts.do(t, client, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _, _ = ts.do(t, client, http.MethodPatch, "/status", "")
	assert.Equal(t, http.StatusMethodNotAllowed, status)
}
