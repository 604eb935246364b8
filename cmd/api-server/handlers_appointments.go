package main

import (
	"errors"
	"net/http"

	"github.com/protomem/clinic-api/internal/model"
	"github.com/protomem/clinic-api/internal/request"
	"github.com/protomem/clinic-api/internal/response"
	"github.com/protomem/clinic-api/internal/service"
)

// Handle Book Appointment
// @Summary Book appointment
// @Tags appointments
// @Accept json
// @Produce plain
// @Param input body main.requestBookAppointment true "Appointment"
// @Success 201 {string} string "Appointment booked successfully"
// @Failure 400 {string} string "Bad input"
// @Failure 401 {string} string "Not logged in"
// @Failure 500 {string} string "Internal server error"
// @Router /appointments [post]
func (app *application) handleBookAppointment(w http.ResponseWriter, r *http.Request) {
	sess, _ := contextSession(r)

	var input requestBookAppointment
	if err := request.DecodeJSON(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	_, err := app.appointments.Book(r.Context(), sess.Patient, service.BookInput{
		Doctor: input.DoctorID,
		Date:   input.Date,
		Time:   input.Time,
	})
	if err != nil {
		if verr, ok := model.IsValidation(err); ok {
			app.errorMessage(w, r, http.StatusBadRequest, verr.Message)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.Text(w, http.StatusCreated, "Appointment booked successfully"); err != nil {
		app.serverError(w, r, err)
	}
}

type requestBookAppointment struct {
	DoctorID model.ID `json:"doctorId"`
	Date     string   `json:"appointmentDate"`
	Time     string   `json:"appointmentTime"`
}

// Handle List Appointments
// @Summary Own appointments
// @Tags appointments
// @Produce json
// @Success 200 {array} model.Appointment
// @Failure 401 {string} string "Not logged in"
// @Failure 500 {string} string "Internal server error"
// @Router /appointments [get]
func (app *application) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	sess, _ := contextSession(r)

	appointments, err := app.appointments.ListForPatient(r.Context(), sess.Patient)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, appointments); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Get Appointment
// @Summary Own appointment
// @Tags appointments
// @Produce json
// @Param appointmentId path int true "Appointment ID"
// @Success 200 {object} model.Appointment
// @Failure 400 {string} string "Bad appointment id"
// @Failure 401 {string} string "Not logged in"
// @Failure 404 {string} string "Appointment not found"
// @Failure 500 {string} string "Internal server error"
// @Router /appointments/{appointmentId} [get]
func (app *application) handleGetAppointment(w http.ResponseWriter, r *http.Request) {
	sess, _ := contextSession(r)

	id, err := appointmentIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	appointment, err := app.appointments.GetForPatient(r.Context(), sess.Patient, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, "Appointment not found")
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, appointment); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Cancel Appointment
// @Summary Cancel own appointment
// @Tags appointments
// @Produce plain
// @Param appointmentId path int true "Appointment ID"
// @Success 200 {string} string "Appointment cancelled successfully"
// @Failure 400 {string} string "Bad appointment id"
// @Failure 401 {string} string "Not logged in"
// @Failure 404 {string} string "Appointment not found"
// @Failure 500 {string} string "Internal server error"
// @Router /appointments/{appointmentId} [delete]
func (app *application) handleCancelAppointment(w http.ResponseWriter, r *http.Request) {
	sess, _ := contextSession(r)

	id, err := appointmentIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	if err := app.appointments.CancelForPatient(r.Context(), sess.Patient, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, "Appointment not found")
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.Text(w, http.StatusOK, "Appointment cancelled successfully"); err != nil {
		app.serverError(w, r, err)
	}
}
