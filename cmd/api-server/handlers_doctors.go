package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/protomem/clinic-api/internal/model"
	"github.com/protomem/clinic-api/internal/request"
	"github.com/protomem/clinic-api/internal/response"
	"github.com/protomem/clinic-api/internal/service"
)

// Handle Create Doctor
// @Summary Create doctor
// @Tags doctors
// @Accept json
// @Produce plain
// @Param input body main.requestCreateDoctor true "Doctor"
// @Success 201 {string} string "Doctor created with ID"
// @Failure 400 {string} string "All fields are required"
// @Failure 401 {string} string "Admin access only"
// @Failure 500 {string} string "Internal server error"
// @Router /doctors [post]
func (app *application) handleCreateDoctor(w http.ResponseWriter, r *http.Request) {
	var input requestCreateDoctor
	if err := request.DecodeJSON(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	id, err := app.doctors.Create(r.Context(), service.CreateDoctorInput(input))
	if err != nil {
		if verr, ok := model.IsValidation(err); ok {
			app.errorMessage(w, r, http.StatusBadRequest, verr.Message)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.Text(w, http.StatusCreated, fmt.Sprintf("Doctor created with ID: %d", id)); err != nil {
		app.serverError(w, r, err)
	}
}

type requestCreateDoctor struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
	Schedule       string `json:"schedule"`
}

// Handle List Doctors
// @Summary List doctors
// @Tags doctors
// @Produce json
// @Success 200 {array} model.Doctor
// @Failure 500 {string} string "Internal server error"
// @Router /doctors [get]
func (app *application) handleListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := app.doctors.List(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, doctors); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Get Doctor
// @Summary Get doctor
// @Tags doctors
// @Produce json
// @Param doctorId path int true "Doctor ID"
// @Success 200 {object} model.Doctor
// @Failure 400 {string} string "Bad doctor id"
// @Failure 404 {string} string "Doctor not found"
// @Failure 500 {string} string "Internal server error"
// @Router /doctors/{doctorId} [get]
func (app *application) handleGetDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := doctorIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	doctor, err := app.doctors.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, "Doctor not found")
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, doctor); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Update Doctor
// @Summary Update doctor
// @Description Only non-empty fields are changed
// @Tags doctors
// @Accept json
// @Produce plain
// @Param doctorId path int true "Doctor ID"
// @Param input body main.requestUpdateDoctor true "Fields to change"
// @Success 200 {string} string "Doctor updated successfully"
// @Failure 400 {string} string "No fields"
// @Failure 401 {string} string "Admin access only"
// @Failure 500 {string} string "Internal server error"
// @Router /doctors/{doctorId} [put]
func (app *application) handleUpdateDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := doctorIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	var input requestUpdateDoctor
	if err := request.DecodeJSON(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	if err := app.doctors.Update(r.Context(), id, service.UpdateDoctorInput(input)); err != nil {
		if verr, ok := model.IsValidation(err); ok {
			app.errorMessage(w, r, http.StatusBadRequest, verr.Message)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.Text(w, http.StatusOK, "Doctor updated successfully"); err != nil {
		app.serverError(w, r, err)
	}
}

type requestUpdateDoctor struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Specialization string `json:"specialization"`
	Schedule       string `json:"schedule"`
}

// Handle Delete Doctor
// @Summary Delete doctor
// @Description Succeeds for unknown ids too
// @Tags doctors
// @Produce plain
// @Param doctorId path int true "Doctor ID"
// @Success 200 {string} string "Doctor deleted successfully"
// @Failure 401 {string} string "Admin access only"
// @Failure 500 {string} string "Internal server error"
// @Router /doctors/{doctorId} [delete]
func (app *application) handleDeleteDoctor(w http.ResponseWriter, r *http.Request) {
	// An id that cannot name a row deletes nothing and still succeeds.
	if id, err := doctorIDFromRequest(r); err == nil {
		if err := app.doctors.Delete(r.Context(), id); err != nil {
			app.serverError(w, r, err)
			return
		}
	}

	if err := response.Text(w, http.StatusOK, "Doctor deleted successfully"); err != nil {
		app.serverError(w, r, err)
	}
}
