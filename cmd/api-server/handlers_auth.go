package main

import (
	"errors"
	"net/http"

	"github.com/protomem/clinic-api/internal/model"
	"github.com/protomem/clinic-api/internal/request"
	"github.com/protomem/clinic-api/internal/response"
	"github.com/protomem/clinic-api/internal/service"
)

// Handle Register
// @Summary Register patient
// @Tags auth
// @Accept json
// @Produce plain
// @Param input body main.requestRegister true "Patient"
// @Success 201 {string} string "Patient registered successfully"
// @Failure 400 {string} string "Missing fields"
// @Failure 500 {string} string "Internal server error"
// @Router /auth/register [post]
func (app *application) handleRegister(w http.ResponseWriter, r *http.Request) {
	var input requestRegister
	if err := request.DecodeJSON(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	_, err := app.accounts.Register(r.Context(), service.RegisterInput{
		FirstName: input.FirstName,
		Email:     input.Email,
		Password:  input.Password,
	})
	if err != nil {
		if verr, ok := model.IsValidation(err); ok {
			app.errorMessage(w, r, http.StatusBadRequest, verr.Message)
			return
		}

		// duplicate emails end up here as well
		app.serverError(w, r, err)
		return
	}

	if err := response.Text(w, http.StatusCreated, "Patient registered successfully"); err != nil {
		app.serverError(w, r, err)
	}
}

type requestRegister struct {
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Handle Login
// @Summary Login patient
// @Description Checks credentials and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param input body main.requestLogin true "Credentials"
// @Success 200 {object} main.responseLogin
// @Failure 400 {string} string "Missing fields"
// @Failure 401 {string} string "Invalid email or password"
// @Failure 404 {string} string "Patient not found"
// @Failure 500 {string} string "Internal server error"
// @Router /auth/login [post]
func (app *application) handleLogin(w http.ResponseWriter, r *http.Request) {
	var input requestLogin
	if err := request.DecodeJSON(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	sess, err := app.accounts.Login(r.Context(), service.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		if verr, ok := model.IsValidation(err); ok {
			app.errorMessage(w, r, http.StatusBadRequest, verr.Message)
			return
		}
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, "Patient not found")
			return
		}
		if errors.Is(err, model.ErrInvalidCredentials) {
			app.unauthorized(w, r, "Invalid email or password")
			return
		}

		app.serverError(w, r, err)
		return
	}

	app.setSessionCookie(w, sess)

	if err := response.JSON(w, http.StatusOK, responseLogin{Message: "Login successful", PatientID: sess.Patient}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type responseLogin struct {
	Message   string   `json:"message"`
	PatientID model.ID `json:"patientId"`
}

// Handle Get Profile
// @Summary Patient profile
// @Tags auth
// @Produce json
// @Success 200 {object} main.responseProfile
// @Failure 401 {string} string "Not logged in"
// @Failure 404 {string} string "Profile not found"
// @Failure 500 {string} string "Internal server error"
// @Router /auth/profile [get]
func (app *application) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	sess, _ := contextSession(r)

	patient, err := app.accounts.Profile(r.Context(), sess.Patient)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, "Profile not found")
			return
		}

		app.serverError(w, r, err)
		return
	}

	resp := responseProfile{ID: patient.ID, FirstName: patient.FirstName, Email: patient.Email}
	if err := response.JSON(w, http.StatusOK, resp); err != nil {
		app.serverError(w, r, err)
	}
}

type responseProfile struct {
	ID        model.ID `json:"id"`
	FirstName string   `json:"firstName"`
	Email     string   `json:"email"`
}

// Handle Update Profile
// @Summary Update patient first name
// @Tags auth
// @Accept json
// @Produce plain
// @Param input body main.requestUpdateProfile true "New first name"
// @Success 200 {string} string "Profile updated successfully"
// @Failure 400 {string} string "Missing first name"
// @Failure 401 {string} string "Not logged in"
// @Failure 500 {string} string "Internal server error"
// @Router /auth/profile [put]
func (app *application) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess, _ := contextSession(r)

	var input requestUpdateProfile
	if err := request.DecodeJSON(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	if err := app.accounts.UpdateProfile(r.Context(), sess.Patient, input.FirstName); err != nil {
		if verr, ok := model.IsValidation(err); ok {
			app.errorMessage(w, r, http.StatusBadRequest, verr.Message)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.Text(w, http.StatusOK, "Profile updated successfully"); err != nil {
		app.serverError(w, r, err)
	}
}

type requestUpdateProfile struct {
	FirstName string `json:"firstName"`
}

// Handle Logout
// @Summary Logout
// @Description Destroys the current session
// @Tags auth
// @Produce plain
// @Success 200 {string} string "Logged out successfully"
// @Failure 401 {string} string "Not logged in"
// @Failure 500 {string} string "Error logging out"
// @Router /auth/logout [post]
func (app *application) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess, _ := contextSession(r)

	if err := app.accounts.Logout(r.Context(), sess.Token); err != nil {
		app.reportServerError(r, err)
		app.errorMessage(w, r, http.StatusInternalServerError, "Error logging out")
		return
	}

	app.clearSessionCookie(w)

	if err := response.Text(w, http.StatusOK, "Logged out successfully"); err != nil {
		app.serverError(w, r, err)
	}
}
