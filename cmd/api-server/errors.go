package main

import (
	"log/slog"
	"net/http"

	"github.com/protomem/clinic-api/internal/ctxstore"
	"github.com/protomem/clinic-api/internal/response"
)

const _serverErrorMessage = "Server error"

func (app *application) requestLogger(r *http.Request) *slog.Logger {
	tid, _ := ctxstore.From[string](r.Context(), _traceIDKey)
	return app.logger.With(_traceIDKey.String(), tid)
}

func (app *application) reportServerError(r *http.Request, err error) {
	app.requestLogger(r).Error(err.Error(),
		slog.Group("request", "method", r.Method, "url", r.URL.String()),
	)
}

func (app *application) errorMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	if err := response.Text(w, status, message); err != nil {
		app.reportServerError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverError logs err and answers with an opaque 500.
func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.reportServerError(r, err)
	app.errorMessage(w, r, http.StatusInternalServerError, _serverErrorMessage)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.errorMessage(w, r, http.StatusNotFound, "The requested resource could not be found")
}

func (app *application) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	app.errorMessage(w, r, http.StatusMethodNotAllowed, "The "+r.Method+" method is not supported for this resource")
}

func (app *application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	app.errorMessage(w, r, http.StatusBadRequest, err.Error())
}

func (app *application) unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	app.errorMessage(w, r, http.StatusUnauthorized, message)
}
