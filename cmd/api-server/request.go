package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/protomem/clinic-api/internal/model"
)

func doctorIDFromRequest(r *http.Request) (model.ID, error) {
	return idURLParam(r, "doctorId", "invalid doctor id")
}

func appointmentIDFromRequest(r *http.Request) (model.ID, error) {
	return idURLParam(r, "appointmentId", "invalid appointment id")
}

func idURLParam(r *http.Request, key, msg string) (model.ID, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, key), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New(msg)
	}
	return model.ID(id), nil
}
