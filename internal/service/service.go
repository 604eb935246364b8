// Package service holds the account, doctor directory and appointment use
// cases. Client-facing failures are reported as *model.ValidationError or
// errors wrapping the model sentinels; everything else is internal.
package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/protomem/clinic-api/internal/model"
)

var _validate = validator.New(validator.WithRequiredStructEnabled())

// check validates input against its struct tags and turns any failure into
// a validation error carrying msg.
func check(input any, msg string) error {
	if err := _validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return model.NewValidationError(msg)
		}
		return err
	}
	return nil
}

func missingRequired(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return true
		}
	}
	return false
}
