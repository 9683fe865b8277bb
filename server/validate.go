package server

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldErrors turns validator output into per-field messages for the client.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		out["_"] = "invalid request body"
		return out
	}

	for _, f := range valErrs {
		switch f.Tag() {
		case "required":
			out[f.Field()] = fmt.Sprintf("%s is required", f.Field())
		case "email":
			out[f.Field()] = "must be a valid email address"
		case "min":
			out[f.Field()] = fmt.Sprintf("must be at least %s", f.Param())
		case "max":
			out[f.Field()] = fmt.Sprintf("must be at most %s", f.Param())
		case "gte":
			out[f.Field()] = fmt.Sprintf("must be %s or more", f.Param())
		default:
			out[f.Field()] = fmt.Sprintf("failed %s validation", f.Tag())
		}
	}
	return out
}
