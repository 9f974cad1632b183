package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to Echo's Validator
// interface.  Handlers bind a request struct then call c.Validate on
// it; tag failures are turned into a field-addressable error list by
// fieldErrors below.
type Validator struct{ validate *validator.Validate }

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Error paths must carry the wire name (json tag), not the Go
	// field name: clients address fields as they sent them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// fieldError is one entry of a validation failure response.  Path is
// the JSON-ish field path, Message a short human-readable reason.
type fieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// fieldErrors flattens a validator error into field-level entries.
// Unknown error shapes collapse into a single "body" entry so the
// response format stays stable.
func fieldErrors(err error) []fieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []fieldError{{Path: "body", Message: err.Error()}}
	}
	out := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldError{
			Path:    fe.Field(),
			Message: reasonFor(fe),
		})
	}
	return out
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
