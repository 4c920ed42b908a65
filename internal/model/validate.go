// Package model defines the values crossing the storage boundary and their
// validation. Validation is transport independent: the same rules apply no
// matter whether a value arrives over the JSON API or is built in code.
package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports field-level constraint violations. It is raised
// before any storage access occurs and handlers surface it as a client error.
type ValidationError struct {
	Fields map[string]string // field name (JSON tag) -> human readable message
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, f+" "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator wraps go-playground/validator with JSON tag names and friendly
// messages. It satisfies echo.Validator so handlers can call c.Validate.
type Validator struct {
	v *validator.Validate
}

// NewValidator creates a validator configured for the catalog's types.
func NewValidator() *Validator {
	v := validator.New()

	// Report errors under the JSON field name instead of the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		if i := strings.IndexByte(name, ','); i >= 0 {
			return name[:i]
		}
		return name
	})

	return &Validator{v: v}
}

// Validate validates a struct and returns a *ValidationError describing
// every failed field, or nil when the value is well formed.
func (va *Validator) Validate(s any) error {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = friendlyMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "lte":
		return fmt.Sprintf("must not exceed %s", e.Param())
	default:
		return "is invalid"
	}
}
