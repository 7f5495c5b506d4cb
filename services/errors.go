package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrPersistence = errors.New("persistence failed")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is returned before any side effect when input is rejected.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// newValidationError converts validator output into a ValidationError keyed
// by the JSON field names.
func newValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:  fe.Field(),
			Reason: reasonFor(fe),
		})
	}
	return out
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	default:
		return "failed on " + fe.Tag()
	}
}
