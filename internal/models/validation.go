package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports every field that failed its domain constraint
type ValidationError struct {
	Errors []string `json:"errors"`
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// NewValidationError creates a ValidationError from one or more messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Errors: messages}
}

var validate = newValidator()

// newValidator reports fields by their JSON names so messages match the API payloads
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, messageFor(fe))
	}
	return NewValidationError(messages...)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "max":
		// price is the only bounded field
		return fmt.Sprintf("%s must be between %d and %d", fe.Field(), MinPrice, MaxPrice)
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
