// Package validator adapts go-playground/validator as the echo request
// validator and turns tag failures into per-field error pairs.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// telegramHandlePattern accepts a Telegram handle with or without the
// leading '@': 2 to 32 word characters.
var telegramHandlePattern = regexp.MustCompile(`^@?[A-Za-z0-9_]{2,32}$`)

// FieldError is one failed field of a request payload, reported under
// the field's JSON name with a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every failed field of a payload. The error
// middleware renders it as a 400 with the per-field list.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}

	return "validation failed: " + strings.Join(names, ", ")
}

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New builds the request validator with the project's custom rules.
func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	// Report fields under their JSON names, matching the wire payload.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// Never fails: the regexp is static and the closure returns bool only.
	_ = validate.RegisterValidation("tg_handle", func(fl playground.FieldLevel) bool {
		return telegramHandlePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// Validate checks the bound payload and converts tag failures into a
// *ValidationError. Non-validation failures are returned as-is.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate payload")
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}

	return out
}

// messageFor maps a failed tag to the human message shown to the client.
func messageFor(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "tg_handle":
		return fmt.Sprintf("%s must be a valid Telegram handle", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
