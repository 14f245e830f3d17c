// Package validation declares the input schemas for create operations and
// checks untrusted request payloads against them.
//
// DECLARATIVE VALIDATION:
// Instead of hand-writing if-chains per field, the rules live in `validate`
// struct tags and go-playground/validator enforces them via reflection. One
// schema struct per request shape:
//
//	CreateUserInput      → POST /user/
//	CreateBillboardInput → POST /article/
//
// A failed check produces an apperror validation error carrying the full list
// of per-field messages, so a payload with three problems reports all three
// in one 400 response rather than failing one field at a time.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nikitav/billboard/internal/apperror"
)

// MinPasswordLength is the minimum accepted plaintext password length.
// Exactly this many characters is valid; one fewer fails with
// "password is too short".
const MinPasswordLength = 6

// CreateUserInput is the schema for POST /user/ payloads.
type CreateUserInput struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password"  validate:"required,min=6"`
	Email    string `json:"email"     validate:"required,email"`
}

// CreateBillboardInput is the schema for POST /article/ payloads.
// user_id uses "required", so a missing field and an explicit 0 are both
// rejected — 0 is never a valid user id.
type CreateBillboardInput struct {
	Topic       string `json:"topic"       validate:"required"`
	Description string `json:"description" validate:"required"`
	UserID      int64  `json:"user_id"     validate:"required"`
}

// The validator instance is stateless and safe for concurrent use, so one
// package-level instance is shared by all requests.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field names as they appear on the wire (json tag), not as Go
	// struct field names. "UserName" would mean nothing to an API caller;
	// "user_name" matches what they sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Check validates an input struct against its schema tags.
// Returns nil if the input is valid, or an apperror validation error with one
// FieldError per failed rule.
func Check(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// validator returns *InvalidValidationError only when handed a
		// non-struct — a programming error, not a bad payload.
		return fmt.Errorf("validation: checking input: %w", err)
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}

	return apperror.ValidationFailed(fields...)
}

// fieldMessage turns a validator tag failure into a caller-facing message.
// The password length message is fixed wording that clients rely on.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		if fe.Field() == "password" {
			return "password is too short"
		}
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "email":
		return "email must be a valid email address"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
