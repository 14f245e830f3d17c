package validation

import (
	"errors"
	"testing"

	"github.com/nikitav/billboard/internal/apperror"
)

// fieldErrors extracts the field-error list from a Check failure, failing the
// test if the error isn't a validation AppError.
func fieldErrors(t *testing.T, err error) []apperror.FieldError {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error is not an *AppError: %v", err)
	}
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("error is not a validation error: %v", err)
	}
	return appErr.Fields
}

// hasField reports whether the list contains an error for the given field
// with the given message.
func hasField(fields []apperror.FieldError, field, message string) bool {
	for _, f := range fields {
		if f.Field == field && f.Message == message {
			return true
		}
	}
	return false
}

func TestCheckCreateUser(t *testing.T) {
	tests := []struct {
		name        string
		input       CreateUserInput
		wantErr     bool
		wantField   string
		wantMessage string
	}{
		{
			name:    "valid input",
			input:   CreateUserInput{UserName: "alice", Password: "secret1", Email: "a@x.com"},
			wantErr: false,
		},
		{
			name:    "password exactly six characters is valid",
			input:   CreateUserInput{UserName: "bob", Password: "123456", Email: "b@x.com"},
			wantErr: false,
		},
		{
			name:        "password five characters is too short",
			input:       CreateUserInput{UserName: "carol", Password: "12345", Email: "c@x.com"},
			wantErr:     true,
			wantField:   "password",
			wantMessage: "password is too short",
		},
		{
			name:        "missing user_name",
			input:       CreateUserInput{Password: "secret1", Email: "a@x.com"},
			wantErr:     true,
			wantField:   "user_name",
			wantMessage: "user_name is required",
		},
		{
			name:        "missing email",
			input:       CreateUserInput{UserName: "alice", Password: "secret1"},
			wantErr:     true,
			wantField:   "email",
			wantMessage: "email is required",
		},
		{
			name:        "malformed email",
			input:       CreateUserInput{UserName: "alice", Password: "secret1", Email: "not-an-email"},
			wantErr:     true,
			wantField:   "email",
			wantMessage: "email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.input)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Check() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Check() returned nil, want validation error")
			}
			fields := fieldErrors(t, err)
			if !hasField(fields, tt.wantField, tt.wantMessage) {
				t.Errorf("field errors %v do not contain {%s, %q}", fields, tt.wantField, tt.wantMessage)
			}
		})
	}
}

// A payload with several problems reports all of them in one pass.
func TestCheckCreateUser_ReportsAllFields(t *testing.T) {
	err := Check(CreateUserInput{Password: "123"})
	if err == nil {
		t.Fatal("Check() returned nil for empty input")
	}

	fields := fieldErrors(t, err)
	if len(fields) != 3 {
		t.Fatalf("got %d field errors, want 3: %v", len(fields), fields)
	}
	if !hasField(fields, "user_name", "user_name is required") {
		t.Error("missing user_name error")
	}
	if !hasField(fields, "password", "password is too short") {
		t.Error("missing password error")
	}
	if !hasField(fields, "email", "email is required") {
		t.Error("missing email error")
	}
}

func TestCheckCreateBillboard(t *testing.T) {
	tests := []struct {
		name      string
		input     CreateBillboardInput
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid input",
			input:   CreateBillboardInput{Topic: "sale", Description: "old bike", UserID: 1},
			wantErr: false,
		},
		{
			name:      "missing topic",
			input:     CreateBillboardInput{Description: "old bike", UserID: 1},
			wantErr:   true,
			wantField: "topic",
		},
		{
			name:      "missing description",
			input:     CreateBillboardInput{Topic: "sale", UserID: 1},
			wantErr:   true,
			wantField: "description",
		},
		{
			name:      "missing user_id",
			input:     CreateBillboardInput{Topic: "sale", Description: "old bike"},
			wantErr:   true,
			wantField: "user_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.input)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Check() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Check() returned nil, want validation error")
			}
			fields := fieldErrors(t, err)
			found := false
			for _, f := range fields {
				if f.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("field errors %v do not mention %s", fields, tt.wantField)
			}
		})
	}
}
