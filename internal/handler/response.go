package handler

// RESPONSE HELPERS:
// These functions standardise how we send JSON responses and errors.
//
// CONSISTENT ERROR FORMAT:
// Every error response from the API has the same envelope:
//
//	{"status": "error", "description": "user not found"}
//	{"status": "error", "description": [{"field":"password","message":"password is too short"}]}
//
// The description is a plain string for not-found/conflict errors and a list
// of field errors for validation failures. Clients always receive JSON —
// never bare text or HTML — for both success and error paths.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nikitav/billboard/internal/apperror"
)

// errorResponse is the standard error envelope.
// Description is `any` because it's either a string or a []apperror.FieldError.
type errorResponse struct {
	Status      string `json:"status"` // always "error"
	Description any    `json:"description"`
}

// statusResponse is the confirmation body for deletes: {"status":"deleted"}.
type statusResponse struct {
	Status string `json:"status"`
}

// writeJSON sends a JSON response with the given status code.
//
// HEADER ORDER MATTERS: headers and status code must be set BEFORE the body.
// Once Encode writes, the headers are on the wire and changes are silently
// ignored.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent — all we can do is log it.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to the matching HTTP status and renders the
// error envelope.
//
// This is the single place where the error taxonomy meets HTTP:
//
//	apperror.ErrValidation → 400, description = field-error list
//	apperror.ErrNotFound   → 404, description = message
//	apperror.ErrConflict   → 409, description = message
//	anything else          → 500, generic description
//
// errors.As/Is walk the whole chain (services wrap repository errors with
// %w), so classification survives any number of wrapping layers. Raw internal
// error text is never exposed — it can contain SQL fragments or file paths.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		var description any = appErr.Message

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
			if len(appErr.Fields) > 0 {
				description = appErr.Fields
			} else {
				description = appErr.Error()
			}
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrConflict):
			status = http.StatusConflict
		}

		writeJSON(w, status, errorResponse{
			Status:      "error",
			Description: description,
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Status:      "error",
		Description: "internal server error",
	})
}

// badRequest renders a 400 envelope with a single field error. Used for
// failures that happen before validation runs (unparseable JSON, non-numeric
// path id).
func badRequest(w http.ResponseWriter, field, message string) {
	writeError(w, apperror.ValidationFailed(apperror.FieldError{
		Field:   field,
		Message: message,
	}))
}
