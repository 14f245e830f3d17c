// Package handler contains the HTTP layer: request parsing, response
// writing, and nothing else. Business rules live in internal/service.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/nikitav/billboard/internal/apperror"
	"github.com/nikitav/billboard/internal/service"
	"github.com/nikitav/billboard/internal/validation"
)

// UserHandler serves the /user/ routes.
type UserHandler struct {
	service *service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(service *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{service: service, logger: logger}
}

// userResponse is the public view of a user: no password hash, no email.
// RegistrationTime marshals as RFC 3339 (ISO-8601) via time.Time.
type userResponse struct {
	ID               int64     `json:"id"`
	UserName         string    `json:"user_name"`
	RegistrationTime time.Time `json:"registration_time"`
}

// createUserResponse echoes the new id and the stored password hash —
// the hash, never the plaintext.
type createUserResponse struct {
	ID       int64  `json:"id"`
	Password string `json:"password"`
}

// pathID extracts the {id} URL parameter as an int64.
// Chi populates r.PathValue for its route params. A non-numeric id is a bad
// request, reported on the "id" field.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, apperror.ValidationFailed(apperror.FieldError{
			Field:   "id",
			Message: "id must be an integer",
		})
	}
	return id, nil
}

// HandleGet returns a user's public profile.
//
// HTTP: GET /user/{id}/
// 200 {"id":1,"user_name":"alice","registration_time":"2026-08-28T10:00:00Z"}
// 404 {"status":"error","description":"user not found"}
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		ID:               user.ID,
		UserName:         user.UserName,
		RegistrationTime: user.RegistrationTime,
	})
}

// HandleCreate registers a new user.
//
// HTTP: POST /user/
// BODY: {"user_name":"alice","password":"secret1","email":"a@x.com"}
// 200 {"id":1,"password":"<hash>"}
// 400 validation errors, 409 user already exists
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in validation.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.logger.Warn("invalid user JSON", slog.String("error", err.Error()))
		badRequest(w, "body", "invalid JSON body")
		return
	}

	user, err := h.service.Create(r.Context(), in)
	if err != nil {
		// Conflicts and validation failures are expected client errors;
		// anything unclassified is a server-side problem worth logging.
		if !errors.As(err, new(*apperror.AppError)) {
			h.logger.Error("create user failed", slog.String("error", err.Error()))
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createUserResponse{
		ID:       user.ID,
		Password: user.Password,
	})
}

// HandleDelete removes a user and, by cascade, all their billboards.
//
// HTTP: DELETE /user/{id}/
// 200 {"status":"deleted"}
// 404 {"status":"error","description":"user not found"}
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}
