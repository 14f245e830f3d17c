package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/nikitav/billboard/internal/apperror"
	"github.com/nikitav/billboard/internal/service"
	"github.com/nikitav/billboard/internal/validation"
)

// BillboardHandler serves the /article/ routes.
//
// The URL segment says "article" (the public API name for a billboard post);
// internally everything is a Billboard. The handler is the only place the two
// vocabularies meet.
type BillboardHandler struct {
	service *service.BillboardService
	logger  *slog.Logger
}

// NewBillboardHandler creates a BillboardHandler.
func NewBillboardHandler(service *service.BillboardService, logger *slog.Logger) *BillboardHandler {
	return &BillboardHandler{service: service, logger: logger}
}

// billboardResponse is the full public view of a billboard.
type billboardResponse struct {
	ID           int64     `json:"id"`
	Topic        string    `json:"topic"`
	Description  string    `json:"description"`
	UserID       int64     `json:"user_id"`
	CreationTime time.Time `json:"creation_time"`
}

// createBillboardResponse confirms a publish with the new id and a fixed
// status marker.
type createBillboardResponse struct {
	ID     int64  `json:"id"`
	Topic  string `json:"topic"`
	Status string `json:"status"` // always "published"
}

// HandleGet returns a billboard.
//
// HTTP: GET /article/{id}/
// 200 {"id":1,"topic":"sale","description":"old bike","user_id":1,"creation_time":"..."}
// 404 {"status":"error","description":"article not found"}
func (h *BillboardHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	billboard, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, billboardResponse{
		ID:           billboard.ID,
		Topic:        billboard.Topic,
		Description:  billboard.Description,
		UserID:       billboard.UserID,
		CreationTime: billboard.CreationTime,
	})
}

// HandleCreate publishes a new billboard.
//
// HTTP: POST /article/
// BODY: {"topic":"sale","description":"old bike","user_id":1}
// 200 {"id":1,"topic":"sale","status":"published"}
// 400 validation errors (including a user_id that references no user),
// 409 article already exists
func (h *BillboardHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in validation.CreateBillboardInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.logger.Warn("invalid billboard JSON", slog.String("error", err.Error()))
		badRequest(w, "body", "invalid JSON body")
		return
	}

	billboard, err := h.service.Create(r.Context(), in)
	if err != nil {
		if !errors.As(err, new(*apperror.AppError)) {
			h.logger.Error("create billboard failed", slog.String("error", err.Error()))
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createBillboardResponse{
		ID:     billboard.ID,
		Topic:  billboard.Topic,
		Status: "published",
	})
}

// HandleDelete removes a billboard.
//
// HTTP: DELETE /article/{id}/
// 200 {"status":"deleted"}
// 404 {"status":"error","description":"article not found"}
func (h *BillboardHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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
