package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ooplearn/backend/internal/models"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps an error returned by a service to an HTTP status
//
// Validation errors become 400, not found errors become 404, anything else is logged and becomes 500
// with "fallback" as the message.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.respondError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, models.ErrLessonNotFound):
		h.respondError(w, http.StatusNotFound, models.ErrLessonNotFound.Error())
	case errors.Is(err, models.ErrQuizNotFound):
		h.respondError(w, http.StatusNotFound, models.ErrQuizNotFound.Error())
	case errors.Is(err, models.ErrNotFound):
		h.respondError(w, http.StatusNotFound, models.ErrNotFound.Error())
	default:
		h.logger.Error(fallback, zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}
