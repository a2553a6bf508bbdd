package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ooplearn/backend/internal/models"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for course overview logic.
type ProgressService interface {
	// Method GetSummary counts available lessons (total and per difficulty), quizzes and quiz questions.
	GetSummary(ctx context.Context) (*models.ProgressSummary, error)
	// Method GetLearningPath retrieve the recommended order of lessons from beginner to advanced.
	GetLearningPath(ctx context.Context) (*models.LearningPath, error)
}

// ProgressHandler handles HTTP requests for the course overview
type ProgressHandler struct {
	BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(svc ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all progress handler routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Get("/progress/summary", h.GetSummary)
	r.Get("/learning-path", h.GetLearningPath)
}

// GetSummary handles GET /api/v1/progress/summary
// @Summary Get content summary
// @Description Get the number of lessons, lessons per difficulty, quizzes and quiz questions
// @Tags progress
// @Produce json
// @Success 200 {object} models.ProgressSummary
// @Failure 500 {object} map[string]string
// @Router /api/v1/progress/summary [get]
func (h *ProgressHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetSummary(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to get progress summary")
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}

// GetLearningPath handles GET /api/v1/learning-path
// @Summary Get learning path
// @Description Get the recommended progression through the OOP lessons
// @Tags progress
// @Produce json
// @Success 200 {object} models.LearningPath
// @Failure 500 {object} map[string]string
// @Router /api/v1/learning-path [get]
func (h *ProgressHandler) GetLearningPath(w http.ResponseWriter, r *http.Request) {
	path, err := h.service.GetLearningPath(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to get learning path")
		return
	}

	h.respondJSON(w, http.StatusOK, path)
}
