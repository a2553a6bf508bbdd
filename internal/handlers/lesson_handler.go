package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ooplearn/backend/internal/models"
	"go.uber.org/zap"
)

// LessonsService is the interface that wraps methods for lesson business logic.
type LessonsService interface {
	// Method GetAll retrieve a list of all lessons in collection order.
	GetAll(ctx context.Context) ([]models.Lesson, error)
	// Method GetByID retrieve a lesson by its ID.
	//
	// "id" parameter must be positive, otherwise a validation error will be returned.
	// If no lesson has this ID, an error matching models.ErrLessonNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
	// Method GetByDifficulty retrieve lessons with the given difficulty.
	//
	// "difficulty" parameter must be "beginner", "intermediate" or "advanced".
	// Please reference Difficulty constants for correct parameter values.
	// If an unknown difficulty is used, a validation error will be returned together with "nil" value.
	GetByDifficulty(ctx context.Context, difficulty string) ([]models.Lesson, error)
	// Method Search retrieve lessons whose title, content or key concepts contain the keyword (case-insensitive).
	//
	// If "keyword" is empty, a validation error will be returned together with "nil" value.
	Search(ctx context.Context, keyword string) ([]models.LessonSearchResult, error)
}

// LessonsHandler handles HTTP requests for lessons
type LessonsHandler struct {
	BaseHandler
	service LessonsService
}

// NewLessonsHandler creates a new lesson handler
func NewLessonsHandler(svc LessonsService, logger *zap.Logger) *LessonsHandler {
	return &LessonsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all lesson handler routes
func (h *LessonsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/lessons", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/search", h.Search)
		r.Get("/difficulty/{difficulty}", h.GetByDifficulty)
		r.Get("/{id}", h.GetByID)
	})
}

// GetAll handles GET /api/v1/lessons
// @Summary Get all lessons
// @Description Get a list of all OOP lessons
// @Tags lessons
// @Produce json
// @Success 200 {array} models.Lesson
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons [get]
func (h *LessonsHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.service.GetAll(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to get lessons")
		return
	}

	h.respondJSON(w, http.StatusOK, lessons)
}

// GetByID handles GET /api/v1/lessons/{id}
// @Summary Get lesson by ID
// @Description Get a single OOP lesson by its ID
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/{id} [get]
func (h *LessonsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	lesson, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "failed to get lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}

// GetByDifficulty handles GET /api/v1/lessons/difficulty/{difficulty}
// @Summary Get lessons by difficulty
// @Description Get lessons filtered by difficulty level
// @Tags lessons
// @Produce json
// @Param difficulty path string true "Difficulty: beginner, intermediate or advanced"
// @Success 200 {array} models.Lesson
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/difficulty/{difficulty} [get]
func (h *LessonsHandler) GetByDifficulty(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.service.GetByDifficulty(r.Context(), chi.URLParam(r, "difficulty"))
	if err != nil {
		h.respondServiceError(w, err, "failed to get lessons")
		return
	}

	h.respondJSON(w, http.StatusOK, lessons)
}

// Search handles GET /api/v1/lessons/search
// @Summary Search lessons
// @Description Search lessons by keyword in title, content and key concepts (case-insensitive)
// @Tags lessons
// @Produce json
// @Param keyword query string true "Search keyword"
// @Success 200 {array} models.LessonSearchResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/search [get]
func (h *LessonsHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.Search(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		h.respondServiceError(w, err, "failed to search lessons")
		return
	}

	h.respondJSON(w, http.StatusOK, results)
}
