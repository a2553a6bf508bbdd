package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ooplearn/backend/internal/models"
	"go.uber.org/zap"
)

// QuizzesService is the interface that wraps methods for quiz business logic.
type QuizzesService interface {
	// Method GetAll retrieve a list of all quizzes including their questions.
	GetAll(ctx context.Context) ([]models.Quiz, error)
	// Method GetByID retrieve a quiz by its ID.
	//
	// If no quiz has this ID, an error matching models.ErrQuizNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.Quiz, error)
	// Method GetByLessonID retrieve all quizzes attached to a lesson.
	//
	// An empty slice is returned when no quiz references the lesson.
	GetByLessonID(ctx context.Context, lessonID int) ([]models.Quiz, error)
	// Method Submit score a submission against a quiz.
	//
	// If the submission is malformed, a validation error will be returned.
	// If no quiz has "quizID", an error matching models.ErrQuizNotFound will be returned.
	Submit(ctx context.Context, quizID int, submission models.QuizSubmission) (*models.QuizResult, error)
}

// QuizzesHandler handles HTTP requests for quizzes
type QuizzesHandler struct {
	BaseHandler
	service QuizzesService
}

// NewQuizzesHandler creates a new quiz handler
func NewQuizzesHandler(svc QuizzesService, logger *zap.Logger) *QuizzesHandler {
	return &QuizzesHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all quiz handler routes
func (h *QuizzesHandler) RegisterRoutes(r chi.Router) {
	r.Route("/quizzes", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/lesson/{lessonId}", h.GetByLessonID)
		r.Get("/{id}", h.GetByID)
		r.Post("/{id}/submit", h.Submit)
	})
}

// GetAll handles GET /api/v1/quizzes
// @Summary Get all quizzes
// @Description Get a list of all quizzes with their questions
// @Tags quizzes
// @Produce json
// @Success 200 {array} models.Quiz
// @Failure 500 {object} map[string]string
// @Router /api/v1/quizzes [get]
func (h *QuizzesHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.service.GetAll(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to get quizzes")
		return
	}

	h.respondJSON(w, http.StatusOK, quizzes)
}

// GetByID handles GET /api/v1/quizzes/{id}
// @Summary Get quiz by ID
// @Description Get a single quiz by its ID
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} models.Quiz
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/quizzes/{id} [get]
func (h *QuizzesHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	quiz, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "failed to get quiz")
		return
	}

	h.respondJSON(w, http.StatusOK, quiz)
}

// GetByLessonID handles GET /api/v1/quizzes/lesson/{lessonId}
// @Summary Get quizzes for a lesson
// @Description Get all quizzes attached to a lesson, empty array if there are none
// @Tags quizzes
// @Produce json
// @Param lessonId path int true "Lesson ID"
// @Success 200 {array} models.Quiz
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/quizzes/lesson/{lessonId} [get]
func (h *QuizzesHandler) GetByLessonID(w http.ResponseWriter, r *http.Request) {
	lessonID, err := strconv.Atoi(chi.URLParam(r, "lessonId"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid lessonId parameter")
		return
	}

	quizzes, err := h.service.GetByLessonID(r.Context(), lessonID)
	if err != nil {
		h.respondServiceError(w, err, "failed to get quizzes")
		return
	}

	h.respondJSON(w, http.StatusOK, quizzes)
}

// Submit handles POST /api/v1/quizzes/{id}/submit
// @Summary Submit quiz answers
// @Description Score a set of answers. Answers to questions outside the quiz are ignored, unanswered questions count as incorrect.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param submission body models.QuizSubmission true "Answers"
// @Success 200 {object} models.QuizResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/quizzes/{id}/submit [post]
func (h *QuizzesHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	var submission models.QuizSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Submit(r.Context(), id, submission)
	if err != nil {
		h.respondServiceError(w, err, "failed to submit quiz")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}
