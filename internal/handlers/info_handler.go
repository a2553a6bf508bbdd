package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// APIInfo represents the welcome response of the API root
type APIInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// InfoHandler handles the API root and health check
type InfoHandler struct {
	BaseHandler
	version string
}

// NewInfoHandler creates a new info handler
func NewInfoHandler(version string, logger *zap.Logger) *InfoHandler {
	return &InfoHandler{
		version:     version,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers the root and health routes
func (h *InfoHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
}

// Root handles GET /
// @Summary API information
// @Description Welcome message with the list of main endpoints
// @Tags info
// @Produce json
// @Success 200 {object} handlers.APIInfo
// @Router / [get]
func (h *InfoHandler) Root(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, APIInfo{
		Message: "Welcome to OOP Learning API",
		Version: h.version,
		Endpoints: map[string]string{
			"lessons":               "/api/v1/lessons",
			"lesson_by_id":          "/api/v1/lessons/{lesson_id}",
			"lessons_by_difficulty": "/api/v1/lessons/difficulty/{difficulty}",
			"lessons_search":        "/api/v1/lessons/search?keyword={keyword}",
			"quizzes":               "/api/v1/quizzes",
			"quiz":                  "/api/v1/quizzes/{quiz_id}",
			"quizzes_for_lesson":    "/api/v1/quizzes/lesson/{lesson_id}",
			"submit_quiz":           "/api/v1/quizzes/{quiz_id}/submit",
			"progress_summary":      "/api/v1/progress/summary",
			"learning_path":         "/api/v1/learning-path",
			"docs":                  "/swagger/index.html",
		},
	})
}

// Health handles GET /health
// @Summary Health check
// @Tags info
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *InfoHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
