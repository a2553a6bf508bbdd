package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ooplearn/backend/internal/models"
	"go.uber.org/zap"
)

// LessonCatalog is the interface that wraps read access to the lesson collection
type LessonCatalog interface {
	// Method Lessons returns every lesson in collection order.
	//
	// The returned slice is a copy and may be freely modified by the caller.
	Lessons() []models.Lesson
	// Method LessonByID returns the lesson with the given ID.
	//
	// The second return value is false when no lesson has this ID.
	LessonByID(id int) (models.Lesson, bool)
}

type lessonsService struct {
	catalog LessonCatalog
	logger  *zap.Logger
}

// NewLessonsService creates a new lesson service
func NewLessonsService(catalog LessonCatalog, logger *zap.Logger) *lessonsService {
	return &lessonsService{
		catalog: catalog,
		logger:  logger,
	}
}

// GetAll retrieves all lessons in collection order
func (s *lessonsService) GetAll(ctx context.Context) ([]models.Lesson, error) {
	return s.catalog.Lessons(), nil
}

// GetByID retrieves a lesson by its ID
//
// id must be a positive number, otherwise a validation error is returned.
// If no lesson has this ID, an error matching models.ErrLessonNotFound is returned.
func (s *lessonsService) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	if id <= 0 {
		return nil, models.NewValidationError("invalid lesson id")
	}

	lesson, ok := s.catalog.LessonByID(id)
	if !ok {
		s.logger.Debug("lesson not found", zap.Int("id", id))
		return nil, fmt.Errorf("failed to get lesson %d: %w", id, models.ErrLessonNotFound)
	}

	return &lesson, nil
}

// GetByDifficulty retrieves lessons of the given difficulty preserving collection order
//
// difficultyParam must be "beginner", "intermediate" or "advanced" (case-insensitive).
// Unknown values are rejected before filtering.
func (s *lessonsService) GetByDifficulty(ctx context.Context, difficultyParam string) ([]models.Lesson, error) {
	difficulty, err := models.ParseDifficulty(difficultyParam)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Lesson, 0)
	for _, lesson := range s.catalog.Lessons() {
		if lesson.Difficulty == difficulty {
			filtered = append(filtered, lesson)
		}
	}

	return filtered, nil
}

// Search retrieves lessons whose title, content or any key concept contains the keyword
//
// Matching is case-insensitive. An empty or whitespace-only keyword is rejected with a validation error.
// Results keep collection order, each one lists the key concepts that matched.
func (s *lessonsService) Search(ctx context.Context, keyword string) ([]models.LessonSearchResult, error) {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return nil, models.NewValidationError("keyword parameter is required")
	}

	results := make([]models.LessonSearchResult, 0)
	for _, lesson := range s.catalog.Lessons() {
		matchingConcepts := make([]string, 0)
		for _, concept := range lesson.KeyConcepts {
			if strings.Contains(strings.ToLower(concept), needle) {
				matchingConcepts = append(matchingConcepts, concept)
			}
		}

		if len(matchingConcepts) == 0 &&
			!strings.Contains(strings.ToLower(lesson.Title), needle) &&
			!strings.Contains(strings.ToLower(lesson.Content), needle) {
			continue
		}

		results = append(results, models.LessonSearchResult{
			ID:               lesson.ID,
			Title:            lesson.Title,
			Difficulty:       lesson.Difficulty,
			MatchingConcepts: matchingConcepts,
		})
	}

	return results, nil
}
