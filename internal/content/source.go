package content

import (
	"context"
	"fmt"

	"github.com/ooplearn/backend/internal/models"
)

// Source provides lessons and quizzes from an external store
type Source interface {
	LoadLessons(ctx context.Context) ([]models.Lesson, error)
	LoadQuizzes(ctx context.Context) ([]models.Quiz, error)
}

// LoadFromSource reads all content from src and builds a catalog from it
func LoadFromSource(ctx context.Context, src Source) (*Catalog, error) {
	lessons, err := src.LoadLessons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load lessons: %w", err)
	}

	quizzes, err := src.LoadQuizzes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load quizzes: %w", err)
	}

	catalog, err := NewCatalog(lessons, quizzes)
	if err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return catalog, nil
}
