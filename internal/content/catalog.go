// Package content holds the immutable snapshot of lessons and quizzes served by the API
package content

import (
	"fmt"

	"github.com/ooplearn/backend/internal/models"
)

// Catalog is a read-only collection of lessons and quizzes built once at startup.
//
// All methods return copies, so a Catalog can be shared by concurrent requests without locking.
type Catalog struct {
	lessons     []models.Lesson
	quizzes     []models.Quiz
	lessonIndex map[int]int
	quizIndex   map[int]int
}

// NewCatalog validates lessons and quizzes and builds a new catalog from them.
//
// Lesson and quiz IDs must be positive and unique, lessons must have a known difficulty,
// question IDs must be positive and unique within their quiz, every question needs at least two options
// and its correct answer must point at one of them.
// The input slices are copied, later changes to them do not affect the catalog.
func NewCatalog(lessons []models.Lesson, quizzes []models.Quiz) (*Catalog, error) {
	c := &Catalog{
		lessons:     make([]models.Lesson, 0, len(lessons)),
		quizzes:     make([]models.Quiz, 0, len(quizzes)),
		lessonIndex: make(map[int]int, len(lessons)),
		quizIndex:   make(map[int]int, len(quizzes)),
	}

	for _, lesson := range lessons {
		if lesson.ID <= 0 {
			return nil, fmt.Errorf("invalid lesson id: %d", lesson.ID)
		}
		if _, ok := c.lessonIndex[lesson.ID]; ok {
			return nil, fmt.Errorf("duplicate lesson id: %d", lesson.ID)
		}
		if !lesson.Difficulty.Valid() {
			return nil, fmt.Errorf("lesson %d: invalid difficulty: %s", lesson.ID, lesson.Difficulty)
		}
		c.lessonIndex[lesson.ID] = len(c.lessons)
		c.lessons = append(c.lessons, lesson.Clone())
	}

	for _, quiz := range quizzes {
		if quiz.ID <= 0 {
			return nil, fmt.Errorf("invalid quiz id: %d", quiz.ID)
		}
		if _, ok := c.quizIndex[quiz.ID]; ok {
			return nil, fmt.Errorf("duplicate quiz id: %d", quiz.ID)
		}
		if err := validateQuestions(quiz); err != nil {
			return nil, fmt.Errorf("quiz %d: %w", quiz.ID, err)
		}
		c.quizIndex[quiz.ID] = len(c.quizzes)
		c.quizzes = append(c.quizzes, quiz.Clone())
	}

	return c, nil
}

// validateQuestions checks question invariants of a single quiz
func validateQuestions(quiz models.Quiz) error {
	seen := make(map[int]struct{}, len(quiz.Questions))
	for _, q := range quiz.Questions {
		if q.ID <= 0 {
			return fmt.Errorf("invalid question id: %d", q.ID)
		}
		if _, ok := seen[q.ID]; ok {
			return fmt.Errorf("duplicate question id: %d", q.ID)
		}
		seen[q.ID] = struct{}{}

		if len(q.Options) < 2 {
			return fmt.Errorf("question %d: at least two options are required", q.ID)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("question %d: correct answer %d is out of range", q.ID, q.CorrectAnswer)
		}
	}
	return nil
}

// Lessons returns all lessons in catalog order
func (c *Catalog) Lessons() []models.Lesson {
	lessons := make([]models.Lesson, len(c.lessons))
	for i, lesson := range c.lessons {
		lessons[i] = lesson.Clone()
	}
	return lessons
}

// LessonByID returns the lesson with the given ID and whether it exists
func (c *Catalog) LessonByID(id int) (models.Lesson, bool) {
	i, ok := c.lessonIndex[id]
	if !ok {
		return models.Lesson{}, false
	}
	return c.lessons[i].Clone(), true
}

// Quizzes returns all quizzes in catalog order
func (c *Catalog) Quizzes() []models.Quiz {
	quizzes := make([]models.Quiz, len(c.quizzes))
	for i, quiz := range c.quizzes {
		quizzes[i] = quiz.Clone()
	}
	return quizzes
}

// QuizByID returns the quiz with the given ID and whether it exists
func (c *Catalog) QuizByID(id int) (models.Quiz, bool) {
	i, ok := c.quizIndex[id]
	if !ok {
		return models.Quiz{}, false
	}
	return c.quizzes[i].Clone(), true
}
