package content

import (
	"testing"

	"github.com/ooplearn/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestion(id int) models.QuizQuestion {
	return models.QuizQuestion{
		ID:            id,
		Question:      "question",
		Options:       []string{"a", "b"},
		CorrectAnswer: 1,
		Explanation:   "because",
	}
}

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name          string
		lessons       []models.Lesson
		quizzes       []models.Quiz
		expectedError string
	}{
		{
			name: "success",
			lessons: []models.Lesson{
				{ID: 1, Title: "Classes", Difficulty: models.DifficultyBeginner},
				{ID: 2, Title: "Inheritance", Difficulty: models.DifficultyIntermediate},
			},
			quizzes: []models.Quiz{
				{ID: 1, LessonID: 1, Questions: []models.QuizQuestion{validQuestion(1), validQuestion(2)}},
				{ID: 2, LessonID: 99, Questions: nil},
			},
		},
		{
			name:    "empty collections",
			lessons: nil,
			quizzes: nil,
		},
		{
			name:          "non-positive lesson id",
			lessons:       []models.Lesson{{ID: 0, Difficulty: models.DifficultyBeginner}},
			expectedError: "invalid lesson id: 0",
		},
		{
			name: "duplicate lesson id",
			lessons: []models.Lesson{
				{ID: 1, Difficulty: models.DifficultyBeginner},
				{ID: 1, Difficulty: models.DifficultyAdvanced},
			},
			expectedError: "duplicate lesson id: 1",
		},
		{
			name:          "unknown difficulty",
			lessons:       []models.Lesson{{ID: 1, Difficulty: "expert"}},
			expectedError: "lesson 1: invalid difficulty: expert",
		},
		{
			name:          "non-positive quiz id",
			quizzes:       []models.Quiz{{ID: -1}},
			expectedError: "invalid quiz id: -1",
		},
		{
			name:          "duplicate quiz id",
			quizzes:       []models.Quiz{{ID: 3}, {ID: 3}},
			expectedError: "duplicate quiz id: 3",
		},
		{
			name: "duplicate question id",
			quizzes: []models.Quiz{
				{ID: 1, Questions: []models.QuizQuestion{validQuestion(1), validQuestion(1)}},
			},
			expectedError: "quiz 1: duplicate question id: 1",
		},
		{
			name: "non-positive question id",
			quizzes: []models.Quiz{
				{ID: 1, Questions: []models.QuizQuestion{validQuestion(0)}},
			},
			expectedError: "quiz 1: invalid question id: 0",
		},
		{
			name: "too few options",
			quizzes: []models.Quiz{
				{ID: 1, Questions: []models.QuizQuestion{{ID: 1, Options: []string{"only"}}}},
			},
			expectedError: "quiz 1: question 1: at least two options are required",
		},
		{
			name: "correct answer out of range",
			quizzes: []models.Quiz{
				{ID: 1, Questions: []models.QuizQuestion{{ID: 1, Options: []string{"a", "b"}, CorrectAnswer: 2}}},
			},
			expectedError: "quiz 1: question 1: correct answer 2 is out of range",
		},
		{
			name: "negative correct answer",
			quizzes: []models.Quiz{
				{ID: 1, Questions: []models.QuizQuestion{{ID: 1, Options: []string{"a", "b"}, CorrectAnswer: -1}}},
			},
			expectedError: "quiz 1: question 1: correct answer -1 is out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := NewCatalog(tt.lessons, tt.quizzes)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				assert.Nil(t, catalog)
			} else {
				require.NoError(t, err)
				assert.Len(t, catalog.Lessons(), len(tt.lessons))
				assert.Len(t, catalog.Quizzes(), len(tt.quizzes))
			}
		})
	}
}

func TestCatalog_Lookups(t *testing.T) {
	catalog, err := NewCatalog(
		[]models.Lesson{
			{ID: 3, Title: "Encapsulation", Difficulty: models.DifficultyIntermediate},
			{ID: 1, Title: "Classes", Difficulty: models.DifficultyBeginner},
		},
		[]models.Quiz{
			{ID: 7, LessonID: 1, Title: "Quiz", Questions: []models.QuizQuestion{validQuestion(1)}},
		},
	)
	require.NoError(t, err)

	lessons := catalog.Lessons()
	require.Len(t, lessons, 2)
	assert.Equal(t, 3, lessons[0].ID)
	assert.Equal(t, 1, lessons[1].ID)

	lesson, ok := catalog.LessonByID(1)
	assert.True(t, ok)
	assert.Equal(t, "Classes", lesson.Title)

	_, ok = catalog.LessonByID(2)
	assert.False(t, ok)

	quiz, ok := catalog.QuizByID(7)
	assert.True(t, ok)
	assert.Equal(t, "Quiz", quiz.Title)

	_, ok = catalog.QuizByID(1)
	assert.False(t, ok)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	source := []models.Lesson{{ID: 1, Title: "Classes", Difficulty: models.DifficultyBeginner, KeyConcepts: []string{"Class"}}}
	quizzes := []models.Quiz{{ID: 1, Questions: []models.QuizQuestion{validQuestion(1)}}}
	catalog, err := NewCatalog(source, quizzes)
	require.NoError(t, err)

	// Changes to the input must not leak into the catalog
	source[0].Title = "changed"
	source[0].KeyConcepts[0] = "changed"
	quizzes[0].Questions[0].Options[0] = "changed"

	// Changes to returned values must not leak into the catalog
	lessons := catalog.Lessons()
	lessons[0].KeyConcepts[0] = "mutated"
	quiz, _ := catalog.QuizByID(1)
	quiz.Questions[0].Options[1] = "mutated"
	quiz.Questions[0].CorrectAnswer = 0

	lesson, _ := catalog.LessonByID(1)
	assert.Equal(t, "Classes", lesson.Title)
	assert.Equal(t, []string{"Class"}, lesson.KeyConcepts)

	quiz, _ = catalog.QuizByID(1)
	assert.Equal(t, []string{"a", "b"}, quiz.Questions[0].Options)
	assert.Equal(t, 1, quiz.Questions[0].CorrectAnswer)
}
