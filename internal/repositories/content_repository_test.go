package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ooplearn/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	lessonsQuery     = `SELECT id, title, difficulty, content, code_example FROM lessons ORDER BY id`
	keyConceptsQuery = `SELECT lesson_id, concept FROM lesson_key_concepts ORDER BY lesson_id, position`
	quizzesQuery     = `SELECT id, lesson_id, title FROM quizzes ORDER BY id`
	questionsQuery   = `SELECT quiz_id, id, question, correct_answer, explanation FROM quiz_questions ORDER BY quiz_id, position`
	optionsQuery     = `SELECT quiz_id, question_id, option_text FROM quiz_question_options ORDER BY quiz_id, question_id, position`
)

// setupTestRepository creates a repository with a mock database
func setupTestRepository(t *testing.T) (*contentRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	repo := NewContentRepository(db, logger)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func lessonRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "difficulty", "content", "code_example"}).
		AddRow(1, "Introduction to Classes and Objects", "beginner", "Classes are blueprints", "class Dog: pass").
		AddRow(2, "Inheritance", "intermediate", "Inheritance allows reuse", "class Cat(Animal): pass")
}

func TestNewContentRepository(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	db := &sql.DB{}

	repo := NewContentRepository(db, logger)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
	assert.Equal(t, logger, repo.logger)
}

func TestContentRepository_LoadLessons(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		validate      func(*testing.T, []models.Lesson)
	}{
		{
			name: "success with ordered key concepts",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(lessonsQuery).WillReturnRows(lessonRows())
				mock.ExpectQuery(keyConceptsQuery).WillReturnRows(
					sqlmock.NewRows([]string{"lesson_id", "concept"}).
						AddRow(1, "Class").
						AddRow(1, "Object").
						AddRow(2, "Inheritance"),
				)
			},
			validate: func(t *testing.T, lessons []models.Lesson) {
				require.Len(t, lessons, 2)
				assert.Equal(t, 1, lessons[0].ID)
				assert.Equal(t, models.DifficultyBeginner, lessons[0].Difficulty)
				assert.Equal(t, "class Dog: pass", lessons[0].CodeExample)
				assert.Equal(t, []string{"Class", "Object"}, lessons[0].KeyConcepts)
				assert.Equal(t, models.DifficultyIntermediate, lessons[1].Difficulty)
				assert.Equal(t, []string{"Inheritance"}, lessons[1].KeyConcepts)
			},
		},
		{
			name: "lesson without key concepts gets empty list",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(lessonsQuery).WillReturnRows(lessonRows())
				mock.ExpectQuery(keyConceptsQuery).WillReturnRows(
					sqlmock.NewRows([]string{"lesson_id", "concept"}).
						AddRow(1, "Class"),
				)
			},
			validate: func(t *testing.T, lessons []models.Lesson) {
				require.Len(t, lessons, 2)
				assert.NotNil(t, lessons[1].KeyConcepts)
				assert.Empty(t, lessons[1].KeyConcepts)
			},
		},
		{
			name: "orphan key concept is skipped",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(lessonsQuery).WillReturnRows(lessonRows())
				mock.ExpectQuery(keyConceptsQuery).WillReturnRows(
					sqlmock.NewRows([]string{"lesson_id", "concept"}).
						AddRow(1, "Class").
						AddRow(42, "Ghost"),
				)
			},
			validate: func(t *testing.T, lessons []models.Lesson) {
				require.Len(t, lessons, 2)
				assert.Equal(t, []string{"Class"}, lessons[0].KeyConcepts)
				assert.Empty(t, lessons[1].KeyConcepts)
			},
		},
		{
			name: "empty tables",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(lessonsQuery).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title", "difficulty", "content", "code_example"}))
				mock.ExpectQuery(keyConceptsQuery).
					WillReturnRows(sqlmock.NewRows([]string{"lesson_id", "concept"}))
			},
			validate: func(t *testing.T, lessons []models.Lesson) {
				assert.NotNil(t, lessons)
				assert.Empty(t, lessons)
			},
		},
		{
			name: "lessons query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(lessonsQuery).WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "lesson scan error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title", "difficulty", "content", "code_example"}).
					AddRow("invalid", "Title", "beginner", "Content", "Code")
				mock.ExpectQuery(lessonsQuery).WillReturnRows(rows)
			},
			expectedError: true,
		},
		{
			name: "lesson rows error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := lessonRows().RowError(1, errors.New("row error"))
				mock.ExpectQuery(lessonsQuery).WillReturnRows(rows)
			},
			expectedError: true,
		},
		{
			name: "key concepts query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(lessonsQuery).WillReturnRows(lessonRows())
				mock.ExpectQuery(keyConceptsQuery).WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			lessons, err := repo.LoadLessons(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, lessons)
			} else {
				require.NoError(t, err)
				tt.validate(t, lessons)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func quizRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "lesson_id", "title"}).
		AddRow(1, 1, "Classes and Objects Quiz").
		AddRow(2, 2, "Inheritance Quiz")
}

func questionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"quiz_id", "id", "question", "correct_answer", "explanation"}).
		AddRow(1, 1, "What is a class?", 1, "A class is a blueprint.").
		AddRow(1, 2, "What is an object?", 0, "An object is an instance.").
		AddRow(2, 1, "What is inheritance?", 2, "Inheritance reuses code.")
}

func TestContentRepository_LoadQuizzes(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		validate      func(*testing.T, []models.Quiz)
	}{
		{
			name: "success with questions sharing ids across quizzes",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(quizzesQuery).WillReturnRows(quizRows())
				mock.ExpectQuery(questionsQuery).WillReturnRows(questionRows())
				mock.ExpectQuery(optionsQuery).WillReturnRows(
					sqlmock.NewRows([]string{"quiz_id", "question_id", "option_text"}).
						AddRow(1, 1, "An instance").
						AddRow(1, 1, "A blueprint").
						AddRow(1, 2, "An instance").
						AddRow(1, 2, "A function").
						AddRow(2, 1, "Copying").
						AddRow(2, 1, "Importing").
						AddRow(2, 1, "Reusing a parent class"),
				)
			},
			validate: func(t *testing.T, quizzes []models.Quiz) {
				require.Len(t, quizzes, 2)
				assert.Equal(t, 1, quizzes[0].LessonID)
				require.Len(t, quizzes[0].Questions, 2)
				assert.Equal(t, []string{"An instance", "A blueprint"}, quizzes[0].Questions[0].Options)
				assert.Equal(t, 1, quizzes[0].Questions[0].CorrectAnswer)
				assert.Equal(t, []string{"An instance", "A function"}, quizzes[0].Questions[1].Options)
				require.Len(t, quizzes[1].Questions, 1)
				assert.Equal(t, 1, quizzes[1].Questions[0].ID)
				assert.Equal(t, []string{"Copying", "Importing", "Reusing a parent class"}, quizzes[1].Questions[0].Options)
				assert.Equal(t, "Inheritance reuses code.", quizzes[1].Questions[0].Explanation)
			},
		},
		{
			name: "quiz without questions and orphan rows",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(quizzesQuery).WillReturnRows(quizRows())
				mock.ExpectQuery(questionsQuery).WillReturnRows(
					sqlmock.NewRows([]string{"quiz_id", "id", "question", "correct_answer", "explanation"}).
						AddRow(1, 1, "What is a class?", 0, "").
						AddRow(9, 1, "Orphan question", 0, ""),
				)
				mock.ExpectQuery(optionsQuery).WillReturnRows(
					sqlmock.NewRows([]string{"quiz_id", "question_id", "option_text"}).
						AddRow(1, 1, "A blueprint").
						AddRow(1, 7, "Orphan option"),
				)
			},
			validate: func(t *testing.T, quizzes []models.Quiz) {
				require.Len(t, quizzes, 2)
				require.Len(t, quizzes[0].Questions, 1)
				assert.Equal(t, []string{"A blueprint"}, quizzes[0].Questions[0].Options)
				assert.NotNil(t, quizzes[1].Questions)
				assert.Empty(t, quizzes[1].Questions)
			},
		},
		{
			name: "quizzes query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(quizzesQuery).WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "quiz scan error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "lesson_id", "title"}).
					AddRow("invalid", 1, "Quiz")
				mock.ExpectQuery(quizzesQuery).WillReturnRows(rows)
			},
			expectedError: true,
		},
		{
			name: "questions query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(quizzesQuery).WillReturnRows(quizRows())
				mock.ExpectQuery(questionsQuery).WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "question scan error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(quizzesQuery).WillReturnRows(quizRows())
				mock.ExpectQuery(questionsQuery).WillReturnRows(
					sqlmock.NewRows([]string{"quiz_id", "id", "question", "correct_answer", "explanation"}).
						AddRow(1, 1, "What is a class?", "invalid", ""),
				)
			},
			expectedError: true,
		},
		{
			name: "options query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(quizzesQuery).WillReturnRows(quizRows())
				mock.ExpectQuery(questionsQuery).WillReturnRows(questionRows())
				mock.ExpectQuery(optionsQuery).WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "options rows error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(quizzesQuery).WillReturnRows(quizRows())
				mock.ExpectQuery(questionsQuery).WillReturnRows(questionRows())
				mock.ExpectQuery(optionsQuery).WillReturnRows(
					sqlmock.NewRows([]string{"quiz_id", "question_id", "option_text"}).
						AddRow(1, 1, "A blueprint").
						RowError(0, errors.New("row error")),
				)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			quizzes, err := repo.LoadQuizzes(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, quizzes)
			} else {
				require.NoError(t, err)
				tt.validate(t, quizzes)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
