package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ooplearn/backend/internal/models"
	"go.uber.org/zap"
)

type contentRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewContentRepository creates a new repository reading lessons and quizzes from MySQL
func NewContentRepository(db *sql.DB, logger *zap.Logger) *contentRepository {
	return &contentRepository{
		db:     db,
		logger: logger,
	}
}

// questionKey identifies a question, question ids are only unique within a quiz
type questionKey struct {
	quizID     int
	questionID int
}

// Method LoadLessons is a content source implementation for retrieving all lessons with their key concepts.
//
// Lessons are returned ordered by id, key concepts by their position.
func (r *contentRepository) LoadLessons(ctx context.Context) ([]models.Lesson, error) {
	query := `
		SELECT id, title, difficulty, content, code_example
		FROM lessons
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query lessons", zap.Error(err))
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	lessons := make([]models.Lesson, 0)
	index := make(map[int]int)
	for rows.Next() {
		var lesson models.Lesson
		var difficulty string
		if err := rows.Scan(&lesson.ID, &lesson.Title, &difficulty, &lesson.Content, &lesson.CodeExample); err != nil {
			r.logger.Error("failed to scan lesson", zap.Error(err))
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lesson.Difficulty = models.Difficulty(difficulty)
		lesson.KeyConcepts = make([]string, 0)
		index[lesson.ID] = len(lessons)
		lessons = append(lessons, lesson)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating lesson rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating lesson rows: %w", err)
	}
	rows.Close()

	if err := r.attachKeyConcepts(ctx, lessons, index); err != nil {
		return nil, err
	}

	return lessons, nil
}

// attachKeyConcepts fills key concepts of already loaded lessons
func (r *contentRepository) attachKeyConcepts(ctx context.Context, lessons []models.Lesson, index map[int]int) error {
	query := `
		SELECT lesson_id, concept
		FROM lesson_key_concepts
		ORDER BY lesson_id, position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query key concepts", zap.Error(err))
		return fmt.Errorf("failed to query key concepts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var lessonID int
		var concept string
		if err := rows.Scan(&lessonID, &concept); err != nil {
			r.logger.Error("failed to scan key concept", zap.Error(err))
			return fmt.Errorf("failed to scan key concept: %w", err)
		}
		i, ok := index[lessonID]
		if !ok {
			r.logger.Warn("key concept references unknown lesson", zap.Int("lessonId", lessonID))
			continue
		}
		lessons[i].KeyConcepts = append(lessons[i].KeyConcepts, concept)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating key concept rows", zap.Error(err))
		return fmt.Errorf("error iterating key concept rows: %w", err)
	}

	return nil
}

// Method LoadQuizzes is a content source implementation for retrieving all quizzes with their questions and options.
//
// Quizzes are returned ordered by id, questions and options by their position.
func (r *contentRepository) LoadQuizzes(ctx context.Context) ([]models.Quiz, error) {
	query := `
		SELECT id, lesson_id, title
		FROM quizzes
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query quizzes", zap.Error(err))
		return nil, fmt.Errorf("failed to query quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := make([]models.Quiz, 0)
	index := make(map[int]int)
	for rows.Next() {
		var quiz models.Quiz
		if err := rows.Scan(&quiz.ID, &quiz.LessonID, &quiz.Title); err != nil {
			r.logger.Error("failed to scan quiz", zap.Error(err))
			return nil, fmt.Errorf("failed to scan quiz: %w", err)
		}
		quiz.Questions = make([]models.QuizQuestion, 0)
		index[quiz.ID] = len(quizzes)
		quizzes = append(quizzes, quiz)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating quiz rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating quiz rows: %w", err)
	}
	rows.Close()

	if err := r.attachQuestions(ctx, quizzes, index); err != nil {
		return nil, err
	}

	return quizzes, nil
}

// attachQuestions fills questions of already loaded quizzes and then their options
func (r *contentRepository) attachQuestions(ctx context.Context, quizzes []models.Quiz, index map[int]int) error {
	query := `
		SELECT quiz_id, id, question, correct_answer, explanation
		FROM quiz_questions
		ORDER BY quiz_id, position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query quiz questions", zap.Error(err))
		return fmt.Errorf("failed to query quiz questions: %w", err)
	}
	defer rows.Close()

	// Position of a question inside its quiz
	questionIndex := make(map[questionKey]int)
	for rows.Next() {
		var quizID int
		var question models.QuizQuestion
		if err := rows.Scan(&quizID, &question.ID, &question.Question, &question.CorrectAnswer, &question.Explanation); err != nil {
			r.logger.Error("failed to scan quiz question", zap.Error(err))
			return fmt.Errorf("failed to scan quiz question: %w", err)
		}
		i, ok := index[quizID]
		if !ok {
			r.logger.Warn("question references unknown quiz", zap.Int("quizId", quizID))
			continue
		}
		question.Options = make([]string, 0)
		questionIndex[questionKey{quizID: quizID, questionID: question.ID}] = len(quizzes[i].Questions)
		quizzes[i].Questions = append(quizzes[i].Questions, question)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating quiz question rows", zap.Error(err))
		return fmt.Errorf("error iterating quiz question rows: %w", err)
	}
	rows.Close()

	return r.attachOptions(ctx, quizzes, index, questionIndex)
}

// attachOptions fills answer options of already loaded questions
func (r *contentRepository) attachOptions(ctx context.Context, quizzes []models.Quiz, index map[int]int, questionIndex map[questionKey]int) error {
	query := `
		SELECT quiz_id, question_id, option_text
		FROM quiz_question_options
		ORDER BY quiz_id, question_id, position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query question options", zap.Error(err))
		return fmt.Errorf("failed to query question options: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key questionKey
		var option string
		if err := rows.Scan(&key.quizID, &key.questionID, &option); err != nil {
			r.logger.Error("failed to scan question option", zap.Error(err))
			return fmt.Errorf("failed to scan question option: %w", err)
		}
		qi, ok := questionIndex[key]
		if !ok {
			r.logger.Warn("option references unknown question",
				zap.Int("quizId", key.quizID),
				zap.Int("questionId", key.questionID),
			)
			continue
		}
		question := &quizzes[index[key.quizID]].Questions[qi]
		question.Options = append(question.Options, option)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating question option rows", zap.Error(err))
		return fmt.Errorf("error iterating question option rows: %w", err)
	}

	return nil
}
