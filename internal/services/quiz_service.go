package services

import (
	"context"
	"fmt"
	"math"

	"github.com/ooplearn/backend/internal/models"
	"go.uber.org/zap"
)

// PassingThreshold is the minimum percentage of correct answers needed to pass a quiz
const PassingThreshold = 70.0

// QuizCatalog is the interface that wraps read access to the quiz collection
type QuizCatalog interface {
	// Method Quizzes returns every quiz, questions included, in collection order.
	//
	// The returned slice is a copy and may be freely modified by the caller.
	Quizzes() []models.Quiz
	// Method QuizByID returns the quiz with the given ID.
	//
	// The second return value is false when no quiz has this ID.
	QuizByID(id int) (models.Quiz, bool)
}

type quizzesService struct {
	catalog QuizCatalog
	logger  *zap.Logger
}

// NewQuizzesService creates a new quiz service
func NewQuizzesService(catalog QuizCatalog, logger *zap.Logger) *quizzesService {
	return &quizzesService{
		catalog: catalog,
		logger:  logger,
	}
}

// GetAll retrieves all quizzes in collection order
func (s *quizzesService) GetAll(ctx context.Context) ([]models.Quiz, error) {
	return s.catalog.Quizzes(), nil
}

// GetByID retrieves a quiz by its ID
//
// id must be a positive number, otherwise a validation error is returned.
// If no quiz has this ID, an error matching models.ErrQuizNotFound is returned.
func (s *quizzesService) GetByID(ctx context.Context, id int) (*models.Quiz, error) {
	if id <= 0 {
		return nil, models.NewValidationError("invalid quiz id")
	}

	quiz, ok := s.catalog.QuizByID(id)
	if !ok {
		s.logger.Debug("quiz not found", zap.Int("id", id))
		return nil, fmt.Errorf("failed to get quiz %d: %w", id, models.ErrQuizNotFound)
	}

	return &quiz, nil
}

// GetByLessonID retrieves all quizzes attached to a lesson
//
// A lesson without quizzes (or an unknown lesson) yields an empty slice, not an error.
func (s *quizzesService) GetByLessonID(ctx context.Context, lessonID int) ([]models.Quiz, error) {
	quizzes := make([]models.Quiz, 0)
	for _, quiz := range s.catalog.Quizzes() {
		if quiz.LessonID == lessonID {
			quizzes = append(quizzes, quiz)
		}
	}
	return quizzes, nil
}

// Submit scores a submission against the quiz with the given ID
//
// The submission is validated before the quiz is looked up: the answers list must be present
// and may reference each question only once.
// Answers to questions that do not belong to the quiz are ignored.
// Questions without an answer count as incorrect.
func (s *quizzesService) Submit(ctx context.Context, quizID int, submission models.QuizSubmission) (*models.QuizResult, error) {
	if quizID <= 0 {
		return nil, models.NewValidationError("invalid quiz id")
	}
	if err := validateSubmission(submission); err != nil {
		return nil, err
	}

	quiz, ok := s.catalog.QuizByID(quizID)
	if !ok {
		return nil, fmt.Errorf("failed to submit quiz %d: %w", quizID, models.ErrQuizNotFound)
	}

	result := scoreQuiz(quiz, submission.Answers)

	s.logger.Debug("quiz submitted",
		zap.Int("quiz_id", quizID),
		zap.Int("score", result.Score),
		zap.Int("total", result.Total),
		zap.Bool("passed", result.Passed),
	)

	return result, nil
}

// validateSubmission checks the shape of a submission
func validateSubmission(submission models.QuizSubmission) error {
	if submission.Answers == nil {
		return models.NewValidationError("answers field is required")
	}

	seen := make(map[int]struct{}, len(submission.Answers))
	for _, answer := range submission.Answers {
		if _, ok := seen[answer.QuestionID]; ok {
			return models.NewValidationError(fmt.Sprintf("duplicate answer for question %d", answer.QuestionID))
		}
		seen[answer.QuestionID] = struct{}{}
	}

	return nil
}

// scoreQuiz grades answers against the questions of a quiz.
//
// Scoring and feedback are driven by the quiz question order, so the order of answers does not matter.
func scoreQuiz(quiz models.Quiz, answers []models.QuizAnswer) *models.QuizResult {
	submitted := make(map[int]int, len(answers))
	for _, answer := range answers {
		submitted[answer.QuestionID] = answer.Answer
	}

	result := &models.QuizResult{
		Total:    len(quiz.Questions),
		Feedback: make([]string, 0, len(quiz.Questions)),
	}

	for _, question := range quiz.Questions {
		answer, answered := submitted[question.ID]
		switch {
		case !answered:
			result.Feedback = append(result.Feedback, fmt.Sprintf("Q%d: ✗ Not answered. The correct answer is %q. %s",
				question.ID, question.CorrectOption(), question.Explanation))
		case answer == question.CorrectAnswer:
			result.Score++
			result.Feedback = append(result.Feedback, fmt.Sprintf("Q%d: ✓ Correct! %s", question.ID, question.Explanation))
		default:
			result.Feedback = append(result.Feedback, fmt.Sprintf("Q%d: ✗ Incorrect. The correct answer is %q. %s",
				question.ID, question.CorrectOption(), question.Explanation))
		}
	}

	result.Percentage = percentage(result.Score, result.Total)
	result.Passed = result.Total > 0 && result.Percentage >= PassingThreshold

	return result
}

// percentage returns score/total*100 rounded to two decimals, 0 for an empty quiz
func percentage(score, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(score)/float64(total)*10000) / 100
}
