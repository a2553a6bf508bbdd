package services

import (
	"context"
	"sort"

	"github.com/ooplearn/backend/internal/models"
)

// timeEstimates holds the expected time to complete a lesson of each difficulty
var timeEstimates = map[models.Difficulty]string{
	models.DifficultyBeginner:     "30 minutes",
	models.DifficultyIntermediate: "40 minutes",
	models.DifficultyAdvanced:     "45 minutes",
}

type progressService struct {
	lessons LessonCatalog
	quizzes QuizCatalog
}

// NewProgressService creates a new progress service
func NewProgressService(lessons LessonCatalog, quizzes QuizCatalog) *progressService {
	return &progressService{
		lessons: lessons,
		quizzes: quizzes,
	}
}

// GetSummary counts the available lessons and quizzes
//
// Every difficulty level is present in LessonsByDifficulty, even with zero lessons.
func (s *progressService) GetSummary(ctx context.Context) (*models.ProgressSummary, error) {
	lessons := s.lessons.Lessons()
	quizzes := s.quizzes.Quizzes()

	summary := &models.ProgressSummary{
		TotalLessons:        len(lessons),
		LessonsByDifficulty: make(map[models.Difficulty]int, len(models.Difficulties)),
		TotalQuizzes:        len(quizzes),
	}
	for _, d := range models.Difficulties {
		summary.LessonsByDifficulty[d] = 0
	}
	for _, lesson := range lessons {
		summary.LessonsByDifficulty[lesson.Difficulty]++
	}
	for _, quiz := range quizzes {
		summary.TotalQuizQuestions += len(quiz.Questions)
	}

	return summary, nil
}

// GetLearningPath builds the recommended order of lessons
//
// Lessons are ordered from beginner to advanced, lessons of the same difficulty keep collection order.
func (s *progressService) GetLearningPath(ctx context.Context) (*models.LearningPath, error) {
	lessons := s.lessons.Lessons()
	sort.SliceStable(lessons, func(i, j int) bool {
		return lessons[i].Difficulty.Rank() < lessons[j].Difficulty.Rank()
	})

	path := &models.LearningPath{
		Title:       "Complete OOP Learning Path",
		Description: "A recommended progression to learn OOP concepts",
		Path:        make([]models.LearningPathStep, 0, len(lessons)),
	}
	for i, lesson := range lessons {
		path.Path = append(path.Path, models.LearningPathStep{
			Step:         i + 1,
			LessonID:     lesson.ID,
			Title:        lesson.Title,
			Difficulty:   lesson.Difficulty,
			TimeEstimate: timeEstimates[lesson.Difficulty],
		})
	}

	return path, nil
}
