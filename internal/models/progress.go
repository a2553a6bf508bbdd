package models

// ProgressSummary represents the overall amount of available content
type ProgressSummary struct {
	TotalLessons        int                `json:"total_lessons"`
	LessonsByDifficulty map[Difficulty]int `json:"lessons_by_difficulty"`
	TotalQuizzes        int                `json:"total_quizzes"`
	TotalQuizQuestions  int                `json:"total_quiz_questions"`
}

// LearningPath represents the recommended order of lessons
type LearningPath struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Path        []LearningPathStep `json:"path"`
}

// LearningPathStep represents one lesson in a learning path
type LearningPathStep struct {
	Step         int        `json:"step"`
	LessonID     int        `json:"lesson_id"`
	Title        string     `json:"title"`
	Difficulty   Difficulty `json:"difficulty"`
	TimeEstimate string     `json:"time_estimate"`
}
