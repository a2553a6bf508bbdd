package models

// Quiz represents a set of multiple-choice questions attached to a lesson
type Quiz struct {
	ID        int            `json:"id" yaml:"id"`
	LessonID  int            `json:"lesson_id" yaml:"lesson_id"` // Not enforced against existing lessons
	Title     string         `json:"title" yaml:"title"`
	Questions []QuizQuestion `json:"questions" yaml:"questions"`
}

// Clone returns a deep copy of the quiz
func (q Quiz) Clone() Quiz {
	questions := make([]QuizQuestion, len(q.Questions))
	for i, question := range q.Questions {
		question.Options = copyStrings(question.Options)
		questions[i] = question
	}
	q.Questions = questions
	return q
}

// QuizQuestion represents a single question of a quiz
type QuizQuestion struct {
	ID            int      `json:"id" yaml:"id"` // Unique within the parent quiz only
	Question      string   `json:"question" yaml:"question"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer int      `json:"correct_answer" yaml:"correct_answer"` // Zero-based index into Options
	Explanation   string   `json:"explanation" yaml:"explanation"`
}

// CorrectOption returns the text of the correct option
func (q QuizQuestion) CorrectOption() string {
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectAnswer]
}

// QuizAnswer represents an answer to one question in a submission
type QuizAnswer struct {
	QuestionID int `json:"question_id"`
	Answer     int `json:"answer"` // Zero-based index of the chosen option
}

// QuizSubmission represents a set of answers submitted for a quiz
type QuizSubmission struct {
	Answers []QuizAnswer `json:"answers"`
}

// QuizResult represents the outcome of scoring a submission
type QuizResult struct {
	Score      int      `json:"score"`
	Total      int      `json:"total"`
	Percentage float64  `json:"percentage"`
	Passed     bool     `json:"passed"`
	Feedback   []string `json:"feedback"` // One entry per quiz question, in question order
}
