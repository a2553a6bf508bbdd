package services

import (
	"slices"

	"github.com/ooplearn/backend/internal/models"
)

// mockCatalog is a mock implementation of LessonCatalog and QuizCatalog
type mockCatalog struct {
	lessons []models.Lesson
	quizzes []models.Quiz
	calls   int
}

func (m *mockCatalog) Lessons() []models.Lesson {
	m.calls++
	return slices.Clone(m.lessons)
}

func (m *mockCatalog) LessonByID(id int) (models.Lesson, bool) {
	m.calls++
	for _, lesson := range m.lessons {
		if lesson.ID == id {
			return lesson, true
		}
	}
	return models.Lesson{}, false
}

func (m *mockCatalog) Quizzes() []models.Quiz {
	m.calls++
	return slices.Clone(m.quizzes)
}

func (m *mockCatalog) QuizByID(id int) (models.Quiz, bool) {
	m.calls++
	for _, quiz := range m.quizzes {
		if quiz.ID == id {
			return quiz, true
		}
	}
	return models.Quiz{}, false
}

func testLessons() []models.Lesson {
	return []models.Lesson{
		{
			ID:          1,
			Title:       "Introduction to Classes and Objects",
			Difficulty:  models.DifficultyBeginner,
			Content:     "Classes are blueprints for creating objects.",
			KeyConcepts: []string{"Class", "Object", "Constructor"},
		},
		{
			ID:          2,
			Title:       "Inheritance",
			Difficulty:  models.DifficultyIntermediate,
			Content:     "A child class inherits attributes and methods.",
			KeyConcepts: []string{"Inheritance", "Parent Class", "Child Class", "super()"},
		},
		{
			ID:          3,
			Title:       "Encapsulation",
			Difficulty:  models.DifficultyIntermediate,
			Content:     "Bundling data and methods into a single unit.",
			KeyConcepts: []string{"Private", "Protected", "Public"},
		},
		{
			ID:          4,
			Title:       "Polymorphism",
			Difficulty:  models.DifficultyAdvanced,
			Content:     "Many forms behind a common interface.",
			KeyConcepts: []string{"Method Overriding", "Interface"},
		},
		{
			ID:          5,
			Title:       "Abstraction",
			Difficulty:  models.DifficultyAdvanced,
			Content:     "Hide implementation details.",
			KeyConcepts: []string{"Abstract Class", "Interface"},
		},
	}
}

func testQuizzes() []models.Quiz {
	return []models.Quiz{
		{
			ID:       1,
			LessonID: 1,
			Title:    "Classes and Objects Quiz",
			Questions: []models.QuizQuestion{
				{ID: 1, Question: "What is a class?", Options: []string{"An instance", "A blueprint", "A method"}, CorrectAnswer: 1, Explanation: "A class is a blueprint."},
				{ID: 2, Question: "What is an object?", Options: []string{"A variable", "A function", "An instance of a class"}, CorrectAnswer: 2, Explanation: "An object is an instance."},
			},
		},
		{
			ID:       2,
			LessonID: 2,
			Title:    "Inheritance Quiz",
			Questions: []models.QuizQuestion{
				{ID: 1, Question: "What is inheritance?", Options: []string{"Copying", "Reuse of a parent class"}, CorrectAnswer: 1, Explanation: "Children inherit from parents."},
				{ID: 2, Question: "Benefit?", Options: []string{"Longer code", "Slower", "Reusability"}, CorrectAnswer: 2, Explanation: "Reusability."},
				{ID: 3, Question: "Keyword?", Options: []string{"super()", "this"}, CorrectAnswer: 0, Explanation: "super() calls the parent."},
			},
		},
		{
			ID:        3,
			LessonID:  1,
			Title:     "Empty Quiz",
			Questions: []models.QuizQuestion{},
		},
	}
}
