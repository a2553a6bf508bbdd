package models

import (
	"fmt"
	"strings"
)

// Difficulty represents the difficulty level of a lesson
// Used for filtering lessons and ordering the learning path
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties lists all difficulty levels from the easiest to the hardest
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// ParseDifficulty converts a raw string into a Difficulty.
//
// The comparison ignores case and surrounding whitespace.
// Any value other than "beginner", "intermediate" or "advanced" results in a validation error.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", NewValidationError(fmt.Sprintf("invalid difficulty: %s, must be 'beginner', 'intermediate' or 'advanced'", s))
	}
	return d, nil
}

// Valid reports whether d is one of the known difficulty levels
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Rank returns the position of d in Difficulties, or -1 for unknown values
func (d Difficulty) Rank() int {
	for i, known := range Difficulties {
		if d == known {
			return i
		}
	}
	return -1
}

// Lesson represents a single OOP lesson
type Lesson struct {
	ID          int        `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	Content     string     `json:"content" yaml:"content"`
	CodeExample string     `json:"code_example" yaml:"code_example"`
	KeyConcepts []string   `json:"key_concepts" yaml:"key_concepts"`
}

// Clone returns a copy of the lesson that shares no slices with the original.
// A nil key concept list becomes an empty one.
func (l Lesson) Clone() Lesson {
	l.KeyConcepts = copyStrings(l.KeyConcepts)
	return l
}

// copyStrings returns a non-nil copy of s
func copyStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// LessonSearchResult represents a lesson matched by a keyword search
type LessonSearchResult struct {
	ID               int        `json:"id"`
	Title            string     `json:"title"`
	Difficulty       Difficulty `json:"difficulty"`
	MatchingConcepts []string   `json:"matching_concepts"` // Key concepts containing the keyword, may be empty
}
