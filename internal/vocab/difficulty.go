package vocab

import (
	"fmt"
	"strings"
)

// Difficulty is the level a word is taught at.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Difficulties lists every level in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

func (d Difficulty) String() string { return string(d) }

// ParseDifficulty accepts any casing of "easy", "medium" or "hard".
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToUpper(trimmed(s)))
	if !d.Valid() {
		return "", fmt.Errorf("invalid difficulty %q: must be easy, medium or hard", s)
	}
	return d, nil
}

func trimmed(s string) string { return strings.TrimSpace(s) }
