// Package practice generates quiz questions from a vocabulary pool.
//
// The pure building blocks (SelectDistractors, SelectBlankIndex and the
// Assemble functions) are exported for direct use. The Orchestrator ties
// them to a Library and degrades to GenerateFallback whenever live data
// cannot produce a usable question.
package practice

import (
	"strings"

	"github.com/abhisek/wordwise/internal/vocab"
)

// BlankMarker replaces the hidden word in a completion prompt.
const BlankMarker = "_____"

const (
	// MinDistractors is the fewest wrong answers a question may carry.
	MinDistractors = 3

	// MaxDistractors is the most wrong answers a question may carry.
	MaxDistractors = 4
)

// QuestionType selects the kind of question generated.
type QuestionType string

const (
	// TypeVocab asks for the translation of a word.
	TypeVocab QuestionType = "VOCAB"

	// TypeCompletion asks for the word missing from a sentence.
	TypeCompletion QuestionType = "COMPLETION"
)

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	return t == TypeVocab || t == TypeCompletion
}

// ParseQuestionType accepts "vocab" or "completion" in any casing.
func ParseQuestionType(s string) (QuestionType, error) {
	t := QuestionType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", &InvalidArgumentError{Field: "type", Message: "must be vocab or completion, got " + quote(s)}
	}
	return t, nil
}

// Question is one multiple-choice item. It lives only for one practice run.
type Question struct {
	Type QuestionType

	// Prompt is the word to translate (vocab) or a sentence containing
	// exactly one BlankMarker (completion).
	Prompt string

	// Answer is the correct option.
	Answer string

	// Distractors are the wrong options, 3 or 4 of them, none equal to
	// Answer or to each other under case-insensitive comparison.
	Distractors []string

	// Hint is the translated sentence for completion questions, if known.
	Hint string

	CategoryID int
	Category   string
	Difficulty vocab.Difficulty

	// Fallback is set on questions built from the sample tables rather
	// than live content. Callers should tell the learner.
	Fallback bool
}

// Options returns the answer followed by the distractors. Callers shuffle
// before display.
func (q Question) Options() []string {
	out := make([]string, 0, len(q.Distractors)+1)
	out = append(out, q.Answer)
	out = append(out, q.Distractors...)
	return out
}

// IsCorrect reports whether choice matches the answer, ignoring case and
// surrounding space.
func (q Question) IsCorrect(choice string) bool {
	return normalize(choice) == normalize(q.Answer)
}

// Complete substitutes answer for the blank marker. Vocabulary prompts are
// returned unchanged.
func (q Question) Complete(answer string) string {
	return strings.Replace(q.Prompt, BlankMarker, answer, 1)
}

// CountFallback returns how many questions came from the sample tables.
func CountFallback(qs []Question) int {
	n := 0
	for _, q := range qs {
		if q.Fallback {
			n++
		}
	}
	return n
}

func (q Question) clone() Question {
	q.Distractors = append([]string(nil), q.Distractors...)
	return q
}

// normalize is the comparison key used for answers and distractors.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func quote(s string) string { return `"` + s + `"` }
