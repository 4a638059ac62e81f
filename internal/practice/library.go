package practice

import (
	"context"

	"github.com/abhisek/wordwise/internal/vocab"
)

// CategoryFinder resolves a category by name.
type CategoryFinder interface {
	// FindCategoryByName returns nil, nil when no category has that name.
	FindCategoryByName(ctx context.Context, name string) (*vocab.Category, error)
}

// WordPool lists the candidate words for a practice run.
type WordPool interface {
	FindWordsByCategoryAndDifficulty(ctx context.Context, categoryID int, difficulty vocab.Difficulty) ([]vocab.Word, error)
}

// SentencePool lists the example sentences of a word.
type SentencePool interface {
	FindSentencesByWord(ctx context.Context, wordID int) ([]vocab.ExampleSentence, error)
}

// Library is the read side of the content store.
type Library interface {
	CategoryFinder
	WordPool
	SentencePool
}

// Translator fills in a missing translation. It is optional; without one,
// untranslated words are skipped for vocabulary questions.
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}
