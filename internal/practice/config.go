package practice

import "log/slog"

// Config controls the behavior of the Orchestrator.
type Config struct {
	// Validators run in order on every live question; the first failure
	// discards the candidate.
	Validators []Validator

	// Random drives candidate and distractor shuffling.
	// Nil means DefaultRandom().
	Random RandomSource

	// Translator backfills missing translations for vocabulary questions.
	// Nil disables backfilling.
	Translator Translator

	// MaxSentencesPerWord bounds how many example sentences are tried for
	// one word before moving on. Zero tries them all.
	MaxSentencesPerWord int

	// Logger receives candidate skips and fallback decisions.
	// Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		Random:              DefaultRandom(),
		MaxSentencesPerWord: 10,
	}
}
