package practice

import (
	"strings"

	"github.com/abhisek/wordwise/internal/vocab"
)

// GenerateFallback returns the sample questions for the theme closest to
// categoryName. It never fails and never returns an empty slice. EASY
// yields only the theme's questions; MEDIUM adds one harder question and
// HARD adds two. Every question is flagged Fallback and carries the
// theme's name as its category.
func GenerateFallback(categoryName string, difficulty vocab.Difficulty) []Question {
	b := matchBucket(categoryName)

	items := b.items
	switch difficulty {
	case vocab.DifficultyMedium:
		items = append(items[:len(items):len(items)], harderItems[:1]...)
	case vocab.DifficultyHard:
		items = append(items[:len(items):len(items)], harderItems...)
	}

	if !difficulty.Valid() {
		difficulty = vocab.DifficultyEasy
	}

	out := make([]Question, 0, len(items))
	for _, it := range items {
		out = append(out, Question{
			Type:        TypeCompletion,
			Prompt:      it.prompt,
			Answer:      it.answer,
			Distractors: append([]string(nil), it.distractors...),
			Category:    b.name,
			Difficulty:  difficulty,
			Fallback:    true,
		})
	}
	return out
}

// FallbackCategory returns the theme name categoryName maps to, or
// "General" when nothing matches.
func FallbackCategory(categoryName string) string {
	return matchBucket(categoryName).name
}

// fallbackVocabulary lists every word used by the theme's sample
// questions. The orchestrator appends it to sparse distractor pools.
func fallbackVocabulary(categoryName string) []string {
	b := matchBucket(categoryName)
	var out []string
	for _, it := range b.items {
		out = append(out, it.answer)
		out = append(out, it.distractors...)
	}
	return out
}

func matchBucket(categoryName string) *bucket {
	name := strings.ToLower(strings.TrimSpace(categoryName))
	if name == "" {
		return &generalBucket
	}
	for i := range buckets {
		for _, frag := range buckets[i].fragments {
			if strings.Contains(name, frag) {
				return &buckets[i]
			}
		}
	}
	return &generalBucket
}
