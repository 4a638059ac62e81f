// Package vocab holds the content entities that practice generation reads:
// categories, words and their example sentences.
package vocab

// Category groups words by theme, e.g. "Travel and Leisure".
type Category struct {
	ID   int
	Name string

	// TranslatedName is the category name in the learner's language.
	// Empty when no translation is known.
	TranslatedName string
}

// Word is a single vocabulary entry. The (Text, CategoryID) pair is unique.
type Word struct {
	ID          int
	Text        string
	Translation string

	// SourceLang and TargetLang are ISO 639-1 codes, e.g. "en" and "de".
	SourceLang string
	TargetLang string

	Difficulty Difficulty
	CategoryID int
}

// HasTranslation reports whether the word carries a non-blank translation.
func (w Word) HasTranslation() bool {
	return trimmed(w.Translation) != ""
}

// ExampleSentence is a usage example attached to a word.
// Text is never empty; Translation may be.
type ExampleSentence struct {
	ID          int
	Text        string
	Translation string
	WordID      int
}
