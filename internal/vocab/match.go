package vocab

import (
	"strings"
	"unicode"
)

// ContainsWord reports whether word occurs in sentence as a whole token,
// ignoring case and surrounding punctuation. Multi-word entries such as
// "train station" match as a case-insensitive substring.
func ContainsWord(sentence, word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return false
	}
	lower := strings.ToLower(sentence)
	if strings.ContainsFunc(word, unicode.IsSpace) {
		return strings.Contains(lower, word)
	}
	for _, tok := range strings.Fields(lower) {
		if strings.TrimFunc(tok, isEdgePunct) == word {
			return true
		}
	}
	return false
}

func isEdgePunct(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}
