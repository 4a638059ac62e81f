package practice

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// stopWords are never blanked: hiding them makes the answer ambiguous.
var stopWords = map[string]struct{}{
	"a": {}, "the": {}, "is": {}, "are": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "with": {},
}

// minBlankRunes is the shortest word core that may be blanked, exclusive.
const minBlankRunes = 2

// Tokenize splits a sentence on whitespace. Punctuation stays attached.
func Tokenize(sentence string) []string {
	return strings.Fields(sentence)
}

// SelectBlankIndex returns the index of the first token worth blanking:
// longer than two letters once punctuation is removed and not a stop word.
// ok is false when no token qualifies.
func SelectBlankIndex(tokens []string) (index int, ok bool) {
	for i, tok := range tokens {
		core := trimPunct(tok)
		if utf8.RuneCountInString(core) <= minBlankRunes {
			continue
		}
		if IsStopWord(core) {
			continue
		}
		return i, true
	}
	return -1, false
}

// IsStopWord reports whether word, ignoring case and punctuation, is in the
// fixed stop list.
func IsStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(trimPunct(word))]
	return ok
}

// trimPunct strips leading and trailing punctuation.
func trimPunct(tok string) string {
	return strings.TrimFunc(tok, unicode.IsPunct)
}

// splitPunct separates a token into leading punctuation, the word core and
// trailing punctuation, e.g. `"noon."` → (`"`, "noon", `."`).
func splitPunct(tok string) (lead, core, tail string) {
	rest := strings.TrimLeftFunc(tok, unicode.IsPunct)
	lead = tok[:len(tok)-len(rest)]
	core = strings.TrimRightFunc(rest, unicode.IsPunct)
	tail = rest[len(core):]
	return lead, core, tail
}
