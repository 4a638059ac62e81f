package seed

import (
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"

	"github.com/abhisek/wordwise/internal/vocab"
)

var (
	tokenizerOnce sync.Once
	tokenizer     *sentences.DefaultSentenceTokenizer
	tokenizerErr  error
)

// englishTokenizer returns the shared Punkt tokenizer trained on the
// bundled English model.
func englishTokenizer() (*sentences.DefaultSentenceTokenizer, error) {
	tokenizerOnce.Do(func() {
		data, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			tokenizerErr = fmt.Errorf("load punkt model: %w", err)
			return
		}
		storage, err := sentences.LoadTraining(data)
		if err != nil {
			tokenizerErr = fmt.Errorf("load punkt training: %w", err)
			return
		}
		tokenizer = sentences.NewSentenceTokenizer(storage)
	})
	return tokenizer, tokenizerErr
}

// SplitSentences segments a passage into trimmed, non-empty sentences.
// Abbreviations such as "Mr." do not end a sentence.
func SplitSentences(passage string) ([]string, error) {
	tok, err := englishTokenizer()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, s := range tok.Tokenize(passage) {
		text := strings.Join(strings.Fields(s.Text), " ")
		if text != "" {
			out = append(out, text)
		}
	}
	return out, nil
}

// SentencesWithWord returns the sentences of passage that contain word.
func SentencesWithWord(passage, word string) ([]string, error) {
	all, err := SplitSentences(passage)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, s := range all {
		if vocab.ContainsWord(s, word) {
			out = append(out, s)
		}
	}
	return out, nil
}
