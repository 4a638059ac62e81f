package practice

import (
	"fmt"
	"strings"

	"github.com/abhisek/wordwise/internal/vocab"
)

// AssembleVocabulary builds a question asking for the translation of word.
// distractors are re-filtered against the answer and capped at
// MaxDistractors; fewer than MinDistractors survivors is an
// *InsufficientDataError.
func AssembleVocabulary(word vocab.Word, distractors []string) (Question, error) {
	answer := strings.TrimSpace(word.Translation)
	if answer == "" {
		return Question{}, &InsufficientDataError{Reason: fmt.Sprintf("word %q has no translation", word.Text)}
	}
	prompt := strings.TrimSpace(word.Text)
	if prompt == "" {
		return Question{}, &InsufficientDataError{Reason: fmt.Sprintf("word %d has no text", word.ID)}
	}

	ds, err := normalizeDistractors(answer, distractors)
	if err != nil {
		return Question{}, err
	}

	return Question{
		Type:        TypeVocab,
		Prompt:      prompt,
		Answer:      answer,
		Distractors: ds,
		CategoryID:  word.CategoryID,
		Difficulty:  word.Difficulty,
	}, nil
}

// AssembleCompletion builds a fill-in-the-blank question from sentence,
// hiding the token at blankIndex. The answer is that token without its
// surrounding punctuation; the punctuation stays around the marker so
// Question.Complete restores the sentence. word supplies the category and
// difficulty.
func AssembleCompletion(word vocab.Word, sentence vocab.ExampleSentence, blankIndex int, distractors []string) (Question, error) {
	tokens := Tokenize(sentence.Text)
	if blankIndex < 0 || blankIndex >= len(tokens) {
		return Question{}, &InsufficientDataError{
			Reason: fmt.Sprintf("blank index %d out of range for %d tokens", blankIndex, len(tokens)),
		}
	}

	lead, answer, tail := splitPunct(tokens[blankIndex])
	if answer == "" {
		return Question{}, &InsufficientDataError{Reason: fmt.Sprintf("token %q is only punctuation", tokens[blankIndex])}
	}

	ds, err := normalizeDistractors(answer, distractors)
	if err != nil {
		return Question{}, err
	}

	blanked := make([]string, len(tokens))
	copy(blanked, tokens)
	blanked[blankIndex] = lead + BlankMarker + tail

	return Question{
		Type:        TypeCompletion,
		Prompt:      strings.Join(blanked, " "),
		Answer:      answer,
		Distractors: ds,
		Hint:        strings.TrimSpace(sentence.Translation),
		CategoryID:  word.CategoryID,
		Difficulty:  word.Difficulty,
	}, nil
}

// normalizeDistractors copies distractors, drops anything matching answer
// and caps the result at MaxDistractors.
func normalizeDistractors(answer string, distractors []string) ([]string, error) {
	ds := SelectDistractors(answer, distractors, MaxDistractors)
	if len(ds) < MinDistractors {
		return nil, &InsufficientDataError{
			Reason: fmt.Sprintf("need %d distractors, have %d", MinDistractors, len(ds)),
		}
	}
	return ds, nil
}
