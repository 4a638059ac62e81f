// Package translate asks an LLM for the content gaps the store cannot fill
// on its own: missing word translations and missing example sentences.
package translate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/abhisek/wordwise/internal/llm"
	"github.com/abhisek/wordwise/internal/vocab"
)

// ErrEmptyResult is returned when the model answers with nothing usable.
var ErrEmptyResult = errors.New("translate: empty result")

// Config holds generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxSentences caps ExampleSentences regardless of the requested count.
	MaxSentences int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    512,
		Temperature:  0.2,
		MaxSentences: 5,
	}
}

// Service wraps an llm.Provider. It satisfies practice.Translator.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Service.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type translationOutput struct {
	Translation string `json:"translation"`
}

// Translate returns text rendered in the language to. from and to are
// ISO 639-1 codes; an empty code is sent as "unspecified".
func (s *Service) Translate(ctx context.Context, text, from, to string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("translate: text is empty")
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeTranslate)

	userMsg, err := render(translateTemplate, struct{ Text, From, To string }{text, langOrUnspecified(from), langOrUnspecified(to)})
	if err != nil {
		return "", fmt.Errorf("build translation prompt: %w", err)
	}

	req := llm.NewRequest(translateSystemPrompt, userMsg, TranslationSchema)
	req.MaxTokens = s.cfg.MaxTokens
	req.Temperature = s.cfg.Temperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("LLM translation failed: %w", err)
	}

	var out translationOutput
	if err := resp.Decode(&out); err != nil {
		return "", err
	}
	tr := strings.TrimSpace(out.Translation)
	if tr == "" {
		return "", ErrEmptyResult
	}
	return tr, nil
}

type sentencesOutput struct {
	Sentences []struct {
		Text        string `json:"text"`
		Translation string `json:"translation"`
	} `json:"sentences"`
}

// ExampleSentences generates up to n example sentences for w. Sentences
// that do not contain the word are dropped, as are duplicates.
func (s *Service) ExampleSentences(ctx context.Context, w vocab.Word, n int) ([]vocab.ExampleSentence, error) {
	if strings.TrimSpace(w.Text) == "" {
		return nil, fmt.Errorf("translate: word is empty")
	}
	if n <= 0 {
		return nil, nil
	}
	if s.cfg.MaxSentences > 0 {
		n = min(n, s.cfg.MaxSentences)
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeExampleSentences)

	userMsg, err := render(sentencesTemplate, struct {
		Word, Translation, From, To string
		Difficulty                  vocab.Difficulty
		Count                       int
	}{w.Text, w.Translation, langOrUnspecified(w.SourceLang), langOrUnspecified(w.TargetLang), w.Difficulty, n})
	if err != nil {
		return nil, fmt.Errorf("build sentences prompt: %w", err)
	}

	req := llm.NewRequest(sentencesSystemPrompt, userMsg, SentencesSchema)
	req.MaxTokens = s.cfg.MaxTokens
	req.Temperature = s.cfg.Temperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM sentence generation failed: %w", err)
	}

	var out sentencesOutput
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var result []vocab.ExampleSentence
	for _, sent := range out.Sentences {
		text := strings.TrimSpace(sent.Text)
		key := strings.ToLower(text)
		if text == "" || seen[key] || !vocab.ContainsWord(text, w.Text) {
			continue
		}
		seen[key] = true
		result = append(result, vocab.ExampleSentence{
			Text:        text,
			Translation: strings.TrimSpace(sent.Translation),
			WordID:      w.ID,
		})
		if len(result) == n {
			break
		}
	}
	if len(result) == 0 {
		return nil, ErrEmptyResult
	}
	return result, nil
}

func langOrUnspecified(code string) string {
	if code == "" {
		return "unspecified"
	}
	return code
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const translateSystemPrompt = `You translate vocabulary for a language-learning app.

Instructions:
- Translate the term only. Do not add explanations, alternatives or grammatical notes.
- Keep the part of speech of the original.
- Nouns in languages with grammatical gender include the article, e.g. "der Zug".`

var translateTemplate = template.Must(template.New("translate").Parse(`Source language: {{.From}}
Target language: {{.To}}
Term: {{.Text}}`))

const sentencesSystemPrompt = `You write example sentences for a language-learning app.

Instructions:
- Every sentence must contain the word exactly as given, as a separate word.
- Keep sentences short (5 to 12 words) and suited to the difficulty level.
- Provide a natural translation for every sentence.
- Do not number the sentences or wrap them in quotes.`

var sentencesTemplate = template.Must(template.New("sentences").Parse(`Word: {{.Word}}{{if .Translation}} ({{.Translation}}){{end}}
Source language: {{.From}}
Target language: {{.To}}
Difficulty: {{.Difficulty}}
Number of sentences: {{.Count}}`))
