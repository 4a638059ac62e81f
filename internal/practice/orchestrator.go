package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/abhisek/wordwise/internal/vocab"
)

// Request describes one practice run.
type Request struct {
	CategoryName string
	Difficulty   vocab.Difficulty
	Type         QuestionType
	Count        int
}

func (r Request) validate() error {
	if r.Count <= 0 {
		return &InvalidArgumentError{Field: "count", Message: fmt.Sprintf("must be at least 1, got %d", r.Count)}
	}
	if !r.Difficulty.Valid() {
		return &InvalidArgumentError{Field: "difficulty", Message: fmt.Sprintf("must be EASY, MEDIUM or HARD, got %q", r.Difficulty)}
	}
	if !r.Type.Valid() {
		return &InvalidArgumentError{Field: "type", Message: fmt.Sprintf("must be VOCAB or COMPLETION, got %q", r.Type)}
	}
	return nil
}

// Orchestrator turns a Library into practice questions. It keeps no state
// between calls and is safe for concurrent use.
type Orchestrator struct {
	lib    Library
	config Config
	random RandomSource
	log    *slog.Logger
}

// New creates an Orchestrator reading from lib.
func New(lib Library, cfg Config) *Orchestrator {
	o := &Orchestrator{lib: lib, config: cfg, random: cfg.Random, log: cfg.Logger}
	if o.random == nil {
		o.random = DefaultRandom()
	}
	if o.log == nil {
		o.log = slog.New(slog.DiscardHandler)
	}
	return o
}

// GeneratePractice returns exactly req.Count questions. Live questions come
// first; whatever the library cannot supply is filled from the sample
// tables and flagged Fallback. Lookup failures, missing content and
// cancellation all degrade to sample questions. The only error is an
// *InvalidArgumentError for a malformed request.
func (o *Orchestrator) GeneratePractice(ctx context.Context, req Request) ([]Question, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	live := o.generateLive(ctx, req)
	if missing := req.Count - len(live); missing > 0 {
		o.log.Info("padding practice with sample questions",
			"category", req.CategoryName, "type", req.Type, "live", len(live), "fallback", missing)
	}
	return padWithFallback(live, req, o.random), nil
}

// generateLive builds as many questions as the library allows, up to
// req.Count. It returns nil whenever the category or its words cannot be
// read.
func (o *Orchestrator) generateLive(ctx context.Context, req Request) []Question {
	cat, err := o.lib.FindCategoryByName(ctx, req.CategoryName)
	if err != nil {
		o.log.Warn("category lookup failed", "category", req.CategoryName, "err", err)
		return nil
	}
	if cat == nil {
		o.log.Debug("category not found", "category", req.CategoryName)
		return nil
	}

	words, err := o.lib.FindWordsByCategoryAndDifficulty(ctx, cat.ID, req.Difficulty)
	if err != nil {
		o.log.Warn("word lookup failed", "category", cat.Name, "difficulty", req.Difficulty, "err", err)
		return nil
	}
	if len(words) == 0 {
		o.log.Debug("empty word pool", "category", cat.Name, "difficulty", req.Difficulty)
		return nil
	}

	// At most one live question per word, however large Count is.
	limit := min(req.Count, len(words))
	out := make([]Question, 0, limit)
	prompts := make(map[string]struct{}, limit)

	var tr *translations
	if req.Type == TypeVocab {
		tr = newTranslations(o.config.Translator, words, o.log)
	}

	// Each word is tried once, in random order, so the number of
	// candidates bounds the search.
	for _, idx := range shuffled(o.random, indexes(len(words))) {
		if len(out) == req.Count {
			break
		}
		if ctx.Err() != nil {
			o.log.Debug("generation cancelled", "err", ctx.Err())
			break
		}

		var q Question
		switch req.Type {
		case TypeVocab:
			q, err = o.vocabQuestion(ctx, tr, idx)
		case TypeCompletion:
			q, err = o.completionQuestion(ctx, words, idx, cat.Name)
		}
		if err != nil {
			o.log.Debug("skipping candidate", "word", words[idx].Text, "err", err)
			continue
		}

		q.Category = cat.Name
		if verr := runValidators(o.config.Validators, q); verr != nil {
			o.log.Debug("question rejected", "word", words[idx].Text, "err", verr)
			continue
		}

		key := normalize(q.Prompt)
		if _, dup := prompts[key]; dup {
			continue
		}
		prompts[key] = struct{}{}
		out = append(out, q)
	}
	return out
}

// vocabQuestion asks for the translation of word idx, drawing distractors
// from the other words' translations. Stored translations are used first;
// the translator is asked for more only when they cannot fill the options.
func (o *Orchestrator) vocabQuestion(ctx context.Context, tr *translations, idx int) (Question, error) {
	if err := tr.ensure(ctx, idx); err != nil {
		return Question{}, err
	}
	w := tr.words[idx]

	others := shuffled(o.random, indexes(len(tr.words)))
	var pool, missing []int
	for _, i := range others {
		switch {
		case i == idx:
		case tr.words[i].HasTranslation():
			pool = append(pool, i)
		default:
			missing = append(missing, i)
		}
	}

	ds := SelectDistractors(w.Translation, tr.texts(pool), MaxDistractors)
	for _, i := range missing {
		if len(ds) == MaxDistractors {
			break
		}
		if tr.ensure(ctx, i) != nil {
			continue
		}
		pool = append(pool, i)
		ds = SelectDistractors(w.Translation, tr.texts(pool), MaxDistractors)
	}
	return AssembleVocabulary(w, ds)
}

// translations is one call's working copy of a word pool. Translations
// fetched for one word stay available as distractors for the others. The
// translator is dropped for the rest of the call after its first error.
type translations struct {
	words      []vocab.Word
	translator Translator
	log        *slog.Logger
}

func newTranslations(t Translator, words []vocab.Word, log *slog.Logger) *translations {
	return &translations{words: slices.Clone(words), translator: t, log: log}
}

// ensure makes sure word i has a translation.
func (t *translations) ensure(ctx context.Context, i int) error {
	w := &t.words[i]
	if w.HasTranslation() {
		return nil
	}
	if t.translator == nil {
		return &InsufficientDataError{Reason: fmt.Sprintf("word %q has no translation", w.Text)}
	}
	tr, err := t.translator.Translate(ctx, w.Text, w.SourceLang, w.TargetLang)
	if err == nil && strings.TrimSpace(tr) == "" {
		err = errors.New("empty translation")
	}
	if err != nil {
		t.log.Warn("translator disabled for this run", "word", w.Text, "err", err)
		t.translator = nil
		return fmt.Errorf("translate %q: %w", w.Text, err)
	}
	w.Translation = strings.TrimSpace(tr)
	return nil
}

func (t *translations) texts(idx []int) []string {
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = t.words[i].Translation
	}
	return out
}

// completionQuestion blanks a word out of one of words[idx]'s example
// sentences. Sentences are tried in random order until one has a
// blankable token and enough distractors.
func (o *Orchestrator) completionQuestion(ctx context.Context, words []vocab.Word, idx int, categoryName string) (Question, error) {
	w := words[idx]
	sentences, err := o.lib.FindSentencesByWord(ctx, w.ID)
	if err != nil {
		return Question{}, fmt.Errorf("sentences for %q: %w", w.Text, err)
	}
	if len(sentences) == 0 {
		return Question{}, &InsufficientDataError{Reason: fmt.Sprintf("word %q has no example sentences", w.Text)}
	}

	sentences = shuffled(o.random, sentences)
	if limit := o.config.MaxSentencesPerWord; limit > 0 && len(sentences) > limit {
		sentences = sentences[:limit]
	}

	var lastErr error = &InsufficientDataError{Reason: fmt.Sprintf("no sentence of %q can be blanked", w.Text)}
	for _, s := range sentences {
		tokens := Tokenize(s.Text)
		blank, ok := SelectBlankIndex(tokens)
		if !ok {
			continue
		}

		_, answer, _ := splitPunct(tokens[blank])
		pool := append(shuffled(o.random, otherTexts(words, idx)), shuffled(o.random, fallbackVocabulary(categoryName))...)
		pool = withoutSentenceWords(pool, tokens)

		q, err := AssembleCompletion(w, s, blank, SelectDistractors(answer, pool, MaxDistractors))
		if err != nil {
			lastErr = err
			continue
		}
		return q, nil
	}
	return Question{}, lastErr
}

// otherTexts lists the text of every word except words[idx].
func otherTexts(words []vocab.Word, idx int) []string {
	out := make([]string, 0, len(words))
	for i, w := range words {
		if i != idx {
			out = append(out, w.Text)
		}
	}
	return out
}

// withoutSentenceWords drops pool entries that already appear in the
// sentence, so no option can be read straight off the prompt.
func withoutSentenceWords(pool, tokens []string) []string {
	inSentence := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		inSentence[normalize(trimPunct(tok))] = struct{}{}
	}

	out := pool[:0]
	for _, p := range pool {
		if _, ok := inSentence[normalize(p)]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// padWithFallback tops live up to req.Count with sample questions for the
// same category and difficulty, repeating the sample set if it is short.
func padWithFallback(live []Question, req Request, r RandomSource) []Question {
	if len(live) >= req.Count {
		return live[:req.Count]
	}
	samples := GenerateFallback(req.CategoryName, req.Difficulty)
	order := samples
	for {
		for _, q := range order {
			if len(live) == req.Count {
				return live
			}
			live = append(live, q.clone())
		}
		// Later rounds are reshuffled, never opening with the question
		// that closed the previous one.
		order = shuffled(r, samples)
		if len(order) > 1 && order[0].Prompt == live[len(live)-1].Prompt {
			order[0], order[len(order)-1] = order[len(order)-1], order[0]
		}
	}
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
