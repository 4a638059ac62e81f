package practice

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/wordwise/internal/vocab"
)

// fakeLibrary is an in-memory Library. Maps are read-only after setup, so
// it is safe for concurrent use.
type fakeLibrary struct {
	categories []vocab.Category
	words      []vocab.Word
	sentences  map[int][]vocab.ExampleSentence

	categoryErr error
	wordsErr    error
	sentenceErr error
}

func (f *fakeLibrary) FindCategoryByName(_ context.Context, name string) (*vocab.Category, error) {
	if f.categoryErr != nil {
		return nil, f.categoryErr
	}
	for _, c := range f.categories {
		if strings.EqualFold(c.Name, name) {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeLibrary) FindWordsByCategoryAndDifficulty(_ context.Context, categoryID int, d vocab.Difficulty) ([]vocab.Word, error) {
	if f.wordsErr != nil {
		return nil, f.wordsErr
	}
	var out []vocab.Word
	for _, w := range f.words {
		if w.CategoryID == categoryID && w.Difficulty == d {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeLibrary) FindSentencesByWord(_ context.Context, wordID int) ([]vocab.ExampleSentence, error) {
	if f.sentenceErr != nil {
		return nil, f.sentenceErr
	}
	return f.sentences[wordID], nil
}

func word(id int, text, translation string) vocab.Word {
	return vocab.Word{
		ID:          id,
		Text:        text,
		Translation: translation,
		SourceLang:  "en",
		TargetLang:  "de",
		Difficulty:  vocab.DifficultyEasy,
		CategoryID:  1,
	}
}

// travelLibrary is the train/ticket/map pool where only "train" has a
// sentence.
func travelLibrary() *fakeLibrary {
	return &fakeLibrary{
		categories: []vocab.Category{{ID: 1, Name: "Travel and Leisure"}},
		words: []vocab.Word{
			word(1, "train", "Zug"),
			word(2, "ticket", "Fahrkarte"),
			word(3, "map", "Karte"),
		},
		sentences: map[int][]vocab.ExampleSentence{
			1: {{ID: 10, Text: "The train leaves at noon.", Translation: "Der Zug fährt mittags ab.", WordID: 1}},
		},
	}
}

// richLibrary has enough translated words for vocabulary questions and a
// sentence for each of them.
func richLibrary() *fakeLibrary {
	lib := &fakeLibrary{
		categories: []vocab.Category{{ID: 1, Name: "Everyday Life"}},
		sentences:  map[int][]vocab.ExampleSentence{},
	}
	pairs := [][2]string{
		{"house", "Haus"}, {"kitchen", "Küche"}, {"window", "Fenster"},
		{"chair", "Stuhl"}, {"table", "Tisch"}, {"garden", "Garten"},
	}
	for i, p := range pairs {
		id := i + 1
		lib.words = append(lib.words, word(id, p[0], p[1]))
		lib.sentences[id] = []vocab.ExampleSentence{
			{ID: 100 + id, Text: fmt.Sprintf("My %s is very old.", p[0]), WordID: id},
		}
	}
	return lib
}

func newTestOrchestrator(lib Library) *Orchestrator {
	cfg := DefaultConfig()
	cfg.Random = NewSeededRandom(42)
	return New(lib, cfg)
}

func TestGeneratePractice_TravelScenario(t *testing.T) {
	o := newTestOrchestrator(travelLibrary())

	qs, err := o.GeneratePractice(context.Background(), Request{
		CategoryName: "Travel and Leisure",
		Difficulty:   vocab.DifficultyEasy,
		Type:         TypeCompletion,
		Count:        1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}

	q := qs[0]
	if q.Fallback {
		t.Fatal("expected a live question")
	}
	if q.Prompt != "The _____ leaves at noon." {
		t.Errorf("prompt = %q", q.Prompt)
	}
	if q.Answer != "train" {
		t.Errorf("answer = %q, want train", q.Answer)
	}
	if q.Category != "Travel and Leisure" || q.CategoryID != 1 {
		t.Errorf("category = %q (%d)", q.Category, q.CategoryID)
	}
	if q.Hint != "Der Zug fährt mittags ab." {
		t.Errorf("hint = %q", q.Hint)
	}
	if !contains(q.Distractors, "ticket") || !contains(q.Distractors, "map") {
		t.Errorf("distractors %q should include ticket and map", q.Distractors)
	}
	if contains(q.Distractors, "train") {
		t.Errorf("distractors %q contain the answer", q.Distractors)
	}
}

func TestGeneratePractice_PadsWithFallback(t *testing.T) {
	o := newTestOrchestrator(travelLibrary())

	qs, err := o.GeneratePractice(context.Background(), Request{
		CategoryName: "Travel and Leisure",
		Difficulty:   vocab.DifficultyEasy,
		Type:         TypeCompletion,
		Count:        4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(qs))
	}
	if qs[0].Fallback {
		t.Error("live question should come first")
	}
	if got := CountFallback(qs); got != 3 {
		t.Errorf("expected 3 fallback questions, got %d", got)
	}
}

func TestGeneratePractice_CategoryNotFound(t *testing.T) {
	o := newTestOrchestrator(travelLibrary())

	qs, err := o.GeneratePractice(context.Background(), Request{
		CategoryName: "Health and Wellness",
		Difficulty:   vocab.DifficultyMedium,
		Type:         TypeVocab,
		Count:        7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 7 {
		t.Fatalf("expected 7 questions, got %d", len(qs))
	}
	for _, q := range qs {
		if !q.Fallback {
			t.Errorf("%q: expected fallback", q.Prompt)
		}
		if q.Category != "Health and Wellness" {
			t.Errorf("category = %q, want Health and Wellness", q.Category)
		}
	}
}

func TestGeneratePractice_UnknownCategoryUsesGeneralBucket(t *testing.T) {
	o := newTestOrchestrator(travelLibrary())

	qs, err := o.GeneratePractice(context.Background(), Request{
		CategoryName: "Basket Weaving",
		Difficulty:   vocab.DifficultyEasy,
		Type:         TypeCompletion,
		Count:        3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, q := range qs {
		if !q.Fallback || q.Category != "General" {
			t.Errorf("expected General fallback, got %q fallback=%v", q.Category, q.Fallback)
		}
	}
}

func TestGeneratePractice_NoSentences(t *testing.T) {
	lib := travelLibrary()
	lib.sentences = nil
	o := newTestOrchestrator(lib)

	qs, err := o.GeneratePractice(context.Background(), Request{
		CategoryName: "Travel and Leisure",
		Difficulty:   vocab.DifficultyEasy,
		Type:         TypeCompletion,
		Count:        5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(qs))
	}
	if got := CountFallback(qs); got != 5 {
		t.Errorf("expected all fallback, got %d", got)
	}
}

func TestGeneratePractice_UnblankableSentencesSkipped(t *testing.T) {
	lib := travelLibrary()
	lib.sentences[1] = []vocab.ExampleSentence{
		{ID: 11, Text: "at the", WordID: 1},
		{ID: 12, Text: "it is", WordID: 1},
	}
	o := newTestOrchestrator(lib)

	qs, err := o.GeneratePractice(context.Background(), Request{
		CategoryName: "Travel and Leisure",
		Difficulty:   vocab.DifficultyEasy,
		Type:         TypeCompletion,
		Count:        2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := CountFallback(qs); got != 2 {
		t.Errorf("expected all fallback, got %d", got)
	}
}

func TestGeneratePractice_Vocab(t *testing.T) {
	o := newTestOrchestrator(richLibrary())

	qs, err := o.GeneratePractice(context.Background(), Request{
		CategoryName: "everyday life",
		Difficulty:   vocab.DifficultyEasy,
		Type:         TypeVocab,
		Count:        4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(qs))
	}

	translations := map[string]string{}
	for _, w := range richLibrary().words {
		translations[w.Text] = w.Translation
	}

	seen := map[string]bool{}
	for _, q := range qs {
		if q.Fallback {
			t.Fatalf("%q: unexpected fallback", q.Prompt)
		}
		if q.Type != TypeVocab {
			t.Errorf("type = %q", q.Type)
		}
		if translations[q.Prompt] != q.Answer {
			t.Errorf("%q: answer %q, want %q", q.Prompt, q.Answer, translations[q.Prompt])
		}
		if len(q.Distractors) != MaxDistractors {
			t.Errorf("%q: %d distractors", q.Prompt, len(q.Distractors))
		}
		if seen[q.Prompt] {
			t.Errorf("duplicate prompt %q", q.Prompt)
		}
		seen[q.Prompt] = true
	}
}

func TestGeneratePractice_VocabPoolTooSmall(t *testing.T) {
	// Three words leave only two distractors per question.
	o := newTestOrchestrator(travelLibrary())

	qs, err := o.GeneratePractice(context.Background(), Request{
		CategoryName: "Travel and Leisure",
		Difficulty:   vocab.DifficultyEasy,
		Type:         TypeVocab,
		Count:        2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := CountFallback(qs); got != 2 {
		t.Errorf("expected all fallback, got %d", got)
	}
}

type stubTranslator struct {
	result string
	err    error

	mu    sync.Mutex
	calls []string
}

func (s *stubTranslator) Translate(_ context.Context, text, from, to string) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, fmt.Sprintf("%s:%s>%s", text, from, to))
	s.mu.Unlock()
	return s.result, s.err
}

func TestGeneratePractice_TranslatorBackfill(t *testing.T) {
	lib := richLibrary()
	lib.words[0].Translation = ""
	tr := &stubTranslator{result: "Haus"}

	cfg := DefaultConfig()
	cfg.Random = NewSeededRandom(1)
	cfg.Translator = tr
	o := New(lib, cfg)

	qs, err := o.GeneratePractice(context.Background(), Request{
		CategoryName: "Everyday Life",
		Difficulty:   vocab.DifficultyEasy,
		Type:         TypeVocab,
		Count:        6,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tr.calls) != 1 || tr.calls[0] != "house:en>de" {
		t.Fatalf("translator calls = %q", tr.calls)
	}

	found := false
	for _, q := range qs {
		if q.Prompt == "house" {
			found = true
			if q.Answer != "Haus" {
				t.Errorf("answer = %q, want Haus", q.Answer)
			}
		}
	}
	if !found {
		t.Error("expected a question for the backfilled word")
	}
}

func TestGeneratePractice_TranslatorFailureSkipsWord(t *testing.T) {
	lib := richLibrary()
	lib.words[0].Translation = ""

	cfg := DefaultConfig()
	cfg.Random = NewSeededRandom(1)
	cfg.Translator = &stubTranslator{err: errors.New("rate limited")}
	o := New(lib, cfg)

	qs, err := o.GeneratePractice(context.Background(), Request{
		CategoryName: "Everyday Life",
		Difficulty:   vocab.DifficultyEasy,
		Type:         TypeVocab,
		Count:        6,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := CountFallback(qs); got != 1 {
		t.Errorf("expected 1 fallback question, got %d", got)
	}
	for _, q := range qs {
		if q.Prompt == "house" {
			t.Error("untranslatable word should be skipped")
		}
	}
}

func TestGeneratePractice_LibraryErrorsDegrade(t *testing.T) {
	boom := errors.New("connection refused")
	tests := []struct {
		name  string
		setup func(*fakeLibrary)
	}{
		{"category lookup", func(l *fakeLibrary) { l.categoryErr = boom }},
		{"word lookup", func(l *fakeLibrary) { l.wordsErr = boom }},
		{"sentence lookup", func(l *fakeLibrary) { l.sentenceErr = boom }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := travelLibrary()
			tt.setup(lib)
			o := newTestOrchestrator(lib)

			qs, err := o.GeneratePractice(context.Background(), Request{
				CategoryName: "Travel and Leisure",
				Difficulty:   vocab.DifficultyEasy,
				Type:         TypeCompletion,
				Count:        3,
			})
			if err != nil {
				t.Fatalf("expected degradation, got error %v", err)
			}
			if len(qs) != 3 || CountFallback(qs) != 3 {
				t.Errorf("expected 3 fallback questions, got %d (%d fallback)", len(qs), CountFallback(qs))
			}
		})
	}
}

func TestGeneratePractice_CancelledContext(t *testing.T) {
	o := newTestOrchestrator(richLibrary())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	qs, err := o.GeneratePractice(ctx, Request{
		CategoryName: "Everyday Life",
		Difficulty:   vocab.DifficultyEasy,
		Type:         TypeVocab,
		Count:        3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if CountFallback(qs) != 3 {
		t.Errorf("expected all fallback after cancellation, got %d", CountFallback(qs))
	}
}

func TestGeneratePractice_DuplicatePromptsSkipped(t *testing.T) {
	lib := &fakeLibrary{
		categories: []vocab.Category{{ID: 1, Name: "Travel and Leisure"}},
		words:      []vocab.Word{word(1, "train", "Zug"), word(2, "station", "Bahnhof")},
		sentences: map[int][]vocab.ExampleSentence{
			1: {{Text: "The train leaves the station.", WordID: 1}},
			2: {{Text: "The train leaves the station.", WordID: 2}},
		},
	}
	o := newTestOrchestrator(lib)

	qs, err := o.GeneratePractice(context.Background(), Request{
		CategoryName: "Travel and Leisure",
		Difficulty:   vocab.DifficultyEasy,
		Type:         TypeCompletion,
		Count:        2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := CountFallback(qs); got != 1 {
		t.Errorf("expected 1 fallback question, got %d", got)
	}
}

func TestGeneratePractice_InvalidArguments(t *testing.T) {
	o := newTestOrchestrator(travelLibrary())
	valid := Request{CategoryName: "Travel", Difficulty: vocab.DifficultyEasy, Type: TypeVocab, Count: 1}

	tests := []struct {
		name  string
		field string
		edit  func(*Request)
	}{
		{"zero count", "count", func(r *Request) { r.Count = 0 }},
		{"negative count", "count", func(r *Request) { r.Count = -3 }},
		{"missing difficulty", "difficulty", func(r *Request) { r.Difficulty = "" }},
		{"unknown difficulty", "difficulty", func(r *Request) { r.Difficulty = "EXPERT" }},
		{"missing type", "type", func(r *Request) { r.Type = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.edit(&req)
			qs, err := o.GeneratePractice(context.Background(), req)
			var invalid *InvalidArgumentError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *InvalidArgumentError, got %v", err)
			}
			if invalid.Field != tt.field {
				t.Errorf("field = %q, want %q", invalid.Field, tt.field)
			}
			if qs != nil {
				t.Errorf("expected no questions, got %d", len(qs))
			}
		})
	}
}

func TestGeneratePractice_InvariantsHoldAcrossSeeds(t *testing.T) {
	v := &StructuralValidator{}
	libs := map[string]*fakeLibrary{"travel": travelLibrary(), "rich": richLibrary()}
	names := map[string]string{"travel": "Travel and Leisure", "rich": "Everyday Life"}

	for key, lib := range libs {
		for seed := uint64(0); seed < 25; seed++ {
			for _, typ := range []QuestionType{TypeVocab, TypeCompletion} {
				count := int(seed%9) + 1
				cfg := DefaultConfig()
				cfg.Random = NewSeededRandom(seed)
				qs, err := New(lib, cfg).GeneratePractice(context.Background(), Request{
					CategoryName: names[key],
					Difficulty:   vocab.DifficultyEasy,
					Type:         typ,
					Count:        count,
				})
				if err != nil {
					t.Fatalf("%s/%d/%s: %v", key, seed, typ, err)
				}
				if len(qs) != count {
					t.Fatalf("%s/%d/%s: got %d questions, want %d", key, seed, typ, len(qs), count)
				}
				for _, q := range qs {
					if verr := v.Validate(q); verr != nil {
						t.Errorf("%s/%d/%s: %q: %v", key, seed, typ, q.Prompt, verr)
					}
				}
			}
		}
	}
}

func TestGeneratePractice_SeededIsDeterministic(t *testing.T) {
	req := Request{CategoryName: "Everyday Life", Difficulty: vocab.DifficultyEasy, Type: TypeCompletion, Count: 5}

	run := func() []Question {
		cfg := DefaultConfig()
		cfg.Random = NewSeededRandom(99)
		qs, err := New(richLibrary(), cfg).GeneratePractice(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return qs
	}

	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different questions:\n%+v\n%+v", a, b)
	}
}

func TestGeneratePractice_Concurrent(t *testing.T) {
	o := New(richLibrary(), DefaultConfig())
	req := Request{CategoryName: "Everyday Life", Difficulty: vocab.DifficultyEasy, Type: TypeCompletion, Count: 8}

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			qs, err := o.GeneratePractice(context.Background(), req)
			if err != nil {
				errs <- err
				return
			}
			if len(qs) != req.Count {
				errs <- fmt.Errorf("got %d questions", len(qs))
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

type rejectAll struct{}

func (rejectAll) Name() string { return "reject-all" }
func (rejectAll) Validate(Question) *ValidationError {
	return &ValidationError{Validator: "reject-all", Message: "rejected"}
}

func TestGeneratePractice_ValidatorRejectionFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Random = NewSeededRandom(3)
	cfg.Validators = append(cfg.Validators, rejectAll{})
	o := New(richLibrary(), cfg)

	qs, err := o.GeneratePractice(context.Background(), Request{
		CategoryName: "Everyday Life",
		Difficulty:   vocab.DifficultyEasy,
		Type:         TypeVocab,
		Count:        2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if CountFallback(qs) != 2 {
		t.Errorf("expected all fallback, got %d", CountFallback(qs))
	}
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// countingTranslator returns a distinct translation per word, or err.
type countingTranslator struct {
	err error

	mu    sync.Mutex
	calls map[string]int
}

func (c *countingTranslator) Translate(_ context.Context, text, _, _ string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls == nil {
		c.calls = map[string]int{}
	}
	c.calls[text]++
	if c.err != nil {
		return "", c.err
	}
	return strings.ToUpper(text) + "-de", nil
}

func (c *countingTranslator) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.calls {
		n += v
	}
	return n
}

// untranslatedLibrary holds n words without translations.
func untranslatedLibrary(n int) *fakeLibrary {
	lib := &fakeLibrary{categories: []vocab.Category{{ID: 1, Name: "Everyday Life"}}}
	for i := 1; i <= n; i++ {
		lib.words = append(lib.words, word(i, fmt.Sprintf("word%d", i), ""))
	}
	return lib
}

func vocabRequest(count int) Request {
	return Request{
		CategoryName: "Everyday Life",
		Difficulty:   vocab.DifficultyEasy,
		Type:         TypeVocab,
		Count:        count,
	}
}

func TestGeneratePractice_TranslatorFillsDistractorPool(t *testing.T) {
	tr := &countingTranslator{}
	cfg := DefaultConfig()
	cfg.Random = NewSeededRandom(3)
	cfg.Translator = tr
	o := New(untranslatedLibrary(8), cfg)

	qs, err := o.GeneratePractice(context.Background(), vocabRequest(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := qs[0]
	if q.Fallback {
		t.Fatal("expected a live question from translated words")
	}
	if q.Answer != strings.ToUpper(q.Prompt)+"-de" {
		t.Errorf("answer = %q for prompt %q", q.Answer, q.Prompt)
	}
	if len(q.Distractors) != MaxDistractors {
		t.Errorf("expected %d distractors, got %q", MaxDistractors, q.Distractors)
	}
	// The answer plus just enough distractors.
	if got := tr.total(); got != 1+MaxDistractors {
		t.Errorf("translator calls = %d, want %d", got, 1+MaxDistractors)
	}
}

func TestGeneratePractice_TranslatorReusesTranslations(t *testing.T) {
	tr := &countingTranslator{}
	cfg := DefaultConfig()
	cfg.Random = NewSeededRandom(5)
	cfg.Translator = tr
	lib := untranslatedLibrary(8)
	o := New(lib, cfg)

	qs, err := o.GeneratePractice(context.Background(), vocabRequest(8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := CountFallback(qs); got != 0 {
		t.Errorf("expected no fallback, got %d", got)
	}
	for text, n := range tr.calls {
		if n != 1 {
			t.Errorf("%s translated %d times", text, n)
		}
	}
	if got := tr.total(); got != 8 {
		t.Errorf("translator calls = %d, want 8", got)
	}
	for _, w := range lib.words {
		if w.Translation != "" {
			t.Errorf("library word %q was modified", w.Text)
		}
	}
}

func TestGeneratePractice_FailingTranslatorCalledOnce(t *testing.T) {
	tr := &countingTranslator{err: errors.New("rate limited")}
	cfg := DefaultConfig()
	cfg.Random = NewSeededRandom(3)
	cfg.Translator = tr
	o := New(untranslatedLibrary(8), cfg)

	qs, err := o.GeneratePractice(context.Background(), vocabRequest(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := CountFallback(qs); got != 3 {
		t.Errorf("expected 3 fallback questions, got %d", got)
	}
	if got := tr.total(); got != 1 {
		t.Errorf("translator calls = %d, want 1", got)
	}
}

func TestGeneratePractice_LargeCount(t *testing.T) {
	o := newTestOrchestrator(richLibrary())

	qs, err := o.GeneratePractice(context.Background(), Request{
		CategoryName: "Everyday Life",
		Difficulty:   vocab.DifficultyEasy,
		Type:         TypeVocab,
		Count:        5000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 5000 {
		t.Fatalf("expected 5000 questions, got %d", len(qs))
	}
	if got := len(qs) - CountFallback(qs); got != 6 {
		t.Errorf("expected 6 live questions, got %d", got)
	}
}

func TestGeneratePractice_RepeatedSamplesAreSpread(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		cfg := DefaultConfig()
		cfg.Random = NewSeededRandom(seed)
		o := New(travelLibrary(), cfg)

		qs, err := o.GeneratePractice(context.Background(), Request{
			CategoryName: "Health and Wellness",
			Difficulty:   vocab.DifficultyMedium,
			Type:         TypeVocab,
			Count:        7,
		})
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		counts := map[string]int{}
		for i, q := range qs {
			counts[q.Prompt]++
			if i > 0 && qs[i-1].Prompt == q.Prompt {
				t.Errorf("seed %d: question %d repeats %q back to back", seed, i, q.Prompt)
			}
		}
		samples := GenerateFallback("Health and Wellness", vocab.DifficultyMedium)
		for _, s := range samples {
			if counts[s.Prompt] < 2 {
				t.Errorf("seed %d: %q used %d times, want at least 2", seed, s.Prompt, counts[s.Prompt])
			}
		}
	}
}
