package seed

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/mod/semver"

	"github.com/abhisek/wordwise/internal/store"
	"github.com/abhisek/wordwise/internal/vocab"
)

// StaleVersionError is returned when a pack is not newer than the content
// already installed.
type StaleVersionError struct {
	Installed string
	Incoming  string
}

func (e *StaleVersionError) Error() string {
	return fmt.Sprintf("content version %s is already installed; pack version %s is not newer (use --force to import anyway)", e.Installed, e.Incoming)
}

// Options controls an import.
type Options struct {
	// Force imports regardless of the installed content version.
	Force bool
}

// Stats counts what an import added. Existing rows are not counted.
type Stats struct {
	Version    string
	Categories int
	Words      int
	Sentences  int

	// PassageSentences is the subset of Sentences taken from passages.
	PassageSentences int
}

// Importer writes packs into the store. Imports are idempotent: categories
// and words are matched by name, sentences by text.
type Importer struct {
	vocab *store.VocabRepo
	meta  *store.MetaRepo
	log   *slog.Logger
}

// NewImporter creates an Importer over s. A nil log discards messages.
func NewImporter(s *store.Store, log *slog.Logger) *Importer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Importer{vocab: s.VocabRepo(), meta: s.MetaRepo(), log: log}
}

// Import writes p and records its version.
func (im *Importer) Import(ctx context.Context, p *Pack, opts Options) (*Stats, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pack: %w", err)
	}

	installed, err := im.meta.ContentVersion(ctx)
	if err != nil {
		return nil, err
	}
	if installed != "" && !opts.Force &&
		semver.Compare(canonicalVersion(p.Version), canonicalVersion(installed)) <= 0 {
		return nil, &StaleVersionError{Installed: installed, Incoming: p.Version}
	}

	stats := &Stats{Version: p.Version}
	for _, pc := range p.Categories {
		if err := im.importCategory(ctx, pc, stats); err != nil {
			return stats, err
		}
	}

	if err := im.meta.SetContentVersion(ctx, p.Version); err != nil {
		return stats, err
	}
	im.log.Info("content pack imported", "version", p.Version,
		"categories", stats.Categories, "words", stats.Words, "sentences", stats.Sentences)
	return stats, nil
}

func (im *Importer) importCategory(ctx context.Context, pc PackCategory, stats *Stats) error {
	existed, err := im.vocab.FindCategoryByName(ctx, pc.Name)
	if err != nil {
		return err
	}
	cat, err := im.vocab.CreateOrGetCategory(ctx, pc.Name, pc.TranslatedName)
	if err != nil {
		return err
	}
	if existed == nil {
		stats.Categories++
	}

	for _, pw := range pc.Words {
		if err := im.importWord(ctx, cat.ID, pw, stats); err != nil {
			return fmt.Errorf("%s: %w", pc.Name, err)
		}
	}
	return nil
}

func (im *Importer) importWord(ctx context.Context, categoryID int, pw PackWord, stats *Stats) error {
	d, err := vocab.ParseDifficulty(pw.Difficulty)
	if err != nil {
		return err
	}

	before, err := im.vocab.FindWordsByCategoryAndDifficulty(ctx, categoryID, d)
	if err != nil {
		return err
	}
	w, err := im.vocab.CreateOrGetWord(ctx, vocab.Word{
		Text:        pw.Text,
		Translation: pw.Translation,
		SourceLang:  pw.SourceLang,
		TargetLang:  pw.TargetLang,
		Difficulty:  d,
		CategoryID:  categoryID,
	})
	if err != nil {
		return err
	}
	if !containsWordID(before, w.ID) {
		stats.Words++
	}

	for _, ex := range pw.Examples {
		added, err := im.vocab.AddSentence(ctx, vocab.ExampleSentence{Text: ex.Text, Translation: ex.Translation, WordID: w.ID})
		if err != nil {
			return err
		}
		if added {
			stats.Sentences++
		}
	}

	if pw.Passage == "" {
		return nil
	}
	found, err := SentencesWithWord(pw.Passage, w.Text)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		im.log.Debug("passage has no sentence containing word", "word", w.Text)
	}
	for _, s := range found {
		added, err := im.vocab.AddSentence(ctx, vocab.ExampleSentence{Text: s, WordID: w.ID})
		if err != nil {
			return err
		}
		if added {
			stats.Sentences++
			stats.PassageSentences++
		}
	}
	return nil
}

func containsWordID(words []vocab.Word, id int) bool {
	for _, w := range words {
		if w.ID == id {
			return true
		}
	}
	return false
}
