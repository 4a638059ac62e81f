package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/wordwise/internal/vocab"
)

var (
	categoryColumns = []string{"id", "name", "translated_name"}
	wordColumns     = []string{"id", "text", "translation", "source_lang", "target_lang", "difficulty", "category_id"}
	sentenceColumns = []string{"id", "text", "translation", "word_id"}
)

// VocabRepo reads and writes categories, words and example sentences. It
// satisfies practice.Library.
type VocabRepo struct {
	drv *entsql.Driver
}

// FindCategoryByName looks a category up case-insensitively. It returns
// nil, nil when no category matches.
func (r *VocabRepo) FindCategoryByName(ctx context.Context, name string) (*vocab.Category, error) {
	b := entsql.Dialect(r.drv.Dialect())
	s := b.Select(categoryColumns...).
		From(b.Table(categoriesTable)).
		Where(entsql.EqualFold("name", strings.TrimSpace(name))).
		OrderBy("id").
		Limit(1)

	cats, err := r.queryCategories(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("find category %q: %w", name, err)
	}
	if len(cats) == 0 {
		return nil, nil
	}
	return &cats[0], nil
}

// ListCategories returns every category ordered by name.
func (r *VocabRepo) ListCategories(ctx context.Context) ([]vocab.Category, error) {
	b := entsql.Dialect(r.drv.Dialect())
	s := b.Select(categoryColumns...).From(b.Table(categoriesTable)).OrderBy("name")

	cats, err := r.queryCategories(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// CreateOrGetCategory returns the category called name, creating it if
// needed. An existing category keeps its translated name unless it had
// none.
func (r *VocabRepo) CreateOrGetCategory(ctx context.Context, name, translatedName string) (*vocab.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	existing, err := r.FindCategoryByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.TranslatedName == "" && translatedName != "" {
			u := entsql.Dialect(r.drv.Dialect()).
				Update(categoriesTable).
				Set("translated_name", translatedName).
				Where(entsql.EQ("id", existing.ID))
			if _, err := exec(ctx, r.drv, u); err != nil {
				return nil, fmt.Errorf("update category %q: %w", name, err)
			}
			existing.TranslatedName = translatedName
		}
		return existing, nil
	}

	ins := entsql.Dialect(r.drv.Dialect()).
		Insert(categoriesTable).
		Columns("name", "translated_name", "created_at").
		Values(name, translatedName, time.Now().UTC())
	id, err := insertID(ctx, r.drv, ins)
	if err != nil {
		return nil, fmt.Errorf("create category %q: %w", name, err)
	}
	return &vocab.Category{ID: id, Name: name, TranslatedName: translatedName}, nil
}

// FindWordsByCategoryAndDifficulty returns the words of a category at one
// difficulty, in insertion order.
func (r *VocabRepo) FindWordsByCategoryAndDifficulty(ctx context.Context, categoryID int, d vocab.Difficulty) ([]vocab.Word, error) {
	b := entsql.Dialect(r.drv.Dialect())
	s := b.Select(wordColumns...).
		From(b.Table(wordsTable)).
		Where(entsql.And(
			entsql.EQ("category_id", categoryID),
			entsql.EQ("difficulty", string(d)),
		)).
		OrderBy("id")

	words, err := r.queryWords(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("find words for category %d: %w", categoryID, err)
	}
	return words, nil
}

// CreateOrGetWord stores w under its category, or returns the stored word
// with the same text. A stored word without a translation takes w's.
func (r *VocabRepo) CreateOrGetWord(ctx context.Context, w vocab.Word) (*vocab.Word, error) {
	w.Text = strings.TrimSpace(w.Text)
	if w.Text == "" {
		return nil, fmt.Errorf("word text is required")
	}
	if !w.Difficulty.Valid() {
		return nil, fmt.Errorf("word %q: invalid difficulty %q", w.Text, w.Difficulty)
	}

	b := entsql.Dialect(r.drv.Dialect())
	s := b.Select(wordColumns...).
		From(b.Table(wordsTable)).
		Where(entsql.And(
			entsql.EQ("category_id", w.CategoryID),
			entsql.EQ("text", w.Text),
		))
	found, err := r.queryWords(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("find word %q: %w", w.Text, err)
	}
	if len(found) > 0 {
		existing := found[0]
		if !existing.HasTranslation() && w.HasTranslation() {
			if err := r.UpdateWordTranslation(ctx, existing.ID, w.Translation); err != nil {
				return nil, err
			}
			existing.Translation = w.Translation
		}
		return &existing, nil
	}

	ins := b.Insert(wordsTable).
		Columns("text", "translation", "source_lang", "target_lang", "difficulty", "created_at", "category_id").
		Values(w.Text, w.Translation, w.SourceLang, w.TargetLang, string(w.Difficulty), time.Now().UTC(), w.CategoryID)
	id, err := insertID(ctx, r.drv, ins)
	if err != nil {
		return nil, fmt.Errorf("create word %q: %w", w.Text, err)
	}
	w.ID = id
	return &w, nil
}

// UpdateWordTranslation sets the stored translation of a word.
func (r *VocabRepo) UpdateWordTranslation(ctx context.Context, wordID int, translation string) error {
	u := entsql.Dialect(r.drv.Dialect()).
		Update(wordsTable).
		Set("translation", translation).
		Where(entsql.EQ("id", wordID))
	n, err := exec(ctx, r.drv, u)
	if err != nil {
		return fmt.Errorf("update translation of word %d: %w", wordID, err)
	}
	if n == 0 {
		return fmt.Errorf("update translation: word %d not found", wordID)
	}
	return nil
}

// WordsMissingTranslation returns words whose translation is empty.
func (r *VocabRepo) WordsMissingTranslation(ctx context.Context, limit int) ([]vocab.Word, error) {
	b := entsql.Dialect(r.drv.Dialect())
	s := b.Select(wordColumns...).
		From(b.Table(wordsTable)).
		Where(entsql.EQ("translation", "")).
		OrderBy("id")
	if limit > 0 {
		s.Limit(limit)
	}

	words, err := r.queryWords(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("find untranslated words: %w", err)
	}
	return words, nil
}

// WordsWithoutSentences returns words that have no example sentence.
func (r *VocabRepo) WordsWithoutSentences(ctx context.Context, limit int) ([]vocab.Word, error) {
	b := entsql.Dialect(r.drv.Dialect())
	sub := b.Select("word_id").From(b.Table(sentencesTable))
	s := b.Select(wordColumns...).
		From(b.Table(wordsTable)).
		Where(entsql.NotIn("id", sub)).
		OrderBy("id")
	if limit > 0 {
		s.Limit(limit)
	}

	words, err := r.queryWords(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("find words without sentences: %w", err)
	}
	return words, nil
}

// FindSentencesByWord returns a word's example sentences in insertion
// order.
func (r *VocabRepo) FindSentencesByWord(ctx context.Context, wordID int) ([]vocab.ExampleSentence, error) {
	b := entsql.Dialect(r.drv.Dialect())
	s := b.Select(sentenceColumns...).
		From(b.Table(sentencesTable)).
		Where(entsql.EQ("word_id", wordID)).
		OrderBy("id")

	var out []vocab.ExampleSentence
	err := queryRows(ctx, r.drv, s, func(rows *entsql.Rows) error {
		var es vocab.ExampleSentence
		if err := rows.Scan(&es.ID, &es.Text, &es.Translation, &es.WordID); err != nil {
			return err
		}
		out = append(out, es)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find sentences for word %d: %w", wordID, err)
	}
	return out, nil
}

// AddSentence attaches an example sentence to its word. It reports false
// when the word already has a sentence with the same text.
func (r *VocabRepo) AddSentence(ctx context.Context, es vocab.ExampleSentence) (bool, error) {
	es.Text = strings.TrimSpace(es.Text)
	if es.Text == "" {
		return false, fmt.Errorf("sentence text is required")
	}

	existing, err := r.FindSentencesByWord(ctx, es.WordID)
	if err != nil {
		return false, err
	}
	for _, e := range existing {
		if strings.EqualFold(e.Text, es.Text) {
			return false, nil
		}
	}

	ins := entsql.Dialect(r.drv.Dialect()).
		Insert(sentencesTable).
		Columns("text", "translation", "created_at", "word_id").
		Values(es.Text, strings.TrimSpace(es.Translation), time.Now().UTC(), es.WordID)
	if _, err := insertID(ctx, r.drv, ins); err != nil {
		return false, fmt.Errorf("add sentence for word %d: %w", es.WordID, err)
	}
	return true, nil
}

func (r *VocabRepo) queryCategories(ctx context.Context, s *entsql.Selector) ([]vocab.Category, error) {
	var out []vocab.Category
	err := queryRows(ctx, r.drv, s, func(rows *entsql.Rows) error {
		var c vocab.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.TranslatedName); err != nil {
			return err
		}
		out = append(out, c)
		return nil
	})
	return out, err
}

func (r *VocabRepo) queryWords(ctx context.Context, s *entsql.Selector) ([]vocab.Word, error) {
	var out []vocab.Word
	err := queryRows(ctx, r.drv, s, func(rows *entsql.Rows) error {
		var (
			w          vocab.Word
			difficulty string
		)
		if err := rows.Scan(&w.ID, &w.Text, &w.Translation, &w.SourceLang, &w.TargetLang, &difficulty, &w.CategoryID); err != nil {
			return err
		}
		w.Difficulty = vocab.Difficulty(difficulty)
		out = append(out, w)
		return nil
	})
	return out, err
}
