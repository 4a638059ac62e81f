package cmd

import (
	"context"
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/wordwise/internal/store"
	"github.com/abhisek/wordwise/internal/translate"
	"github.com/abhisek/wordwise/internal/ui/theme"
)

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Fill missing translations and example sentences with an LLM",
	Long: `Ask the configured LLM for the content the library is missing.

--translations fills words that have no translation, so they can be used
for vocabulary questions. --sentences generates example sentences for
words that have none, so they can be used for completion questions.
Without either flag both are run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doTranslations, _ := cmd.Flags().GetBool("translations")
		doSentences, _ := cmd.Flags().GetBool("sentences")
		limit, _ := cmd.Flags().GetInt("limit")
		perWord, _ := cmd.Flags().GetInt("per-word")
		if !doTranslations && !doSentences {
			doTranslations, doSentences = true, true
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		svc, err := newTranslator(ctx, s.EventRepo(), newLogger(cmd))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if doTranslations {
			if err := backfillTranslations(ctx, out, s.VocabRepo(), svc, limit); err != nil {
				return err
			}
		}
		if doSentences {
			if err := backfillSentences(ctx, out, s.VocabRepo(), svc, limit, perWord); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	backfillCmd.Flags().Bool("translations", false, "Translate words that have no translation")
	backfillCmd.Flags().Bool("sentences", false, "Generate sentences for words that have none")
	backfillCmd.Flags().IntP("limit", "n", 50, "Maximum words to process per kind (0 = all)")
	backfillCmd.Flags().Int("per-word", 2, "Sentences to generate per word")
}

// backfillTranslations translates words one at a time. A failed word is
// reported and skipped.
func backfillTranslations(ctx context.Context, out io.Writer, repo *store.VocabRepo, svc *translate.Service, limit int) error {
	words, err := repo.WordsMissingTranslation(ctx, limit)
	if err != nil {
		return fmt.Errorf("list untranslated words: %w", err)
	}
	if len(words) == 0 {
		lipgloss.Fprintln(out, "All words have translations.")
		return nil
	}

	var done int
	for _, w := range words {
		if err := ctx.Err(); err != nil {
			return err
		}
		tr, err := svc.Translate(ctx, w.Text, w.SourceLang, w.TargetLang)
		if err != nil {
			lipgloss.Fprintln(out, theme.Check(false), w.Text+":", err)
			continue
		}
		if err := repo.UpdateWordTranslation(ctx, w.ID, tr); err != nil {
			return err
		}
		done++
		lipgloss.Fprintln(out, theme.Check(true), w.Text, "→", tr)
	}
	lipgloss.Fprintln(out, theme.Title.Render(fmt.Sprintf("Translated %d of %d words", done, len(words))))
	return nil
}

// backfillSentences generates example sentences for words without any.
func backfillSentences(ctx context.Context, out io.Writer, repo *store.VocabRepo, svc *translate.Service, limit, perWord int) error {
	words, err := repo.WordsWithoutSentences(ctx, limit)
	if err != nil {
		return fmt.Errorf("list words without sentences: %w", err)
	}
	if len(words) == 0 {
		lipgloss.Fprintln(out, "All words have example sentences.")
		return nil
	}

	var added int
	for _, w := range words {
		if err := ctx.Err(); err != nil {
			return err
		}
		sents, err := svc.ExampleSentences(ctx, w, perWord)
		if err != nil {
			lipgloss.Fprintln(out, theme.Check(false), w.Text+":", err)
			continue
		}
		for _, es := range sents {
			ok, err := repo.AddSentence(ctx, es)
			if err != nil {
				return err
			}
			if ok {
				added++
			}
		}
		lipgloss.Fprintln(out, theme.Check(true), w.Text, theme.Subtitle.Render(fmt.Sprintf("(%d)", len(sents))))
	}
	lipgloss.Fprintln(out, theme.Title.Render(fmt.Sprintf("Added %d sentences for %d words", added, len(words))))
	return nil
}
