package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/wordwise/internal/ui/theme"
	"github.com/abhisek/wordwise/internal/vocab"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories and their word counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		repo := s.VocabRepo()
		cats, err := repo.ListCategories(ctx)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(cats) == 0 {
			lipgloss.Fprintln(out, "No categories yet. Run `wordwise seed` to import the starter pack.")
			return nil
		}

		t := theme.NewTable("Category", "Translation", "Easy", "Medium", "Hard")
		for _, c := range cats {
			row := []string{c.Name, c.TranslatedName}
			for _, d := range vocab.Difficulties {
				words, err := repo.FindWordsByCategoryAndDifficulty(ctx, c.ID, d)
				if err != nil {
					return fmt.Errorf("count words: %w", err)
				}
				row = append(row, strconv.Itoa(len(words)))
			}
			t.Row(row...)
		}
		lipgloss.Fprintln(out, t.String())
		return nil
	},
}
