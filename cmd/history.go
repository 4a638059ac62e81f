package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/wordwise/internal/store"
	"github.com/abhisek/wordwise/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent practice runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		category, _ := cmd.Flags().GetString("category")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryPractice(cmd.Context(), store.QueryOpts{Limit: limit, Category: category})
		if err != nil {
			return fmt.Errorf("query practice runs: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			lipgloss.Fprintln(out, "No practice runs recorded yet.")
			return nil
		}

		t := theme.NewTable("Time", "Category", "Level", "Type", "Questions", "Sample", "Score")
		for _, e := range events {
			score := "-"
			if e.Answered > 0 {
				score = fmt.Sprintf("%d/%d", e.Correct, e.Answered)
			}
			t.Row(
				e.Timestamp.Local().Format("2006-01-02 15:04"),
				e.Category,
				e.Difficulty,
				e.QuestionType,
				strconv.Itoa(e.Requested),
				strconv.Itoa(e.Fallback),
				score,
			)
		}
		lipgloss.Fprintln(out, t.String())
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
	historyCmd.Flags().StringP("category", "c", "", "Only show runs for this category")
}
