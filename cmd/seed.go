package cmd

import (
	"errors"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/wordwise/internal/seed"
	"github.com/abhisek/wordwise/internal/ui/theme"
)

var seedCmd = &cobra.Command{
	Use:   "seed [pack.json]",
	Short: "Import a vocabulary content pack",
	Long: `Import categories, words and example sentences from a JSON content pack.

Without an argument the built-in starter pack is imported. Packs carry a
semantic version; a pack that is not newer than the installed content is
refused unless --force is given. Re-importing never duplicates entries.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		var (
			pack *seed.Pack
			err  error
		)
		if len(args) == 1 {
			pack, err = seed.LoadFile(args[0])
		} else {
			pack, err = seed.Starter()
		}
		if err != nil {
			return fmt.Errorf("load pack: %w", err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := seed.NewImporter(s, newLogger(cmd)).Import(cmd.Context(), pack, seed.Options{Force: force})
		var stale *seed.StaleVersionError
		if errors.As(err, &stale) {
			lipgloss.Fprintln(cmd.OutOrStdout(), theme.Notice.Render(stale.Error()))
			return nil
		}
		if err != nil {
			return fmt.Errorf("import pack: %w", err)
		}

		out := cmd.OutOrStdout()
		lipgloss.Fprintln(out, theme.Title.Render("Imported content pack "+stats.Version))
		lipgloss.Fprintf(out, "  %d categories, %d words, %d sentences (%d from passages)\n",
			stats.Categories, stats.Words, stats.Sentences, stats.PassageSentences)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolP("force", "f", false, "Import even if the pack is not newer than the installed content")
}
