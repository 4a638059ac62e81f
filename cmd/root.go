package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/wordwise/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wordwise",
	Short: "Vocabulary practice for language learners",
	Long: `Wordwise builds multiple-choice vocabulary and sentence-completion
questions from a local word library, falling back to built-in sample
questions when the library cannot supply enough.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDWISE_DB env var)")
	rootCmd.PersistentFlags().String("driver", "", "Database driver: sqlite, postgres or mysql (overrides WORDWISE_DB_DRIVER)")
	rootCmd.PersistentFlags().String("dsn", "", "Data source name for postgres or mysql (overrides WORDWISE_DSN)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Environment file to load; existing variables win")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log generation decisions to stderr")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(backfillCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadEnv reads the env file if present. godotenv never overrides
// variables that are already set.
func loadEnv(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("env-file")
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WORDWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the configured database. SQLite is the default; other
// drivers need a DSN.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	driver, _ := cmd.Flags().GetString("driver")
	if driver == "" {
		driver = os.Getenv("WORDWISE_DB_DRIVER")
	}

	if driver == "" || driver == store.DriverSQLite {
		path, err := resolveDBPath(cmd)
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.OpenSQLite(path)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		return s, nil
	}

	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		dsn = os.Getenv("WORDWISE_DSN")
	}
	if dsn == "" {
		return nil, fmt.Errorf("--dsn or WORDWISE_DSN is required for the %s driver", driver)
	}
	s, err := store.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newLogger returns a debug logger on stderr with --verbose, otherwise a
// logger that discards everything.
func newLogger(cmd *cobra.Command) *slog.Logger {
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.DiscardHandler)
}
