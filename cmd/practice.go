package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/wordwise/internal/llm"
	"github.com/abhisek/wordwise/internal/practice"
	"github.com/abhisek/wordwise/internal/store"
	"github.com/abhisek/wordwise/internal/translate"
	"github.com/abhisek/wordwise/internal/ui/components"
	"github.com/abhisek/wordwise/internal/ui/theme"
	"github.com/abhisek/wordwise/internal/vocab"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Generate a set of practice questions",
	Long: `Generate multiple-choice questions for a category and difficulty.

Vocabulary questions ask for the translation of a word. Completion
questions blank a word out of an example sentence. When the library
cannot supply enough questions, built-in sample questions fill the set.

With --quiz the questions are asked one at a time and scored.`,
	RunE: runPractice,
}

// maxPracticeCount bounds --count; a practice set is read in one sitting.
const maxPracticeCount = 100

func init() {
	practiceCmd.Flags().StringP("category", "c", "General", "Category name (unknown names use General)")
	practiceCmd.Flags().StringP("difficulty", "d", "easy", "Difficulty: easy, medium or hard")
	practiceCmd.Flags().StringP("type", "t", "vocab", "Question type: vocab or completion")
	practiceCmd.Flags().IntP("count", "n", 5, "Number of questions")
	practiceCmd.Flags().Uint64("seed", 0, "Random seed for reproducible sets (0 = random)")
	practiceCmd.Flags().Bool("translate", false, "Use the configured LLM to fill missing translations")
	practiceCmd.Flags().BoolP("quiz", "q", false, "Ask the questions interactively")
}

func runPractice(cmd *cobra.Command, args []string) error {
	categoryVal, _ := cmd.Flags().GetString("category")
	difficultyVal, _ := cmd.Flags().GetString("difficulty")
	typeVal, _ := cmd.Flags().GetString("type")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")
	useLLM, _ := cmd.Flags().GetBool("translate")
	quiz, _ := cmd.Flags().GetBool("quiz")

	if count > maxPracticeCount {
		return fmt.Errorf("--count must be at most %d, got %d", maxPracticeCount, count)
	}
	difficulty, err := vocab.ParseDifficulty(difficultyVal)
	if err != nil {
		return err
	}
	qtype, err := practice.ParseQuestionType(typeVal)
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	log := newLogger(cmd)
	out := cmd.OutOrStdout()

	cfg := practice.DefaultConfig()
	cfg.Logger = log
	if seed != 0 {
		cfg.Random = practice.NewSeededRandom(seed)
	}
	if useLLM {
		tr, err := newTranslator(ctx, s.EventRepo(), log)
		if err != nil {
			lipgloss.Fprintln(cmd.ErrOrStderr(), theme.Notice.Render("warning:"), err)
		} else {
			cfg.Translator = tr
		}
	}

	qs, err := practice.New(s.VocabRepo(), cfg).GeneratePractice(ctx, practice.Request{
		CategoryName: categoryVal,
		Difficulty:   difficulty,
		Type:         qtype,
		Count:        count,
	})
	if err != nil {
		return err
	}

	fallback := practice.CountFallback(qs)
	lipgloss.Fprintln(out, theme.Title.Render(fmt.Sprintf("%s · %s · %s", qs[0].Category, difficulty, qtype)))
	if fallback > 0 {
		lipgloss.Fprintln(out, theme.Notice.Render(
			fmt.Sprintf("Using sample questions for %d of %d; add words with `wordwise seed` or `wordwise backfill`.", fallback, len(qs))))
	}
	lipgloss.Fprintln(out)

	data := store.PracticeEventData{
		Category:     qs[0].Category,
		Difficulty:   string(difficulty),
		QuestionType: string(qtype),
		Requested:    count,
		Live:         len(qs) - fallback,
		Fallback:     fallback,
	}

	if quiz {
		data.Answered, data.Correct = askQuestions(cmd.InOrStdin(), out, qs, cfg.Random)
		lipgloss.Fprintln(out, components.NewScoreBar("Score", data.Correct, data.Answered, 40).View())
	} else {
		printQuestions(out, qs, cfg.Random)
	}

	if _, err := s.EventRepo().AppendPractice(context.WithoutCancel(ctx), data); err != nil {
		lipgloss.Fprintln(cmd.ErrOrStderr(), theme.Notice.Render("warning:"), "failed to record practice run:", err)
	}
	return nil
}

// newTranslator builds an LLM-backed translator from the environment.
func newTranslator(ctx context.Context, events store.EventRepo, log *slog.Logger) (*translate.Service, error) {
	provider, err := newProvider(ctx, events, log)
	if err != nil {
		return nil, err
	}
	return translate.New(provider, translate.DefaultConfig()), nil
}

// newProvider resolves LLM settings from the environment. Every call is
// recorded in events.
func newProvider(ctx context.Context, events store.EventRepo, log *slog.Logger) (llm.Provider, error) {
	cfg, ok := llm.ResolveConfig()
	if !ok {
		if cfg.Provider != "" {
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("LLM provider not configured: %w", err)
			}
		}
		return nil, errors.New("LLM provider not configured: set WORDWISE_LLM_PROVIDER or a vendor API key")
	}
	provider, err := llm.NewProvider(ctx, cfg, events, log)
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}
	return provider, nil
}

// choiceFor builds a display component with the options shuffled.
func choiceFor(q practice.Question, r practice.RandomSource) components.MultiChoice {
	opts := q.Options()
	for i := len(opts) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		opts[i], opts[j] = opts[j], opts[i]
	}
	correct := 0
	for i, o := range opts {
		if o == q.Answer {
			correct = i
		}
	}

	prompt := q.Prompt
	if q.Type == practice.TypeVocab {
		prompt = fmt.Sprintf("Translate: %s", q.Prompt)
	}
	mc := components.NewMultiChoice(prompt, opts, correct)
	mc.Hint = q.Hint
	return mc
}

func questionHeader(i, n int, q practice.Question) string {
	h := fmt.Sprintf("── Question %d/%d ──", i+1, n)
	if q.Fallback {
		h += " " + theme.Subtitle.Render("(sample)")
	}
	return h
}

// printQuestions lists every question with its answer revealed.
func printQuestions(out io.Writer, qs []practice.Question, r practice.RandomSource) {
	for i, q := range qs {
		mc := choiceFor(q, r)
		mc.Submitted = true
		lipgloss.Fprintln(out, questionHeader(i, len(qs), q))
		lipgloss.Fprintln(out, mc.View())
	}
}

// askQuestions runs an interactive quiz and returns how many questions
// were answered and how many of those were correct. It stops early when
// input ends.
func askQuestions(in io.Reader, out io.Writer, qs []practice.Question, r practice.RandomSource) (answered, correct int) {
	scanner := bufio.NewScanner(in)

	for i, q := range qs {
		mc := choiceFor(q, r)
		lipgloss.Fprintln(out, questionHeader(i, len(qs), q))
		lipgloss.Fprint(out, mc.View())

		for !mc.Submitted {
			lipgloss.Fprint(out, "\nYour answer: ")
			if !scanner.Scan() {
				lipgloss.Fprintln(out, "\n(input closed)")
				return answered, correct
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "" {
				break
			}
			var ok bool
			if mc, ok = mc.Choose(input); !ok {
				lipgloss.Fprintf(out, "Please answer with a letter A-%c.", 'A'+len(mc.Options)-1)
			}
		}

		if !mc.Submitted {
			lipgloss.Fprintln(out, "(skipped)")
			lipgloss.Fprintln(out)
			continue
		}
		answered++
		if mc.IsCorrect() {
			correct++
			lipgloss.Fprintln(out, theme.Check(true), "Correct!")
		} else {
			lipgloss.Fprintln(out, theme.Check(false), "Wrong. Answer:", q.Answer)
		}
		lipgloss.Fprintln(out)
	}
	return answered, correct
}
