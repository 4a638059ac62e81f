// Package components renders practice questions for the terminal.
package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordwise/internal/ui/theme"
)

var labels = []string{"A", "B", "C", "D", "E"}

// MultiChoice is a multiple-choice question answered by letter or number.
type MultiChoice struct {
	Question     string
	Hint         string
	Options      []string
	CorrectIndex int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice creates a new multiple-choice component. At most five
// options are shown.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	if len(options) > len(labels) {
		options = options[:len(labels)]
	}
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Choose submits an answer typed as a letter ("b") or a 1-based number
// ("2"). It reports false and leaves m unsubmitted on unrecognized input.
func (m MultiChoice) Choose(input string) (MultiChoice, bool) {
	idx, ok := parseChoice(input, len(m.Options))
	if !ok {
		return m, false
	}
	m.Submitted = true
	m.ChosenIndex = idx
	return m, true
}

func parseChoice(input string, n int) (int, bool) {
	s := strings.ToUpper(strings.TrimSpace(input))
	if s == "" {
		return 0, false
	}
	for i := 0; i < n; i++ {
		if s == labels[i] {
			return i, true
		}
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 1 && v <= n {
		return v - 1, true
	}
	return 0, false
}

// View renders the question. Once submitted, the correct option is shown
// in green and a wrong choice in red.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(theme.Prompt.Render(m.Question))
	b.WriteString("\n")
	if m.Hint != "" {
		b.WriteString(theme.Hint.Render(m.Hint))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, opt := range m.Options {
		line := fmt.Sprintf("  %s)  %s", labels[i], opt)

		style := theme.Option
		if m.Submitted {
			switch i {
			case m.CorrectIndex:
				style = theme.Correct
			case m.ChosenIndex:
				style = theme.Incorrect
			default:
				style = lipgloss.NewStyle().Foreground(theme.TextDim)
			}
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
