package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordwise/internal/ui/theme"
)

// ScoreBar displays a quiz score as a horizontal bar.
type ScoreBar struct {
	Label   string
	Correct int
	Total   int
	Width   int
}

// NewScoreBar creates a score bar.
func NewScoreBar(label string, correct, total, width int) ScoreBar {
	return ScoreBar{Label: label, Correct: correct, Total: total, Width: width}
}

// Percent returns the share of correct answers in [0, 1].
func (p ScoreBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Correct)/float64(p.Total), 0), 1)
}

// View renders the bar followed by "correct/total".
func (p ScoreBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := fmt.Sprintf("  %d/%d", p.Correct, p.Total)
	barWidth := max(p.Width-lipgloss.Width(result)-len(suffix), 4)

	filled := int(float64(barWidth) * p.Percent())
	empty := barWidth - filled

	result += lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled))
	result += lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", empty))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)

	return result
}
