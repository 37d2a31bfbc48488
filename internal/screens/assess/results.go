package assess

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mindfulme/mindful/internal/assessment"
	"github.com/mindfulme/mindful/internal/insights"
	"github.com/mindfulme/mindful/internal/scoring"
	"github.com/mindfulme/mindful/internal/ui/theme"
)

// levelColor maps a severity level to its display color.
func levelColor(level scoring.SeverityLevel) color.Color {
	switch level {
	case scoring.LevelMinimal:
		return theme.Success
	case scoring.LevelLow:
		return theme.Secondary
	case scoring.LevelModerate:
		return theme.Warning
	case scoring.LevelHigh:
		return theme.Accent
	default:
		return theme.Error
	}
}

// summaryView is the AI summary portion of the results display.
type summaryView struct {
	available   bool
	summarizing bool
	summary     *insights.Summary
	errText     string
}

// renderResults renders the scored result as a scrollable column of lines.
func renderResults(result *scoring.Result, sv summaryView, scroll, width, height int) string {
	cw := width - 8
	if cw > 72 {
		cw = 72
	}
	if cw < 30 {
		cw = 30
	}

	lines := buildResultLines(result, sv, cw)

	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if scroll > maxScroll {
		scroll = maxScroll
	}

	end := scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[scroll:end]

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(visible, "\n"))
}

func buildResultLines(result *scoring.Result, sv summaryView, cw int) []string {
	var lines []string

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	body := lipgloss.NewStyle().Foreground(theme.Text)

	lines = append(lines, "")
	lines = append(lines, buildSummaryLines(sv, cw, title, dim, body)...)
	lines = append(lines, title.Render("Overall"))
	overall := fmt.Sprintf("%d / %d  (%.0f%%)  ",
		result.TotalScore, result.MaxPossible, result.OverallPercentage)
	overall += lipgloss.NewStyle().
		Foreground(levelColor(result.OverallLevel)).
		Bold(true).
		Render(result.OverallLevel.Label())
	lines = append(lines, body.Render(overall))
	lines = append(lines, "")

	for _, cr := range result.CategoryResults {
		name := assessment.CategoryDisplayName(cr.Category)
		head := title.Render(name) + dim.Render(fmt.Sprintf("  %d/%d  %.0f%%  ",
			cr.Score, cr.TotalPossible, cr.Percentage))
		head += lipgloss.NewStyle().
			Foreground(levelColor(cr.Level)).
			Bold(true).
			Render(cr.Level.Label())
		lines = append(lines, head)

		lines = append(lines, wrap(cr.Feedback, cw, body)...)
		for _, rec := range cr.Recommendations {
			lines = append(lines, wrap("• "+rec, cw, dim)...)
		}
		lines = append(lines, "")
	}

	lines = append(lines, title.Render("Where to go from here"))
	for _, rec := range result.GeneralRecommendations {
		lines = append(lines, wrap("• "+rec, cw, body)...)
	}
	lines = append(lines, "")
	lines = append(lines, dim.Italic(true).Render(
		"This is a self-reflection tool, not a clinical diagnosis."))

	return lines
}

// buildSummaryLines renders the AI summary block above the score table.
// Absent service or untouched state renders nothing beyond a hint.
func buildSummaryLines(sv summaryView, cw int, title, dim, body lipgloss.Style) []string {
	if !sv.available {
		return nil
	}

	var lines []string
	switch {
	case sv.summarizing:
		lines = append(lines, dim.Italic(true).Render("Generating your summary..."))
	case sv.errText != "":
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Error).Render(sv.errText))
	case sv.summary != nil:
		lines = append(lines, title.Render("Your Summary"))
		lines = append(lines, wrap(sv.summary.Headline, cw, body)...)
		for _, area := range sv.summary.FocusAreas {
			lines = append(lines, wrap("• "+area, cw, dim)...)
		}
		lines = append(lines, wrap(sv.summary.Encouragement, cw, dim)...)
	default:
		lines = append(lines, dim.Render("Press S for a personalized AI summary."))
	}
	lines = append(lines, "")
	return lines
}

// wrap breaks text into styled lines no wider than cw.
func wrap(text string, cw int, style lipgloss.Style) []string {
	var out []string
	words := strings.Fields(text)
	var line string
	for _, w := range words {
		if line == "" {
			line = w
			continue
		}
		if len(line)+1+len(w) > cw {
			out = append(out, style.Render(line))
			line = w
			continue
		}
		line += " " + w
	}
	if line != "" {
		out = append(out, style.Render(line))
	}
	return out
}
