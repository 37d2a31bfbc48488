// Package assess drives the self-assessment quiz and shows the results.
package assess

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mindfulme/mindful/internal/flow"
	"github.com/mindfulme/mindful/internal/insights"
	"github.com/mindfulme/mindful/internal/screen"
	"github.com/mindfulme/mindful/internal/ui/components"
	"github.com/mindfulme/mindful/internal/ui/layout"
	"github.com/mindfulme/mindful/internal/ui/theme"
)

// summaryMsg carries the AI summary (or its failure) back to the screen.
type summaryMsg struct {
	Summary *insights.Summary
	Err     error
}

// AssessScreen walks through the question bank one question at a time
// and renders the scored result when the last answer is in.
type AssessScreen struct {
	flow        *flow.Controller
	likert      components.Likert
	scroll      int
	insights    *insights.Service
	summary     *insights.Summary
	summaryErr  string
	summarizing bool
}

var _ screen.Screen = (*AssessScreen)(nil)
var _ screen.KeyHintProvider = (*AssessScreen)(nil)

// New creates an AssessScreen at the first question. svc may be nil when
// no LLM provider is configured; the AI summary option is then hidden.
func New(svc *insights.Service) *AssessScreen {
	s := &AssessScreen{flow: flow.New(), insights: svc}
	s.loadCurrent()
	return s
}

// loadCurrent rebuilds the Likert selector for the flow's current question.
func (s *AssessScreen) loadCurrent() {
	q, ok := s.flow.Current()
	if !ok {
		return
	}
	labels := make([]string, len(q.Options))
	for i, opt := range q.Options {
		labels[i] = opt.Label
	}
	s.likert = components.NewLikert(q.Prompt, labels)
}

func (s *AssessScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if smsg, ok := msg.(summaryMsg); ok {
		s.summarizing = false
		if smsg.Err != nil {
			s.summaryErr = "Could not generate a summary. Please try again."
			return s, nil
		}
		s.summary = smsg.Summary
		s.summaryErr = ""
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.flow.State() == flow.StateComplete {
		switch kmsg.String() {
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			s.scroll++
		case "s":
			return s, s.fetchSummary()
		case "r":
			s.flow.Reset()
			s.scroll = 0
			s.summary = nil
			s.summaryErr = ""
			s.summarizing = false
			s.loadCurrent()
		}
		return s, nil
	}

	if kmsg.String() == "enter" {
		if err := s.flow.SubmitAnswer(s.likert.Value()); err != nil {
			return s, nil
		}
		s.loadCurrent()
		return s, nil
	}

	var cmd tea.Cmd
	s.likert, cmd = s.likert.Update(msg)
	return s, cmd
}

// fetchSummary kicks off the AI summary request. No-op when the service
// is absent, a request is in flight, or a summary is already shown.
func (s *AssessScreen) fetchSummary() tea.Cmd {
	if s.insights == nil || s.summarizing || s.summary != nil {
		return nil
	}
	result, ok := s.flow.Result()
	if !ok {
		return nil
	}
	s.summarizing = true
	svc := s.insights
	return func() tea.Msg {
		summary, err := svc.GenerateSummary(context.Background(), result)
		return summaryMsg{Summary: summary, Err: err}
	}
}

func (s *AssessScreen) View(width, height int) string {
	if s.flow.State() == flow.StateComplete {
		result, _ := s.flow.Result()
		return renderResults(result, s.summaryState(), s.scroll, width, height)
	}

	q, ok := s.flow.Current()
	if !ok {
		return ""
	}

	current, total := s.flow.Progress()

	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", current, total),
		float64(current-1)/float64(total),
		false,
		min(width-8, 60),
	)

	section := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(q.Section)

	body := bar.View() + "\n\n" + section + "\n\n" + s.likert.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(lipgloss.NewStyle().MaxWidth(min(width-4, 76)).Render(body))
}

func (s *AssessScreen) Title() string {
	if s.flow.State() == flow.StateComplete {
		return "Your Results"
	}
	return "Self-Assessment"
}

// summaryState collects what the results renderer needs to show about
// the AI summary.
func (s *AssessScreen) summaryState() summaryView {
	return summaryView{
		available:   s.insights != nil,
		summarizing: s.summarizing,
		summary:     s.summary,
		errText:     s.summaryErr,
	}
}

func (s *AssessScreen) KeyHints() []layout.KeyHint {
	if s.flow.State() == flow.StateComplete {
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
		}
		if s.insights != nil {
			hints = append(hints, layout.KeyHint{Key: "S", Description: "AI Summary"})
		}
		hints = append(hints,
			layout.KeyHint{Key: "R", Description: "Retake"},
			layout.KeyHint{Key: "Esc", Description: "Back"},
		)
		return hints
	}
	return []layout.KeyHint{
		{Key: "↑↓/1-5", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Back"},
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
