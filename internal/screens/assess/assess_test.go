package assess

import (
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mindfulme/mindful/internal/assessment"
	"github.com/mindfulme/mindful/internal/insights"
	"github.com/mindfulme/mindful/internal/llm"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestStartsAtFirstQuestion(t *testing.T) {
	s := New(nil)

	view := s.View(100, 30)
	first := assessment.Questions()[0]
	if !strings.Contains(view, strings.Fields(first.Prompt)[0]) {
		t.Errorf("first question prompt not rendered")
	}
	if !strings.Contains(view, "Question 1 of 23") {
		t.Errorf("progress label missing from view")
	}
}

func TestAnswerAdvances(t *testing.T) {
	s := New(nil)

	// Pick value 3 and submit.
	s.Update(keyPress('3'))
	s.Update(enter())

	if !strings.Contains(s.View(100, 30), "Question 2 of 23") {
		t.Error("expected to advance to question 2")
	}
	if s.flow.Answers()[1] != 3 {
		t.Errorf("answer for question 1 = %d, want 3", s.flow.Answers()[1])
	}
}

func TestCompletionShowsResults(t *testing.T) {
	s := New(nil)

	for i := 0; i < assessment.Count(); i++ {
		s.Update(keyPress('3'))
		s.Update(enter())
	}

	if s.Title() != "Your Results" {
		t.Errorf("title = %q, want results title", s.Title())
	}
	view := s.View(100, 60)
	if !strings.Contains(view, "Overall") {
		t.Error("results view should show the overall section")
	}
	if !strings.Contains(view, "Moderate") {
		t.Error("all-3s run should show a Moderate level")
	}
}

func completeAll(s *AssessScreen, value rune) {
	for i := 0; i < assessment.Count(); i++ {
		s.Update(keyPress(value))
		s.Update(enter())
	}
}

func TestSummaryRequestAndRender(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"headline":"A balanced picture overall.","focusAreas":["Social Comparison"],"encouragement":"Keep going."}`),
	})
	s := New(insights.NewService(mock))
	completeAll(s, '3')

	if !strings.Contains(s.View(100, 60), "Press S") {
		t.Error("results view should offer the AI summary")
	}

	_, cmd := s.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("expected a command to fetch the summary")
	}
	if !strings.Contains(s.View(100, 60), "Generating") {
		t.Error("view should show the in-flight state")
	}

	s.Update(cmd())
	view := s.View(100, 60)
	if !strings.Contains(view, "A balanced picture overall.") {
		t.Error("summary headline missing from view")
	}
	if !strings.Contains(view, "Social Comparison") {
		t.Error("focus area missing from view")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}

	// Repeat press must not refetch.
	if _, cmd := s.Update(keyPress('s')); cmd != nil {
		t.Error("second press should not start another request")
	}
}

func TestSummaryFailureShowsNotice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	s := New(insights.NewService(mock))
	completeAll(s, '3')

	_, cmd := s.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("expected a command to fetch the summary")
	}
	s.Update(cmd())

	if !strings.Contains(s.View(100, 60), "Could not generate a summary") {
		t.Error("failure notice missing from view")
	}
}

func TestSummaryHiddenWithoutService(t *testing.T) {
	s := New(nil)
	completeAll(s, '3')

	if strings.Contains(s.View(100, 60), "Press S") {
		t.Error("AI summary hint should be hidden without a provider")
	}
	if _, cmd := s.Update(keyPress('s')); cmd != nil {
		t.Error("pressing s without a service should be a no-op")
	}
}

func TestRetakeResets(t *testing.T) {
	s := New(nil)

	for i := 0; i < assessment.Count(); i++ {
		s.Update(keyPress('5'))
		s.Update(enter())
	}
	s.Update(keyPress('r'))

	if s.Title() != "Self-Assessment" {
		t.Errorf("title after retake = %q", s.Title())
	}
	if !strings.Contains(s.View(100, 30), "Question 1 of 23") {
		t.Error("retake should return to question 1")
	}
	if len(s.flow.Answers()) != 0 {
		t.Error("retake should discard previous answers")
	}
}
