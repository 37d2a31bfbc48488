package insights

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mindfulme/mindful/internal/assessment"
	"github.com/mindfulme/mindful/internal/llm"
	"github.com/mindfulme/mindful/internal/scoring"
)

func moderateResult(t *testing.T) *scoring.Result {
	t.Helper()
	answers := assessment.AnswerSet{}
	for _, q := range assessment.Questions() {
		if err := answers.Record(q.ID, 3); err != nil {
			t.Fatalf("record answer: %v", err)
		}
	}
	r := scoring.Compute(answers)
	return &r
}

func TestGenerateSummary(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"headline":"Your habits are mostly balanced.","focusAreas":["Emotional Reactions"],"encouragement":"Small changes add up."}`),
	})
	svc := NewService(mock)

	got, err := svc.GenerateSummary(context.Background(), moderateResult(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Headline != "Your habits are mostly balanced." {
		t.Fatalf("unexpected headline: %q", got.Headline)
	}
	if len(got.FocusAreas) != 1 || got.FocusAreas[0] != "Emotional Reactions" {
		t.Fatalf("unexpected focus areas: %v", got.FocusAreas)
	}
	if got.Encouragement == "" {
		t.Fatal("expected non-empty encouragement")
	}
}

func TestGenerateSummaryRequestsStructuredOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"headline":"h","focusAreas":["Values Alignment"],"encouragement":"e"}`),
	})
	svc := NewService(mock)

	if _, err := svc.GenerateSummary(context.Background(), moderateResult(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil {
		t.Fatal("expected a schema on the request")
	}
	if req.Schema.Name != "assessment-summary" {
		t.Fatalf("unexpected schema name: %q", req.Schema.Name)
	}
	if req.System == "" {
		t.Fatal("expected a system prompt")
	}
}

func TestGenerateSummaryPromptListsEveryCategory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"headline":"h","focusAreas":["Coping Mechanisms"],"encouragement":"e"}`),
	})
	svc := NewService(mock)

	if _, err := svc.GenerateSummary(context.Background(), moderateResult(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	for _, cat := range assessment.AllCategories() {
		name := assessment.CategoryDisplayName(cat)
		if !strings.Contains(prompt, name) {
			t.Fatalf("prompt missing category %q:\n%s", name, prompt)
		}
	}
	if !strings.Contains(prompt, "Overall:") {
		t.Fatalf("prompt missing overall line:\n%s", prompt)
	}
}

func TestGenerateSummaryProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock)

	_, err := svc.GenerateSummary(context.Background(), moderateResult(t))
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got: %v", err)
	}
}

func TestGenerateSummaryMalformedContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	svc := NewService(mock)

	if _, err := svc.GenerateSummary(context.Background(), moderateResult(t)); err == nil {
		t.Fatal("expected decode error")
	}
}
