package flow

import (
	"testing"

	"github.com/mindfulme/mindful/internal/assessment"
	"github.com/mindfulme/mindful/internal/scoring"
)

func TestController_InitialState(t *testing.T) {
	c := New()

	if c.State() != StateInProgress {
		t.Fatalf("initial state = %v, want InProgress", c.State())
	}
	q, ok := c.Current()
	if !ok {
		t.Fatal("expected a current question")
	}
	if q.ID != 1 {
		t.Errorf("first question id = %d, want 1", q.ID)
	}
	cur, total := c.Progress()
	if cur != 1 || total != assessment.Count() {
		t.Errorf("progress = %d/%d, want 1/%d", cur, total, assessment.Count())
	}
}

func TestController_AdvancesForward(t *testing.T) {
	c := New()

	if err := c.SubmitAnswer(3); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	q, ok := c.Current()
	if !ok || q.ID != 2 {
		t.Fatalf("expected question 2 after first answer, got %d (ok=%v)", q.ID, ok)
	}
	if c.Answers()[1] != 3 {
		t.Errorf("answer for question 1 = %d, want 3", c.Answers()[1])
	}
}

func TestController_RejectsInvalidValue(t *testing.T) {
	c := New()

	if err := c.SubmitAnswer(6); err == nil {
		t.Fatal("expected error for out-of-scale value")
	}
	// The cursor must not advance on a rejected answer.
	if q, _ := c.Current(); q.ID != 1 {
		t.Errorf("cursor moved after rejected answer: at question %d", q.ID)
	}
}

func TestController_CompletesAndScores(t *testing.T) {
	c := New()
	for i := 0; i < assessment.Count(); i++ {
		if err := c.SubmitAnswer(3); err != nil {
			t.Fatalf("submit %d failed: %v", i, err)
		}
	}

	if c.State() != StateComplete {
		t.Fatalf("state = %v after all answers, want Complete", c.State())
	}
	if _, ok := c.Current(); ok {
		t.Error("Current should report no question once complete")
	}

	result, ok := c.Result()
	if !ok {
		t.Fatal("expected a result once complete")
	}
	if result.OverallLevel != scoring.LevelModerate {
		t.Errorf("overall level = %s, want moderate for all-3s", result.OverallLevel)
	}

	if err := c.SubmitAnswer(3); err == nil {
		t.Error("expected error submitting past completion")
	}
}

func TestController_ResetFromComplete(t *testing.T) {
	c := New()
	for i := 0; i < assessment.Count(); i++ {
		_ = c.SubmitAnswer(5)
	}

	c.Reset()

	if c.State() != StateInProgress {
		t.Fatalf("state after reset = %v, want InProgress", c.State())
	}
	if len(c.Answers()) != 0 {
		t.Errorf("answers after reset = %d entries, want 0", len(c.Answers()))
	}
	if _, ok := c.Result(); ok {
		t.Error("result should be discarded on reset")
	}
	if q, ok := c.Current(); !ok || q.ID != 1 {
		t.Errorf("expected question 1 after reset, got %d (ok=%v)", q.ID, ok)
	}
}

func TestController_ResetMidRun(t *testing.T) {
	c := New()
	_ = c.SubmitAnswer(2)
	_ = c.SubmitAnswer(4)

	c.Reset()

	cur, _ := c.Progress()
	if cur != 1 {
		t.Errorf("progress after mid-run reset = %d, want 1", cur)
	}
	if len(c.Answers()) != 0 {
		t.Errorf("answers after mid-run reset = %d entries, want 0", len(c.Answers()))
	}
}
