package assessment

import "testing"

func TestBank_CountAndOrder(t *testing.T) {
	qs := Questions()
	if len(qs) != 23 {
		t.Fatalf("expected 23 questions, got %d", len(qs))
	}
	for i, q := range qs {
		if q.ID != i+1 {
			t.Fatalf("question at index %d has id %d, want %d", i, q.ID, i+1)
		}
	}
}

func TestBank_CategoryPartition(t *testing.T) {
	want := map[Category]int{
		CategoryEngagement:    5,
		CategoryEmotional:     3,
		CategoryComparison:    3,
		CategoryCognitive:     3,
		CategoryRelationships: 3,
		CategoryCoping:        3,
		CategoryValues:        3,
	}

	total := 0
	for cat, n := range want {
		got := ByCategory(cat)
		if len(got) != n {
			t.Errorf("category %s: expected %d questions, got %d", cat, n, len(got))
		}
		for _, q := range got {
			if q.Category != cat {
				t.Errorf("question %d indexed under %s but belongs to %s", q.ID, cat, q.Category)
			}
		}
		total += len(got)
	}
	if total != Count() {
		t.Fatalf("category partition covers %d questions, bank has %d", total, Count())
	}
}

func TestByID(t *testing.T) {
	q, ok := ByID(5)
	if !ok {
		t.Fatal("question 5 not found")
	}
	if q.Category != CategoryEngagement {
		t.Errorf("question 5 category = %s, want engagement", q.Category)
	}
	if q.Options[4].Label != "5+ platforms" {
		t.Errorf("question 5 uses a custom scale, got top label %q", q.Options[4].Label)
	}

	if _, ok := ByID(99); ok {
		t.Error("expected lookup miss for id 99")
	}
}

func TestAnswerSet_Record(t *testing.T) {
	a := AnswerSet{}

	if err := a.Record(1, 3); err != nil {
		t.Fatalf("valid record failed: %v", err)
	}
	if a[1] != 3 {
		t.Fatalf("expected answer 3 for question 1, got %d", a[1])
	}

	if err := a.Record(99, 3); err == nil {
		t.Error("expected error for unknown question id")
	}
	if err := a.Record(1, 6); err == nil {
		t.Error("expected error for out-of-scale value")
	}
	if err := a.Record(1, 0); err == nil {
		t.Error("expected error for zero value")
	}
}
