package scoring

import (
	"reflect"
	"testing"

	"github.com/mindfulme/mindful/internal/assessment"
)

// answerAll returns an answer set with every bank question set to value.
func answerAll(value int) assessment.AnswerSet {
	a := assessment.AnswerSet{}
	for _, q := range assessment.Questions() {
		a[q.ID] = value
	}
	return a
}

func TestCompute_AllThrees(t *testing.T) {
	result := Compute(answerAll(3))

	if len(result.CategoryResults) != 7 {
		t.Fatalf("expected 7 category results, got %d", len(result.CategoryResults))
	}
	for _, cr := range result.CategoryResults {
		if cr.Percentage != 60 {
			t.Errorf("category %s: percentage = %v, want 60", cr.Category, cr.Percentage)
		}
		if cr.Level != LevelModerate {
			t.Errorf("category %s: level = %s, want moderate", cr.Category, cr.Level)
		}
	}
	if result.OverallPercentage != 60 {
		t.Errorf("overall percentage = %v, want 60", result.OverallPercentage)
	}
	if result.OverallLevel != LevelModerate {
		t.Errorf("overall level = %s, want moderate", result.OverallLevel)
	}
}

func TestCompute_AllOnes(t *testing.T) {
	result := Compute(answerAll(1))

	if result.OverallPercentage != 20 {
		t.Errorf("overall percentage = %v, want 20", result.OverallPercentage)
	}
	if result.OverallLevel != LevelMinimal {
		t.Errorf("overall level = %s, want minimal", result.OverallLevel)
	}
	want := GeneralRecommendations(LevelMinimal)
	if !reflect.DeepEqual(result.GeneralRecommendations, want) {
		t.Errorf("general recommendations = %v, want minimal table entry", result.GeneralRecommendations)
	}
}

func TestCompute_EngagementMaxedOut(t *testing.T) {
	a := answerAll(1)
	for _, q := range assessment.ByCategory(assessment.CategoryEngagement) {
		a[q.ID] = 5
	}

	result := Compute(a)

	for _, cr := range result.CategoryResults {
		if cr.Category == assessment.CategoryEngagement {
			if cr.Score != 25 || cr.TotalPossible != 25 {
				t.Errorf("engagement score = %d/%d, want 25/25", cr.Score, cr.TotalPossible)
			}
			if cr.Percentage != 100 {
				t.Errorf("engagement percentage = %v, want 100", cr.Percentage)
			}
			if cr.Level != LevelSignificant {
				t.Errorf("engagement level = %s, want significant", cr.Level)
			}
			continue
		}
		count := len(assessment.ByCategory(cr.Category))
		if cr.Score != count {
			t.Errorf("category %s: score = %d, want %d", cr.Category, cr.Score, count)
		}
		if cr.Percentage != 20 {
			t.Errorf("category %s: percentage = %v, want 20", cr.Category, cr.Percentage)
		}
		if cr.Level != LevelMinimal {
			t.Errorf("category %s: level = %s, want minimal", cr.Category, cr.Level)
		}
	}
}

func TestCompute_Additivity(t *testing.T) {
	result := Compute(answerAll(4))

	var score, possible int
	for _, cr := range result.CategoryResults {
		score += cr.Score
		possible += cr.TotalPossible
	}
	if score != result.TotalScore {
		t.Errorf("sum of category scores %d != total score %d", score, result.TotalScore)
	}
	if possible != result.MaxPossible {
		t.Errorf("sum of category totals %d != max possible %d", possible, result.MaxPossible)
	}
	if result.MaxPossible != assessment.Count()*5 {
		t.Errorf("max possible = %d, want %d", result.MaxPossible, assessment.Count()*5)
	}
}

func TestCompute_PartialAnswers(t *testing.T) {
	// Answer two of the five engagement questions and nothing else.
	a := assessment.AnswerSet{1: 5, 2: 3}
	result := Compute(a)

	if len(result.CategoryResults) != 7 {
		t.Fatalf("expected all 7 categories in output, got %d", len(result.CategoryResults))
	}

	for _, cr := range result.CategoryResults {
		if cr.Category == assessment.CategoryEngagement {
			if cr.Score != 8 {
				t.Errorf("engagement score = %d, want 8", cr.Score)
			}
			if cr.TotalPossible != 10 {
				t.Errorf("engagement totalPossible = %d, want 10 (2 answered × 5)", cr.TotalPossible)
			}
			if cr.Percentage != 80 {
				t.Errorf("engagement percentage = %v, want 80", cr.Percentage)
			}
			continue
		}
		// Unanswered categories still appear, scored as 0% / minimal.
		if cr.Score != 0 || cr.TotalPossible != 0 {
			t.Errorf("category %s: score = %d/%d, want 0/0", cr.Category, cr.Score, cr.TotalPossible)
		}
		if cr.Percentage != 0 {
			t.Errorf("category %s: percentage = %v, want 0", cr.Category, cr.Percentage)
		}
		if cr.Level != LevelMinimal {
			t.Errorf("category %s: level = %s, want minimal", cr.Category, cr.Level)
		}
		if cr.Feedback == "" {
			t.Errorf("category %s: feedback should still be populated", cr.Category)
		}
	}
}

func TestCompute_EmptyAnswerSet(t *testing.T) {
	result := Compute(assessment.AnswerSet{})

	if result.TotalScore != 0 || result.MaxPossible != 0 {
		t.Errorf("empty answers scored %d/%d, want 0/0", result.TotalScore, result.MaxPossible)
	}
	if result.OverallPercentage != 0 {
		t.Errorf("overall percentage = %v, want 0", result.OverallPercentage)
	}
	if result.OverallLevel != LevelMinimal {
		t.Errorf("overall level = %s, want minimal", result.OverallLevel)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	a := answerAll(2)
	a[7] = 5
	a[12] = 4

	first := Compute(a)
	second := Compute(a)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("Compute is not deterministic for identical answer sets")
	}
}

func TestCompute_RaisingAnswersNeverLowersLevel(t *testing.T) {
	for low := 1; low < 5; low++ {
		a := answerAll(low)
		before := Compute(a)

		for _, q := range assessment.ByCategory(assessment.CategoryCoping) {
			a[q.ID] = low + 1
		}
		after := Compute(a)

		var beforeLevel, afterLevel SeverityLevel
		for i := range before.CategoryResults {
			if before.CategoryResults[i].Category == assessment.CategoryCoping {
				beforeLevel = before.CategoryResults[i].Level
				afterLevel = after.CategoryResults[i].Level
			}
		}
		if afterLevel < beforeLevel {
			t.Fatalf("raising answers from %d to %d lowered level from %s to %s",
				low, low+1, beforeLevel, afterLevel)
		}
	}
}

func TestCompute_CategoryOrderMatchesBank(t *testing.T) {
	result := Compute(answerAll(3))
	cats := assessment.AllCategories()
	for i, cr := range result.CategoryResults {
		if cr.Category != cats[i] {
			t.Errorf("category at index %d = %s, want %s", i, cr.Category, cats[i])
		}
	}
}
