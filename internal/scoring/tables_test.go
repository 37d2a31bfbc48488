package scoring

import (
	"testing"

	"github.com/mindfulme/mindful/internal/assessment"
)

func TestValidateTables_SeedTablesPass(t *testing.T) {
	if err := ValidateTables(); err != nil {
		t.Fatalf("table validation failed: %v", err)
	}
}

func TestCategoryLookups_AlwaysPopulated(t *testing.T) {
	for _, cat := range assessment.AllCategories() {
		for _, level := range AllLevels() {
			if CategoryFeedback(cat, level) == "" {
				t.Errorf("empty feedback for (%s, %s)", cat, level)
			}
			if len(CategoryRecommendations(cat, level)) == 0 {
				t.Errorf("empty recommendations for (%s, %s)", cat, level)
			}
		}
	}
	for _, level := range AllLevels() {
		if len(GeneralRecommendations(level)) == 0 {
			t.Errorf("empty general recommendations for %s", level)
		}
	}
}

func TestRecommendations_ReturnCopies(t *testing.T) {
	a := CategoryRecommendations(assessment.CategoryEngagement, LevelHigh)
	a[0] = "mutated"
	b := CategoryRecommendations(assessment.CategoryEngagement, LevelHigh)
	if b[0] == "mutated" {
		t.Fatal("CategoryRecommendations leaked internal slice")
	}
}
