package scoring

import (
	"fmt"

	"github.com/mindfulme/mindful/internal/assessment"
)

// ValidateTables checks that the feedback and recommendation tables cover
// every (category, level) combination and every overall level. A gap is a
// programming defect; the check runs in tests so lookups never miss at
// runtime.
func ValidateTables() error {
	for _, cat := range assessment.AllCategories() {
		fb, ok := categoryFeedback[cat]
		if !ok {
			return fmt.Errorf("no feedback entries for category %s", cat)
		}
		recs, ok := categoryRecommendations[cat]
		if !ok {
			return fmt.Errorf("no recommendation entries for category %s", cat)
		}
		for _, level := range AllLevels() {
			if fb[level] == "" {
				return fmt.Errorf("missing feedback for (%s, %s)", cat, level)
			}
			if len(recs[level]) == 0 {
				return fmt.Errorf("missing recommendations for (%s, %s)", cat, level)
			}
		}
	}

	for _, level := range AllLevels() {
		if len(generalRecommendations[level]) == 0 {
			return fmt.Errorf("missing general recommendations for level %s", level)
		}
	}

	return nil
}
