package scoring

import "github.com/mindfulme/mindful/internal/assessment"

// CategoryResult is the scored outcome for a single category.
type CategoryResult struct {
	Category assessment.Category

	// Score is the sum of answered option values in this category.
	Score int

	// TotalPossible is answered-question count × 5. It reflects only the
	// questions actually answered, so a partially answered category is
	// scored against what was answered, not the full category size.
	TotalPossible int

	// Percentage is Score/TotalPossible × 100, or 0 when nothing in the
	// category was answered.
	Percentage float64

	Level           SeverityLevel
	Feedback        string
	Recommendations []string
}

// Result is the full outcome of a completed (or partial) assessment.
type Result struct {
	TotalScore             int
	MaxPossible            int
	OverallPercentage      float64
	OverallLevel           SeverityLevel
	CategoryResults        []CategoryResult
	GeneralRecommendations []string
}
