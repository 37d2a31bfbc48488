package scoring

import "github.com/mindfulme/mindful/internal/assessment"

// Compute scores an answer set against the question bank. It is a pure
// function: the same answers always produce the same Result.
//
// The answer set may be partial. Unanswered questions are excluded from
// both the category score and its TotalPossible, so the percentage always
// reflects answered questions only. Every category appears in the output,
// answered or not; a category with no answers scores 0/0 and is reported
// as 0% / minimal.
func Compute(answers assessment.AnswerSet) Result {
	var result Result

	for _, cat := range assessment.AllCategories() {
		cr := computeCategory(cat, answers)
		result.TotalScore += cr.Score
		result.MaxPossible += cr.TotalPossible
		result.CategoryResults = append(result.CategoryResults, cr)
	}

	if result.MaxPossible > 0 {
		result.OverallPercentage = float64(result.TotalScore) / float64(result.MaxPossible) * 100
	}
	result.OverallLevel = LevelForPercentage(result.OverallPercentage)
	result.GeneralRecommendations = GeneralRecommendations(result.OverallLevel)

	return result
}

func computeCategory(cat assessment.Category, answers assessment.AnswerSet) CategoryResult {
	var score, answered int
	for _, q := range assessment.ByCategory(cat) {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		score += v
		answered++
	}

	totalPossible := answered * 5
	var pct float64
	if totalPossible > 0 {
		pct = float64(score) / float64(totalPossible) * 100
	}

	level := LevelForPercentage(pct)

	return CategoryResult{
		Category:        cat,
		Score:           score,
		TotalPossible:   totalPossible,
		Percentage:      pct,
		Level:           level,
		Feedback:        CategoryFeedback(cat, level),
		Recommendations: CategoryRecommendations(cat, level),
	}
}
