package scoring

import "github.com/mindfulme/mindful/internal/assessment"

// categoryFeedback maps (category, level) to a single feedback sentence.
// Coverage is exhaustive across all 7 categories × 5 levels; see
// ValidateTables.
var categoryFeedback = map[assessment.Category]map[SeverityLevel]string{
	assessment.CategoryEngagement: {
		LevelMinimal:     "Your social media engagement is very limited and well-controlled.",
		LevelLow:         "You maintain a healthy balance with social media usage.",
		LevelModerate:    "Your social media engagement is moderate but could benefit from more mindful usage.",
		LevelHigh:        "Your social media usage is notably high and may be affecting your daily life.",
		LevelSignificant: "Your social media engagement is excessive and needs immediate attention.",
	},
	assessment.CategoryEmotional: {
		LevelMinimal:     "Social media has minimal emotional impact on you.",
		LevelLow:         "You maintain good emotional balance when using social media.",
		LevelModerate:    "Social media has a moderate effect on your emotions.",
		LevelHigh:        "Social media significantly affects your emotional wellbeing.",
		LevelSignificant: "Social media has a strong negative impact on your emotional state.",
	},
	assessment.CategoryComparison: {
		LevelMinimal:     "You rarely compare yourself to others on social media.",
		LevelLow:         "You maintain a healthy perspective when viewing others' content.",
		LevelModerate:    "You sometimes engage in social comparison on social media.",
		LevelHigh:        "You frequently compare yourself to others on social media.",
		LevelSignificant: "Social comparison is significantly affecting your self-perception.",
	},
	assessment.CategoryCognitive: {
		LevelMinimal:     "Social media has minimal impact on your cognitive function.",
		LevelLow:         "You maintain good focus despite social media use.",
		LevelModerate:    "Social media sometimes affects your concentration.",
		LevelHigh:        "Social media often disrupts your cognitive performance.",
		LevelSignificant: "Social media severely impacts your ability to focus.",
	},
	assessment.CategoryRelationships: {
		LevelMinimal:     "You maintain strong real-life connections alongside social media.",
		LevelLow:         "Social media generally enhances your relationships.",
		LevelModerate:    "Your relationships are somewhat affected by social media.",
		LevelHigh:        "Social media may be interfering with your real-life relationships.",
		LevelSignificant: "Social media is significantly impacting your personal connections.",
	},
	assessment.CategoryCoping: {
		LevelMinimal:     "You rarely use social media as a coping mechanism.",
		LevelLow:         "You have healthy coping strategies beyond social media.",
		LevelModerate:    "You sometimes use social media to cope with difficulties.",
		LevelHigh:        "You often rely on social media for emotional coping.",
		LevelSignificant: "You heavily depend on social media for emotional regulation.",
	},
	assessment.CategoryValues: {
		LevelMinimal:     "Your social media use strongly aligns with your values.",
		LevelLow:         "You generally maintain authenticity on social media.",
		LevelModerate:    "You sometimes feel pressure to conform on social media.",
		LevelHigh:        "You often feel disconnected from your values on social media.",
		LevelSignificant: "Your social media presence rarely reflects your true self.",
	},
}

// CategoryFeedback returns the feedback sentence for a category at a level.
func CategoryFeedback(cat assessment.Category, level SeverityLevel) string {
	return categoryFeedback[cat][level]
}
