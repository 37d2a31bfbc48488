package assessment

// Category is one of the seven psychological dimensions the assessment
// measures. Every question belongs to exactly one category.
type Category string

const (
	CategoryEngagement    Category = "engagement"
	CategoryEmotional     Category = "emotional"
	CategoryComparison    Category = "comparison"
	CategoryCognitive     Category = "cognitive"
	CategoryRelationships Category = "relationships"
	CategoryCoping        Category = "coping"
	CategoryValues        Category = "values"
)

// AllCategories returns all categories in display order. The order matches
// the section order of the question bank (A through G).
func AllCategories() []Category {
	return []Category{
		CategoryEngagement,
		CategoryEmotional,
		CategoryComparison,
		CategoryCognitive,
		CategoryRelationships,
		CategoryCoping,
		CategoryValues,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryEngagement:
		return "Engagement Patterns"
	case CategoryEmotional:
		return "Emotional Reactions"
	case CategoryComparison:
		return "Social Comparison"
	case CategoryCognitive:
		return "Cognitive Function"
	case CategoryRelationships:
		return "Real-Life Relationships"
	case CategoryCoping:
		return "Coping Mechanisms"
	case CategoryValues:
		return "Values Alignment"
	default:
		return string(c)
	}
}
