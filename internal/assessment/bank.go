package assessment

// standardScale is the shared frequency scale used by most questions.
// Two questions (1 and 5) carry domain-specific labels but map onto the
// same 1..5 value range and score identically.
var standardScale = []Option{
	{Value: 1, Label: "Never"},
	{Value: 2, Label: "Rarely"},
	{Value: 3, Label: "Sometimes"},
	{Value: 4, Label: "Often"},
	{Value: 5, Label: "Very Often"},
}

// bank holds the question sequence with precomputed indices.
type bank struct {
	questions  []Question
	byID       map[int]*Question
	byCategory map[Category][]Question
}

// b is the package-level bank singleton, built by init().
var b *bank

func init() {
	b = buildBank(seedQuestions())
}

// buildBank constructs the bank and its indices from a question slice.
func buildBank(questions []Question) *bank {
	bk := &bank{
		questions:  questions,
		byID:       make(map[int]*Question, len(questions)),
		byCategory: make(map[Category][]Question),
	}
	for i := range bk.questions {
		q := &bk.questions[i]
		bk.byID[q.ID] = q
		bk.byCategory[q.Category] = append(bk.byCategory[q.Category], *q)
	}
	return bk
}

// Questions returns the full ordered question sequence.
func Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Count returns the number of questions in the bank.
func Count() int {
	return len(b.questions)
}

// ByID returns the question with the given id.
func ByID(id int) (Question, bool) {
	q, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// ByCategory returns the questions in a category, in bank order.
func ByCategory(c Category) []Question {
	qs := b.byCategory[c]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// seedQuestions returns the fixed 23-question bank. Sections group the
// questions for display: A engagement, B emotional, C comparison,
// D cognitive, E relationships, F coping, G values.
func seedQuestions() []Question {
	return []Question{
		// Section A: Social Media Engagement Patterns
		{
			ID:     1,
			Prompt: "On average, how many minutes per day do you actively spend engaging (scrolling, posting, commenting) on social media platforms?",
			Options: []Option{
				{Value: 1, Label: "Less than 15 minutes"},
				{Value: 2, Label: "15-30 minutes"},
				{Value: 3, Label: "30-60 minutes"},
				{Value: 4, Label: "1-2 hours"},
				{Value: 5, Label: "More than 2 hours"},
			},
			Category: CategoryEngagement,
			Section:  "A",
		},
		{
			ID:       2,
			Prompt:   "How often do you find yourself mindlessly scrolling through social media without a specific purpose?",
			Options:  standardScale,
			Category: CategoryEngagement,
			Section:  "A",
		},
		{
			ID:       3,
			Prompt:   "How often do you check social media first thing in the morning?",
			Options:  standardScale,
			Category: CategoryEngagement,
			Section:  "A",
		},
		{
			ID:       4,
			Prompt:   "How often do you check social media right before going to bed?",
			Options:  standardScale,
			Category: CategoryEngagement,
			Section:  "A",
		},
		{
			ID:     5,
			Prompt: "How many different social media platforms do you actively use on a regular basis?",
			Options: []Option{
				{Value: 1, Label: "1 platform"},
				{Value: 2, Label: "2 platforms"},
				{Value: 3, Label: "3 platforms"},
				{Value: 4, Label: "4 platforms"},
				{Value: 5, Label: "5+ platforms"},
			},
			Category: CategoryEngagement,
			Section:  "A",
		},
		// Section B: Emotional Reactions & Mood
		{
			ID:       6,
			Prompt:   "How often do you feel content or satisfied after using social media?",
			Options:  standardScale,
			Category: CategoryEmotional,
			Section:  "B",
		},
		{
			ID:       7,
			Prompt:   "How often do you feel anxious or on edge after using social media?",
			Options:  standardScale,
			Category: CategoryEmotional,
			Section:  "B",
		},
		{
			ID:       8,
			Prompt:   "How often do you feel overwhelmed by the amount of information or content on social media?",
			Options:  standardScale,
			Category: CategoryEmotional,
			Section:  "B",
		},
		// Section C: Social Comparison & Self-Perception
		{
			ID:       9,
			Prompt:   "How often do you compare your appearance to others on social media?",
			Options:  standardScale,
			Category: CategoryComparison,
			Section:  "C",
		},
		{
			ID:       10,
			Prompt:   "How often do you compare your achievements to others on social media?",
			Options:  standardScale,
			Category: CategoryComparison,
			Section:  "C",
		},
		{
			ID:       11,
			Prompt:   "How often do you feel pressure to present a 'perfect' or idealized version of yourself on social media?",
			Options:  standardScale,
			Category: CategoryComparison,
			Section:  "C",
		},
		// Section D: Cognitive Function & Attention
		{
			ID:       12,
			Prompt:   "How often do you have difficulty concentrating on tasks after using social media?",
			Options:  standardScale,
			Category: CategoryCognitive,
			Section:  "D",
		},
		{
			ID:       13,
			Prompt:   "How often do you find yourself easily distracted by social media notifications?",
			Options:  standardScale,
			Category: CategoryCognitive,
			Section:  "D",
		},
		{
			ID:       14,
			Prompt:   "How often do you feel mentally fatigued or drained after using social media?",
			Options:  standardScale,
			Category: CategoryCognitive,
			Section:  "D",
		},
		// Section E: Real-Life Relationships & Social Connection
		{
			ID:       15,
			Prompt:   "How often do you feel more connected to friends and family because of social media?",
			Options:  standardScale,
			Category: CategoryRelationships,
			Section:  "E",
		},
		{
			ID:       16,
			Prompt:   "How often do you feel disconnected from the people around you because you are focused on social media?",
			Options:  standardScale,
			Category: CategoryRelationships,
			Section:  "E",
		},
		{
			ID:       17,
			Prompt:   "How often do you feel lonely or isolated despite being active on social media?",
			Options:  standardScale,
			Category: CategoryRelationships,
			Section:  "E",
		},
		// Section F: Coping Mechanisms & Avoidance
		{
			ID:       18,
			Prompt:   "How often do you use social media to avoid dealing with difficult emotions or problems?",
			Options:  standardScale,
			Category: CategoryCoping,
			Section:  "F",
		},
		{
			ID:       19,
			Prompt:   "How often do you use social media to distract yourself from stress or anxiety?",
			Options:  standardScale,
			Category: CategoryCoping,
			Section:  "F",
		},
		{
			ID:       20,
			Prompt:   "How often do you find yourself using social media as a way to procrastinate on important tasks?",
			Options:  standardScale,
			Category: CategoryCoping,
			Section:  "F",
		},
		// Section G: Values Alignment & Authenticity
		{
			ID:       21,
			Prompt:   "How often do you feel that your social media activity reflects your true self and values?",
			Options:  standardScale,
			Category: CategoryValues,
			Section:  "G",
		},
		{
			ID:       22,
			Prompt:   "How often do you feel pressure to conform to certain trends or opinions on social media?",
			Options:  standardScale,
			Category: CategoryValues,
			Section:  "G",
		},
		{
			ID:       23,
			Prompt:   "How often do you feel authentic and genuine when using social media?",
			Options:  standardScale,
			Category: CategoryValues,
			Section:  "G",
		},
	}
}
