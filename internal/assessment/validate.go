package assessment

import "fmt"

// Validate checks the seeded question bank. A failure here is a programming
// defect, not a runtime condition; the check runs in tests.
func Validate() error {
	return validateQuestions(b.questions)
}

// validateQuestions enforces the bank invariants:
//   - ids are unique and positive
//   - prompts are non-empty
//   - every question has exactly 5 options valued 1..5 in ascending order
//     with non-empty labels
//   - every category owns at least one question
//   - all questions in a section share one category
func validateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("question bank is empty")
	}

	seen := make(map[int]bool, len(questions))
	sectionCategory := make(map[string]Category)

	for _, q := range questions {
		if q.ID <= 0 {
			return fmt.Errorf("question %q: id must be positive, got %d", q.Prompt, q.ID)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true

		if q.Prompt == "" {
			return fmt.Errorf("question %d: empty prompt", q.ID)
		}

		if len(q.Options) != 5 {
			return fmt.Errorf("question %d: expected 5 options, got %d", q.ID, len(q.Options))
		}
		for i, opt := range q.Options {
			if opt.Value != i+1 {
				return fmt.Errorf("question %d: option %d has value %d, want %d", q.ID, i, opt.Value, i+1)
			}
			if opt.Label == "" {
				return fmt.Errorf("question %d: option %d has empty label", q.ID, i)
			}
		}

		if q.Section == "" {
			return fmt.Errorf("question %d: empty section", q.ID)
		}
		if prev, ok := sectionCategory[q.Section]; ok {
			if prev != q.Category {
				return fmt.Errorf("section %s mixes categories %s and %s", q.Section, prev, q.Category)
			}
		} else {
			sectionCategory[q.Section] = q.Category
		}
	}

	counts := make(map[Category]int)
	for _, q := range questions {
		counts[q.Category]++
	}
	for _, c := range AllCategories() {
		if counts[c] == 0 {
			return fmt.Errorf("category %s has no questions", c)
		}
		delete(counts, c)
	}
	for c := range counts {
		return fmt.Errorf("question bank uses unknown category %q", c)
	}

	return nil
}
