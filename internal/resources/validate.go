package resources

import "fmt"

// Validate checks catalog invariants. Run from tests; a failure is a
// defect in the static data, not a runtime condition.
func Validate() error {
	knownTypes := map[ResourceType]bool{}
	for _, t := range AllTypes() {
		knownTypes[t] = true
	}
	knownCategories := map[ResourceCategory]bool{}
	for _, c := range AllCategories() {
		knownCategories[c] = true
	}

	seen := map[string]bool{}
	for _, r := range catalog {
		if r.ID == "" {
			return fmt.Errorf("resource %q: empty id", r.Title)
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate resource id %q", r.ID)
		}
		seen[r.ID] = true

		if r.Title == "" || r.Description == "" {
			return fmt.Errorf("resource %s: empty title or description", r.ID)
		}
		if r.URL == "" {
			return fmt.Errorf("resource %s: empty URL", r.ID)
		}
		if !knownTypes[r.Type] {
			return fmt.Errorf("resource %s: unknown type %q", r.ID, r.Type)
		}
		if !knownCategories[r.Category] {
			return fmt.Errorf("resource %s: unknown category %q", r.ID, r.Category)
		}
		if len(r.Tags) == 0 {
			return fmt.Errorf("resource %s: no tags", r.ID)
		}
	}
	return nil
}
