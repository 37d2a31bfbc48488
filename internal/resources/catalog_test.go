package resources

import "testing"

func TestCatalogValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("catalog validation failed: %v", err)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	if len(a) != 8 {
		t.Fatalf("catalog size = %d, want 8", len(a))
	}
	a[0].Title = "mutated"
	if All()[0].Title == "mutated" {
		t.Error("All should return a copy, not the backing slice")
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 8},
		{"research category", Filter{Category: CategoryResearch}, 3},
		{"tools category", Filter{Category: CategoryTools}, 2},
		{"apps", Filter{Type: TypeApp}, 2},
		{"research books", Filter{Category: CategoryResearch, Type: TypeBook}, 1},
		{"no match", Filter{Category: CategorySupport, Type: TypeApp}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.filter)
			if len(got) != tt.want {
				t.Errorf("Select(%+v) = %d results, want %d", tt.filter, len(got), tt.want)
			}
			for _, r := range got {
				if tt.filter.Category != "" && r.Category != tt.filter.Category {
					t.Errorf("resource %s has category %s", r.ID, r.Category)
				}
				if tt.filter.Type != "" && r.Type != tt.filter.Type {
					t.Errorf("resource %s has type %s", r.ID, r.Type)
				}
			}
		})
	}
}
