package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // literal IDs pass through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGeminiSchemaFrom(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline":   map[string]any{"type": "string"},
			"screenTime": map[string]any{"type": "integer"},
			"level":      map[string]any{"type": "string", "enum": []any{"Low", "Moderate", "High"}},
			"focusAreas": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"headline", "screenTime"},
	}

	schema := geminiSchemaFrom(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["headline"].Type != "STRING" {
		t.Fatalf("expected STRING for headline, got %s", schema.Properties["headline"].Type)
	}
	if schema.Properties["screenTime"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for screenTime, got %s", schema.Properties["screenTime"].Type)
	}
	if len(schema.Properties["level"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["level"].Enum))
	}
	if schema.Properties["focusAreas"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for focusAreas, got %s", schema.Properties["focusAreas"].Type)
	}
	if schema.Properties["focusAreas"].Items.Type != "STRING" {
		t.Fatalf("expected STRING items for focusAreas, got %s", schema.Properties["focusAreas"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
