package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func checkinSchema() *Schema {
	return &Schema{
		Name:        "daily-checkin",
		Description: "A daily wellbeing check-in",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"headline":   map[string]any{"type": "string"},
				"screenTime": map[string]any{"type": "integer", "minimum": 0},
				"level":      map[string]any{"type": "string", "enum": []any{"Low", "Moderate", "High"}},
			},
			"required": []any{"headline", "screenTime"},
		},
	}
}

func TestCheckSchema_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"headline":"A calm day","screenTime":95,"level":"Low"}`)
	if err := checkSchema(checkinSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestCheckSchema_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"headline":"Heavy scrolling","screenTime":320}`)
	if err := checkSchema(checkinSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestCheckSchema_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"headline":"No minutes recorded"}`)
	err := checkSchema(checkinSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestCheckSchema_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"headline":"Bad minutes","screenTime":"ninety"}`)
	err := checkSchema(checkinSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestCheckSchema_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"headline":"Unknown level","screenTime":120,"level":"Severe"}`)
	err := checkSchema(checkinSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestCheckSchema_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := checkSchema(checkinSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestCheckSchema_EmptyResponse(t *testing.T) {
	if err := checkSchema(checkinSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestCheckSchema_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := checkSchema(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestCheckSchema_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "weekly-review",
		Description: "A weekly review with nested summary",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"headline": map[string]any{"type": "string"},
					},
					"required": []any{"headline"},
				},
				"focusAreas": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"summary", "focusAreas"},
		},
	}

	valid := json.RawMessage(`{"summary":{"headline":"Steady week"},"focusAreas":["Sleep Impact","FOMO"]}`)
	if err := checkSchema(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"summary":{"headline":"Steady week"},"focusAreas":[4,5]}`)
	if err := checkSchema(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
