package assessment

import (
	"strings"
	"testing"
)

func TestValidate_SeedBankPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed bank validation failed: %v", err)
	}
}

func TestValidateQuestions_DetectsDuplicateID(t *testing.T) {
	qs := []Question{
		{ID: 1, Prompt: "a", Options: standardScale, Category: CategoryEngagement, Section: "A"},
		{ID: 1, Prompt: "b", Options: standardScale, Category: CategoryEngagement, Section: "A"},
	}
	err := validateQuestions(qs)
	if err == nil {
		t.Fatal("expected error for duplicate id, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateQuestions_DetectsBadOptionValues(t *testing.T) {
	qs := []Question{
		{
			ID:     1,
			Prompt: "a",
			Options: []Option{
				{Value: 1, Label: "x"},
				{Value: 2, Label: "x"},
				{Value: 4, Label: "x"},
				{Value: 4, Label: "x"},
				{Value: 5, Label: "x"},
			},
			Category: CategoryEngagement,
			Section:  "A",
		},
	}
	if err := validateQuestions(qs); err == nil {
		t.Fatal("expected error for non-sequential option values, got nil")
	}
}

func TestValidateQuestions_DetectsMixedSection(t *testing.T) {
	qs := []Question{
		{ID: 1, Prompt: "a", Options: standardScale, Category: CategoryEngagement, Section: "A"},
		{ID: 2, Prompt: "b", Options: standardScale, Category: CategoryEmotional, Section: "A"},
	}
	err := validateQuestions(qs)
	if err == nil {
		t.Fatal("expected error for mixed-category section, got nil")
	}
	if !strings.Contains(err.Error(), "section") {
		t.Errorf("error should mention section, got: %v", err)
	}
}

func TestValidateQuestions_RequiresEveryCategory(t *testing.T) {
	qs := []Question{
		{ID: 1, Prompt: "a", Options: standardScale, Category: CategoryEngagement, Section: "A"},
	}
	err := validateQuestions(qs)
	if err == nil {
		t.Fatal("expected error for missing categories, got nil")
	}
}
