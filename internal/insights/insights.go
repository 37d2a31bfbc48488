// Package insights turns a scored assessment into a short personalized
// summary using the LLM provider's structured output mode.
package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mindfulme/mindful/internal/assessment"
	"github.com/mindfulme/mindful/internal/llm"
	"github.com/mindfulme/mindful/internal/scoring"
)

// Summary is the structured document the model returns. FocusAreas names
// the categories most worth attention, drawn from the category display
// names the prompt provides.
type Summary struct {
	Headline      string   `json:"headline"`
	FocusAreas    []string `json:"focusAreas"`
	Encouragement string   `json:"encouragement"`
}

const summaryInstructions = `You are a supportive digital wellbeing coach.
You receive the scored results of a social media self-assessment and write
a short personalized summary. Be warm and non-judgmental. Never diagnose.
Pick focus areas only from the category names given in the results.`

// summarySchema constrains the model to the Summary document shape.
// Validation happens inside the provider layer.
var summarySchema = &llm.Schema{
	Name:        "assessment-summary",
	Description: "Personalized summary of a social media wellness self-assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One-sentence overall takeaway",
			},
			"focusAreas": map[string]any{
				"type":        "array",
				"description": "One to three category names most worth attention",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    3,
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "A brief encouraging closing thought",
			},
		},
		"required": []any{"headline", "focusAreas", "encouragement"},
	},
}

// Service generates summaries. One instance is shared across screens.
type Service struct {
	provider llm.Provider
}

// NewService creates a Service backed by the given provider.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// GenerateSummary asks the model for a structured summary of result.
// The response is schema-validated before it reaches this layer.
func (s *Service) GenerateSummary(ctx context.Context, result *scoring.Result) (*Summary, error) {
	ctx = llm.WithPurpose(ctx, "insights")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: summaryInstructions,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: renderResultForPrompt(result)},
		},
		Schema:      summarySchema,
		MaxTokens:   512,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	var out Summary
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	return &out, nil
}

// renderResultForPrompt flattens the scored result into the plain-text
// form the model reads.
func renderResultForPrompt(result *scoring.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Overall: %.0f%% (%s)\n", result.OverallPercentage, result.OverallLevel.Label())
	b.WriteString("Categories:\n")
	for _, cr := range result.CategoryResults {
		fmt.Fprintf(&b, "- %s: %.0f%% (%s)\n",
			assessment.CategoryDisplayName(cr.Category), cr.Percentage, cr.Level.Label())
	}

	return b.String()
}
