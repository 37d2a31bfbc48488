package llm

import (
	"strings"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey: "sk-or-test",
		Model:  "google/gemini-2.0-flash-exp",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "google/gemini-2.0-flash-exp" {
		t.Errorf("model = %q, want %q", p.ModelID(), "google/gemini-2.0-flash-exp")
	}
}

func TestNewOpenRouterProvider_RequiresAPIKey(t *testing.T) {
	_, err := NewOpenRouterProvider(OpenRouterConfig{
		Model: "google/gemini-2.0-flash-exp",
	})
	if err == nil {
		t.Fatal("expected error for empty API key")
	}
	if !strings.Contains(err.Error(), "API key") {
		t.Errorf("error = %v, want API key mention", err)
	}
}

func TestNewOpenRouterProvider_ModelPassThrough(t *testing.T) {
	// Vendor-prefixed IDs must never go through friendly-alias
	// resolution.
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey: "sk-or-test",
		Model:  "anthropic/claude-haiku-4.5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "anthropic/claude-haiku-4.5" {
		t.Errorf("model = %q, want %q", p.ModelID(), "anthropic/claude-haiku-4.5")
	}
}

func TestNewOpenRouterProvider_CustomBaseURL(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "google/gemini-2.0-flash-exp",
		BaseURL: "https://proxy.example.com/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("expected non-nil provider")
	}
}
