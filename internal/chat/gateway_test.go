package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mindfulme/mindful/internal/llm"
)

func TestGateway_SendMessage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Try setting app timers for your most used apps."),
	})
	g := New(mock)

	reply, err := g.SendMessage(context.Background(), "How do I cut down screen time?")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if reply.Role != RoleAssistant {
		t.Errorf("reply role = %s, want assistant", reply.Role)
	}
	if !strings.Contains(reply.Content, "app timers") {
		t.Errorf("unexpected reply content: %q", reply.Content)
	}
	if reply.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("reply should carry a generated id")
	}
}

func TestGateway_SendsPersonaNotHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("First reply.")},
		llm.MockResponse{Content: json.RawMessage("Second reply.")},
	)
	g := New(mock)

	if _, err := g.SendMessage(context.Background(), "first question"); err != nil {
		t.Fatalf("first send failed: %v", err)
	}
	if _, err := g.SendMessage(context.Background(), "second question"); err != nil {
		t.Fatalf("second send failed: %v", err)
	}

	second := mock.Calls[1]
	if !strings.Contains(second.System, "Digital Wellbeing Assistant") {
		t.Error("system prompt should carry the assistant persona")
	}
	// Single-turn: only the new user text goes out, never prior turns.
	if len(second.Messages) != 1 {
		t.Fatalf("second request carried %d messages, want 1", len(second.Messages))
	}
	if second.Messages[0].Content != "second question" {
		t.Errorf("second request content = %q", second.Messages[0].Content)
	}
}

func TestGateway_ServiceError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: fmt.Errorf("connection refused")},
	})
	g := New(mock)

	_, err := g.SendMessage(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected an error from a failing provider")
	}

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error type = %T, want *ServiceError", err)
	}
	if svcErr.Message == "" {
		t.Error("ServiceError message must be non-empty")
	}
	if strings.Contains(svcErr.Message, "connection refused") {
		t.Error("ServiceError message should not leak transport details")
	}
}

func TestGateway_FailureKeepsUserTurn(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: fmt.Errorf("down")},
	})
	g := New(mock)

	_, err := g.SendMessage(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected an error from a failing provider")
	}

	// The user turn stays alongside the error; no assistant turn follows.
	h := g.History()
	if len(h) != 1 {
		t.Fatalf("transcript length = %d, want 1", len(h))
	}
	if h[0].Role != RoleUser || h[0].Content != "hello" {
		t.Errorf("transcript entry = %s %q, want the user turn", h[0].Role, h[0].Content)
	}
}

func TestGateway_RateLimitMessage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{Err: fmt.Errorf("429")},
	})
	g := New(mock)

	_, err := g.SendMessage(context.Background(), "hello")
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error type = %T, want *ServiceError", err)
	}
	if !strings.Contains(svcErr.Message, "too many requests") {
		t.Errorf("rate limit message = %q", svcErr.Message)
	}
}

func TestGateway_RejectsEmptyMessage(t *testing.T) {
	mock := llm.NewMockProvider()
	g := New(mock)

	if _, err := g.SendMessage(context.Background(), "   "); err == nil {
		t.Fatal("expected error for blank message")
	}
	if mock.CallCount() != 0 {
		t.Error("blank message should not reach the provider")
	}
}

func TestGateway_TranscriptAndClear(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Reply one.")},
		llm.MockResponse{Content: json.RawMessage("Reply two.")},
	)
	g := New(mock)

	_, _ = g.SendMessage(context.Background(), "one")
	_, _ = g.SendMessage(context.Background(), "two")

	h := g.History()
	if len(h) != 4 {
		t.Fatalf("transcript length = %d, want 4", len(h))
	}
	if h[0].Role != RoleUser || h[1].Role != RoleAssistant {
		t.Error("transcript should alternate user then assistant")
	}
	if h[2].Content != "two" {
		t.Errorf("third entry = %q, want the second user message", h[2].Content)
	}

	g.Clear()
	if len(g.History()) != 0 {
		t.Error("Clear should empty the transcript")
	}
}

func TestGateway_EmptyResponseIsServiceError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("   "),
	})
	g := New(mock)

	_, err := g.SendMessage(context.Background(), "hello")
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error type = %T, want *ServiceError", err)
	}
}
