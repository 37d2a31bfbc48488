// Package chat sends user messages to an LLM provider under a fixed
// digital-wellbeing persona and keeps an in-memory transcript.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindfulme/mindful/internal/llm"
)

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single transcript entry.
type Message struct {
	ID        uuid.UUID
	Role      Role
	Content   string
	CreatedAt time.Time
}

const (
	// maxTokens keeps responses concise.
	maxTokens = 1024
	// temperature trades some determinism for conversational tone.
	temperature = 0.7
)

// Gateway owns one conversation with the assistant. Each call to
// SendMessage is single-turn: only the fixed persona prompt and the new
// user text go to the provider, never prior transcript entries. The
// transcript exists for display only.
//
// A Gateway is owned by a single session and is not safe for concurrent
// use.
type Gateway struct {
	provider   llm.Provider
	transcript []Message
	now        func() time.Time
}

// New creates a Gateway backed by the given provider.
func New(provider llm.Provider) *Gateway {
	return &Gateway{
		provider: provider,
		now:      time.Now,
	}
}

// SendMessage forwards text to the assistant and returns its reply.
// Provider failures come back as a *ServiceError; the quiz flow is never
// affected by them. The user turn is recorded before the provider call
// and stays in the transcript even when that call fails; the assistant
// turn is recorded only on success.
func (g *Gateway) SendMessage(ctx context.Context, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, fmt.Errorf("empty message")
	}

	g.transcript = append(g.transcript, g.newMessage(RoleUser, text))

	ctx = llm.WithPurpose(ctx, "chat")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: text},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return Message{}, newServiceError(err)
	}

	reply := strings.TrimSpace(string(resp.Content))
	if reply == "" {
		return Message{}, newServiceError(&llm.ErrInvalidResponse{
			Err: fmt.Errorf("empty response content"),
		})
	}

	g.transcript = append(g.transcript, g.newMessage(RoleAssistant, reply))

	return g.transcript[len(g.transcript)-1], nil
}

// History returns a copy of the transcript in order.
func (g *Gateway) History() []Message {
	out := make([]Message, len(g.transcript))
	copy(out, g.transcript)
	return out
}

// Clear discards the transcript.
func (g *Gateway) Clear() {
	g.transcript = nil
}

func (g *Gateway) newMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		CreatedAt: g.now(),
	}
}
