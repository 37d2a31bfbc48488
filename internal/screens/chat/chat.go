// Package chat renders the wellness assistant conversation.
package chat

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	chatsvc "github.com/mindfulme/mindful/internal/chat"
	"github.com/mindfulme/mindful/internal/screen"
	"github.com/mindfulme/mindful/internal/ui/components"
	"github.com/mindfulme/mindful/internal/ui/layout"
	"github.com/mindfulme/mindful/internal/ui/theme"
)

// replyMsg is sent when the assistant's response (or failure) arrives.
type replyMsg struct {
	Reply chatsvc.Message
	Err   error
}

// entry is one rendered conversation bubble.
type entry struct {
	role  chatsvc.Role
	text  string
	isErr bool
}

// ChatScreen owns the conversation UI. A superseded reply that arrives
// after the user sends another message is still appended in order; the
// gateway serializes calls so there is at most one in flight.
type ChatScreen struct {
	gateway *chatsvc.Gateway
	input   components.TextInput
	entries []entry
	waiting bool
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a ChatScreen backed by the gateway.
func New(gateway *chatsvc.Gateway) *ChatScreen {
	return &ChatScreen{
		gateway: gateway,
		input:   components.NewTextInput("Ask about screen time, habits, balance...", 500),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.waiting = false
		if msg.Err != nil {
			var svcErr *chatsvc.ServiceError
			text := "Something went wrong. Please try again."
			if errors.As(msg.Err, &svcErr) {
				text = svcErr.Message
			}
			c.entries = append(c.entries, entry{role: chatsvc.RoleAssistant, text: text, isErr: true})
			return c, nil
		}
		c.entries = append(c.entries, entry{role: msg.Reply.Role, text: msg.Reply.Content})
		return c, nil

	case tea.KeyMsg:
		if msg.String() == "enter" && !c.waiting {
			text := strings.TrimSpace(c.input.Value())
			if text == "" {
				return c, nil
			}
			c.entries = append(c.entries, entry{role: chatsvc.RoleUser, text: text})
			c.input.Reset()
			c.waiting = true
			gw := c.gateway
			return c, func() tea.Msg {
				reply, err := gw.SendMessage(context.Background(), text)
				return replyMsg{Reply: reply, Err: err}
			}
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) View(width, height int) string {
	cw := width - 8
	if cw > 76 {
		cw = 76
	}
	if cw < 30 {
		cw = 30
	}

	var lines []string
	for _, e := range c.entries {
		lines = append(lines, renderEntry(e, cw)...)
		lines = append(lines, "")
	}
	if c.waiting {
		lines = append(lines, theme.Hint.Render("assistant is thinking..."))
	}

	inputHeight := 3
	transcriptHeight := height - inputHeight
	if transcriptHeight < 0 {
		transcriptHeight = 0
	}

	// Pin the newest messages to the bottom of the transcript area.
	if len(lines) > transcriptHeight {
		lines = lines[len(lines)-transcriptHeight:]
	}

	transcript := lipgloss.NewStyle().
		Width(width).
		Height(transcriptHeight).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))

	inputBox := lipgloss.NewStyle().
		Width(cw).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(c.input.View())

	inputArea := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(inputBox)

	return transcript + "\n" + inputArea
}

func (c *ChatScreen) Title() string {
	return "Wellness Chat"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

// renderEntry wraps and styles one conversation bubble.
func renderEntry(e entry, cw int) []string {
	var style lipgloss.Style
	var label string

	switch {
	case e.isErr:
		style = lipgloss.NewStyle().Foreground(theme.Error)
		label = "! "
	case e.role == chatsvc.RoleUser:
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		label = "you  "
	default:
		style = lipgloss.NewStyle().Foreground(theme.Text)
		label = "mindful  "
	}

	var out []string
	first := true
	for _, para := range strings.Split(e.text, "\n") {
		for _, line := range wrapLine(para, cw-len(label)) {
			if first {
				out = append(out, style.Render(label+line))
				first = false
				continue
			}
			out = append(out, style.Render(strings.Repeat(" ", len(label))+line))
		}
	}
	return out
}

func wrapLine(text string, cw int) []string {
	if cw < 10 {
		cw = 10
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var out []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > cw {
			out = append(out, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(out, line)
}
