package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mindfulme/mindful/internal/ui/theme"
)

// Likert is a five-point ordinal scale selector. Options are displayed
// in ascending value order; the chosen 1-based value is read with Value.
type Likert struct {
	Prompt   string
	Options  []string
	Selected int
}

// NewLikert creates a Likert selector with the cursor on the first option.
func NewLikert(prompt string, options []string) Likert {
	return Likert{
		Prompt:  prompt,
		Options: options,
	}
}

// Init returns nil.
func (l Likert) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Number keys jump directly to an
// option; enter is left to the owning screen.
func (l Likert) Update(msg tea.Msg) (Likert, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if l.Selected > 0 {
			l.Selected--
		}
	case "down", "j":
		if l.Selected < len(l.Options)-1 {
			l.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(l.Options) {
				l.Selected = idx
			}
		}
	}

	return l, nil
}

// Value returns the 1-based value of the highlighted option.
func (l Likert) Value() int {
	return l.Selected + 1
}

// View renders the prompt and the scale.
func (l Likert) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(l.Prompt) + "\n\n"

	for i, opt := range l.Options {
		prefix := "  "
		if i == l.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if i == l.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
