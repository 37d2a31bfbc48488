// Package home renders the main menu.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mindfulme/mindful/internal/chat"
	"github.com/mindfulme/mindful/internal/insights"
	"github.com/mindfulme/mindful/internal/router"
	"github.com/mindfulme/mindful/internal/screen"
	"github.com/mindfulme/mindful/internal/screens/assess"
	chatscreen "github.com/mindfulme/mindful/internal/screens/chat"
	"github.com/mindfulme/mindful/internal/screens/placeholder"
	resourcescreen "github.com/mindfulme/mindful/internal/screens/resources"
	"github.com/mindfulme/mindful/internal/ui/components"
	"github.com/mindfulme/mindful/internal/ui/theme"
)

const chatUnconfiguredNotice = "The wellness assistant needs an API key.\n\n" +
	"Set MINDFUL_GEMINI_API_KEY (or GEMINI_API_KEY,\n" +
	"OPENAI_API_KEY, ANTHROPIC_API_KEY) and restart."

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. gateway and insightsSvc may be nil when no
// LLM provider is configured; the chat entry then shows setup
// instructions and the assessment skips the AI summary.
func New(gateway *chat.Gateway, insightsSvc *insights.Service) *HomeScreen {
	items := []components.MenuItem{
		{Label: "TAKE ASSESSMENT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: assess.New(insightsSvc)}
			}
		}},
		{Label: "WELLNESS CHAT", Action: func() tea.Cmd {
			if gateway == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: placeholder.New("Wellness Chat", chatUnconfiguredNotice),
					}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(gateway)}
			}
		}},
		{Label: "RESOURCES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: resourcescreen.New()}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, renderBanner(width))

	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Understand your social media habits. Find balance.")
	sections = append(sections, tagline)

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
