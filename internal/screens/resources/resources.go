// Package resources renders the curated resource catalog.
package resources

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	res "github.com/mindfulme/mindful/internal/resources"
	"github.com/mindfulme/mindful/internal/screen"
	"github.com/mindfulme/mindful/internal/ui/layout"
	"github.com/mindfulme/mindful/internal/ui/theme"
)

// ResourcesScreen lists catalog entries with a cycling category filter.
type ResourcesScreen struct {
	categories []res.ResourceCategory
	catIndex   int // 0 = all, otherwise categories[catIndex-1]
	selected   int
}

var _ screen.Screen = (*ResourcesScreen)(nil)
var _ screen.KeyHintProvider = (*ResourcesScreen)(nil)

// New creates a ResourcesScreen showing the whole catalog.
func New() *ResourcesScreen {
	return &ResourcesScreen{categories: res.AllCategories()}
}

func (r *ResourcesScreen) filtered() []res.Resource {
	if r.catIndex == 0 {
		return res.All()
	}
	return res.Select(res.Filter{Category: r.categories[r.catIndex-1]})
}

func (r *ResourcesScreen) Init() tea.Cmd {
	return nil
}

func (r *ResourcesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.selected > 0 {
			r.selected--
		}
	case "down", "j":
		if r.selected < len(r.filtered())-1 {
			r.selected++
		}
	case "tab":
		r.catIndex = (r.catIndex + 1) % (len(r.categories) + 1)
		r.selected = 0
	}

	return r, nil
}

func (r *ResourcesScreen) View(width, height int) string {
	cw := width - 8
	if cw > 72 {
		cw = 72
	}

	filterLabel := "all"
	if r.catIndex > 0 {
		filterLabel = string(r.categories[r.catIndex-1])
	}

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Filter: %s (tab to change)", filterLabel)))
	b.WriteString("\n\n")

	items := r.filtered()
	for i, item := range items {
		titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		prefix := "  "
		if i == r.selected {
			titleStyle = titleStyle.Foreground(theme.Primary)
			prefix = "▸ "
		}

		meta := fmt.Sprintf("%s · %s", item.Type, item.Category)
		if item.Author != "" {
			meta += " · " + item.Author
		}
		if item.Rating > 0 {
			meta += fmt.Sprintf(" · %.1f★", item.Rating)
		}

		b.WriteString(titleStyle.Render(prefix + item.Title))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  " + meta))
		b.WriteString("\n")
		if i == r.selected {
			desc := lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(cw - 2).
				Render("  " + item.Description)
			b.WriteString(desc)
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("  " + item.URL))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(items) == 0 {
		b.WriteString(theme.Hint.Render("No resources in this category."))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(lipgloss.NewStyle().MaxWidth(cw).Render(b.String()))
}

func (r *ResourcesScreen) Title() string {
	return "Resources"
}

func (r *ResourcesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "Tab", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}
