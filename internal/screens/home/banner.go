package home

import (
	"charm.land/lipgloss/v2"

	"github.com/mindfulme/mindful/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗██╗███╗   ██╗██████╗ ███████╗██╗   ██╗██╗
 ████╗ ████║██║████╗  ██║██╔══██╗██╔════╝██║   ██║██║
 ██╔████╔██║██║██╔██╗ ██║██║  ██║█████╗  ██║   ██║██║
 ██║╚██╔╝██║██║██║╚██╗██║██║  ██║██╔══╝  ██║   ██║██║
 ██║ ╚═╝ ██║██║██║ ╚████║██████╔╝██║     ╚██████╔╝███████╗
 ╚═╝     ╚═╝╚═╝╚═╝  ╚═══╝╚═════╝ ╚═╝      ╚═════╝ ╚══════╝`

const bannerCompact = "M I N D F U L"

// renderBanner returns the MINDFUL banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 62 columns.
func renderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 62 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
