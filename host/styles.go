package host

import "github.com/charmbracelet/lipgloss"

// Theme colors used by the host chrome.
const (
	ColorAccent    = "86"  // Cyan/green - titles
	ColorHighlight = "205" // Magenta - buttons, borders
	ColorMuted     = "241" // Gray - hints
	ColorText      = "252" // Light gray - body text
)

// Styles contains the shared chrome styles: the navigation bar, its buttons,
// and the framed body.
var Styles = struct {
	BarTitle  lipgloss.Style // Bold accent - centered navigation title
	BarButton lipgloss.Style // Highlight - left/right bar-button labels
	Body      lipgloss.Style // Normal body text
	Frame     lipgloss.Style // Rounded border around the presented unit
	Hint      lipgloss.Style // Dimmed key hints
}{
	BarTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	BarButton: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Frame: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
