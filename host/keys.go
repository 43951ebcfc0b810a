package host

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds the navigation-bar actions. Everything else is forwarded to
// the top component.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// DefaultKeyMap activates the left button with esc (back/cancel position) and
// the right button with ctrl+a (trailing action position).
var DefaultKeyMap = KeyMap{
	Left: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "left action"),
	),
	Right: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl+a", "right action"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
