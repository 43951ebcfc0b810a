package host

import (
	tea "github.com/charmbracelet/bubbletea"

	"screenflow/chrome"
)

// Component is one presentable UI unit; implements Bubble Tea's Init/Update/View
// plus accessors for the navigation chrome the host renders around it.
// The flow combinators treat Components as opaque handles: pushed, mounted,
// dismissed, never inspected.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	NavigationItem() *chrome.NavigationItem
	SetNavigationItem(*chrome.NavigationItem)
}

// Nav is an embeddable navigation-item holder that satisfies the chrome half
// of Component. Leaf components embed it and implement the Bubble Tea half.
type Nav struct {
	item *chrome.NavigationItem
}

// NavigationItem returns the component's navigation item, allocating an empty
// one on first access so callers can always decorate it.
func (n *Nav) NavigationItem() *chrome.NavigationItem {
	if n.item == nil {
		n.item = &chrome.NavigationItem{}
	}
	return n.item
}

// SetNavigationItem replaces the component's navigation item.
func (n *Nav) SetNavigationItem(item *chrome.NavigationItem) {
	n.item = item
}
