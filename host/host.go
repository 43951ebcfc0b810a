package host

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultWidth = 64

// Host mounts flow stacks in a terminal. It presents one root stack plus a
// LIFO of modal overlays; the top unit of the top stack receives input and is
// rendered framed by its navigation bar.
//
// Host is the single UI thread: continuations fire synchronously inside
// Update, so stack mutations never race.
type Host struct {
	root     *Stack
	overlays []*Stack
	keys     KeyMap
	width    int
	height   int
}

var _ tea.Model = (*Host)(nil)

// NewHost creates a host presenting the given root stack. A nil root is
// valid until SetRoot is called.
func NewHost(root *Stack) *Host {
	return &Host{root: root, keys: DefaultKeyMap, width: defaultWidth}
}

// SetRoot replaces the root stack. Used when the root flow is built after
// the host, e.g. when its bar buttons need a back-reference to the host.
func (h *Host) SetRoot(root *Stack) {
	h.root = root
}

// Present mounts a stack as a modal overlay above everything currently shown.
func (h *Host) Present(s *Stack) {
	h.overlays = append(h.overlays, s)
}

// Dismiss unmounts the top overlay. No-op when nothing is presented.
func (h *Host) Dismiss() {
	if len(h.overlays) == 0 {
		return
	}
	h.overlays = h.overlays[:len(h.overlays)-1]
}

// OverlayCount returns the number of mounted overlays.
func (h *Host) OverlayCount() int {
	return len(h.overlays)
}

// Top returns the stack receiving input: the top overlay, else the root.
func (h *Host) Top() *Stack {
	if n := len(h.overlays); n > 0 {
		return h.overlays[n-1]
	}
	return h.root
}

// Init implements tea.Model.
func (h *Host) Init() tea.Cmd {
	if top := h.topComponent(); top != nil {
		return top.Init()
	}
	return nil
}

// Update implements tea.Model. Bar-button keys activate the top unit's
// navigation actions; everything else goes to the unit itself.
func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height
		return h, nil
	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Quit) {
			return h, tea.Quit
		}
		if top := h.topComponent(); top != nil {
			item := top.NavigationItem()
			if key.Matches(msg, h.keys.Left) && item.LeftButton != nil {
				if item.LeftButton.OnPress != nil {
					item.LeftButton.OnPress()
				}
				return h, nil
			}
			if key.Matches(msg, h.keys.Right) && item.RightButton != nil {
				if item.RightButton.OnPress != nil {
					item.RightButton.OnPress()
				}
				return h, nil
			}
		}
	}

	stack := h.Top()
	if stack == nil {
		return h, nil
	}
	top := stack.Peek()
	if top == nil {
		return h, nil
	}
	next, cmd := top.Update(msg)
	stack.setTop(next)
	return h, cmd
}

// View implements tea.Model.
func (h *Host) View() string {
	top := h.topComponent()
	if top == nil {
		return ""
	}
	inner := h.width - 4 // frame border + padding
	if inner < 8 {
		inner = 8
	}
	bar := renderBar(top, inner)
	body := Styles.Body.Render(top.View())
	return Styles.Frame.Width(inner).Render(bar + "\n\n" + body)
}

func (h *Host) topComponent() Component {
	stack := h.Top()
	if stack == nil {
		return nil
	}
	return stack.Peek()
}

// renderBar lays out the navigation bar: left button, centered title, right
// button. Absent buttons leave their edge blank.
func renderBar(c Component, width int) string {
	item := c.NavigationItem()
	var left, right string
	if item.LeftButton != nil {
		left = Styles.BarButton.Render("[" + item.LeftButton.Title.Label() + "]")
	}
	if item.RightButton != nil {
		right = Styles.BarButton.Render("[" + item.RightButton.Title.Label() + "]")
	}
	title := Styles.BarTitle.Render(item.Title)

	gap := width - lipgloss.Width(left) - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	lpad := gap / 2
	rpad := gap - lpad
	return left + strings.Repeat(" ", lpad) + title + strings.Repeat(" ", rpad) + right
}
