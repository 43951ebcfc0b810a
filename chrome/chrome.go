// Package chrome holds the declarative navigation-item descriptors attached
// to screens: titles, bar buttons, and their activation callbacks.
//
// The flow combinators assign and decorate these descriptors; the host's
// renderer decides what they look like. Nothing in this package draws.
package chrome

// SystemItem identifies a stock bar-button appearance with a conventional label.
type SystemItem int

const (
	SystemNone SystemItem = iota
	SystemAdd
	SystemCancel
	SystemDone
	SystemEdit
	SystemSave
)

// BarButtonTitle pairs an optional free-form label with a system item.
// When Text is empty the system item's conventional label is used.
type BarButtonTitle struct {
	Text   string
	System SystemItem
}

// Stock titles for the common system items.
var (
	TitleAdd    = BarButtonTitle{System: SystemAdd}
	TitleCancel = BarButtonTitle{System: SystemCancel}
	TitleDone   = BarButtonTitle{System: SystemDone}
	TitleEdit   = BarButtonTitle{System: SystemEdit}
	TitleSave   = BarButtonTitle{System: SystemSave}
)

// Title returns a free-form bar-button title.
func Title(text string) BarButtonTitle {
	return BarButtonTitle{Text: text}
}

// Label returns the text the host should render for this title.
func (t BarButtonTitle) Label() string {
	if t.Text != "" {
		return t.Text
	}
	switch t.System {
	case SystemAdd:
		return "Add"
	case SystemCancel:
		return "Cancel"
	case SystemDone:
		return "Done"
	case SystemEdit:
		return "Edit"
	case SystemSave:
		return "Save"
	}
	return ""
}

// BarButton is a navigation-bar action: a title plus the callback fired when
// the user activates it. The descriptor is passive; the host invokes OnPress.
type BarButton struct {
	Title   BarButtonTitle
	OnPress func()
}

// NavigationItem is the chrome attached to one screen: a title and up to two
// bar buttons. Combinators may mutate it up until the screen's unit is built;
// after that it belongs to the built unit and must be left alone.
type NavigationItem struct {
	Title       string
	LeftButton  *BarButton
	RightButton *BarButton
}
