// Package screens provides leaf screens for the flow combinators: static
// text, line input, and a fuzzy-filterable picker. Each constructor returns a
// blueprint whose continuation fires at most once per built unit.
package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"screenflow/flow"
	"screenflow/host"
)

// Text returns a screen that displays body and completes on enter.
func Text(body string) flow.Screen[struct{}] {
	return flow.NewScreen(func(k flow.Continuation[struct{}]) host.Component {
		return &textComponent{
			body: body,
			done: flow.OneShot(k),
		}
	})
}

type textComponent struct {
	host.Nav
	body string
	done flow.Continuation[struct{}]
}

func (t *textComponent) Init() tea.Cmd {
	return nil
}

func (t *textComponent) Update(msg tea.Msg) (host.Component, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		t.done(struct{}{})
	}
	return t, nil
}

func (t *textComponent) View() string {
	return t.body + "\n\n" + host.Styles.Hint.Render("enter: continue")
}
