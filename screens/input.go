package screens

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"screenflow/flow"
	"screenflow/host"
)

// Input returns a screen with a single line editor. It completes with the
// entered text on enter.
func Input(prompt, placeholder string) flow.Screen[string] {
	return flow.NewScreen(func(k flow.Continuation[string]) host.Component {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Focus()
		return &inputComponent{
			prompt: prompt,
			input:  ti,
			submit: flow.OneShot(k),
		}
	})
}

type inputComponent struct {
	host.Nav
	prompt string
	input  textinput.Model
	submit flow.Continuation[string]
}

func (i *inputComponent) Init() tea.Cmd {
	return textinput.Blink
}

func (i *inputComponent) Update(msg tea.Msg) (host.Component, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		i.submit(i.input.Value())
		return i, nil
	}
	var cmd tea.Cmd
	i.input, cmd = i.input.Update(msg)
	return i, cmd
}

func (i *inputComponent) View() string {
	return i.prompt + "\n\n" + i.input.View() + "\n\n" + host.Styles.Hint.Render("enter: submit")
}
