package screens

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"screenflow/flow"
	"screenflow/host"
)

// Picker returns a screen listing items with fuzzy filtering. Typing narrows
// the list, up/down moves the cursor, and enter completes with the selected
// item. Enter on an empty list is ignored.
func Picker(prompt string, items []string) flow.Screen[string] {
	return flow.NewScreen(func(k flow.Continuation[string]) host.Component {
		p := &pickerComponent{
			prompt: prompt,
			items:  items,
			choose: flow.OneShot(k),
		}
		p.refilter()
		return p
	})
}

type pickerComponent struct {
	host.Nav
	prompt  string
	items   []string
	visible []string
	query   string
	cursor  int
	choose  flow.Continuation[string]
}

func (p *pickerComponent) Init() tea.Cmd {
	return nil
}

func (p *pickerComponent) Update(msg tea.Msg) (host.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.Type {
	case tea.KeyEnter:
		if p.cursor < len(p.visible) {
			p.choose(p.visible[p.cursor])
		}
	case tea.KeyUp:
		if p.cursor > 0 {
			p.cursor--
		}
	case tea.KeyDown:
		if p.cursor < len(p.visible)-1 {
			p.cursor++
		}
	case tea.KeyBackspace:
		if p.query != "" {
			runes := []rune(p.query)
			p.query = string(runes[:len(runes)-1])
			p.refilter()
		}
	case tea.KeyRunes:
		p.query += string(key.Runes)
		p.refilter()
	}
	return p, nil
}

// refilter recomputes the visible items, best match first, and clamps the
// cursor back into range.
func (p *pickerComponent) refilter() {
	if p.query == "" {
		p.visible = append([]string(nil), p.items...)
	} else {
		ranks := fuzzy.RankFindFold(p.query, p.items)
		sort.Sort(ranks)
		p.visible = make([]string, len(ranks))
		for i, r := range ranks {
			p.visible[i] = r.Target
		}
	}
	if p.cursor >= len(p.visible) {
		p.cursor = 0
	}
}

func (p *pickerComponent) View() string {
	out := p.prompt
	if p.query != "" {
		out += "  " + host.Styles.Hint.Render("filter: "+p.query)
	}
	out += "\n\n"
	if len(p.visible) == 0 {
		out += host.Styles.Hint.Render("no matches")
	}
	selected := lipgloss.NewStyle().
		Foreground(lipgloss.Color(host.ColorHighlight)).
		Bold(true)
	for i, item := range p.visible {
		if i == p.cursor {
			out += selected.Render("> "+item) + "\n"
		} else {
			out += "  " + item + "\n"
		}
	}
	out += "\n" + host.Styles.Hint.Render("type: filter  ↑/↓: move  enter: choose")
	return out
}
