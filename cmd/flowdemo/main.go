package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"screenflow/chrome"
	"screenflow/flow"
	"screenflow/host"
	"screenflow/internal/flowtrace"
	"screenflow/screens"
)

func main() {
	ctx := context.Background()
	shutdown, err := flowtrace.Install(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flowtrace: %v\n", err)
		os.Exit(1)
	}
	defer shutdown(ctx)

	h := host.NewHost(nil)

	flavors := []string{"espresso", "cappuccino", "flat white", "cold brew", "mocha"}

	pickFlavor := func(name string) flow.Screen[string] {
		return screens.Picker("Pick a coffee for "+name+":", flavors).WithTitle("Coffee")
	}
	// The picker step carries an About modal behind its trailing action.
	pickFlavor = flow.WithTrailingButton(pickFlavor, func(string) *chrome.BarButton {
		about := screens.Text("Orders are brewed in stack order.").WithTitle("About")
		return flow.AddButton(h, about, func(struct{}) {})
	})

	order := flow.Sequence(
		flow.Sequence(
			flow.FromScreen(screens.Input("Who is this order for?", "name").WithTitle("New order")),
			pickFlavor,
		),
		func(coffee string) flow.Screen[struct{}] {
			return screens.Text("One "+coffee+", coming right up.").WithTitle("Enjoy")
		},
	)

	h.SetRoot(order.Run())

	p := tea.NewProgram(h, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
