package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	info    key.Binding

	// timer
	toggle key.Binding
	reset  key.Binding

	// recorder
	play   key.Binding
	export key.Binding

	// notes
	newNote  key.Binding
	edit     key.Binding
	delete   key.Binding
	clearAll key.Binding
	copy     key.Binding
	save     key.Binding
	unsaved  key.Binding
	draftOut key.Binding

	// export dialog
	prevFormat key.Binding
	nextFormat key.Binding

	yes key.Binding
	no  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	info:    key.NewBinding(key.WithKeys("?")),

	toggle: key.NewBinding(key.WithKeys(" ")),
	reset:  key.NewBinding(key.WithKeys("r")),

	play:   key.NewBinding(key.WithKeys("p")),
	export: key.NewBinding(key.WithKeys("x")),

	newNote:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e", "enter")),
	delete:   key.NewBinding(key.WithKeys("d")),
	clearAll: key.NewBinding(key.WithKeys("D")),
	copy:     key.NewBinding(key.WithKeys("c")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	unsaved:  key.NewBinding(key.WithKeys("ctrl+u")),
	draftOut: key.NewBinding(key.WithKeys("ctrl+x")),

	prevFormat: key.NewBinding(key.WithKeys("up")),
	nextFormat: key.NewBinding(key.WithKeys("down")),

	yes: key.NewBinding(key.WithKeys("y")),
	no:  key.NewBinding(key.WithKeys("n", "esc")),
}
