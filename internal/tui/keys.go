package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	buildInfo key.Binding
	logout    key.Binding
	download  key.Binding
	open      key.Binding
	copyPath  key.Binding
	back      key.Binding
	print     key.Binding
	save      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up")),
	down:      key.NewBinding(key.WithKeys("down")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	logout:    key.NewBinding(key.WithKeys("l")),
	download:  key.NewBinding(key.WithKeys("d")),
	open:      key.NewBinding(key.WithKeys("enter", "o")),
	copyPath:  key.NewBinding(key.WithKeys("y")),
	back:      key.NewBinding(key.WithKeys("esc", "q")),
	print:     key.NewBinding(key.WithKeys("ctrl+p")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
}
