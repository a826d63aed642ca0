package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	toggle key.Binding
	esc    key.Binding
	save   key.Binding
	reset  key.Binding
	copy   key.Binding
	quit   key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	toggle: key.NewBinding(key.WithKeys(" ")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	save:   key.NewBinding(key.WithKeys("s", "ctrl+s")),
	reset:  key.NewBinding(key.WithKeys("r")),
	copy:   key.NewBinding(key.WithKeys("c")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
