package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	All     key.Binding
	Doctors key.Binding
	Nurses  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Toggle  key.Binding
	Dismiss key.Binding
	Mode    key.Binding
	Layout  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		All:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
		Doctors: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "doctors")),
		Nurses:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "nurses")),
		Next:    key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev")),
		Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open/close")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Mode:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "popup/inline")),
		Layout:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "layout")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.All, k.Doctors, k.Nurses, k.Next, k.Toggle, k.Dismiss, k.Mode, k.Layout, k.Quit}
}
