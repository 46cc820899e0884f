package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"bufcycle/internal/config"
)

// Keymap is the key-binding registration table. Modes consult it instead
// of hard-coding keys, so hosts can rebind every command from config.
type Keymap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Close key.Binding
	Open  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeymap returns the built-in bindings
func DefaultKeymap() Keymap {
	return Keymap{
		Next: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab/]", "next buffer"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("S-tab/[", "previous buffer"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first buffer"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last buffer"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close buffer"),
		),
		Open: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "open file"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeymapFromConfig applies per-action overrides from config on top of the
// defaults. An empty override list keeps the built-in keys.
func KeymapFromConfig(keys config.KeySettings) Keymap {
	km := DefaultKeymap()
	override(&km.Next, keys.Next)
	override(&km.Prev, keys.Prev)
	override(&km.First, keys.First)
	override(&km.Last, keys.Last)
	override(&km.Close, keys.Close)
	override(&km.Open, keys.Open)
	override(&km.Help, keys.Help)
	override(&km.Quit, keys.Quit)
	return km
}

func override(binding *key.Binding, keys []string) {
	if len(keys) > 0 {
		binding.SetKeys(keys...)
	}
}
