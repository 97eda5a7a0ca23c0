// Package keymap defines keybindings for the TUI.
package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Sort sorts the values in the input line.
	Sort key.Binding

	// Example fills the input line with the sample array.
	Example key.Binding

	// Next steps forward one pass.
	Next key.Binding

	// Prev steps back one pass.
	Prev key.Binding

	// First jumps to the unsorted input.
	First key.Binding

	// Last jumps to the final pass.
	Last key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Sort: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "sort"),
		),
		Example: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "sample array"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/l", "next pass"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h", "previous pass"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "input"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "result"),
		),
	}
}

// InputHelp returns keybindings for the input view.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Sort, k.Example, k.Back}
}

// PassesHelp returns keybindings for the pass view.
func (k *KeyMap) PassesHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Back, k.Help}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Sort, k.Example},
		{k.Prev, k.Next, k.First, k.Last},
		{k.Back, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	return slices.Contains(binding.Keys(), keyStr)
}
