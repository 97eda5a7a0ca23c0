// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// SortCompleted carries a traced run back to the model.
type SortCompleted struct {
	Run *domain.SortRun
	Err error
}

// PassChanged is sent when the pass view moves to another step.
type PassChanged struct {
	Step int
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewInput is the value entry line.
	ViewInput ViewType = iota
	// ViewPasses steps through the counting passes of a run.
	ViewPasses
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewInput:
		return "input"
	case ViewPasses:
		return "passes"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
