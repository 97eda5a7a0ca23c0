package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/views/passes"
	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// exampleInput is the sample array offered by the Example binding.
const exampleInput = "170 45 75 90 802 24 2 66"

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	input      *input.ValuesInput
	passesView *passes.View
	statusBar  *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// previousView is restored when help closes.
	previousView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		input:       input.NewValuesInput(s),
		passesView:  passes.NewView(s, km),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewInput,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.input.Init(),
		tea.SetWindowTitle("radix - pass visualiser"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.SortCompleted:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.err = nil
		a.passesView.SetRun(msg.Run)
		a.statusBar.SetState(status.StatePasses)
		a.statusBar.SetProgress(0, a.passesView.Steps())
		a.currentView = messages.ViewPasses
		a.input.Blur()
		return a, nil

	case messages.PassChanged:
		a.statusBar.SetProgress(msg.Step, a.passesView.Steps())
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.currentView {
		case messages.ViewInput:
			return a.updateInput(msg)
		case messages.ViewPasses:
			return a.updatePasses(msg)
		case messages.ViewHelp:
			return a.updateHelp(msg)
		}
	}

	if a.currentView == messages.ViewInput {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Back):
		return a, tea.Quit
	case keymap.Matches(k, a.keymap.Example):
		a.input.SetValue(exampleInput)
		return a, nil
	case keymap.Matches(k, a.keymap.Sort):
		values, err := a.ports.Decoder.Decode(strings.NewReader(a.input.Value()), domain.InputFormatText)
		if err != nil {
			a.setError(err)
			return a, nil
		}
		a.statusBar.SetState(status.StateSorting)
		return a, a.sortCmd(values)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) updatePasses(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(k, a.keymap.Back):
		a.currentView = messages.ViewInput
		a.statusBar.Clear()
		return a, a.input.Focus()
	case keymap.Matches(k, a.keymap.Help):
		a.previousView = a.currentView
		a.currentView = messages.ViewHelp
		return a, nil
	}

	var cmd tea.Cmd
	a.passesView, cmd = a.passesView.Update(msg)
	return a, cmd
}

func (a *App) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if keymap.Matches(k, a.keymap.Back) || keymap.Matches(k, a.keymap.Help) || keymap.Matches(k, a.keymap.Quit) {
		a.currentView = a.previousView
	}
	return a, nil
}

// sortCmd runs a traced sort outside the update loop.
func (a *App) sortCmd(values []int64) tea.Cmd {
	ctx := a.ctx
	sorter := a.ports.Sort
	return func() tea.Msg {
		run, err := sorter.Sort(ctx, domain.SortRequest{
			Values: values,
			Source: "tui",
			Trace:  true,
		})
		return messages.SortCompleted{Run: run, Err: err}
	}
}

func (a *App) setError(err error) {
	a.err = err
	a.statusBar.SetState(status.StateError)
	a.statusBar.SetMessage(err.Error())
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewPasses:
		body = a.passesView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.viewInput()
	}

	header := a.styles.Title.Render("radix") + a.styles.Muted.Render("  LSD radix sort, base 10")
	return header + "\n\n" + body + "\n\n" + a.statusBar.View()
}

func (a *App) viewInput() string {
	hint := a.styles.Muted.Render("Enter non-negative integers separated by spaces or commas.")
	if h := a.historyHint(); h != "" {
		hint += "\n" + a.styles.Muted.Render(h)
	}
	return a.input.View() + "\n\n" + hint
}

// historyHint describes where sorted runs go, or "" without settings.
func (a *App) historyHint() string {
	if a.ports.Settings == nil {
		return ""
	}
	settings, err := a.ports.Settings.Get()
	if err != nil {
		return ""
	}
	if !settings.History.Enabled {
		return "History is off: runs are not recorded."
	}
	return fmt.Sprintf("Runs are recorded in history (last %d kept).", settings.History.Limit)
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Subtitle.Render("Keybindings"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-8s %s\n", h.Key, a.styles.Help.Render(h.Desc)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error.
func (a *App) Err() error {
	return a.err
}

// Ready returns true once the terminal size is known.
func (a *App) Ready() bool {
	return a.ready
}

// PassesView returns the pass view.
func (a *App) PassesView() *passes.View {
	return a.passesView
}

// SetDimensions updates the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.input.SetWidth(width)
	a.passesView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}
