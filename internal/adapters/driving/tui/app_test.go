package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radix-cli/internal/adapters/driven/input"
	"github.com/custodia-labs/radix-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/services"
)

func newTestPorts() *Ports {
	return &Ports{
		Sort:    services.NewSortService(memory.NewRunStore(), nil),
		Decoder: input.NewDecoder(),
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)
	app.SetDimensions(80, 24)
	return app
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// sortValues types values, presses enter and feeds the result back.
func sortValues(t *testing.T, app *App, values string) {
	t.Helper()
	app.input.SetValue(values)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app.Update(cmd())
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewInput, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{Decoder: input.NewDecoder()})

	assert.ErrorIs(t, err, ErrMissingSortService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Same(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	assert.NotNil(t, app.Init())
}

func TestApp_WindowSize(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.True(t, app.Ready())
	assert.Equal(t, 120, app.width)
	assert.Equal(t, 120, app.statusBar.Width())
}

func TestApp_View_NotReady(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_View_Input(t *testing.T) {
	app := newTestApp(t)

	view := app.View()

	assert.Contains(t, view, "radix")
	assert.Contains(t, view, "Values:")
	assert.Contains(t, view, "Ready")
}

func TestApp_SortShowsPasses(t *testing.T) {
	app := newTestApp(t)

	sortValues(t, app, "170 45 75 90 802 24 2 66")

	require.NoError(t, app.Err())
	assert.Equal(t, messages.ViewPasses, app.CurrentView())
	assert.Equal(t, 3, app.PassesView().Steps())
	assert.Equal(t, 0, app.PassesView().Step())
	assert.Equal(t, status.StatePasses, app.statusBar.State())
	assert.Equal(t, []int64{2, 24, 45, 66, 75, 90, 170, 802}, app.PassesView().Run().Output)
	assert.Contains(t, app.View(), "Input")
}

func TestApp_StepThroughPasses(t *testing.T) {
	app := newTestApp(t)
	sortValues(t, app, "170 45 75 90 802 24 2 66")

	_, cmd := app.Update(runes("l"))
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, 1, app.PassesView().Step())
	step, steps := app.statusBar.Progress()
	assert.Equal(t, 1, step)
	assert.Equal(t, 3, steps)
	assert.Contains(t, app.View(), "Pass 1 of 3")

	app.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 3, app.PassesView().Step())
	assert.Contains(t, app.View(), "Sorted.")

	app.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, app.PassesView().Step())
}

func TestApp_ExampleBinding(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlE})

	assert.Equal(t, exampleInput, app.input.Value())
}

func TestApp_InvalidInputShowsError(t *testing.T) {
	app := newTestApp(t)
	app.input.SetValue("1 two")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.ErrorIs(t, app.Err(), domain.ErrInvalidInput)
	assert.Equal(t, messages.ViewInput, app.CurrentView())
	assert.Equal(t, status.StateError, app.statusBar.State())
}

func TestApp_SortErrorShowsError(t *testing.T) {
	app := newTestApp(t)

	sortValues(t, app, "5 -1")

	assert.ErrorIs(t, app.Err(), domain.ErrNegativeValue)
	assert.Equal(t, messages.ViewInput, app.CurrentView())
	assert.Contains(t, app.View(), "Error:")
}

func TestApp_EmptyInputShowsError(t *testing.T) {
	app := newTestApp(t)

	sortValues(t, app, "   ")

	assert.ErrorIs(t, app.Err(), domain.ErrEmptyInput)
}

func TestApp_BackFromPasses(t *testing.T) {
	app := newTestApp(t)
	sortValues(t, app, "3 1 2")

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, messages.ViewInput, app.CurrentView())
	assert.Equal(t, status.StateReady, app.statusBar.State())
	assert.True(t, app.input.Focused())
}

func TestApp_HelpToggle(t *testing.T) {
	app := newTestApp(t)
	sortValues(t, app, "3 1 2")

	app.Update(runes("?"))
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "Keybindings")

	app.Update(runes("?"))
	assert.Equal(t, messages.ViewPasses, app.CurrentView())
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_QuitFromPasses(t *testing.T) {
	app := newTestApp(t)
	sortValues(t, app, "1")

	_, cmd := app.Update(runes("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_TypingInInput(t *testing.T) {
	app := newTestApp(t)

	app.Update(runes("4"))
	app.Update(runes("2"))

	assert.Equal(t, "42", app.input.Value())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
	assert.Equal(t, "boom", app.statusBar.Message())
}

func TestApp_HistoryHint(t *testing.T) {
	settings := services.NewSettingsService(memory.NewConfigStore())
	ports := newTestPorts()
	ports.Settings = settings
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(100, 24)

	assert.Contains(t, app.View(), "Runs are recorded in history (last 20 kept).")

	require.NoError(t, settings.SetHistoryEnabled(false))
	assert.Contains(t, app.View(), "History is off")
}

func TestApp_HistoryHintWithoutSettings(t *testing.T) {
	app := newTestApp(t)

	assert.Empty(t, app.historyHint())
	assert.NotContains(t, app.View(), "history")
}
