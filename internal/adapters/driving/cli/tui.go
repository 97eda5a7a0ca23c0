package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive pass visualiser",
	Long: `Launch the interactive terminal UI.

Enter values and press Enter to sort them, then step through the counting
passes one digit at a time. Each step highlights the digit being sorted on
and charts how many values landed in each bucket.

Controls:
  Enter      - Sort
  Ctrl+E     - Fill in the sample array
  ←/h, →/l   - Previous / next pass
  Home, End  - First / last step
  Esc        - Back / Quit
  ?          - Toggle help
  q          - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func tuiPorts() *tui.Ports {
	return &tui.Ports{
		Sort:     sortService,
		Settings: settingsService,
		Decoder:  sequenceDecoder,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if sortService == nil || sequenceDecoder == nil {
		return errors.New("sort service not configured")
	}

	app, err := tui.NewApp(tuiPorts())
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
