package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// settingsKeys lists the keys accepted by `radix settings set`.
var settingsKeys = []string{
	"output.format",
	"output.separator",
	"history.enabled",
	"history.limit",
	"trace.enabled",
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change output, history and trace settings.

Settings are stored in config.toml under the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting.

Keys:
  output.format     text or json
  output.separator  separator between values in text output
  history.enabled   true or false
  history.limit     number of runs kept (at least 1)
  trace.enabled     print every pass by default (true or false)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsSetCmd.ValidArgsFunction = completeSettingsKey
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Output]")
	fmt.Fprintf(out, "  Format: %s\n", settings.Output.Format.Description())
	fmt.Fprintf(out, "  Separator: %q\n", settings.Output.Separator)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[History]")
	fmt.Fprintf(out, "  Enabled: %s\n", yesNo(settings.History.Enabled))
	fmt.Fprintf(out, "  Limit: %d\n", settings.History.Limit)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Trace]")
	fmt.Fprintf(out, "  Enabled: %s\n", yesNo(settings.Trace.Enabled))

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.SetByKey(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) && !isSettingsKey(key) {
			return fmt.Errorf("unknown setting %q (valid keys: %s)", key, strings.Join(settingsKeys, ", "))
		}
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Settings restored to defaults.")
	return nil
}

func completeSettingsKey(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return settingsKeys, cobra.ShellCompDirectiveNoFileComp
}

func isSettingsKey(key string) bool {
	return slices.Contains(settingsKeys, key)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
