// Package cli implements the radix command line interface using cobra.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix-cli/internal/core/ports/driven"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
	"github.com/custodia-labs/radix-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Options holds the global flag values used to build services.
type Options struct {
	// ConfigDir overrides the directory holding config.toml.
	ConfigDir string

	// DataDir overrides the directory holding the run history database.
	DataDir string

	// Ephemeral keeps settings and history in memory only.
	Ephemeral bool
}

// Services bundles everything the commands depend on.
type Services struct {
	Sort     driving.SortService
	Settings driving.SettingsService
	Decoder  driven.SequenceDecoder

	// Close releases resources such as the database. May be nil.
	Close func() error
}

// Initializer builds services once global flags are parsed.
type Initializer func(opts Options) (*Services, error)

// Services used by commands. Set by the initializer or directly by tests.
var (
	sortService     driving.SortService
	settingsService driving.SettingsService
	sequenceDecoder driven.SequenceDecoder
	closeServices   func() error
)

var (
	initializer Initializer
	globalOpts  Options
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "radix",
	Short: "Sort non-negative integers with an LSD radix sort",
	Long: `radix sorts non-negative integers in ascending order using a base-10
least-significant-digit radix sort: one stable counting pass per decimal digit
of the largest value.

Values can be given as arguments, read from a file (text, JSON, YAML or TOML)
or piped on stdin. Every run is recorded in a local history.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every pass to stderr")
	rootCmd.PersistentFlags().StringVar(&globalOpts.ConfigDir, "config-dir", "", "config directory (default ~/.radix)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.DataDir, "data-dir", "", "data directory (default ~/.radix/data)")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.Ephemeral, "ephemeral", false, "keep settings and history in memory only")
}

// SetVersion sets the version reported by `radix version`.
func SetVersion(v string) {
	version = v
}

// SetInitializer registers the function that builds services.
// It runs before any command when no services have been set.
func SetInitializer(fn Initializer) {
	initializer = fn
}

// SetServices injects the services used by commands.
func SetServices(s *Services) {
	if s == nil {
		sortService, settingsService, sequenceDecoder, closeServices = nil, nil, nil, nil
		return
	}
	sortService = s.Sort
	settingsService = s.Settings
	sequenceDecoder = s.Decoder
	closeServices = s.Close
}

// Execute runs the root command with ctx and releases services afterwards.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if closeServices != nil {
		if cerr := closeServices(); cerr != nil {
			logger.Warn("closing services: %v", cerr)
		}
	}
	return err
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if sortService != nil || initializer == nil {
		return nil
	}

	s, err := initializer(globalOpts)
	if err != nil {
		return err
	}
	SetServices(s)
	return nil
}
