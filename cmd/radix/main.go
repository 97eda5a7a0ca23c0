// Command radix sorts non-negative integers with a base-10 LSD radix sort.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/radix-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/radix-cli/internal/adapters/driven/input"
	"github.com/custodia-labs/radix-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/radix-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/radix-cli/internal/core/services"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli.SetVersion(version)
	cli.SetInitializer(newServices)

	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// newServices wires the driven adapters into the core services.
func newServices(opts cli.Options) (*cli.Services, error) {
	if opts.Ephemeral {
		settings := services.NewSettingsService(memory.NewConfigStore())
		return &cli.Services{
			Sort:     services.NewSortService(memory.NewRunStore(), settings),
			Settings: settings,
			Decoder:  input.NewDecoder(),
		}, nil
	}

	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settings := services.NewSettingsService(configStore)

	store, err := sqlite.NewStore(opts.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}

	return &cli.Services{
		Sort:     services.NewSortService(store.RunStore(), settings),
		Settings: settings,
		Decoder:  input.NewDecoder(),
		Close:    store.Close,
	}, nil
}
