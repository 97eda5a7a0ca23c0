package cli

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/custodia-labs/radix-cli/internal/adapters/driven/input"
	"github.com/custodia-labs/radix-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/radix-cli/internal/core/services"
	"github.com/custodia-labs/radix-cli/internal/logger"
)

// testServices holds the real services wired for command tests.
type testServices struct {
	sort     *services.SortService
	settings *services.SettingsService
}

// setupTestServices injects in-memory services and resets them when the test ends.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	runs := memory.NewRunStore()
	settings := services.NewSettingsService(memory.NewConfigStore())
	sorter := services.NewSortService(runs, settings)

	SetServices(&Services{
		Sort:     sorter,
		Settings: settings,
		Decoder:  input.NewDecoder(),
	})
	t.Cleanup(func() { SetServices(nil) })

	return &testServices{sort: sorter, settings: settings}
}

// resetFlags restores every command flag variable to its default.
func resetFlags() {
	verbose = false
	globalOpts = Options{}
	sortFile, sortFormat = "", ""
	sortJSON, sortTrace, sortNoHistory, sortRecords = false, false, false, false
	exampleTrace = false
	historyLimit, historyJSON = 0, false
	watchFormat, watchInterval, watchRecord = "", input.DefaultWatchInterval, false
	logger.SetVerbose(false)
}

// executeCommand runs the root command with args and returns stdout and stderr.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()

	resetFlags()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags()
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// syncBuffer is a bytes.Buffer safe to read while a command writes to it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
