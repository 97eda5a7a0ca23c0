package input

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

func nextUpdate(t *testing.T, updates <-chan Update) Update {
	t.Helper()
	select {
	case u, ok := <-updates:
		require.True(t, ok, "updates channel closed")
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for update")
		return Update{}
	}
}

func TestWatcher_InitialAndChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	require.NoError(t, os.WriteFile(path, []byte("3 1 2"), 0644))

	w := NewWatcher(path, domain.InputFormatText, NewDecoder(), 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := w.Watch(ctx)
	require.NoError(t, err)

	first := nextUpdate(t, updates)
	require.NoError(t, first.Err)
	assert.Equal(t, []int64{3, 1, 2}, first.Values)

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(path, []byte("9 8"), 0644)
	}()

	// A write may surface as several events; wait for the new contents.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case u := <-updates:
			if u.Err == nil && len(u.Values) == 2 {
				assert.Equal(t, []int64{9, 8}, u.Values)
				return
			}
		case <-deadline:
			t.Fatal("timeout waiting for modified contents")
		}
	}
}

func TestWatcher_DecodeErrorKeepsWatching(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	require.NoError(t, os.WriteFile(path, []byte("not numbers"), 0644))

	w := NewWatcher(path, domain.InputFormatText, NewDecoder(), 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := w.Watch(ctx)
	require.NoError(t, err)

	first := nextUpdate(t, updates)
	assert.ErrorIs(t, first.Err, domain.ErrInvalidInput)
}

func TestWatcher_ClosesOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	require.NoError(t, os.WriteFile(path, []byte("1"), 0644))

	w := NewWatcher(path, domain.InputFormatText, NewDecoder(), 0)
	ctx, cancel := context.WithCancel(context.Background())

	updates, err := w.Watch(ctx)
	require.NoError(t, err)
	nextUpdate(t, updates)

	cancel()

	closed := make(chan struct{})
	go func() {
		for range updates {
		}
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatcher_MissingFile(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing.txt"), domain.InputFormatText, NewDecoder(), 0)

	_, err := w.Watch(context.Background())

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewWatcher_DefaultInterval(t *testing.T) {
	w := NewWatcher("dir/../values.txt", domain.InputFormatText, NewDecoder(), 0)

	assert.Equal(t, "values.txt", w.Path())
	assert.InDelta(t, 1/DefaultWatchInterval.Seconds(), float64(w.limiter.Limit()), 1e-9)
}
