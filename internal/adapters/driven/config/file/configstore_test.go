package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("output.format", "json"))
	require.NoError(t, store.Set("history.limit", 42))
	require.NoError(t, store.Set("history.enabled", true))

	assert.Equal(t, "json", store.GetString("output.format"))
	assert.Equal(t, 42, store.GetInt("history.limit"))
	assert.True(t, store.GetBool("history.enabled"))

	// Wrong types and missing keys fall back to zero values.
	assert.Equal(t, "", store.GetString("history.limit"))
	assert.Equal(t, 0, store.GetInt("output.format"))
	assert.False(t, store.GetBool("output.format"))
	assert.Equal(t, "", store.GetString("missing"))

	val, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("output.separator", ","))
	require.NoError(t, store1.Set("history.limit", 5))
	require.NoError(t, store1.Set("trace.enabled", true))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, ",", store2.GetString("output.separator"))
	assert.Equal(t, 5, store2.GetInt("history.limit"))
	assert.True(t, store2.GetBool("trace.enabled"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("history.limit", 7))
	require.NoError(t, store.Set("output.format", "text"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "[history]")
	assert.Contains(t, content, "[output]")
	assert.NotContains(t, content, "history.limit")
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[output]
format = "json"
separator = ", "

[history]
enabled = false
limit = 3
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "json", store.GetString("output.format"))
	assert.Equal(t, ", ", store.GetString("output.separator"))
	assert.False(t, store.GetBool("history.enabled"))
	_, ok := store.Get("history.enabled")
	assert.True(t, ok)
	assert.Equal(t, 3, store.GetInt("history.limit"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("output.format", "text"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("any_key")
	assert.False(t, ok)
}

func TestConfigStore_Save_Explicit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	store.mu.Lock()
	store.data["output.separator"] = "|"
	store.mu.Unlock()

	require.NoError(t, store.Save())

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "|", store2.GetString("output.separator"))
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("output.format", "text"))

	// A directory in place of the file makes the write fail.
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("output.format", "json"))
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("output.format", "text"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0600))

	assert.Error(t, store.Load())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := "key.n" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_, _ = store.Get(key)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"output":  map[string]any{"format": "json"},
		"history": map[string]any{"limit": int64(4), "enabled": true},
		"top":     "level",
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{
		"output.format":   "json",
		"history.limit":   int64(4),
		"history.enabled": true,
		"top":             "level",
	}, flat)

	assert.Equal(t, nested, nestMap(flat))
}
