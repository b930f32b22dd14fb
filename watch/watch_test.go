package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherEmitsOnWrite(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "inputs.json")
	require.NoError(t, os.WriteFile(inputPath, []byte("{}"), 0644))

	w, err := New(Config{
		Paths:         []string{inputPath},
		DebounceDelay: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(inputPath, []byte(`{"a": 1}`), 0644))

	select {
	case path := <-w.Events():
		assert.Equal(t, inputPath, path)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "inputs.json")
	otherPath := filepath.Join(tmpDir, "other.json")
	require.NoError(t, os.WriteFile(inputPath, []byte("{}"), 0644))

	w, err := New(Config{
		Paths:         []string{inputPath},
		DebounceDelay: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(otherPath, []byte("{}"), 0644))

	select {
	case path := <-w.Events():
		t.Fatalf("unexpected event for %s", path)
	case <-time.After(200 * time.Millisecond):
	}
}
