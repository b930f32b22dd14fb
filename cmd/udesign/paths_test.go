package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInputsLiteral(t *testing.T) {
	// Literal paths pass through even when they do not exist yet, so the
	// read error names the missing file.
	resolved, err := resolveInputs([]string{"missing.json"})
	require.NoError(t, err)
	assert.Equal(t, []string{"missing.json"}, resolved)
}

func TestResolveInputsGlob(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"a.json", "b.json", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("{}"), 0644))
	}

	resolved, err := resolveInputs([]string{filepath.Join(tmpDir, "*.json")})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "a.json"),
		filepath.Join(tmpDir, "b.json"),
	}, resolved)
}

func TestResolveInputsGlobNoMatch(t *testing.T) {
	_, err := resolveInputs([]string{filepath.Join(t.TempDir(), "*.json")})
	assert.Error(t, err)
}

func TestResolveInputsDeduplicates(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	resolved, err := resolveInputs([]string{path, filepath.Join(tmpDir, "*.json")})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, resolved)
}

func TestDeriveOutputPath(t *testing.T) {
	assert.Equal(t, "designs/dpm.html", deriveOutputPath("designs/dpm.json"))
	assert.Equal(t, "inputs.html", deriveOutputPath("inputs.json"))
}
