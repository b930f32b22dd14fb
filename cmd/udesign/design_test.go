package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmdouglass/udesigner/config"
	"github.com/kmdouglass/udesigner/dpm"
	"github.com/kmdouglass/udesigner/mfki"
)

func TestInitThenReport(t *testing.T) {
	tmpDir := t.TempDir()
	d := dpm.Designer()

	inputPath := filepath.Join(tmpDir, "dpm_inputs.json")
	require.NoError(t, writeDefaults(d, inputPath))

	outputPath := filepath.Join(tmpDir, "design.html")
	require.NoError(t, renderOne(d, config.DefaultConfig(), inputPath, outputPath))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Diffraction Phase Microscope Design")
}

func TestReportTitleOverride(t *testing.T) {
	tmpDir := t.TempDir()
	d := mfki.Designer()

	inputPath := filepath.Join(tmpDir, "mfki_inputs.json")
	require.NoError(t, writeDefaults(d, inputPath))

	cfg := config.DefaultConfig()
	cfg.Report.Title = "Bench 2 Integrator"

	outputPath := filepath.Join(tmpDir, "design.html")
	require.NoError(t, renderOne(d, cfg, inputPath, outputPath))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Bench 2 Integrator Design")
}

func TestRenderOneBadInput(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "inputs.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(`{"mla.pitch": 300}`), 0644))

	err := renderOne(mfki.Designer(), config.DefaultConfig(), inputPath, filepath.Join(tmpDir, "out.html"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing input")
}
