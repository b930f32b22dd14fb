package dpm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmdouglass/udesigner/design"
	"github.com/kmdouglass/udesigner/units"
)

func TestResolutionDefaults(t *testing.T) {
	// 1.22 * 0.64 um / 0.4
	result := Resolution(Defaults())

	assert.InDelta(t, 1.952, result.Value, 1e-9)
	assert.Equal(t, units.Micrometer, result.Units)
}

func TestLens1NADefaults(t *testing.T) {
	// 45.72 / (2 * 75)
	result := Lens1NA(Defaults())

	assert.InDelta(t, 0.3048, result.Value, 1e-12)
	assert.Equal(t, units.None, result.Units)
}

func TestActual4fMagnificationIsSigned(t *testing.T) {
	result := Actual4fMagnification(Defaults())

	assert.InDelta(t, -4.0, result.Value, 1e-12)
}

func TestSystemMagnificationDefaults(t *testing.T) {
	in := Defaults()
	result := SystemMagnification(in, Actual4fMagnification(in))

	assert.InDelta(t, 80.0, result.Value, 1e-9)
}

func TestComputeResultsCoversCatalog(t *testing.T) {
	results := ComputeResults(Defaults())

	require.Len(t, results, len(ResultOrder))
	for _, id := range ResultOrder {
		assert.Contains(t, results, id)
	}
}

func TestComputeResultsIdempotent(t *testing.T) {
	in := Defaults()

	first := ComputeResults(in)
	second := ComputeResults(in)

	// Exact floating-point equality: the engine is deterministic.
	assert.Equal(t, first, second)
}

func TestValidateResultsDefaults(t *testing.T) {
	// The example design slightly oversamples: its 5.2 um pixels exceed the
	// maximum of about 4.99 um. Every other constraint is satisfied.
	in := Defaults()
	violations := ValidateResults(in, ComputeResults(in))

	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "Pixel size exceeds the maximum requirement")
}

func TestValidateResultsLens1NASatisfied(t *testing.T) {
	in := Defaults()
	violations := ValidateResults(in, ComputeResults(in))

	for _, v := range violations {
		assert.NotContains(t, v, "NA of lens 1")
	}
}

func TestValidateResultsOrderStable(t *testing.T) {
	// Huge pixels violate every constraint at once: the minimum 4f
	// magnification, maximum pinhole diameter, and maximum pixel size all
	// scale with pixel size, and the shrunken apertures fail both lens rules.
	in := Defaults()
	in.CameraPixelSize.Value = 100
	in.Lens1ClearAperture.Value = 1
	in.Lens2ClearAperture.Value = 1
	results := ComputeResults(in)

	first := ValidateResults(in, results)
	second := ValidateResults(in, results)

	require.Equal(t, first, second)
	require.Len(t, first, 5)
	assert.Contains(t, first[0], "4f magnification")
	assert.Contains(t, first[1], "NA of lens 1")
	assert.Contains(t, first[2], "NA of lens 2")
	assert.Contains(t, first[3], "Pinhole diameter")
	assert.Contains(t, first[4], "Pixel size")
}

func TestValidateResultsBoundaryPasses(t *testing.T) {
	// A value exactly at its threshold is not a violation: the comparisons
	// are strict.
	results := design.ResultSet{
		"lens_1_na":         {Value: 0.25},
		"minimum_lens_1_na": {Value: 0.25},
	}

	violations := ValidateResults(Inputs{}, results)
	assert.Empty(t, violations)
}

func TestParseInputsMissingKey(t *testing.T) {
	flat := Defaults().Flatten()
	delete(flat, "grating.period")

	_, err := ParseInputs(flat)
	require.Error(t, err)

	var missingErr *design.MissingInputError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, "grating.period", missingErr.Key)
}

func TestDefaultsJSONRoundTrip(t *testing.T) {
	// Serializing the defaults to the input-file format and computing from
	// the re-parsed mapping must reproduce the in-memory results exactly.
	data, err := json.Marshal(Defaults().Flatten())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	parsed, err := design.ParseRaw(raw)
	require.NoError(t, err)

	in, err := ParseInputs(parsed)
	require.NoError(t, err)

	assert.Equal(t, ComputeResults(Defaults()), ComputeResults(in))
}

func TestDesignerCompute(t *testing.T) {
	d := Designer()
	assert.Equal(t, "dpm", d.Name())

	outcome, err := d.Compute(jsonRoundTrip(t, d.Defaults()))
	require.NoError(t, err)

	assert.Equal(t, ResultOrder, outcome.Order)
	assert.Len(t, outcome.Results, len(ResultOrder))
	require.Contains(t, outcome.Plots, "lens_1_fourier_plane")

	plot := outcome.Plots["lens_1_fourier_plane"]
	require.Len(t, plot.Circles, 2)
	assert.Equal(t, plot.Circles[0].R, plot.Circles[1].R)
	assert.Greater(t, plot.Circles[1].X, 0.0)
}

func TestFourierPlanePlotGeometry(t *testing.T) {
	results := ComputeResults(Defaults())
	plot := FourierPlanePlot(results)

	assert.Equal(t, units.Millimeter, plot.Units)
	assert.InDelta(t, results["fourier_plane_sizes"].Value, plot.Circles[0].R, 1e-12)
	assert.InDelta(t, results["fourier_plane_spacing"].Value, plot.Circles[1].X, 1e-12)
}

// jsonRoundTrip pushes a flat mapping through the input-file format.
func jsonRoundTrip(t *testing.T, flat map[string]any) map[string]any {
	t.Helper()

	data, err := json.Marshal(flat)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	return raw
}
