package design

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmdouglass/udesigner/units"
)

func TestQuantity(t *testing.T) {
	q := Quantity{Value: 75, Units: units.Millimeter}

	assert.Equal(t, 0.075, q.SI())
	assert.Equal(t, 75000.0, q.In(units.Micrometer))
}

func TestParseRaw(t *testing.T) {
	raw := map[string]any{
		"lens_1.focal_length":       75.0,
		"lens_1.focal_length.units": "mm",
		"objective.magnification":   20.0,
	}

	parsed, err := ParseRaw(raw)
	require.NoError(t, err)

	assert.Equal(t, units.Millimeter, parsed["lens_1.focal_length.units"])
	assert.Equal(t, 75.0, parsed["lens_1.focal_length"])
	assert.Equal(t, 20.0, parsed["objective.magnification"])
}

func TestParseRawDoesNotMutate(t *testing.T) {
	raw := map[string]any{
		"lens_1.focal_length":       75.0,
		"lens_1.focal_length.units": "mm",
	}

	_, err := ParseRaw(raw)
	require.NoError(t, err)

	// The source mapping keeps its string-valued units key.
	assert.Equal(t, "mm", raw["lens_1.focal_length.units"])
	assert.Len(t, raw, 2)
}

func TestParseRawUnknownUnit(t *testing.T) {
	raw := map[string]any{
		"lens_1.focal_length":       75.0,
		"lens_1.focal_length.units": "parsec",
	}

	parsed, err := ParseRaw(raw)
	require.Error(t, err)
	assert.Nil(t, parsed, "no partial mapping on failure")

	var unknownErr *units.UnknownUnitError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "parsec", unknownErr.Name)
}

func TestNumber(t *testing.T) {
	data := map[string]any{"a": 1.5, "b": 512}

	a, err := Number(data, "a")
	require.NoError(t, err)
	assert.Equal(t, 1.5, a)

	b, err := Number(data, "b")
	require.NoError(t, err)
	assert.Equal(t, 512.0, b)
}

func TestNumberMissing(t *testing.T) {
	_, err := Number(map[string]any{}, "objective.magnification")
	require.Error(t, err)

	var missingErr *MissingInputError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, "objective.magnification", missingErr.Key)
}

func TestQuantityOf(t *testing.T) {
	data := map[string]any{
		"grating.period":       3.5,
		"grating.period.units": units.Micrometer,
	}

	q, err := QuantityOf(data, "grating.period")
	require.NoError(t, err)
	assert.Equal(t, Quantity{Value: 3.5, Units: units.Micrometer}, q)
}

func TestQuantityOfMissingUnits(t *testing.T) {
	data := map[string]any{"grating.period": 3.5}

	_, err := QuantityOf(data, "grating.period")
	require.Error(t, err)

	var missingErr *MissingInputError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, "grating.period.units", missingErr.Key)
}
