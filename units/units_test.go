package units

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitFactors(t *testing.T) {
	tests := []struct {
		unit   Unit
		factor float64
	}{
		{Millimeter, 1e-3},
		{Micrometer, 1e-6},
		{Nanometer, 1e-9},
		{Milliradian, 1e-3},
		{None, 1},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			assert.Equal(t, tt.factor, tt.unit.Factor())
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	// Normalizing and converting back to the display unit loses at most a few
	// ulps.
	for _, u := range All {
		x := 45.72
		assert.InEpsilon(t, x, Convert(x, u)/u.Factor(), 1e-12, "unit %s", u)
	}
}

func TestMillimeterMilliradianDistinct(t *testing.T) {
	// Same factor, different tags. They must never collapse.
	assert.Equal(t, Millimeter.Factor(), Milliradian.Factor())
	assert.NotEqual(t, Millimeter, Milliradian)
}

func TestParse(t *testing.T) {
	for _, u := range All {
		parsed, err := Parse(string(u))
		require.NoError(t, err)
		assert.Equal(t, u, parsed)
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("parsec")
	require.Error(t, err)

	var unknownErr *UnknownUnitError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "parsec", unknownErr.Name)
}
