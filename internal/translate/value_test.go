package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNormalizeValue_Char(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"mesh.nc", "mesh.nc"},
		{"  x1.40962.grid.nc  ", "x1.40962.grid.nc"},
		// Character defaults keep their case
		{"LINEAR", "LINEAR"},
		{"", ""},
	}

	for _, tt := range tests {
		value, err := NormalizeValue(KindChar, tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, value)
	}
}

func TestNormalizeValue_Integer(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"6", "6"},
		{"  -1 ", "-1"},
		{"1E5", "1e5"},
	}

	for _, tt := range tests {
		value, err := NormalizeValue(KindInteger, tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, value)
	}
}

func TestNormalizeValue_Logical(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"T", ".true."},
		{"true", ".true."},
		{".true.", ".true."},
		{"TRUE", ".true."},
		{" .T. ", ".true."},
		{"F", ".false."},
		{"false", ".false."},
		{".false.", ".false."},
		{".F.", ".false."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, err := NormalizeValue(KindLogical, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestNormalizeValue_LogicalInvalid(t *testing.T) {
	for _, input := range []string{"maybe", "", "1", "yes", ".x."} {
		t.Run(input, func(t *testing.T) {
			_, err := NormalizeValue(KindLogical, input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLogical)
		})
	}
}

func TestNormalizeValue_Real(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Missing digits around the decimal point
		{".5", "0.5"},
		{"5.", "5.0"},
		{".", "0.0"},

		// Missing digits before exponent markers
		{"1.d2", "1.0d2"},
		{"1.e3", "1.0e3"},
		{".d5", "0.0d5"},

		// Lowercasing
		{"1.E3", "1.0e3"},
		{"0.5D0", "0.5d0"},

		// Already well-formed
		{"0.5", "0.5"},
		{"-1.75", "-1.75"},
		{"2", "2"},
		{"3.0e-4", "3.0e-4"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, err := NormalizeValue(KindReal, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestProperty_RealRepairIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		// Real literals as they occur in registries: optional sign, digits
		// around an optional point, at most one exponent marker.
		literal := rapid.StringMatching(
			`-?(\.[0-9]{1,4}|[0-9]{1,4}\.?[0-9]{0,4})([de][+-]?[0-9]{1,3})?`,
		).Draw(rt, "literal")

		once := repairRealLiteral(literal)
		twice := repairRealLiteral(once)

		require.Equal(rt, once, twice)
	})
}
