package httpadapter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMajorUnits(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1", 100_000_000},
		{"0.5", 50_000_000},
		{".25", 25_000_000},
		{"12.", 1_200_000_000},
		{"0.00000001", 1},
		{"0.000000019", 1},
		{" 3.14 ", 314_000_000},
		{"92233720368.54775807", math.MaxInt64},
	}
	for _, tt := range tests {
		got, err := ParseMajorUnits(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", ".", "-1", "1e3", "1.2.3", "abc", "92233720368.54775808"} {
		_, err := ParseMajorUnits(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatMajorUnits(t *testing.T) {
	assert.Equal(t, "0", FormatMajorUnits(0))
	assert.Equal(t, "1", FormatMajorUnits(100_000_000))
	assert.Equal(t, "0.00000001", FormatMajorUnits(1))
	assert.Equal(t, "2.5", FormatMajorUnits(250_000_000))
	assert.Equal(t, "-0.1", FormatMajorUnits(-10_000_000))
}
