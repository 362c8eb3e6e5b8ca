package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{in: 12.34, want: "12.34"},
		{in: 59.999, want: "1:00.00"},
		{in: 62.5, want: "1:02.50"},
		{in: 192.34, want: "3:12.34"},
		{in: 3600, want: "1:00:00.00"},
		{in: 3930.05, want: "1:05:30.05"},
		{in: 0, want: "0.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatSeconds(tc.in), "input %v", tc.in)
	}
}

func TestFormatSecondsRejectsGarbage(t *testing.T) {
	assert.Equal(t, "", FormatSeconds(math.NaN()))
	assert.Equal(t, "", FormatSeconds(math.Inf(1)))
	assert.Equal(t, "", FormatSeconds(-1))
}

func TestTimeAxisTicksEmptyInput(t *testing.T) {
	ticks := TimeAxisTicks(nil, 7)
	assert.Equal(t, []float64{0}, ticks.Values)
	assert.Equal(t, []string{"0:00"}, ticks.Labels)
}

func TestTimeAxisTicksCoverRange(t *testing.T) {
	ticks := TimeAxisTicks([]float64{61, 75, 112, 130}, 7)
	require.NotEmpty(t, ticks.Values)
	assert.LessOrEqual(t, ticks.Values[0], 61.0)
	assert.GreaterOrEqual(t, ticks.Values[len(ticks.Values)-1], 130.0)
	assert.Len(t, ticks.Labels, len(ticks.Values))
	// Range above a minute formats as M:SS.
	assert.Contains(t, ticks.Labels, "2:00")
}

func TestTimeAxisTicksDegenerateRange(t *testing.T) {
	ticks := TimeAxisTicks([]float64{42, 42, 42}, 7)
	require.GreaterOrEqual(t, len(ticks.Values), 2)
	assert.Less(t, ticks.Values[0], 42.0)
	assert.Greater(t, ticks.Values[len(ticks.Values)-1], 42.0)
}

func TestTimeAxisTicksIgnoreNaN(t *testing.T) {
	ticks := TimeAxisTicks([]float64{math.NaN(), 10, 20}, 7)
	require.NotEmpty(t, ticks.Values)
	assert.LessOrEqual(t, ticks.Values[0], 10.0)
	assert.GreaterOrEqual(t, ticks.Values[len(ticks.Values)-1], 20.0)
}
