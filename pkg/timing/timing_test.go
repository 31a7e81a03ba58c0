package timing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	assert.InDelta(t, 93.245, ParseTime("1:33.245"), 1e-9)
	assert.InDelta(t, 93.245, ParseTime("01:33.245"), 1e-9)
	assert.InDelta(t, 74.5, ParseTime("74.5"), 1e-9)
	assert.Equal(t, 0.0, ParseTime(""))
	assert.Equal(t, 0.0, ParseTime("abc"))
	assert.Equal(t, 0.0, ParseTime("1:xx.000"))
	assert.Equal(t, 0.0, ParseTime("x:33.000"))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "00:00.000", FormatTime(0))
	assert.Equal(t, "00:00.000", FormatTime(-5))
	assert.Equal(t, "00:00.000", FormatTime(math.NaN()))
	assert.Equal(t, "00:00.000", FormatTime(math.Inf(1)))
	assert.Equal(t, "01:33.245", FormatTime(93.245))
	assert.Equal(t, "00:05.123", FormatTime(5.123))
}

func TestFormatAxisTime(t *testing.T) {
	assert.Equal(t, "00:00", FormatAxisTime(0))
	assert.Equal(t, "00:00", FormatAxisTime(-1))
	assert.Equal(t, "01:33", FormatAxisTime(93.245))
	assert.Equal(t, "02:00", FormatAxisTime(120))
}

func TestRoundTrip(t *testing.T) {
	for _, seconds := range []float64{0.001, 5.123, 59.999, 60, 93.245, 754.004, 3599.999} {
		formatted := FormatTime(seconds)
		assert.InDelta(t, seconds, ParseTime(formatted), 1e-3, "round trip of %v via %q", seconds, formatted)
	}
}
