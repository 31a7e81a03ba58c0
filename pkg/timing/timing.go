package timing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseTime converts a raw lap time to seconds. It accepts "M:SS.mmm",
// "MM:SS.mmm" or a bare seconds value. Null, empty or unparseable input yields
// 0 rather than an error: callers treat non-positive times as "invalid, skip".
func ParseTime(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	parts := strings.Split(raw, ":")
	if len(parts) == 1 {
		seconds, err := strconv.ParseFloat(parts[0], 64)
		if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			return 0
		}
		return seconds
	}

	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	seconds, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0
	}
	return float64(minutes)*60 + seconds
}

// FormatTime renders seconds as "MM:SS.mmm". Non-positive or non-finite input
// renders the zero time.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return "00:00.000"
	}
	minutes := int(seconds / 60)
	return fmt.Sprintf("%02d:%06.3f", minutes, seconds-float64(minutes*60))
}

// FormatAxisTime renders seconds as "MM:SS" for axis labels, no fractional part.
func FormatAxisTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return "00:00"
	}
	minutes := int(seconds / 60)
	return fmt.Sprintf("%02d:%02d", minutes, int(seconds)%60)
}
