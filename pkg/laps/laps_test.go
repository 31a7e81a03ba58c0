package laps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByLap(t *testing.T) {
	records := []LapRecord{{Lap: 3}, {Lap: 1}, {Lap: 2}}
	sorted := SortByLap(records)
	assert.Equal(t, []LapRecord{{Lap: 1}, {Lap: 2}, {Lap: 3}}, sorted)
	// input untouched
	assert.Equal(t, 3, records[0].Lap)
}

func TestBestTime(t *testing.T) {
	best, ok := BestTime([]LapRecord{
		{Lap: 1, Time: "1:35.100"},
		{Lap: 2, Time: "1:34.000"},
		{Lap: 3, Time: ""},
	})
	assert.True(t, ok)
	assert.InDelta(t, 94.0, best, 1e-9)

	_, ok = BestTime([]LapRecord{{Lap: 1, Time: "not a time"}})
	assert.False(t, ok)

	_, ok = BestTime(nil)
	assert.False(t, ok)
}

func TestSelectFastest(t *testing.T) {
	data := DriverLaps{
		"AAA": {{Lap: 1, Time: "95.1"}, {Lap: 2, Time: "94.0"}},
		"BBB": {{Lap: 1, Time: "96.0"}, {Lap: 2, Time: "93.9"}},
		"CCC": {{Lap: 1, Time: ""}, {Lap: 2, Time: "bogus"}},
	}
	assert.Equal(t, []string{"BBB", "AAA"}, data.SelectFastest(2))
	// fewer valid drivers than requested: return all of them, unpadded
	assert.Equal(t, []string{"BBB", "AAA"}, data.SelectFastest(5))
	assert.Empty(t, data.SelectFastest(0))
}

func TestSelectFastestOrdersByBestLap(t *testing.T) {
	data := DriverLaps{
		"VER": {{Lap: 1, Time: "1:33.245", Compound: "Soft"}},
		"HAM": {{Lap: 1, Time: "1:33.512", Compound: "Medium"}},
	}
	assert.Equal(t, []string{"VER", "HAM"}, data.SelectFastest(3))
}

func TestSelectFastestTieBreak(t *testing.T) {
	// identical best laps rank in code order, deterministically
	data := DriverLaps{
		"ZZZ": {{Lap: 1, Time: "1:30.000"}},
		"AAA": {{Lap: 1, Time: "1:30.000"}},
	}
	assert.Equal(t, []string{"AAA", "ZZZ"}, data.SelectFastest(2))
}

func TestNormalizeCompound(t *testing.T) {
	assert.Equal(t, "Soft", NormalizeCompound("SOFT"))
	assert.Equal(t, "Medium", NormalizeCompound("medium"))
	assert.Equal(t, "Hard", NormalizeCompound("HARD"))
	assert.Equal(t, "Intermediate", NormalizeCompound("INTERMEDIATE"))
	assert.Equal(t, "Wet", NormalizeCompound("Wet"))
	assert.Equal(t, "Unknown", NormalizeCompound(""))
	assert.Equal(t, "Unknown", NormalizeCompound("TEST_UNKNOWN"))
}
