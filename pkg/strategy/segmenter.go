package strategy

import (
	"github.com/NicolasFache/Formula1/pkg/laps"
)

// Stint is a contiguous run of laps on one tire compound with no gap in lap
// numbers. Stints are derived views: recomputed whenever the source laps
// change, never stored.
type Stint struct {
	Compound string `json:"compound"`
	StartLap int    `json:"startLap"`
	Laps     int    `json:"laps"`
}

// Segment partitions one driver's laps into stints. A new stint starts on a
// compound change or on a gap in lap numbers, which signals a pit stop or
// missing telemetry. Segmentation needs laps in ascending order, so the input
// is sorted defensively before the sweep. Empty input yields an empty list.
func Segment(records []laps.LapRecord) []Stint {
	sorted := laps.SortByLap(records)
	stints := []Stint{}

	var current *Stint
	for i, lap := range sorted {
		compound := lap.Compound
		if compound == "" {
			compound = "Unknown"
		}

		if current == nil || current.Compound != compound ||
			(i > 0 && lap.Lap > sorted[i-1].Lap+1) {
			if current != nil {
				stints = append(stints, *current)
			}
			current = &Stint{Compound: compound, StartLap: lap.Lap, Laps: 1}
		} else {
			current.Laps++
		}
	}
	if current != nil {
		stints = append(stints, *current)
	}
	return stints
}

// SegmentAll derives the driver → stints mapping from raw lap data. This is
// the fallback path when the strategy endpoint has nothing for a session.
func SegmentAll(data laps.DriverLaps) map[string][]Stint {
	strategies := make(map[string][]Stint, len(data))
	for code, records := range data {
		strategies[code] = Segment(records)
	}
	return strategies
}

// ExpandLaps reconstructs the lap sequence a stint list describes, lap numbers
// and compounds only. Segmenting the expansion yields the same stints back.
func ExpandLaps(stints []Stint) []laps.LapRecord {
	var records []laps.LapRecord
	for _, stint := range stints {
		for i := 0; i < stint.Laps; i++ {
			records = append(records, laps.LapRecord{
				Lap:      stint.StartLap + i,
				Compound: stint.Compound,
			})
		}
	}
	return records
}
