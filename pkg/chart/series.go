package chart

import (
	"github.com/NicolasFache/Formula1/pkg/laps"
	"github.com/NicolasFache/Formula1/pkg/timing"
)

// Point is one positioned lap sample of a plotted driver.
type Point struct {
	Lap     int     `json:"lap"`
	Seconds float64 `json:"seconds"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// Series returns the drawable points for one driver in lap order. Laps with no
// usable time are skipped, matching the valid-time rule used for the extents.
func Series(records []laps.LapRecord, s Scale) []Point {
	var points []Point
	for _, record := range laps.SortByLap(records) {
		seconds := timing.ParseTime(record.Time)
		if seconds <= 0 {
			continue
		}
		points = append(points, Point{
			Lap:     record.Lap,
			Seconds: seconds,
			X:       s.X(float64(record.Lap)),
			Y:       s.Y(seconds),
		})
	}
	return points
}
