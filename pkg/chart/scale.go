package chart

import (
	"math"

	"github.com/NicolasFache/Formula1/pkg/laps"
	"github.com/NicolasFache/Formula1/pkg/timing"
)

// timePadding widens the time axis beyond the observed extremes so the
// fastest and slowest laps don't sit on the chart edges.
const timePadding = 0.5

// EmptyState distinguishes the reasons a chart can have nothing to draw. Each
// state has its own user-facing message; none of them is an error.
type EmptyState int

const (
	EmptyNone        EmptyState = iota
	EmptyNoSelection            // no drivers selected
	EmptyNoLaps                 // drivers selected but no lap records
	EmptyNoTimes                // laps exist but none has a usable time
)

func (e EmptyState) Message() string {
	switch e {
	case EmptyNoSelection:
		return "Select drivers to display lap times"
	case EmptyNoLaps:
		return "No valid lap data available"
	case EmptyNoTimes:
		return "No valid lap time data"
	}
	return ""
}

// Scale maps lap numbers and lap times into chart pixel space. It is an
// ephemeral view: rebuilt from scratch on every data or selection change.
type Scale struct {
	MinLap  int     `json:"minLap"`
	MaxLap  int     `json:"maxLap"`
	MinTime float64 `json:"minTime"`
	MaxTime float64 `json:"maxTime"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// Build computes the lap and time extents over the selected drivers' records
// and returns the scale for a drawable area of width×height (post-margin).
// When there is nothing to draw it reports which of the empty states applies.
func Build(data laps.DriverLaps, selected []string, width, height float64) (Scale, EmptyState) {
	if len(selected) == 0 || len(data) == 0 {
		return Scale{}, EmptyNoSelection
	}

	minLap, maxLap := 0, 0
	haveLap := false
	minTime, maxTime := 0.0, 0.0
	haveTime := false
	for _, code := range selected {
		for _, record := range data[code] {
			if !haveLap || record.Lap < minLap {
				minLap = record.Lap
			}
			if !haveLap || record.Lap > maxLap {
				maxLap = record.Lap
			}
			haveLap = true

			seconds := timing.ParseTime(record.Time)
			if seconds <= 0 {
				continue
			}
			if !haveTime || seconds < minTime {
				minTime = seconds
			}
			if !haveTime || seconds > maxTime {
				maxTime = seconds
			}
			haveTime = true
		}
	}
	if !haveLap {
		return Scale{}, EmptyNoLaps
	}
	if !haveTime {
		return Scale{}, EmptyNoTimes
	}

	return Scale{
		MinLap:  minLap,
		MaxLap:  maxLap,
		MinTime: minTime - timePadding,
		MaxTime: maxTime + timePadding,
		Width:   width,
		Height:  height,
	}, EmptyNone
}

// X maps a lap number to a horizontal pixel offset. A single-lap domain maps
// everything to the left edge instead of dividing by zero.
func (s Scale) X(lap float64) float64 {
	if s.MaxLap == s.MinLap {
		return 0
	}
	return s.Width * (lap - float64(s.MinLap)) / float64(s.MaxLap-s.MinLap)
}

// Y maps seconds to a vertical pixel offset, inverted so faster laps render
// higher.
func (s Scale) Y(seconds float64) float64 {
	if s.MaxTime == s.MinTime {
		return 0
	}
	return s.Height * (1 - (seconds-s.MinTime)/(s.MaxTime-s.MinTime))
}

// LapTicks returns the lap-axis tick positions: every 5 laps for short ranges,
// about 10 ticks otherwise.
func (s Scale) LapTicks() []int {
	step := 5
	if lapRange := s.MaxLap - s.MinLap; lapRange > 20 {
		step = (lapRange + 9) / 10
	}
	ticks := []int{}
	for lap := s.MinLap; lap <= s.MaxLap; lap += step {
		ticks = append(ticks, lap)
	}
	return ticks
}

// TimeTicks returns the time-axis tick positions in seconds: every 2 seconds
// for tight ranges, about 6 ticks otherwise.
func (s Scale) TimeTicks() []float64 {
	step := 2.0
	if timeRange := s.MaxTime - s.MinTime; timeRange > 10 {
		step = math.Ceil(timeRange / 6)
	}
	ticks := []float64{}
	for seconds := math.Ceil(s.MinTime); seconds <= math.Floor(s.MaxTime); seconds += step {
		ticks = append(ticks, seconds)
	}
	return ticks
}
