package chart

import (
	"sort"

	"github.com/NicolasFache/Formula1/pkg/laps"
	"github.com/NicolasFache/Formula1/pkg/resources"
	"github.com/NicolasFache/Formula1/pkg/timing"
)

// Region is the hover hit area for a single lap number, centered on the lap's
// x position.
type Region struct {
	Lap   int     `json:"lap"`
	X     float64 `json:"x"`
	Width float64 `json:"width"`
}

// Sample is one driver's record at a hovered lap, ready for tooltip display.
type Sample struct {
	Driver   string  `json:"driver"`
	Color    string  `json:"color"`
	Time     string  `json:"time"`
	Seconds  float64 `json:"seconds"`
	Compound string  `json:"compound"`
	TireAge  int     `json:"tireAge"`
}

// OverlayIndex covers every integer lap of the domain with one hit region,
// independent of which drivers actually set a time there.
type OverlayIndex struct {
	regions []Region
}

// BuildOverlay lays out one region per lap from the scale's minimum to its
// maximum lap, each a full-domain slice wide.
func BuildOverlay(s Scale) OverlayIndex {
	width := s.Width / float64(s.MaxLap-s.MinLap+1)
	regions := make([]Region, 0, s.MaxLap-s.MinLap+1)
	for lap := s.MinLap; lap <= s.MaxLap; lap++ {
		regions = append(regions, Region{
			Lap:   lap,
			X:     s.X(float64(lap)) - width/2,
			Width: width,
		})
	}
	return OverlayIndex{regions: regions}
}

func (ix OverlayIndex) Regions() []Region {
	return ix.regions
}

// RegionAt finds the hit region for a lap number, if the lap is in the domain.
func (ix OverlayIndex) RegionAt(lap int) (Region, bool) {
	for _, region := range ix.regions {
		if region.Lap == lap {
			return region, true
		}
	}
	return Region{}, false
}

// Resolve collects the tooltip entries for one lap: every selected driver with
// a record at exactly that lap, fastest first. Drivers without a record there
// are omitted, not zero-filled.
func Resolve(lap int, data laps.DriverLaps, selected []string) []Sample {
	var samples []Sample
	for _, code := range selected {
		for _, record := range data[code] {
			if record.Lap != lap {
				continue
			}
			compound := record.Compound
			if compound == "" {
				compound = "Unknown"
			}
			samples = append(samples, Sample{
				Driver:   code,
				Color:    resources.DriverColor(code),
				Time:     record.Time,
				Seconds:  timing.ParseTime(record.Time),
				Compound: compound,
				TireAge:  record.TireAge,
			})
			break
		}
	}
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Seconds < samples[j].Seconds
	})
	return samples
}
