package chart

import (
	"testing"

	"github.com/NicolasFache/Formula1/pkg/laps"
	"github.com/stretchr/testify/assert"
)

func TestBuildOverlayRegions(t *testing.T) {
	scale := Scale{MinLap: 1, MaxLap: 5, Width: 500, Height: 350}
	ix := BuildOverlay(scale)
	regions := ix.Regions()
	assert.Len(t, regions, 5)

	// each region is a full-domain slice, centered on its lap
	for _, region := range regions {
		assert.InDelta(t, 100, region.Width, 1e-9)
		assert.InDelta(t, scale.X(float64(region.Lap))-50, region.X, 1e-9)
	}

	region, ok := ix.RegionAt(3)
	assert.True(t, ok)
	assert.Equal(t, 3, region.Lap)

	_, ok = ix.RegionAt(6)
	assert.False(t, ok)
}

func TestBuildOverlaySingleLap(t *testing.T) {
	ix := BuildOverlay(Scale{MinLap: 7, MaxLap: 7, Width: 800})
	regions := ix.Regions()
	assert.Len(t, regions, 1)
	assert.InDelta(t, 800, regions[0].Width, 1e-9)
}

func TestResolveFastestFirst(t *testing.T) {
	data := laps.DriverLaps{
		"VER": {{Lap: 2, Time: "1:32.900", Compound: "Soft", TireAge: 4}},
		"HAM": {{Lap: 2, Time: "1:32.500", Compound: "Medium", TireAge: 9}},
		"LEC": {{Lap: 3, Time: "1:31.000", Compound: "Soft", TireAge: 1}},
	}
	samples := Resolve(2, data, []string{"VER", "HAM", "LEC"})
	assert.Len(t, samples, 2) // LEC has no lap 2, so it is omitted
	assert.Equal(t, "HAM", samples[0].Driver)
	assert.Equal(t, "VER", samples[1].Driver)
	assert.Equal(t, "Medium", samples[0].Compound)
	assert.Equal(t, 9, samples[0].TireAge)
	assert.InDelta(t, 92.5, samples[0].Seconds, 1e-9)
	assert.NotEmpty(t, samples[0].Color)
}

func TestResolveUnselectedDriversIgnored(t *testing.T) {
	data := laps.DriverLaps{
		"VER": {{Lap: 1, Time: "1:32.900"}},
		"HAM": {{Lap: 1, Time: "1:32.500"}},
	}
	samples := Resolve(1, data, []string{"VER"})
	assert.Len(t, samples, 1)
	assert.Equal(t, "VER", samples[0].Driver)
	assert.Equal(t, "Unknown", samples[0].Compound)
}
