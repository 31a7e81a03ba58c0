package strategy

import (
	"math/rand"

	"github.com/NicolasFache/Formula1/pkg/laps"
	"github.com/NicolasFache/Formula1/pkg/model"
	"github.com/NicolasFache/Formula1/pkg/resources"
)

// demoRaceLaps is the race length used for fabricated strategies.
const demoRaceLaps = 57

// demoGrid is the driver lineup for fully synthetic data, in grid order.
var demoGrid = []string{
	"VER", "PER", "HAM", "RUS", "LEC", "SAI", "NOR", "PIA", "ALO", "STR",
	"OCO", "GAS", "MAG", "HUL", "TSU", "RIC", "ZHO", "BOT", "ALB", "SAR",
}

// FallbackResults builds a minimal classification from lap data alone, for
// when the results endpoint fails but laps are available. Positions follow
// code order; they carry no sporting meaning.
func FallbackResults(data laps.DriverLaps) []model.RaceResult {
	codes := data.Codes()
	results := make([]model.RaceResult, 0, len(codes))
	for i, code := range codes {
		results = append(results, model.RaceResult{
			Position: i + 1,
			Code:     code,
			Name:     code,
			Team:     "Unknown",
		})
	}
	return results
}

// FallbackView derives a strategy view purely from lap data, with synthetic
// results standing in for the missing classification.
func FallbackView(data laps.DriverLaps) View {
	return BuildView(FallbackResults(data), SegmentAll(data), true)
}

// DemoView fabricates a plausible grid with one- and two-stop strategies for
// when no upstream data is available at all. Display-only.
func DemoView() View {
	results := make([]model.RaceResult, 0, len(demoGrid))
	for i, code := range demoGrid {
		results = append(results, model.RaceResult{
			Position: i + 1,
			Code:     code,
			Name:     code,
			Team:     resources.TeamName(code),
		})
	}

	strategies := make(map[string][]Stint, len(demoGrid))
	for _, code := range demoGrid {
		strategies[code] = demoStints()
	}
	return BuildView(results, strategies, true)
}

func demoStints() []Stint {
	if rand.Float64() < 0.7 {
		// two stops: soft, medium, hard to the flag
		first := 15 + rand.Intn(5)
		second := 18 + rand.Intn(7)
		return []Stint{
			{Compound: "Soft", StartLap: 1, Laps: first},
			{Compound: "Medium", StartLap: first + 1, Laps: second},
			{Compound: "Hard", StartLap: first + second + 1, Laps: demoRaceLaps - first - second},
		}
	}
	// one stop: medium then hard
	first := 20 + rand.Intn(8)
	return []Stint{
		{Compound: "Medium", StartLap: 1, Laps: first},
		{Compound: "Hard", StartLap: first + 1, Laps: demoRaceLaps - first},
	}
}
