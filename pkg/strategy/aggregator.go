package strategy

import (
	"sort"

	"github.com/NicolasFache/Formula1/pkg/model"
)

// TotalLaps infers the race length from stint data: the highest lap any stint
// reaches, rounded up to the next multiple of 5. Sparse data would produce a
// degenerate near-zero axis, so anything below 50 becomes 57. Both rules are
// display heuristics, not physical constants.
func TotalLaps(strategies map[string][]Stint) int {
	total := 0
	for _, stints := range strategies {
		for _, stint := range stints {
			if end := stint.StartLap + stint.Laps - 1; end > total {
				total = end
			}
		}
	}
	total = (total + 4) / 5 * 5
	if total < 50 {
		total = 57
	}
	return total
}

// Block is one rendered block of a driver's strategy row. Width is the
// fraction of the full race length this stint covers.
type Block struct {
	Compound string  `json:"compound"`
	StartLap int     `json:"startLap"`
	Laps     int     `json:"laps"`
	Width    float64 `json:"width"`
	NoData   bool    `json:"noData,omitempty"`
}

// Row is one driver's strategy in finishing order.
type Row struct {
	Position int     `json:"position"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	Blocks   []Block `json:"blocks"`
}

// View is the display-ready strategy model. Every driver in the results gets a
// row; a driver without stints gets a full-width placeholder instead of being
// dropped. Synthetic marks fabricated data so callers never mistake the
// degraded-mode display for the real thing.
type View struct {
	TotalLaps int   `json:"totalLaps"`
	Rows      []Row `json:"rows"`
	Synthetic bool  `json:"synthetic,omitempty"`
}

// BuildView combines session results with per-driver stints into the strategy
// view, ordered by finishing position.
func BuildView(results []model.RaceResult, strategies map[string][]Stint, synthetic bool) View {
	ordered := make([]model.RaceResult, len(results))
	copy(ordered, results)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	total := TotalLaps(strategies)
	view := View{TotalLaps: total, Synthetic: synthetic}
	for _, result := range ordered {
		row := Row{
			Position: result.Position,
			Code:     result.Code,
			Name:     result.Name,
			Team:     result.Team,
		}
		stints := strategies[result.Code]
		if len(stints) == 0 {
			row.Blocks = []Block{{Compound: "Unknown", Width: 1, NoData: true}}
		} else {
			for _, stint := range stints {
				row.Blocks = append(row.Blocks, Block{
					Compound: stint.Compound,
					StartLap: stint.StartLap,
					Laps:     stint.Laps,
					Width:    float64(stint.Laps) / float64(total),
				})
			}
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}
