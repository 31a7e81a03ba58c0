package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/NicolasFache/Formula1/pkg/chart"
	"github.com/NicolasFache/Formula1/pkg/laps"
	"github.com/NicolasFache/Formula1/pkg/model"
	"github.com/NicolasFache/Formula1/pkg/resources"
	"github.com/NicolasFache/Formula1/pkg/strategy"
	"github.com/NicolasFache/Formula1/pkg/timing"
)

func newTable(b *bytes.Buffer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(b)
	t.SetStyle(table.StyleRounded)
	t.AppendSeparator()
	return t
}

// ResultsTable renders a session classification. The title carries the flag
// code so a client can pick the right country icon.
func ResultsTable(result model.SessionResult) string {
	var b bytes.Buffer
	t := newTable(&b)

	if result.Country != "" {
		t.SetTitle("%s [%s]", result.Name, resources.CountryCode(result.Country))
	}
	t.AppendHeader(table.Row{"Pos", "Driver", "Team", "Status", "Gap"})
	for _, r := range result.Results {
		t.AppendRow([]interface{}{r.Position, r.Name, r.Team, r.Status, r.Gap})
	}
	if result.FastestLap != nil {
		t.AppendFooter(table.Row{"FL", result.FastestLap.Driver, "", fmt.Sprintf("lap %d", result.FastestLap.Lap), result.FastestLap.Time})
	}
	t.Render()
	return b.String()
}

// FastestTable renders the top count drivers by best lap.
func FastestTable(data laps.DriverLaps, count int) string {
	var b bytes.Buffer
	t := newTable(&b)

	t.AppendHeader(table.Row{"Driver", "Best Lap"})
	for _, code := range data.SelectFastest(count) {
		best, ok := laps.BestTime(data[code])
		if !ok {
			continue
		}
		t.AppendRow([]interface{}{code, timing.FormatTime(best)})
	}
	t.Render()
	return b.String()
}

// StrategyTable renders each driver's stints as compound(laps) sequences.
func StrategyTable(view strategy.View) string {
	var b bytes.Buffer
	t := newTable(&b)

	t.AppendHeader(table.Row{"Pos", "Driver", "Stints"})
	for _, row := range view.Rows {
		stints := make([]string, 0, len(row.Blocks))
		for _, seg := range row.Blocks {
			if seg.NoData {
				stints = append(stints, "no data")
				continue
			}
			stints = append(stints, fmt.Sprintf("%s(%d)", seg.Compound, seg.Laps))
		}
		t.AppendRow([]interface{}{row.Position, row.Code, strings.Join(stints, " → ")})
	}
	if view.Synthetic {
		t.AppendFooter(table.Row{"", "", "demo data"})
	}
	t.Render()
	return b.String()
}

// TooltipTable renders the hover samples for one lap, fastest first.
func TooltipTable(lap int, samples []chart.Sample) string {
	var b bytes.Buffer
	t := newTable(&b)

	t.AppendHeader(table.Row{fmt.Sprintf("Lap %d", lap), "Time", "Tire"})
	for _, s := range samples {
		t.AppendRow([]interface{}{s.Driver, s.Time, fmt.Sprintf("%s (%d laps)", s.Compound, s.TireAge)})
	}
	t.Render()
	return b.String()
}
