package render

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/NicolasFache/Formula1/pkg/chart"
	"github.com/NicolasFache/Formula1/pkg/resources"
	"github.com/NicolasFache/Formula1/pkg/strategy"
)

// LapChart renders the lap-time comparison as a line chart, one series per
// selected driver in team colors. Laps a driver has no time for are left as
// gaps rather than zeros.
func LapChart(title string, selected []string, points map[string][]chart.Point, s chart.Scale) ([]byte, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "1000px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "Lap times"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Lap"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Time (s)", Min: s.MinTime, Max: s.MaxTime}),
	)

	lapCount := s.MaxLap - s.MinLap + 1
	x := make([]int, 0, lapCount)
	for lap := s.MinLap; lap <= s.MaxLap; lap++ {
		x = append(x, lap)
	}
	line.SetXAxis(x)

	for _, code := range selected {
		byLap := make(map[int]float64, len(points[code]))
		for _, p := range points[code] {
			byLap[p.Lap] = p.Seconds
		}
		data := make([]opts.LineData, 0, lapCount)
		for lap := s.MinLap; lap <= s.MaxLap; lap++ {
			if seconds, ok := byLap[lap]; ok {
				data = append(data, opts.LineData{Value: seconds})
			} else {
				data = append(data, opts.LineData{Value: nil})
			}
		}
		line.AddSeries(code, data,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false), ConnectNulls: opts.Bool(false)}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: resources.DriverColor(code)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: resources.DriverColor(code)}),
		)
	}

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// StrategyChart renders the tire strategy view as a horizontal stacked bar
// chart: one bar per driver, one block per stint in compound colors.
func StrategyChart(title string, view strategy.View) ([]byte, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "1000px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("Tire strategy, %d laps", view.TotalLaps)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Lap", Max: view.TotalLaps}),
	)

	// bars come out bottom-up once the axes are flipped, so feed the rows in
	// reverse to keep the winner on top
	codes := make([]string, 0, len(view.Rows))
	maxStints := 0
	for i := len(view.Rows) - 1; i >= 0; i-- {
		codes = append(codes, view.Rows[i].Code)
		if len(view.Rows[i].Blocks) > maxStints {
			maxStints = len(view.Rows[i].Blocks)
		}
	}

	bar.SetXAxis(codes)
	for stint := 0; stint < maxStints; stint++ {
		data := make([]opts.BarData, 0, len(codes))
		for i := len(view.Rows) - 1; i >= 0; i-- {
			row := view.Rows[i]
			if stint >= len(row.Blocks) {
				data = append(data, opts.BarData{Value: nil})
				continue
			}
			seg := row.Blocks[stint]
			laps := seg.Laps
			if seg.NoData {
				laps = view.TotalLaps
			}
			data = append(data, opts.BarData{
				Value:     laps,
				ItemStyle: &opts.ItemStyle{Color: resources.TireColor(seg.Compound)},
			})
		}
		bar.AddSeries(fmt.Sprintf("stint %d", stint+1), data,
			charts.WithBarChartOpts(opts.BarChart{Stack: "strategy"}),
		)
	}
	bar.XYReversal()

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
