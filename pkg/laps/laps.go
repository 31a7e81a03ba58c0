package laps

import (
	"math"
	"sort"
	"strings"

	"github.com/NicolasFache/Formula1/pkg/timing"
)

// LapRecord is one recorded lap for a driver as delivered by the timing API.
// Records are immutable once received; each fetch replaces them wholesale.
type LapRecord struct {
	Lap      int    `json:"lap"`
	Time     string `json:"time"`
	Compound string `json:"compound"`
	TireAge  int    `json:"tireAge"`
}

// DriverLaps maps a driver code to that driver's laps. Order within a slice is
// whatever the API sent; sort with SortByLap before segmenting.
type DriverLaps map[string][]LapRecord

// SortByLap returns a copy of records ordered by ascending lap number.
func SortByLap(records []LapRecord) []LapRecord {
	sorted := make([]LapRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Lap < sorted[j].Lap
	})
	return sorted
}

// Codes returns the driver codes in lexicographic order. Map iteration order
// is not deterministic, so every ranking and rendering pass starts from here.
func (dl DriverLaps) Codes() []string {
	codes := make([]string, 0, len(dl))
	for code := range dl {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// BestTime returns the fastest strictly-positive lap time in seconds. The
// second return is false when the driver has no valid lap at all.
func BestTime(records []LapRecord) (float64, bool) {
	best := math.Inf(1)
	for _, record := range records {
		seconds := timing.ParseTime(record.Time)
		if seconds > 0 && seconds < best {
			best = seconds
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

// SelectFastest ranks drivers by their best valid lap and returns up to count
// codes, fastest first. Drivers without a valid lap are absent from the
// ranking, not padded in. Ties keep the lexicographic code order.
func (dl DriverLaps) SelectFastest(count int) []string {
	type ranked struct {
		code string
		best float64
	}
	rankings := make([]ranked, 0, len(dl))
	for _, code := range dl.Codes() {
		if best, ok := BestTime(dl[code]); ok {
			rankings = append(rankings, ranked{code: code, best: best})
		}
	}
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].best < rankings[j].best
	})

	if count > len(rankings) {
		count = len(rankings)
	}
	if count < 0 {
		count = 0
	}
	codes := make([]string, 0, count)
	for _, r := range rankings[:count] {
		codes = append(codes, r.code)
	}
	return codes
}

// NormalizeCompound maps the many upstream tire names onto the canonical
// compound set used everywhere else.
func NormalizeCompound(raw string) string {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "soft"):
		return "Soft"
	case strings.Contains(lower, "medium"):
		return "Medium"
	case strings.Contains(lower, "hard"):
		return "Hard"
	case strings.Contains(lower, "inter"):
		return "Intermediate"
	case strings.Contains(lower, "wet"):
		return "Wet"
	}
	return "Unknown"
}
