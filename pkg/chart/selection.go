package chart

import (
	"sort"

	"github.com/NicolasFache/Formula1/pkg/laps"
)

// Selection is the set of drivers currently plotted. It changes only through
// the explicit transitions below; derived chart state is rebuilt after each
// one. Never persisted across sessions.
type Selection struct {
	codes map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{codes: make(map[string]struct{})}
}

// Toggle flips a driver in or out of the selection and reports whether the
// driver is now selected.
func (s *Selection) Toggle(code string) bool {
	if _, ok := s.codes[code]; ok {
		delete(s.codes, code)
		return false
	}
	s.codes[code] = struct{}{}
	return true
}

func (s *Selection) Reset() {
	s.codes = make(map[string]struct{})
}

func (s *Selection) Has(code string) bool {
	_, ok := s.codes[code]
	return ok
}

func (s *Selection) Len() int {
	return len(s.codes)
}

// AutoSelect replaces the selection with the top count fastest drivers. When
// nobody has a valid lap it falls back to the first drivers by code so the
// chart never comes up empty while data exists.
func (s *Selection) AutoSelect(data laps.DriverLaps, count int) {
	s.Reset()
	picked := data.SelectFastest(count)
	if len(picked) == 0 {
		picked = data.Codes()
		if len(picked) > count {
			picked = picked[:count]
		}
	}
	for _, code := range picked {
		s.codes[code] = struct{}{}
	}
}

// Codes returns the selected drivers in lexicographic order.
func (s *Selection) Codes() []string {
	codes := make([]string, 0, len(s.codes))
	for code := range s.codes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
