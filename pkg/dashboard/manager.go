package dashboard

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/NicolasFache/Formula1/pkg/api"
	"github.com/NicolasFache/Formula1/pkg/chart"
	"github.com/NicolasFache/Formula1/pkg/laps"
	"github.com/NicolasFache/Formula1/pkg/model"
	"github.com/NicolasFache/Formula1/pkg/pubsub"
	"github.com/NicolasFache/Formula1/pkg/store"
	"github.com/NicolasFache/Formula1/pkg/strategy"
	"github.com/NicolasFache/Formula1/pkg/timing"
)

// Drawable chart area after margins.
const (
	ChartWidth  = 800
	ChartHeight = 400
)

// autoSelectCount is how many of the fastest drivers get plotted when a
// session first loads.
const autoSelectCount = 5

// noticeTTL bounds how long a degraded-mode notice stays visible.
const noticeTTL = 30 * time.Second

// Listings served when both the timing API and the local cache come up empty.
var (
	builtinSeasons = []int{2023, 2022, 2021, 2020, 2019, 2018}

	builtinRaces = []model.Race{
		{ID: "bahrain", Name: "Bahrain Grand Prix", Round: 1},
		{ID: "saudi_arabia", Name: "Saudi Arabian Grand Prix", Round: 2},
		{ID: "australia", Name: "Australian Grand Prix", Round: 3},
		{ID: "china", Name: "Chinese Grand Prix", Round: 4},
		{ID: "miami", Name: "Miami Grand Prix", Round: 5},
		{ID: "monaco", Name: "Monaco Grand Prix", Round: 7},
	}
)

// Snapshot is a consistent copy of the dashboard state, safe to render or
// serialize without holding the manager's lock.
type Snapshot struct {
	Season    int                      `json:"season"`
	RaceID    string                   `json:"raceId"`
	Session   string                   `json:"session"`
	Event     model.EventType          `json:"event"`
	Header    model.SessionResult      `json:"header"`
	LapData   laps.DriverLaps          `json:"lapsData"`
	Selected  []string                 `json:"selected"`
	Scale     chart.Scale              `json:"scale"`
	Empty     chart.EmptyState         `json:"-"`
	Message   string                   `json:"message,omitempty"`
	Points    map[string][]chart.Point `json:"points"`
	Regions   []chart.Region           `json:"regions"`
	LapTicks  []int                    `json:"lapTicks,omitempty"`
	TimeTicks []TimeTick               `json:"timeTicks,omitempty"`
	Strategy  strategy.View            `json:"strategy"`
	Notice    string                   `json:"notice,omitempty"`
}

// TimeTick is one labeled position on the time axis.
type TimeTick struct {
	Seconds float64 `json:"seconds"`
	Label   string  `json:"label"`
}

// Manager owns the dashboard state: the loaded session, the driver selection
// and every view derived from them. All state changes go through it; each one
// republishes a fresh snapshot.
type Manager struct {
	client *api.Client
	store  *store.Manager
	ps     *pubsub.PubSub[Snapshot]

	mu         sync.Mutex
	generation int

	season  int
	raceID  string
	session string

	event     model.EventType
	header    model.SessionResult
	lapData   laps.DriverLaps
	selection *chart.Selection

	scale   chart.Scale
	empty   chart.EmptyState
	overlay chart.OverlayIndex
	view    strategy.View

	notice      string
	noticeUntil time.Time
}

func NewManager(client *api.Client, st *store.Manager, ps *pubsub.PubSub[Snapshot]) *Manager {
	m := &Manager{
		client:    client,
		store:     st,
		ps:        ps,
		selection: chart.NewSelection(),
	}
	m.scale, m.empty = chart.Build(nil, nil, ChartWidth, ChartHeight)
	return m
}

// Seasons lists the selectable seasons: live from the API when possible,
// otherwise from the cache, otherwise the built-in list. It never fails.
func (m *Manager) Seasons(ctx context.Context) []int {
	seasons, err := m.client.Seasons(ctx)
	if err == nil && len(seasons) > 0 {
		if m.store != nil {
			if err := m.store.SaveSeasons(seasons); err != nil {
				log.Printf("error caching seasons: %s\n", err)
			}
		}
		return seasons
	}
	if err != nil {
		log.Printf("error fetching seasons, falling back: %s\n", err)
	}

	if m.store != nil {
		if cached, err := m.store.ListSeasons(); err == nil && len(cached) > 0 {
			return cached
		}
	}
	return builtinSeasons
}

// Races lists one season's schedule with the same API, cache, built-in
// fallback chain as Seasons.
func (m *Manager) Races(ctx context.Context, season int) []model.Race {
	races, err := m.client.Races(ctx, season)
	if err == nil && len(races) > 0 {
		if m.store != nil {
			if err := m.store.SaveRaces(season, races); err != nil {
				log.Printf("error caching races: %s\n", err)
			}
		}
		return races
	}
	if err != nil {
		log.Printf("error fetching races for %d, falling back: %s\n", season, err)
	}

	if m.store != nil {
		if cached, err := m.store.ListRaces(season); err == nil && len(cached) > 0 {
			return cached
		}
	}
	return builtinRaces
}

// LoadSession fetches a session and replaces the dashboard state with it. The
// fetches run outside the lock; if another load starts meanwhile, this one's
// results are discarded so a slow response can never clobber a newer session.
func (m *Manager) LoadSession(ctx context.Context, season int, raceID, session string) error {
	m.mu.Lock()
	m.generation++
	gen := m.generation
	m.mu.Unlock()

	event, err := m.client.EventType(ctx, season, raceID)
	if err != nil {
		// weekend format is a nice-to-have, the session can load without it
		log.Printf("error fetching event type for %s: %s\n", raceID, err)
		event = model.EventType{EventName: raceID, Season: season}
	}

	notice := ""
	header, err := m.client.SessionResult(ctx, season, raceID, session)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		log.Printf("error fetching %s result for %s: %s\n", session, raceID, err)
		notice = "Live session data unavailable, showing what could be loaded"
	}

	lapData, err := m.client.Laps(ctx, season, raceID, session)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		log.Printf("error fetching laps for %s: %s\n", raceID, err)
		lapData = laps.DriverLaps{}
	}

	view := strategy.View{}
	if model.HasStrategy(session) {
		view, notice = m.loadStrategy(ctx, season, raceID, session, header, lapData, notice)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.generation {
		log.Printf("discarding stale session load for %s %s\n", raceID, session)
		return nil
	}

	m.season = season
	m.raceID = raceID
	m.session = session
	m.event = event
	m.header = header
	m.lapData = lapData
	m.view = view
	m.setNotice(notice)

	m.selection.AutoSelect(lapData, autoSelectCount)
	m.rebuild()
	if m.ps != nil && notice != "" {
		m.ps.Publish(pubsub.PubSubNoticeTopic, m.snapshotLocked())
	}
	return nil
}

// loadStrategy resolves the strategy view in order of preference: backend
// stints, stints segmented from laps, and finally fabricated demo data.
func (m *Manager) loadStrategy(ctx context.Context, season int, raceID, session string, header model.SessionResult, lapData laps.DriverLaps, notice string) (strategy.View, string) {
	var strategies map[string][]strategy.Stint
	if _, fetched, err := m.client.Strategy(ctx, season, raceID, session); err != nil {
		log.Printf("error fetching strategy for %s: %s\n", raceID, err)
	} else {
		strategies = fetched
	}
	if len(strategies) == 0 {
		strategies = strategy.SegmentAll(lapData)
	}

	switch {
	case len(header.Results) > 0:
		return strategy.BuildView(header.Results, strategies, false), notice
	case len(lapData) > 0:
		return strategy.FallbackView(lapData), "Session results unavailable, strategy shown from lap data"
	default:
		return strategy.DemoView(), "No session data available, showing demo strategies"
	}
}

// ToggleDriver flips one driver in the plot selection and reports whether the
// driver is now shown.
func (m *Manager) ToggleDriver(code string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	selected := m.selection.Toggle(code)
	m.rebuild()
	return selected
}

func (m *Manager) ResetSelection() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.selection.Reset()
	m.rebuild()
}

// Hover returns the tooltip samples for one lap, fastest driver first. A lap
// inside the overlay domain always yields a non-nil slice, even when no
// selected driver recorded that lap; nil means the lap is out of range.
func (m *Manager) Hover(lap int) []chart.Sample {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.overlay.RegionAt(lap); !ok {
		return nil
	}
	samples := chart.Resolve(lap, m.lapData, m.selection.Codes())
	if samples == nil {
		samples = []chart.Sample{}
	}
	return samples
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.snapshotLocked()
}

// rebuild recomputes every view derived from the lap data and the selection,
// then publishes the result. Callers must hold the lock.
func (m *Manager) rebuild() {
	m.scale, m.empty = chart.Build(m.lapData, m.selection.Codes(), ChartWidth, ChartHeight)
	if m.empty == chart.EmptyNone {
		m.overlay = chart.BuildOverlay(m.scale)
	} else {
		m.overlay = chart.OverlayIndex{}
	}

	if m.ps != nil {
		m.ps.Publish(pubsub.PubSubDashboardTopic, m.snapshotLocked())
	}
}

func (m *Manager) snapshotLocked() Snapshot {
	selected := m.selection.Codes()
	points := make(map[string][]chart.Point, len(selected))
	var lapTicks []int
	var timeTicks []TimeTick
	if m.empty == chart.EmptyNone {
		for _, code := range selected {
			points[code] = chart.Series(m.lapData[code], m.scale)
		}
		lapTicks = m.scale.LapTicks()
		for _, seconds := range m.scale.TimeTicks() {
			timeTicks = append(timeTicks, TimeTick{Seconds: seconds, Label: timing.FormatAxisTime(seconds)})
		}
	}

	notice := m.notice
	if notice != "" && time.Now().After(m.noticeUntil) {
		notice = ""
	}

	return Snapshot{
		Season:    m.season,
		RaceID:    m.raceID,
		Session:   m.session,
		Event:     m.event,
		Header:    m.header,
		LapData:   m.lapData,
		Selected:  selected,
		Scale:     m.scale,
		Empty:     m.empty,
		Message:   m.empty.Message(),
		Points:    points,
		Regions:   m.overlay.Regions(),
		LapTicks:  lapTicks,
		TimeTicks: timeTicks,
		Strategy:  m.view,
		Notice:    notice,
	}
}

func (m *Manager) setNotice(notice string) {
	m.notice = notice
	if notice != "" {
		m.noticeUntil = time.Now().Add(noticeTTL)
	}
}
