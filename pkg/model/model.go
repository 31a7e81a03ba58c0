package model

// Race is one round of a season as listed by the schedule endpoint.
type Race struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Round    int    `json:"round"`
	Date     string `json:"date"`
	Country  string `json:"country"`
	Location string `json:"location"`
}

// RaceResult is one classified driver in a session.
type RaceResult struct {
	Position int    `json:"position"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Status   string `json:"status"`
	Gap      string `json:"gap"`
}

// Result statuses as delivered by the timing API. Anything else is passed
// through verbatim.
const (
	StatusFinished = "Finished"
	StatusDNF      = "DNF"
	StatusDNS      = "DNS"
	StatusDSQ      = "DSQ"
	StatusRetired  = "Retired"
	StatusAccident = "Accident"
)

type FastestLap struct {
	Driver string `json:"driver"`
	Time   string `json:"time"`
	Lap    int    `json:"lap"`
}

type TrackInfo struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	Date         string `json:"date"`
	FullThrottle int    `json:"fullThrottle"`
	SpeedTrap    int    `json:"speedTrap"`
}

// SessionResult is the full payload for one session: header info plus the
// classification.
type SessionResult struct {
	Country    string       `json:"country"`
	Name       string       `json:"name"`
	Sponsor    string       `json:"sponsor"`
	Year       int          `json:"year"`
	TrackInfo  TrackInfo    `json:"trackInfo"`
	FastestLap *FastestLap  `json:"fastestLap"`
	Results    []RaceResult `json:"results"`
}

// SessionRef names one available session of an event.
type SessionRef struct {
	Name    string `json:"name"`
	APIName string `json:"api_name"`
}

// EventType describes the weekend format of an event and which sessions it has.
type EventType struct {
	EventName           string       `json:"event_name"`
	Season              int          `json:"season"`
	IsSprintWeekend     bool         `json:"is_sprint_weekend"`
	HasSprintQualifying bool         `json:"has_sprint_qualifying"`
	Sessions            []SessionRef `json:"sessions"`
}

// HasStrategy reports whether a session type carries tire strategy data.
func HasStrategy(session string) bool {
	return session == "race" || session == "sprint"
}
