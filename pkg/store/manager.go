package store

import (
	"database/sql"
	"log"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/NicolasFache/Formula1/pkg/model"
)

const DbName = "./f1dashboard.db"

// Manager caches the timing API's season and schedule listings so the
// dashboard still has something to show when the API is unreachable.
type Manager struct {
	db *sql.DB
	mu sync.Mutex
}

func NewManager(dbName string) (*Manager, error) {
	db, err := sql.Open("sqlite3", dbName)
	if err != nil {
		log.Printf("error opening database: %s\n", err)
		return nil, err
	}

	for _, stmt := range []string{buildCreateSeasonsTable(), buildCreateRacesTable()} {
		_, err = db.Exec(stmt)
		if err != nil {
			log.Printf("error init database: %s\n", err)
			return nil, err
		}
	}

	return &Manager{
		db: db,
		mu: sync.Mutex{},
	}, nil
}

func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.db.Close()
}

func (m *Manager) SaveSeasons(seasons []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, season := range seasons {
		_, err := m.db.Exec(buildUpsertSeasonCommand(), season)
		if err != nil {
			log.Printf("error updating database: %s\n", err)
			return err
		}
	}
	return nil
}

// ListSeasons returns the cached seasons, newest first.
func (m *Manager) ListSeasons() ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	query, read := buildSelectSeasonsCommand()
	rows, err := m.db.Query(query)
	if err != nil {
		return []int{}, err
	}
	return read(rows)
}

func (m *Manager) SaveRaces(season int, races []model.Race) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, race := range races {
		_, err := m.db.Exec(buildUpsertRaceCommand(), season, race.ID, race.Name, race.Round, race.Date, race.Country, race.Location)
		if err != nil {
			log.Printf("error updating database: %s\n", err)
			return err
		}
	}
	return nil
}

// ListRaces returns the cached schedule of one season in round order.
func (m *Manager) ListRaces(season int) ([]model.Race, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	query, read := buildSelectRacesCommand()
	rows, err := m.db.Query(query, season)
	if err != nil {
		return []model.Race{}, err
	}
	return read(rows)
}
