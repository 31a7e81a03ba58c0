package store

import (
	"database/sql"

	"github.com/NicolasFache/Formula1/pkg/model"
)

func buildCreateSeasonsTable() string {
	return `CREATE TABLE IF NOT EXISTS seasons (
		year INTEGER PRIMARY KEY);`
}

func buildCreateRacesTable() string {
	return `CREATE TABLE IF NOT EXISTS races (
		season INTEGER NOT NULL,
		raceid TEXT NOT NULL,
		name TEXT NOT NULL,
		round INTEGER,
		date TEXT,
		country TEXT,
		location TEXT,
		PRIMARY KEY (season, raceid));`
}

func buildUpsertSeasonCommand() string {
	return `INSERT OR REPLACE INTO seasons (year) VALUES (?)`
}

func buildSelectSeasonsCommand() (string, func(*sql.Rows) ([]int, error)) {
	return `SELECT year FROM seasons ORDER BY year DESC`, processSelectSeasonsRows
}

func processSelectSeasonsRows(rows *sql.Rows) ([]int, error) {
	defer rows.Close()

	seasons := make([]int, 0)
	for rows.Next() {
		var year int
		err := rows.Scan(&year)
		if err != nil {
			return seasons, err
		}
		seasons = append(seasons, year)
	}
	err := rows.Err()
	if err != nil {
		return seasons, err
	}
	return seasons, err
}

func buildUpsertRaceCommand() string {
	fields := "season, raceid, name, round, date, country, location"
	return `INSERT OR REPLACE INTO races (` + fields + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
}

func buildSelectRacesCommand() (string, func(*sql.Rows) ([]model.Race, error)) {
	fields := "raceid, name, round, date, country, location"
	return `SELECT ` + fields + ` FROM races WHERE season = ? ORDER BY round`, processSelectRacesRows
}

func processSelectRacesRows(rows *sql.Rows) ([]model.Race, error) {
	defer rows.Close()

	races := make([]model.Race, 0)
	for rows.Next() {
		var race model.Race
		err := rows.Scan(&race.ID, &race.Name, &race.Round, &race.Date, &race.Country, &race.Location)
		if err != nil {
			return races, err
		}
		races = append(races, race)
	}
	err := rows.Err()
	if err != nil {
		return races, err
	}
	return races, err
}
