package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "Race not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSeasons(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/api/seasons": `[2023, 2022, 2021]`,
	})
	client := NewClient(server.URL + "/api")

	seasons, err := client.Seasons(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2023, 2022, 2021}, seasons)

	assert.NoError(t, client.Ping(context.Background()))
}

func TestRaces(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/api/season/2023/races": `[
			{"id": "bahrain_grand_prix", "name": "Bahrain Grand Prix", "round": 1, "date": "2023-03-05", "country": "Bahrain", "location": "Sakhir"},
			{"id": "monaco_grand_prix", "name": "Monaco Grand Prix", "round": 7, "date": "2023-05-28", "country": "Monaco", "location": "Monaco"}
		]`,
	})
	client := NewClient(server.URL + "/api")

	races, err := client.Races(context.Background(), 2023)
	require.NoError(t, err)
	require.Len(t, races, 2)
	assert.Equal(t, "bahrain_grand_prix", races[0].ID)
	assert.Equal(t, 7, races[1].Round)
	assert.Equal(t, "Monaco", races[1].Country)
}

func TestEventType(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/api/season/2023/race/austrian_grand_prix/event_type": `{
			"event_name": "Austrian Grand Prix",
			"season": 2023,
			"is_sprint_weekend": true,
			"has_sprint_qualifying": true,
			"sessions": [
				{"name": "Practice 1", "api_name": "practice_1"},
				{"name": "Sprint", "api_name": "sprint"},
				{"name": "Race", "api_name": "race"}
			]
		}`,
	})
	client := NewClient(server.URL + "/api")

	event, err := client.EventType(context.Background(), 2023, "austrian_grand_prix")
	require.NoError(t, err)
	assert.True(t, event.IsSprintWeekend)
	require.Len(t, event.Sessions, 3)
	assert.Equal(t, "sprint", event.Sessions[1].APIName)
}

func TestSessionResult(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/api/season/2023/race/bahrain_grand_prix/race": `{
			"country": "Bahrain",
			"name": "Bahrain Grand Prix",
			"year": 2023,
			"trackInfo": {"name": "Bahrain International Circuit", "location": "Sakhir", "date": "2023-03-05"},
			"fastestLap": {"driver": "VER", "time": "1:33.996", "lap": 44},
			"results": [
				{"position": 1, "code": "VER", "name": "Max Verstappen", "team": "Red Bull Racing", "status": "Finished", "gap": "Leader"},
				{"position": 2, "code": "PER", "name": "Sergio Perez", "team": "Red Bull Racing", "status": "Finished", "gap": "+11.987"}
			]
		}`,
	})
	client := NewClient(server.URL + "/api")

	result, err := client.SessionResult(context.Background(), 2023, "bahrain_grand_prix", "race")
	require.NoError(t, err)
	assert.Equal(t, "Bahrain Grand Prix", result.Name)
	require.NotNil(t, result.FastestLap)
	assert.Equal(t, 44, result.FastestLap.Lap)
	require.Len(t, result.Results, 2)
	assert.Equal(t, "Leader", result.Results[0].Gap)
}

func TestLapsNormalizesCompounds(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/api/season/2023/race/bahrain_grand_prix/race/laps": `{
			"lapsData": {
				"VER": [
					{"lap": 1, "time": "1:36.236", "compound": "SOFT", "tireAge": 1},
					{"lap": 2, "time": "1:35.101", "compound": "soft tyre", "tireAge": 2}
				],
				"HAM": [
					{"lap": 1, "time": "1:37.020", "compound": "INTERMEDIATE", "tireAge": 1}
				]
			}
		}`,
	})
	client := NewClient(server.URL + "/api")

	data, err := client.Laps(context.Background(), 2023, "bahrain_grand_prix", "race")
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.Equal(t, "Soft", data["VER"][0].Compound)
	assert.Equal(t, "Soft", data["VER"][1].Compound)
	assert.Equal(t, "Intermediate", data["HAM"][0].Compound)
}

func TestStrategy(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/api/season/2023/race/bahrain_grand_prix/race/strategy": `{
			"name": "Bahrain Grand Prix",
			"year": 2023,
			"results": [{"position": 1, "code": "VER", "name": "Max Verstappen", "team": "Red Bull Racing", "status": "Finished", "gap": "Leader"}],
			"strategies": {
				"VER": [
					{"compound": "Soft", "startLap": 1, "laps": 14},
					{"compound": "Hard", "startLap": 15, "laps": 43}
				]
			}
		}`,
	})
	client := NewClient(server.URL + "/api")

	result, strategies, err := client.Strategy(context.Background(), 2023, "bahrain_grand_prix", "race")
	require.NoError(t, err)
	assert.Equal(t, "Bahrain Grand Prix", result.Name)
	require.Len(t, strategies["VER"], 2)
	assert.Equal(t, "Hard", strategies["VER"][1].Compound)
	assert.Equal(t, 15, strategies["VER"][1].StartLap)
}

func TestNotFound(t *testing.T) {
	server := newTestServer(t, map[string]string{})
	client := NewClient(server.URL + "/api")

	_, err := client.Races(context.Background(), 1949)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Error fetching schedule"}`))
	}))
	defer server.Close()
	client := NewClient(server.URL + "/api")

	_, err := client.Seasons(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "Error fetching schedule")
}
