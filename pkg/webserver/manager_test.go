package webserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicolasFache/Formula1/pkg/api"
	"github.com/NicolasFache/Formula1/pkg/dashboard"
	"github.com/NicolasFache/Formula1/pkg/pubsub"
)

func upstreamHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/seasons"):
			w.Write([]byte(`[2023, 2022]`))
		case strings.HasSuffix(r.URL.Path, "/event_type"):
			w.Write([]byte(`{"event_name": "Bahrain Grand Prix", "season": 2023, "sessions": [{"name": "Race", "api_name": "race"}]}`))
		case strings.HasSuffix(r.URL.Path, "/laps"):
			w.Write([]byte(`{"lapsData": {
				"VER": [{"lap": 1, "time": "1:36.000", "compound": "Soft", "tireAge": 1}, {"lap": 2, "time": "1:35.500", "compound": "Soft", "tireAge": 2}],
				"HAM": [{"lap": 1, "time": "1:36.400", "compound": "Medium", "tireAge": 1}]
			}}`))
		case strings.HasSuffix(r.URL.Path, "/strategy"):
			w.Write([]byte(`{"results": [], "strategies": {}}`))
		case strings.HasSuffix(r.URL.Path, "/races"):
			w.Write([]byte(`[{"id": "bahrain", "name": "Bahrain Grand Prix", "round": 1}]`))
		default:
			w.Write([]byte(`{
				"name": "Bahrain Grand Prix",
				"year": 2023,
				"results": [
					{"position": 1, "code": "VER", "name": "Max Verstappen", "team": "Red Bull Racing", "status": "Finished", "gap": "Leader"},
					{"position": 2, "code": "HAM", "name": "Lewis Hamilton", "team": "Mercedes", "status": "Finished", "gap": "+5.384"}
				]
			}`))
		}
	})
}

func newTestWebserver(t *testing.T) *httptest.Server {
	t.Helper()
	upstream := httptest.NewServer(upstreamHandler())
	t.Cleanup(upstream.Close)

	ps := pubsub.NewPubSub[dashboard.Snapshot]()
	dm := dashboard.NewManager(api.NewClient(upstream.URL+"/api"), nil, ps)
	m := NewManager(dm, ps)

	server := httptest.NewServer(m.router())
	t.Cleanup(server.Close)
	return server
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out))
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Post(url, "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out))
	}
	return resp.StatusCode
}

func TestListings(t *testing.T) {
	server := newTestWebserver(t)

	var seasons []int
	assert.Equal(t, http.StatusOK, getJSON(t, server.URL+"/api/seasons", &seasons))
	assert.Equal(t, []int{2023, 2022}, seasons)

	var races []map[string]interface{}
	assert.Equal(t, http.StatusOK, getJSON(t, server.URL+"/api/season/2023/races", &races))
	require.Len(t, races, 1)
	assert.Equal(t, "bahrain", races[0]["id"])

	var apiErr map[string]string
	assert.Equal(t, http.StatusBadRequest, getJSON(t, server.URL+"/api/season/nope/races", &apiErr))
	assert.Equal(t, "invalid season", apiErr["error"])
}

func TestLoadAndControls(t *testing.T) {
	server := newTestWebserver(t)

	var snap dashboard.Snapshot
	require.Equal(t, http.StatusOK, postJSON(t, server.URL+"/api/season/2023/race/bahrain/race/load", &snap))
	assert.Equal(t, "bahrain", snap.RaceID)
	assert.Equal(t, []string{"HAM", "VER"}, snap.Selected)

	require.Equal(t, http.StatusOK, postJSON(t, server.URL+"/api/drivers/HAM/toggle", &snap))
	assert.Equal(t, []string{"VER"}, snap.Selected)

	require.Equal(t, http.StatusOK, postJSON(t, server.URL+"/api/selection/reset", &snap))
	assert.Empty(t, snap.Selected)
	assert.Equal(t, "Select drivers to display lap times", snap.Message)

	assert.Equal(t, http.StatusOK, getJSON(t, server.URL+"/api/dashboard", &snap))
	assert.Equal(t, "Bahrain Grand Prix", snap.Header.Name)
}

func TestHoverEndpoint(t *testing.T) {
	server := newTestWebserver(t)

	var snap dashboard.Snapshot
	require.Equal(t, http.StatusOK, postJSON(t, server.URL+"/api/season/2023/race/bahrain/race/load", &snap))

	var samples []map[string]interface{}
	assert.Equal(t, http.StatusOK, getJSON(t, server.URL+"/api/laps/1/hover", &samples))
	require.Len(t, samples, 2)
	assert.Equal(t, "VER", samples[0]["driver"])

	assert.Equal(t, http.StatusNotFound, getJSON(t, server.URL+"/api/laps/99/hover", nil))
}

func TestChartEndpoints(t *testing.T) {
	server := newTestWebserver(t)

	// nothing loaded yet
	assert.Equal(t, http.StatusNotFound, getJSON(t, server.URL+"/charts/laps", nil))

	var snap dashboard.Snapshot
	require.Equal(t, http.StatusOK, postJSON(t, server.URL+"/api/season/2023/race/bahrain/race/load", &snap))

	resp, err := http.Get(server.URL + "/charts/laps")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "VER")

	resp, err = http.Get(server.URL + "/charts/strategy")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "stint 1")
}
