package webserver

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/NicolasFache/Formula1/pkg/dashboard"
	"github.com/NicolasFache/Formula1/pkg/pubsub"
	"github.com/NicolasFache/Formula1/pkg/render"
)

var addr = ":8080"
var upgrader = websocket.Upgrader{} // use default options

// Manager serves the dashboard over HTTP: JSON state and controls under /api,
// rendered charts under /charts, and live snapshots over /ws.
type Manager struct {
	r  *mux.Router
	dm *dashboard.Manager
	ps *pubsub.PubSub[dashboard.Snapshot]
}

func NewManager(dm *dashboard.Manager, ps *pubsub.PubSub[dashboard.Snapshot]) *Manager {
	m := &Manager{
		r:  mux.NewRouter(),
		dm: dm,
		ps: ps,
	}

	m.routes()
	return m
}

func (m *Manager) router() *mux.Router {
	return m.r
}

func (m *Manager) routes() {
	api := m.r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/seasons", m.handleSeasons).Methods(http.MethodGet)
	api.HandleFunc("/season/{season}/races", m.handleRaces).Methods(http.MethodGet)
	api.HandleFunc("/season/{season}/race/{raceId}/{session}/load", m.handleLoad).Methods(http.MethodPost)
	api.HandleFunc("/dashboard", m.handleDashboard).Methods(http.MethodGet)
	api.HandleFunc("/drivers/{code}/toggle", m.handleToggle).Methods(http.MethodPost)
	api.HandleFunc("/selection/reset", m.handleReset).Methods(http.MethodPost)
	api.HandleFunc("/laps/{lap}/hover", m.handleHover).Methods(http.MethodGet)

	charts := m.r.PathPrefix("/charts").Subrouter()
	charts.HandleFunc("/laps", m.handleLapChart).Methods(http.MethodGet)
	charts.HandleFunc("/strategy", m.handleStrategyChart).Methods(http.MethodGet)

	m.r.HandleFunc("/ws", m.handleWebsocket)
}

func (m *Manager) handleSeasons(w http.ResponseWriter, r *http.Request) {
	m.writeJSON(w, http.StatusOK, m.dm.Seasons(r.Context()))
}

func (m *Manager) handleRaces(w http.ResponseWriter, r *http.Request) {
	season, err := strconv.Atoi(mux.Vars(r)["season"])
	if err != nil {
		m.writeJSONError(w, http.StatusBadRequest, "invalid season")
		return
	}
	m.writeJSON(w, http.StatusOK, m.dm.Races(r.Context(), season))
}

func (m *Manager) handleLoad(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	season, err := strconv.Atoi(vars["season"])
	if err != nil {
		m.writeJSONError(w, http.StatusBadRequest, "invalid season")
		return
	}
	if err := m.dm.LoadSession(r.Context(), season, vars["raceId"], vars["session"]); err != nil {
		m.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	m.writeJSON(w, http.StatusOK, m.dm.Snapshot())
}

func (m *Manager) handleDashboard(w http.ResponseWriter, r *http.Request) {
	m.writeJSON(w, http.StatusOK, m.dm.Snapshot())
}

func (m *Manager) handleToggle(w http.ResponseWriter, r *http.Request) {
	m.dm.ToggleDriver(mux.Vars(r)["code"])
	m.writeJSON(w, http.StatusOK, m.dm.Snapshot())
}

func (m *Manager) handleReset(w http.ResponseWriter, r *http.Request) {
	m.dm.ResetSelection()
	m.writeJSON(w, http.StatusOK, m.dm.Snapshot())
}

func (m *Manager) handleHover(w http.ResponseWriter, r *http.Request) {
	lap, err := strconv.Atoi(mux.Vars(r)["lap"])
	if err != nil {
		m.writeJSONError(w, http.StatusBadRequest, "invalid lap")
		return
	}
	samples := m.dm.Hover(lap)
	if samples == nil {
		m.writeJSONError(w, http.StatusNotFound, "lap out of range")
		return
	}
	m.writeJSON(w, http.StatusOK, samples)
}

func (m *Manager) handleLapChart(w http.ResponseWriter, r *http.Request) {
	snap := m.dm.Snapshot()
	if snap.Message != "" {
		m.writeJSONError(w, http.StatusNotFound, snap.Message)
		return
	}
	html, err := render.LapChart(snap.Header.Name, snap.Selected, snap.Points, snap.Scale)
	if err != nil {
		m.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(html)
}

func (m *Manager) handleStrategyChart(w http.ResponseWriter, r *http.Request) {
	snap := m.dm.Snapshot()
	if len(snap.Strategy.Rows) == 0 {
		m.writeJSONError(w, http.StatusNotFound, "no strategy data loaded")
		return
	}
	html, err := render.StrategyChart(snap.Header.Name, snap.Strategy)
	if err != nil {
		m.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(html)
}

func (m *Manager) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %s\n", err)
		return
	}
	defer conn.Close()

	updates := m.ps.Subscribe(pubsub.PubSubDashboardTopic)
	defer m.ps.Unsubscribe(pubsub.PubSubDashboardTopic, updates)

	if err := conn.WriteJSON(m.dm.Snapshot()); err != nil {
		return
	}
	for snap := range updates {
		if err := conn.WriteJSON(snap); err != nil {
			return
		}
	}
}

func (m *Manager) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error encoding response: %s\n", err)
	}
}

func (m *Manager) writeJSONError(w http.ResponseWriter, status int, msg string) {
	m.writeJSON(w, status, map[string]string{"error": msg})
}

func (m *Manager) Serve() {
	if os.Getenv("WEBSERVER_ADDRESS") != "" {
		addr = os.Getenv("WEBSERVER_ADDRESS")
	}
	srv := &http.Server{
		Addr: addr,
		// Good practice to set timeouts to avoid Slowloris attacks.
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      m.router(), // Pass our instance of gorilla/mux in.
	}

	// Run our server in a goroutine so that it doesn't block.
	go func() {
		log.Printf("webserver listening on %s\n", addr)
		if err := srv.ListenAndServe(); err != nil {
			log.Println(err)
		}
	}()

	c := make(chan os.Signal, 1)
	// We'll accept graceful shutdowns when quit via SIGINT (Ctrl+C)
	// SIGKILL, SIGQUIT or SIGTERM (Ctrl+/) will not be caught.
	signal.Notify(c, os.Interrupt)

	// Block until we receive our signal.
	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Doesn't block if no connections, but will otherwise wait
	// until the timeout deadline.
	srv.Shutdown(ctx)
	log.Println("webserver shutting down")
}
