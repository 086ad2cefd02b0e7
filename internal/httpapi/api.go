// Package httpapi exposes the loopback API the dashboard talks to: current
// store, derived statistics, a manual run trigger and an SSE event stream.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"neurojobs-engine/internal/config"
	"neurojobs-engine/internal/events"
	"neurojobs-engine/internal/pipeline"
	"neurojobs-engine/internal/scrape"
	"neurojobs-engine/internal/stats"
	"neurojobs-engine/internal/store"
)

type API struct {
	Cfg  config.Config
	File *store.File
	Hub  *events.Hub

	// RunOnce triggers a pipeline run; wired by cmd/engine, faked in tests.
	RunOnce func(ctx context.Context) (pipeline.RunReport, error)

	running atomic.Bool
	status  atomic.Value // scrape.Status
}

func (a *API) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.handleHealth)
	mux.HandleFunc("/jobs", a.handleJobs)
	mux.HandleFunc("/stats", a.handleStats)
	mux.HandleFunc("/scrape", a.handleScrape)
	mux.HandleFunc("/scrape/status", a.handleScrapeStatus)
	mux.HandleFunc("/events", a.handleEvents)
	return cors(mux)
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"ok": true, "time": time.Now().Format(time.RFC3339)})
}

func (a *API) handleJobs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, a.File.Load())
}

func (a *API) handleStats(w http.ResponseWriter, r *http.Request) {
	s := a.File.Load()
	writeJSON(w, stats.Aggregate(s, a.Cfg.Keywords.Weights, time.Now()))
}

func (a *API) handleScrape(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	if a.RunOnce == nil {
		http.Error(w, "runner not configured", http.StatusServiceUnavailable)
		return
	}
	if !a.running.CompareAndSwap(false, true) {
		http.Error(w, "run already in progress", http.StatusConflict)
		return
	}
	defer a.running.Store(false)

	st := scrape.Status{Running: true, LastRunAt: time.Now().Format(time.RFC3339)}
	a.status.Store(st)

	report, err := a.RunOnce(r.Context())

	st.Running = false
	st.LastAdded = report.Added
	if err != nil {
		st.LastError = err.Error()
		a.status.Store(st)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	st.LastError = ""
	st.LastOkAt = time.Now().Format(time.RFC3339)
	a.status.Store(st)

	writeJSON(w, report)
}

func (a *API) handleScrapeStatus(w http.ResponseWriter, r *http.Request) {
	st, _ := a.status.Load().(scrape.Status)
	writeJSON(w, st)
}

func (a *API) handleEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ch := a.Hub.Subscribe()
	defer a.Hub.Unsubscribe(ch)

	// initial ping
	fmt.Fprintf(w, "event: ping\ndata: %s\n\n", `{"type":"ping"}`)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case evt := <-ch:
			fmt.Fprintf(w, "event: message\ndata: %s\n\n", evt.Encode())
			flusher.Flush()
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
