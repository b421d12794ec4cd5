// Package status serves a read-only JSON view of a running recovery so
// long jobs can be watched without touching the terminal the engine
// owns. Serving never feeds back into the engine: the handler only
// reads a snapshot.
package status

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Snapshot is one point-in-time view of a run.
type Snapshot struct {
	RunID     string `json:"run_id"`
	Algorithm string `json:"algorithm"`
	State     string `json:"state"`
	Strategy  string `json:"strategy,omitempty"`
	Attempts  uint64 `json:"attempts"`
	Found     int    `json:"found"`
	Remaining int    `json:"remaining"`
	Elapsed   string `json:"elapsed"`
}

// Source produces the current snapshot; it must be safe to call from
// the serving goroutine while the engine runs.
type Source func() Snapshot

// Handler returns the status routes.
func Handler(src Source) http.Handler {
	mux := chi.NewMux()
	mux.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(src()); err != nil {
			http.Error(w, "failed to encode status", http.StatusInternalServerError)
		}
	})
	return mux
}

// NewServer returns an HTTP server for the status routes on addr. The
// caller decides whether a serve failure matters; the engine does not.
func NewServer(addr string, src Source) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: Handler(src),
	}
}
