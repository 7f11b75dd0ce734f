package rest

import (
	"context"
	"net/http"
	"time"
)

// pingTimeout bounds the database check of /ready and /health.
const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	db       dbPinger
	version  string
	provider string
	started  time.Time
	now      func() time.Time
}

// NewHealthHandler creates a HealthHandler. provider names the configured
// text-generation backend and is reported by /health.
func NewHealthHandler(db dbPinger, version, provider string) *HealthHandler {
	return &HealthHandler{
		db:       db,
		version:  version,
		provider: provider,
		started:  time.Now(),
		now:      time.Now,
	}
}

// HealthResponse is the body of all probe endpoints.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live handles GET /live. It never touches dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready handles GET /ready: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if db := h.pingDB(r.Context()); db.Status != "ok" {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: h.now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Health handles GET /health with per-component detail.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())

	resp := HealthResponse{
		Status:  "ok",
		Version: h.version,
		Uptime:  h.now().Sub(h.started).Round(time.Second).String(),
		Components: map[string]CompStatus{
			"database":   db,
			"generation": {Status: "ok", Detail: h.provider},
		},
		Timestamp: h.now(),
	}

	status := http.StatusOK
	if db.Status != "ok" {
		resp.Status = "down"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
