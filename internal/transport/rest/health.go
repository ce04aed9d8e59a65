package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/slang-backend/internal/domain"
)

// dictionaryStatus reports whether a dictionary is loaded.
type dictionaryStatus interface {
	Status(ctx context.Context) (domain.Metadata, bool)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	dict    dictionaryStatus
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(dict dictionaryStatus, version string) *HealthHandler {
	return &HealthHandler{dict: dict, version: version}
}

// HealthResponse is the JSON response for /api/health and /api/ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Entries int    `json:"entries,omitempty"`
	Version string `json:"version,omitempty"`
}

// Health is the liveness check. It always answers 200 while the process
// serves requests and reports the dictionary as a component.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     "OK",
		Version:    h.version,
		Components: map[string]CompStatus{"dictionary": h.dictionaryComponent(r.Context())},
		Timestamp:  time.Now().UTC(),
	})
}

// Ready is the readiness probe: 200 when a dictionary is loaded, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	comp := h.dictionaryComponent(r.Context())
	if comp.Status != "ok" {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:     "down",
			Components: map[string]CompStatus{"dictionary": comp},
			Timestamp:  time.Now().UTC(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

func (h *HealthHandler) dictionaryComponent(ctx context.Context) CompStatus {
	meta, ok := h.dict.Status(ctx)
	if !ok {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Entries: meta.TotalEntries, Version: meta.Version}
}
