package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/slang-backend/pkg/ctxutil"
)

// envelope is the common shape of every /api response except health probes.
type envelope struct {
	Success   bool       `json:"success"`
	Data      any        `json:"data,omitempty"`
	Error     *errorBody `json:"error,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
	RequestID string     `json:"requestId,omitempty"`
}

type errorBody struct {
	Message string `json:"message"`
}

func writeSuccess(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, http.StatusOK, envelope{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, envelope{
		Success:   false,
		Error:     &errorBody{Message: message},
		Timestamp: time.Now().UTC(),
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
