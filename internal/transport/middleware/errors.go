package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/slang-backend/pkg/ctxutil"
)

// writeErrorEnvelope answers with the API's error envelope. Middleware runs
// before the REST handlers so it cannot share their helpers.
func writeErrorEnvelope(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success":   false,
		"error":     map[string]string{"message": message},
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"requestId": ctxutil.RequestIDFromCtx(r.Context()),
	})
}
