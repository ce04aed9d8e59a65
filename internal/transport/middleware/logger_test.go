package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/slang-backend/pkg/ctxutil"
)

func logRequest(t *testing.T, status int, body string, req *http.Request) string {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})

	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), req)
	return buf.String()
}

func TestLogger_Success(t *testing.T) {
	out := logRequest(t, http.StatusOK, `["bhai"]`, httptest.NewRequest(http.MethodGet, "/api/suggestions", nil))

	for _, want := range []string{"http.request", `"method":"GET"`, `"path":"/api/suggestions"`, `"status":200`, `"bytes":8`, "duration", `"level":"INFO"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s: %q", want, out)
		}
	}
	if strings.Contains(out, "client_ip") {
		t.Errorf("client_ip should be omitted when unknown: %q", out)
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusBadRequest, "WARN"},
		{http.StatusTooManyRequests, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		out := logRequest(t, tt.status, "", httptest.NewRequest(http.MethodPost, "/api/translate", nil))
		if !strings.Contains(out, `"level":"`+tt.level+`"`) {
			t.Errorf("status %d: want level %s, got %q", tt.status, tt.level, out)
		}
	}
}

func TestLogger_IncludesContextIdentifiers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	ctx := ctxutil.WithRequestID(req.Context(), "test-request-id-123")
	ctx = ctxutil.WithClientIP(ctx, "10.1.2.3")

	out := logRequest(t, http.StatusOK, "", req.WithContext(ctx))

	if !strings.Contains(out, `"request_id":"test-request-id-123"`) {
		t.Errorf("log missing request_id: %q", out)
	}
	if !strings.Contains(out, `"client_ip":"10.1.2.3"`) {
		t.Errorf("log missing client_ip: %q", out)
	}
}
