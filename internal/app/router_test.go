package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/slang-backend/internal/adapter/dictfile"
	"github.com/heartmarshall/slang-backend/internal/config"
	"github.com/heartmarshall/slang-backend/internal/service/translator"
	"github.com/heartmarshall/slang-backend/internal/transport/middleware"
)

const scenarioDictionary = `{"entries": {"bhai": "brother", "bhidu": "friend"}}`

type apiResponse struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"requestId"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type testServer struct {
	*httptest.Server
	store *dictfile.Store
	path  string
}

func testConfig() *config.Config {
	return &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins:   "http://localhost:3000",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Content-Type,X-Request-Id",
			AllowCredentials: true,
			MaxAge:           600,
		},
		RateLimit: config.RateLimitConfig{RequestsPerMinute: 1000, CleanupInterval: time.Minute},
		Suggest:   config.SuggestConfig{MaxLimit: 10},
	}
}

func newTestServer(t *testing.T, dictionary string, load bool) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "slang_dictionary.json")
	require.NoError(t, os.WriteFile(path, []byte(dictionary), 0o644))

	store := dictfile.NewStore(logger, path)
	if load {
		require.NoError(t, store.Reload(context.Background()))
	}

	limiter := middleware.NewRateLimiter(testConfig().RateLimit)
	t.Cleanup(limiter.Stop)

	svc := translator.NewService(logger, store)
	srv := httptest.NewServer(NewRouter(testConfig(), logger, svc, limiter))
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, store: store, path: path}
}

func (s *testServer) do(t *testing.T, method, path, body string) (*http.Response, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out apiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return resp, out
}

func TestRouter_TranslateScenario(t *testing.T) {
	srv := newTestServer(t, scenarioDictionary, true)

	type translation struct {
		Translation  string   `json:"translation"`
		Confidence   float64  `json:"confidence"`
		Alternatives []string `json:"alternatives"`
		Kind         string   `json:"kind"`
	}

	resp, out := srv.do(t, http.MethodPost, "/api/translate", `{"phrase":"bhai"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, out.Success)
	var exact translation
	require.NoError(t, json.Unmarshal(out.Data, &exact))
	assert.Equal(t, translation{Translation: "brother", Confidence: 1, Alternatives: []string{}, Kind: "exact"}, exact)

	resp, out = srv.do(t, http.MethodPost, "/api/translate", `{"phrase":"bh"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var partial translation
	require.NoError(t, json.Unmarshal(out.Data, &partial))
	assert.Equal(t, "Possible match: brother", partial.Translation)
	assert.Equal(t, []string{"friend"}, partial.Alternatives)
	assert.Equal(t, "partial", partial.Kind)

	resp, out = srv.do(t, http.MethodPost, "/api/translate", `{"phrase":"zzz"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var missing translation
	require.NoError(t, json.Unmarshal(out.Data, &missing))
	assert.Equal(t, "Translation not found", missing.Translation)
	assert.Zero(t, missing.Confidence)

	resp, out = srv.do(t, http.MethodPost, "/api/translate", `{"phrase":"   "}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, out.Error)
	assert.Equal(t, "Phrase cannot be empty", out.Error.Message)
}

func TestRouter_Suggestions(t *testing.T) {
	srv := newTestServer(t, scenarioDictionary, true)

	resp, out := srv.do(t, http.MethodGet, "/api/suggestions?query=bh", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `["bhai","bhidu"]`, string(out.Data))

	resp, out = srv.do(t, http.MethodGet, "/api/suggestions?query=bh&limit=1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `["bhai"]`, string(out.Data))

	resp, out = srv.do(t, http.MethodGet, "/api/suggestions?query=", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(out.Data))
}

func TestRouter_RequestIDEchoed(t *testing.T) {
	srv := newTestServer(t, scenarioDictionary, true)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/categories", nil)
	require.NoError(t, err)
	req.Header.Set(middleware.RequestIDHeader, "trace-42")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-42", resp.Header.Get(middleware.RequestIDHeader))
	var out apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "trace-42", out.RequestID)
	assert.JSONEq(t, `[{"slug":"everyday","label":"Everyday conversation","count":2}]`, string(out.Data))
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv := newTestServer(t, scenarioDictionary, true)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/translate", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestRouter_EntryLookup(t *testing.T) {
	srv := newTestServer(t, scenarioDictionary, true)

	resp, out := srv.do(t, http.MethodGet, "/api/entries/BHAI", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(out.Data), `"translation":"brother"`)

	resp, out = srv.do(t, http.MethodGet, "/api/entries/nope", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, out.Success)
}

func TestRouter_UnavailableThenRecovered(t *testing.T) {
	srv := newTestServer(t, `{"entries": {}}`, false)
	require.Error(t, srv.store.Reload(context.Background()))

	resp, out := srv.do(t, http.MethodPost, "/api/translate", `{"phrase":"bhai"}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.NotNil(t, out.Error)
	assert.Equal(t, "Slang dictionary not loaded", out.Error.Message)

	resp, _ = srv.do(t, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = srv.do(t, http.MethodGet, "/api/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	// Empty phrase is rejected before the dictionary is consulted.
	resp, _ = srv.do(t, http.MethodPost, "/api/translate", `{"phrase":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	require.NoError(t, os.WriteFile(srv.path, []byte(scenarioDictionary), 0o644))
	require.NoError(t, srv.store.Reload(context.Background()))

	resp, out = srv.do(t, http.MethodPost, "/api/translate", `{"phrase":"bhai"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, out.Success)
	resp, _ = srv.do(t, http.MethodGet, "/api/ready", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, scenarioDictionary, true)

	resp, _ := srv.do(t, http.MethodGet, "/api/translate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
