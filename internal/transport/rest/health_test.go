package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/slang-backend/internal/domain"
)

type dictionaryStatusMock struct {
	meta   domain.Metadata
	loaded bool
}

func (m *dictionaryStatusMock) Status(_ context.Context) (domain.Metadata, bool) {
	return m.meta, m.loaded
}

func loadedStatus() *dictionaryStatusMock {
	return &dictionaryStatusMock{
		meta:   domain.Metadata{Version: "3.0.0", TotalEntries: 42},
		loaded: true,
	}
}

func TestHealth_Loaded(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(loadedStatus(), "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "OK" {
		t.Errorf("expected status 'OK', got %q", resp.Status)
	}
	if resp.Version != "v1.0.0" {
		t.Errorf("expected version 'v1.0.0', got %q", resp.Version)
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}

	comp, ok := resp.Components["dictionary"]
	if !ok {
		t.Fatal("expected 'dictionary' component in response")
	}
	if comp.Status != "ok" || comp.Entries != 42 || comp.Version != "3.0.0" {
		t.Errorf("unexpected dictionary component %+v", comp)
	}
}

func TestHealth_NotLoadedStillOK(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&dictionaryStatusMock{}, "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Components["dictionary"].Status != "down" {
		t.Errorf("expected dictionary status 'down', got %q", resp.Components["dictionary"].Status)
	}
}

func TestReady_Loaded(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(loadedStatus(), "test-version")

	req := httptest.NewRequest(http.MethodGet, "/api/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
}

func TestReady_NotLoaded(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&dictionaryStatusMock{}, "test-version")

	req := httptest.NewRequest(http.MethodGet, "/api/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}
}
