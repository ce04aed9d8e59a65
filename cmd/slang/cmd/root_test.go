package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDictionary = `{
  "metadata": {"version": "3.0.0", "total_entries": 3},
  "entries": {
    "bhidu": "buddy",
    "chai": "tea",
    "vada pav": {
      "translation": "Mumbai burger",
      "category": "food_culture",
      "culturalContext": "Iconic street food.",
      "examples": ["Ek vada pav dena"]
    }
  }
}`

func writeDictionary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slang.json")
	require.NoError(t, os.WriteFile(path, []byte(testDictionary), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestTranslate_Offline(t *testing.T) {
	dict := writeDictionary(t)

	out, err := run(t, "-d", dict, "translate", "Bhidu")
	require.NoError(t, err)
	assert.Contains(t, out, "Bhidu → buddy")
	assert.Contains(t, out, "exact")
	assert.Contains(t, out, "via local")
}

func TestTranslate_OfflineJSON(t *testing.T) {
	dict := writeDictionary(t)

	out, err := run(t, "-d", dict, "--json", "translate", "vada", "pav")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "vada pav", got["originalPhrase"])
	assert.Equal(t, "Mumbai burger", got["translation"])
	assert.Equal(t, "exact", got["kind"])
}

func TestTranslate_NotFound(t *testing.T) {
	dict := writeDictionary(t)

	out, err := run(t, "-d", dict, "translate", "xyzzy")
	require.NoError(t, err)
	assert.Contains(t, out, "not_found")
}

func TestTranslate_RequiresPhrase(t *testing.T) {
	_, err := run(t, "translate")
	require.Error(t, err)
}

func TestTranslate_MissingDictionaryOffline(t *testing.T) {
	_, err := run(t, "-d", filepath.Join(t.TempDir(), "missing.json"), "translate", "bhidu")
	require.Error(t, err)
}

func TestSuggest_Offline(t *testing.T) {
	dict := writeDictionary(t)

	out, err := run(t, "-d", dict, "suggest", "ch")
	require.NoError(t, err)
	assert.Contains(t, out, "chai")
	assert.NotContains(t, out, "bhidu")
}

func TestSuggest_NoMatches(t *testing.T) {
	dict := writeDictionary(t)

	out, err := run(t, "-d", dict, "suggest", "zz")
	require.NoError(t, err)
	assert.Contains(t, out, "no suggestions")
}

func TestEntry_Offline(t *testing.T) {
	dict := writeDictionary(t)

	out, err := run(t, "-d", dict, "entry", "vada", "pav")
	require.NoError(t, err)
	assert.Contains(t, out, "vada pav: Mumbai burger")
	assert.Contains(t, out, "Food culture")
	assert.Contains(t, out, "Iconic street food.")
	assert.Contains(t, out, "- Ek vada pav dena")
}

func TestEntry_UnknownTerm(t *testing.T) {
	dict := writeDictionary(t)

	_, err := run(t, "-d", dict, "entry", "xyzzy")
	require.Error(t, err)
}

func TestTranslate_UsesServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/translate", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"originalPhrase":"chai","translation":"tea (server)","confidence":1,"alternatives":[],"kind":"exact"}}`))
	}))
	defer srv.Close()

	out, err := run(t, "-d", writeDictionary(t), "-s", srv.URL, "translate", "chai")
	require.NoError(t, err)
	assert.Contains(t, out, "tea (server)")
	assert.Contains(t, out, "via network")
}
