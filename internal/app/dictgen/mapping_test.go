package dictgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/slang-backend/internal/domain"
)

func TestDefaultMapping(t *testing.T) {
	t.Parallel()

	m, err := LoadMapping("")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"everyday", "tapori_street", "local_travel", "food_culture",
		"corporate_modern", "culture_identity", "family_terms",
	}, m.Slugs())

	for _, c := range m.Categories {
		assert.Equal(t, domain.CategoryLabel(c.Slug), c.Label, c.Slug)
	}

	assert.Equal(t, "tapori_street", m.CategoryFor("bhidu"))
	assert.Equal(t, "food_culture", m.CategoryFor("vada pav"))
	assert.Equal(t, "everyday", m.CategoryFor("unmapped term"))
}

func TestMapping_ContextFallbacks(t *testing.T) {
	t.Parallel()

	m, err := LoadMapping("")
	require.NoError(t, err)

	assert.Contains(t, m.ContextFor("vada pav", "food_culture"), "burger of Mumbai")
	assert.Contains(t, m.ContextFor("chai", "food_culture"), "rich food culture")
	assert.Contains(t, m.ContextFor("whatever", "no_such_category"), "daily conversations")
}

func TestMapping_Examples(t *testing.T) {
	t.Parallel()

	m, err := LoadMapping("")
	require.NoError(t, err)

	ex := m.ExamplesFor("bhai")
	require.Len(t, ex, 2)
	assert.Contains(t, ex[0], "kya scene hai")

	ex[0] = "mutated"
	assert.NotEqual(t, "mutated", m.ExamplesFor("bhai")[0])

	assert.Equal(t, []string{
		`"jugaad" is commonly used in Mumbai conversations`,
		`You might hear "jugaad" in local trains or street conversations`,
	}, m.ExamplesFor("jugaad"))
}

func TestParseMapping_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "categories not a mapping",
			doc:     "categories: [everyday]",
			wantErr: "categories must be a mapping",
		},
		{
			name:    "missing default category",
			doc:     "categories:\n  food_culture: {label: Food}",
			wantErr: "default category",
		},
		{
			name:    "unknown category for term",
			doc:     "categories:\n  everyday: {label: Everyday}\nterms:\n  bhai: family_terms",
			wantErr: "unknown category",
		},
		{
			name:    "duplicate category",
			doc:     "categories:\n  everyday: {label: A}\n  everyday: {label: B}",
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseMapping([]byte(tt.doc))
			require.Error(t, err)
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadMapping_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  everyday:
    label: Everyday
    context: Said all the time.
  food_culture:
    label: Food
    context: Eaten all the time.
terms:
  chai: food_culture
`), 0o644))

	m, err := LoadMapping(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"everyday", "food_culture"}, m.Slugs())
	assert.Equal(t, "Eaten all the time.", m.ContextFor("chai", m.CategoryFor("chai")))

	_, err = LoadMapping(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
