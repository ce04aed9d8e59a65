package dictgen

import (
	"github.com/heartmarshall/slang-backend/internal/adapter/dictfile"
	"github.com/heartmarshall/slang-backend/internal/domain"
)

// MetadataOptions fills the metadata block of a generated dictionary.
type MetadataOptions struct {
	Version     string
	LastUpdated string
	Description string
}

// Enrich returns a copy of src in which every entry carries a category,
// a cultural context and examples. Values already present in src win over
// the mapping. Entry order is preserved.
func Enrich(src *dictfile.File, m *Mapping, opts MetadataOptions) *dictfile.File {
	entries := make(dictfile.Entries, len(src.Entries))
	for i, e := range src.Entries {
		if e.Category == "" {
			e.Category = m.CategoryFor(e.Term)
		}
		if e.CulturalContext == "" {
			e.CulturalContext = m.ContextFor(e.Term, e.Category)
		}
		if len(e.Examples) == 0 {
			e.Examples = m.ExamplesFor(e.Term)
		} else {
			e.Examples = append([]string(nil), e.Examples...)
		}
		entries[i] = e
	}

	return &dictfile.File{
		Metadata: domain.Metadata{
			Version:      opts.Version,
			LastUpdated:  opts.LastUpdated,
			TotalEntries: len(entries),
			Categories:   m.Slugs(),
			Description:  opts.Description,
		},
		Entries: entries,
	}
}
