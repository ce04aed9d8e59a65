package domain

// Entry is one dictionary term with its translation and display metadata.
// Only Term and Translation take part in matching.
type Entry struct {
	Term            string   `json:"term"            msgpack:"term"`
	Translation     string   `json:"translation"     msgpack:"translation"`
	Category        string   `json:"category,omitempty"        msgpack:"category,omitempty"`
	CulturalContext string   `json:"culturalContext,omitempty" msgpack:"cultural_context,omitempty"`
	Examples        []string `json:"examples,omitempty"        msgpack:"examples,omitempty"`
}

// CategorySlug returns the entry's category, or DefaultCategory when unset.
func (e Entry) CategorySlug() string {
	if e.Category == "" {
		return DefaultCategory
	}
	return e.Category
}

// Metadata describes a dictionary file.
type Metadata struct {
	Version      string   `json:"version,omitempty"       yaml:"version"       msgpack:"version"`
	LastUpdated  string   `json:"last_updated,omitempty"  yaml:"last_updated"  msgpack:"last_updated"`
	TotalEntries int      `json:"total_entries"           yaml:"total_entries" msgpack:"total_entries"`
	Categories   []string `json:"categories,omitempty"    yaml:"categories"    msgpack:"categories"`
	Description  string   `json:"description,omitempty"   yaml:"description"   msgpack:"description"`
}

// Category is a slang category with its human-readable label.
type Category struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DefaultCategory is assigned to entries without an explicit category.
const DefaultCategory = "everyday"

// CategoryLabels maps known category slugs to display labels.
var CategoryLabels = map[string]string{
	"everyday":         "Everyday conversation",
	"tapori_street":    "Street/Tapori language",
	"local_travel":     "Local transport",
	"food_culture":     "Food culture",
	"corporate_modern": "Modern corporate",
	"culture_identity": "Cultural identity",
	"family_terms":     "Family terms",
}

// CategoryLabel returns the label for slug, or the slug itself when unknown.
func CategoryLabel(slug string) string {
	if label, ok := CategoryLabels[slug]; ok {
		return label
	}
	return slug
}
