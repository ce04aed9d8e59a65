package dictgen

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/slang-backend/internal/domain"
)

//go:embed categories.yaml
var defaultMapping []byte

// CategoryTemplate describes one category and its fallback cultural context.
type CategoryTemplate struct {
	Slug    string `yaml:"-"`
	Label   string `yaml:"label"`
	Context string `yaml:"context"`
}

// CategoryTemplates keeps categories in the order they are declared.
type CategoryTemplates []CategoryTemplate

// UnmarshalYAML decodes a slug-keyed mapping while preserving key order.
func (c *CategoryTemplates) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: categories must be a mapping", node.Line)
	}

	out := make(CategoryTemplates, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var t CategoryTemplate
		if err := node.Content[i+1].Decode(&t); err != nil {
			return fmt.Errorf("category %q: %w", node.Content[i].Value, err)
		}
		t.Slug = node.Content[i].Value
		out = append(out, t)
	}
	*c = out
	return nil
}

// Mapping tells the generator how to enrich plain entries.
type Mapping struct {
	Categories      CategoryTemplates   `yaml:"categories"`
	Terms           map[string]string   `yaml:"terms"`
	SpecialContexts map[string]string   `yaml:"special_contexts"`
	Examples        map[string][]string `yaml:"examples"`

	bySlug map[string]CategoryTemplate
}

// LoadMapping reads a mapping file. An empty path selects the built-in
// Mumbai mapping.
func LoadMapping(path string) (*Mapping, error) {
	if path == "" {
		return ParseMapping(defaultMapping)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping: %w", err)
	}
	m, err := ParseMapping(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseMapping decodes and checks a YAML mapping document.
func ParseMapping(data []byte) (*Mapping, error) {
	var m Mapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode mapping: %w", err)
	}

	m.bySlug = make(map[string]CategoryTemplate, len(m.Categories))
	for _, c := range m.Categories {
		if _, dup := m.bySlug[c.Slug]; dup {
			return nil, fmt.Errorf("category %q declared twice", c.Slug)
		}
		m.bySlug[c.Slug] = c
	}
	if _, ok := m.bySlug[domain.DefaultCategory]; !ok {
		return nil, fmt.Errorf("default category %q is not declared", domain.DefaultCategory)
	}
	for term, slug := range m.Terms {
		if _, ok := m.bySlug[slug]; !ok {
			return nil, fmt.Errorf("term %q uses unknown category %q", term, slug)
		}
	}

	return &m, nil
}

// Slugs lists category slugs in declaration order.
func (m *Mapping) Slugs() []string {
	out := make([]string, len(m.Categories))
	for i, c := range m.Categories {
		out[i] = c.Slug
	}
	return out
}

// CategoryFor returns the category assigned to term, or the default.
func (m *Mapping) CategoryFor(term string) string {
	if slug, ok := m.Terms[term]; ok {
		return slug
	}
	return domain.DefaultCategory
}

// ContextFor picks the term's special context, then the category template,
// then the default category template.
func (m *Mapping) ContextFor(term, category string) string {
	if ctx, ok := m.SpecialContexts[term]; ok {
		return ctx
	}
	if c, ok := m.bySlug[category]; ok && c.Context != "" {
		return c.Context
	}
	return m.bySlug[domain.DefaultCategory].Context
}

// ExamplesFor returns configured examples or two generic sentences.
func (m *Mapping) ExamplesFor(term string) []string {
	if ex, ok := m.Examples[term]; ok && len(ex) > 0 {
		return append([]string(nil), ex...)
	}
	return []string{
		fmt.Sprintf("%q is commonly used in Mumbai conversations", term),
		fmt.Sprintf("You might hear %q in local trains or street conversations", term),
	}
}
