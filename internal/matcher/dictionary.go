// Package matcher implements phrase matching, confidence scoring and
// suggestion ranking over an immutable slang dictionary.
//
// A Dictionary is built once and never mutated, so every method is safe for
// concurrent use without locking.
package matcher

import (
	"fmt"
	"slices"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/heartmarshall/slang-backend/internal/domain"
)

// Dictionary is a read-only, insertion-ordered set of entries with a
// substring index over normalized terms.
type Dictionary struct {
	meta       domain.Metadata
	entries    []domain.Entry
	normalized []string
	positions  map[string]int
	suffixes   *patricia.Trie
}

// New builds a Dictionary from entries in iteration order.
// Terms must be non-empty and unique (case-sensitive).
func New(meta domain.Metadata, entries []domain.Entry) (*Dictionary, error) {
	d := &Dictionary{
		meta:       meta,
		entries:    make([]domain.Entry, len(entries)),
		normalized: make([]string, len(entries)),
		positions:  make(map[string]int, len(entries)),
		suffixes:   patricia.NewTrie(),
	}

	for i, e := range entries {
		if e.Term == "" {
			return nil, fmt.Errorf("entry %d: empty term", i)
		}
		if _, dup := d.positions[e.Term]; dup {
			return nil, fmt.Errorf("entry %d: duplicate term %q", i, e.Term)
		}
		e.Examples = slices.Clone(e.Examples)
		d.entries[i] = e
		d.normalized[i] = domain.Normalize(e.Term)
		d.positions[e.Term] = i
		d.indexSuffixes(i)
	}
	d.meta.TotalEntries = len(d.entries)

	return d, nil
}

// indexSuffixes stores every rune-aligned suffix of the normalized term, so a
// subtree walk under the query finds all terms containing it.
func (d *Dictionary) indexSuffixes(pos int) {
	norm := d.normalized[pos]
	for start := range norm {
		key := patricia.Prefix(norm[start:])
		if item := d.suffixes.Get(key); item != nil {
			d.suffixes.Set(key, append(item.([]int), pos))
			continue
		}
		d.suffixes.Insert(key, []int{pos})
	}
}

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// Metadata returns the dictionary metadata with TotalEntries set to Len.
func (d *Dictionary) Metadata() domain.Metadata {
	m := d.meta
	m.Categories = slices.Clone(m.Categories)
	return m
}

// Terms returns all terms in dictionary order.
func (d *Dictionary) Terms() []string {
	terms := make([]string, len(d.entries))
	for i, e := range d.entries {
		terms[i] = e.Term
	}
	return terms
}

// Translation returns the stored translation for an exact stored term.
func (d *Dictionary) Translation(term string) (string, bool) {
	pos, ok := d.positions[term]
	if !ok {
		return "", false
	}
	return d.entries[pos].Translation, true
}

// Entry returns the first entry whose normalized term equals the normalized
// input.
func (d *Dictionary) Entry(term string) (domain.Entry, bool) {
	if pos, ok := d.positions[term]; ok {
		return d.entryAt(pos), true
	}
	norm := domain.Normalize(term)
	if norm == "" {
		return domain.Entry{}, false
	}
	for i, n := range d.normalized {
		if n == norm {
			return d.entryAt(i), true
		}
	}
	return domain.Entry{}, false
}

func (d *Dictionary) entryAt(pos int) domain.Entry {
	e := d.entries[pos]
	e.Examples = slices.Clone(e.Examples)
	return e
}

// Categories returns the categories used by entries with their counts,
// ordered by first appearance. Entries without a category count as
// domain.DefaultCategory.
func (d *Dictionary) Categories() []domain.Category {
	var order []string
	counts := make(map[string]int)
	for _, e := range d.entries {
		slug := e.CategorySlug()
		if _, ok := counts[slug]; !ok {
			order = append(order, slug)
		}
		counts[slug]++
	}

	out := make([]domain.Category, 0, len(order))
	for _, slug := range order {
		out = append(out, domain.Category{
			Slug:  slug,
			Label: domain.CategoryLabel(slug),
			Count: counts[slug],
		})
	}
	return out
}
