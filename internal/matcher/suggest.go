package matcher

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/heartmarshall/slang-backend/internal/domain"
)

// MaxSuggestions caps the number of suggestions returned.
const MaxSuggestions = 10

type suggestion struct {
	term   string
	prefix bool
	length int
}

// Suggest returns up to limit terms whose normalized form contains the
// normalized query. Prefix matches rank before contains-only matches, then
// shorter terms first; remaining ties keep dictionary order.
// An empty query yields an empty, non-nil slice. Limit is clamped to
// [1, MaxSuggestions], with 0 meaning MaxSuggestions.
func (d *Dictionary) Suggest(query string, limit int) []string {
	q := domain.Normalize(query)
	if q == "" {
		return []string{}
	}
	limit = ClampLimit(limit)

	positions := d.containing(q)

	candidates := make([]suggestion, 0, len(positions))
	for _, pos := range positions {
		term := d.entries[pos].Term
		candidates = append(candidates, suggestion{
			term:   term,
			prefix: strings.HasPrefix(d.normalized[pos], q),
			length: utf8.RuneCountInString(term),
		})
	}

	slices.SortStableFunc(candidates, func(a, b suggestion) int {
		if a.prefix != b.prefix {
			if a.prefix {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.length, b.length)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.term
	}
	return out
}

// containing returns positions of terms containing q, in dictionary order.
func (d *Dictionary) containing(q string) []int {
	seen := make(map[int]struct{})
	var positions []int

	_ = d.suffixes.VisitSubtree(patricia.Prefix(q), func(_ patricia.Prefix, item patricia.Item) error {
		for _, pos := range item.([]int) {
			if _, ok := seen[pos]; ok {
				continue
			}
			seen[pos] = struct{}{}
			positions = append(positions, pos)
		}
		return nil
	})

	slices.Sort(positions)
	return positions
}

// ClampLimit ensures the limit is within [1, MaxSuggestions], defaulting
// non-positive values to MaxSuggestions.
func ClampLimit(limit int) int {
	if limit <= 0 || limit > MaxSuggestions {
		return MaxSuggestions
	}
	return limit
}
