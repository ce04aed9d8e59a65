package matcher

import (
	"strings"

	"github.com/heartmarshall/slang-backend/internal/domain"
)

// MatchResult lists matching terms in dictionary order.
// A term appears in at most one of the two lists.
type MatchResult struct {
	Exact   []string
	Partial []string
}

// FindMatches compares the normalized phrase against every normalized term.
// Equal forms are exact matches; forms where either contains the other are
// partial matches.
//
// An empty phrase partially matches every term. Callers must reject empty
// input before calling.
func (d *Dictionary) FindMatches(phrase string) MatchResult {
	norm := domain.Normalize(phrase)

	var res MatchResult
	for i, term := range d.normalized {
		switch {
		case term == norm:
			res.Exact = append(res.Exact, d.entries[i].Term)
		case strings.Contains(term, norm) || strings.Contains(norm, term):
			res.Partial = append(res.Partial, d.entries[i].Term)
		}
	}
	return res
}

// Translate composes matching and scoring: the first exact match wins,
// then the first partial match, otherwise a not-found result.
// Alternatives are the translations of the remaining matches of the same kind.
func (d *Dictionary) Translate(phrase string) domain.Translation {
	matches := d.FindMatches(phrase)

	switch {
	case len(matches.Exact) > 0:
		return d.resultFor(phrase, domain.MatchKindExact, matches.Exact)
	case len(matches.Partial) > 0:
		return d.resultFor(phrase, domain.MatchKindPartial, matches.Partial)
	default:
		return domain.Translation{
			OriginalPhrase: phrase,
			Kind:           domain.MatchKindNotFound,
			Confidence:     0,
			Alternatives:   []string{},
		}
	}
}

func (d *Dictionary) resultFor(phrase string, kind domain.MatchKind, terms []string) domain.Translation {
	best := terms[0]
	translation, _ := d.Translation(best)

	alternatives := make([]string, 0, len(terms)-1)
	for _, term := range terms[1:] {
		alt, _ := d.Translation(term)
		alternatives = append(alternatives, alt)
	}

	return domain.Translation{
		OriginalPhrase: phrase,
		Kind:           kind,
		MatchedTerm:    best,
		Translation:    translation,
		Confidence:     Score(phrase, best),
		Alternatives:   alternatives,
	}
}
