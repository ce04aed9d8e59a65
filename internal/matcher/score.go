package matcher

import (
	"math"
	"unicode/utf8"

	"github.com/heartmarshall/slang-backend/internal/domain"
)

// MinPartialConfidence is the floor for any non-exact match.
const MinPartialConfidence = 0.5

// Score estimates match quality in [0, 1]. Equal normalized strings score
// 1.0; otherwise the score is the length ratio 1 - |lp-lt|/max(lp,lt),
// floored at MinPartialConfidence. Lengths are counted in runes.
//
// The ratio ignores content: two different strings of equal length score 1.0.
func Score(originalPhrase, matchedTerm string) float64 {
	p := domain.Normalize(originalPhrase)
	t := domain.Normalize(matchedTerm)

	// Also covers the both-empty case.
	if p == t {
		return 1.0
	}

	lp := utf8.RuneCountInString(p)
	lt := utf8.RuneCountInString(t)
	longest := max(lp, lt)
	if longest == 0 {
		return 1.0
	}

	diff := lp - lt
	if diff < 0 {
		diff = -diff
	}
	similarity := 1 - float64(diff)/float64(longest)

	return math.Max(MinPartialConfidence, similarity)
}
