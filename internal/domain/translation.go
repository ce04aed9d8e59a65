package domain

// MatchKind tells how a translation was found.
type MatchKind string

const (
	MatchKindExact    MatchKind = "exact"
	MatchKindPartial  MatchKind = "partial"
	MatchKindNotFound MatchKind = "not_found"
)

func (k MatchKind) String() string { return string(k) }

func (k MatchKind) IsValid() bool {
	switch k {
	case MatchKindExact, MatchKindPartial, MatchKindNotFound:
		return true
	}
	return false
}

const (
	// PossibleMatchPrefix marks a partial match in display text.
	PossibleMatchPrefix = "Possible match: "
	// NotFoundText is shown when nothing matched.
	NotFoundText = "Translation not found"
)

// Translation is the result of one translate call.
// Translation holds the raw dictionary value; use DisplayText for the
// user-facing string.
type Translation struct {
	OriginalPhrase string
	Kind           MatchKind
	MatchedTerm    string
	Translation    string
	Confidence     float64
	Alternatives   []string
}

// DisplayText renders the translation the way clients show it.
func (t Translation) DisplayText() string {
	switch t.Kind {
	case MatchKindExact:
		return t.Translation
	case MatchKindPartial:
		return PossibleMatchPrefix + t.Translation
	default:
		return NotFoundText
	}
}

// Found reports whether any dictionary term matched.
func (t Translation) Found() bool {
	return t.Kind == MatchKindExact || t.Kind == MatchKindPartial
}
