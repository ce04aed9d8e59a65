package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/heartmarshall/slang-backend/internal/domain"
	"github.com/heartmarshall/slang-backend/pkg/client"
)

var (
	exactColor    = color.New(color.FgGreen, color.Bold)
	partialColor  = color.New(color.FgYellow)
	notFoundColor = color.New(color.FgRed)
	dimColor      = color.New(color.Faint)
)

func kindColor(kind string) *color.Color {
	switch domain.MatchKind(kind) {
	case domain.MatchKindExact:
		return exactColor
	case domain.MatchKindPartial:
		return partialColor
	default:
		return notFoundColor
	}
}

func printTranslation(w io.Writer, t *client.Translation) {
	fmt.Fprintf(w, "%s → ", t.OriginalPhrase)
	kindColor(t.Kind).Fprintln(w, t.Translation)
	dimColor.Fprintf(w, "  %s, confidence %.2f, via %s\n", t.Kind, t.Confidence, t.Source)
	if len(t.Alternatives) > 0 {
		fmt.Fprintf(w, "  also: %s\n", strings.Join(t.Alternatives, ", "))
	}
}

func printSuggestions(w io.Writer, s *client.Suggestions) {
	if len(s.Terms) == 0 {
		notFoundColor.Fprintln(w, "no suggestions")
		return
	}
	for _, term := range s.Terms {
		fmt.Fprintln(w, term)
	}
	dimColor.Fprintf(w, "  via %s\n", s.Source)
}

func printEntry(w io.Writer, e *client.Entry) {
	exactColor.Fprintf(w, "%s", e.Term)
	fmt.Fprintf(w, ": %s\n", e.Translation)
	fmt.Fprintf(w, "  category: %s\n", domain.CategoryLabel(e.CategorySlug()))
	if e.CulturalContext != "" {
		fmt.Fprintf(w, "  context:  %s\n", e.CulturalContext)
	}
	for _, ex := range e.Examples {
		fmt.Fprintf(w, "  - %s\n", ex)
	}
	dimColor.Fprintf(w, "  via %s\n", e.Source)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
