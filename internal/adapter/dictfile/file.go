// Package dictfile reads and writes slang dictionary files and keeps the
// currently loaded dictionary available for concurrent readers.
//
// Two formats are supported, chosen by file extension:
//
//	.json     {"metadata": {...}, "entries": {"term": "translation" | {...}}}
//	.msgpack  compact snapshot written by the dictgen tool
package dictfile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/slang-backend/internal/domain"
)

// File is the decoded content of a dictionary file.
// Entries keep the order in which they appear in the file.
type File struct {
	Metadata domain.Metadata `json:"metadata" msgpack:"metadata"`
	Entries  Entries         `json:"entries"  msgpack:"entries"  validate:"required,min=1,unique=Term,dive"`
}

// Entries is an ordered list of dictionary entries. In JSON it is encoded as
// an object keyed by term; the value is either the translation string or an
// object carrying the display metadata.
type Entries []domain.Entry

type entryValue struct {
	Translation     string   `json:"translation"`
	Category        string   `json:"category,omitempty"`
	CulturalContext string   `json:"culturalContext,omitempty"`
	Examples        []string `json:"examples,omitempty"`
}

// UnmarshalJSON decodes the entries object token by token so that document
// order becomes dictionary order.
func (e *Entries) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("entries: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("entries: expected object, got %v", tok)
	}

	out := Entries{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("entries: %w", err)
		}
		term, ok := tok.(string)
		if !ok {
			return fmt.Errorf("entries: expected term key, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("entries[%q]: %w", term, err)
		}
		entry, err := decodeEntry(term, raw)
		if err != nil {
			return fmt.Errorf("entries[%q]: %w", term, err)
		}
		out = append(out, entry)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("entries: %w", err)
	}

	*e = out
	return nil
}

func decodeEntry(term string, raw json.RawMessage) (domain.Entry, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return domain.Entry{}, fmt.Errorf("empty value")
	}

	switch raw[0] {
	case '"':
		var translation string
		if err := json.Unmarshal(raw, &translation); err != nil {
			return domain.Entry{}, err
		}
		return domain.Entry{Term: term, Translation: translation}, nil
	case '{':
		var v entryValue
		if err := json.Unmarshal(raw, &v); err != nil {
			return domain.Entry{}, err
		}
		return domain.Entry{
			Term:            term,
			Translation:     v.Translation,
			Category:        v.Category,
			CulturalContext: v.CulturalContext,
			Examples:        v.Examples,
		}, nil
	default:
		return domain.Entry{}, fmt.Errorf("expected string or object")
	}
}

// MarshalJSON writes entries as an object in slice order. Entries without
// display metadata are written as plain translation strings.
func (e Entries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, entry := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Term)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		var value any = entry.Translation
		if entry.Category != "" || entry.CulturalContext != "" || len(entry.Examples) > 0 {
			value = entryValue{
				Translation:     entry.Translation,
				Category:        entry.Category,
				CulturalContext: entry.CulturalContext,
				Examples:        entry.Examples,
			}
		}
		b, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
