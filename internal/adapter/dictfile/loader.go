package dictfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/heartmarshall/slang-backend/internal/matcher"
)

// Format identifies a dictionary file encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("unsupported dictionary extension %q", filepath.Ext(path))
	}
}

// Decode reads and validates a dictionary file in the given format.
func Decode(r io.Reader, format Format) (*File, error) {
	var f File

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&f); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&f); err != nil {
			return nil, fmt.Errorf("decode msgpack: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Encode writes f in the given format. JSON output is indented.
func Encode(w io.Writer, f *File, format Format) error {
	switch format {
	case FormatJSON:
		raw, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		var out bytes.Buffer
		if err := json.Indent(&out, raw, "", "  "); err != nil {
			return fmt.Errorf("indent json: %w", err)
		}
		out.WriteByte('\n')
		_, err = out.WriteTo(w)
		return err
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(f); err != nil {
			return fmt.Errorf("encode msgpack: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// ReadFile opens and decodes the dictionary file at path.
func ReadFile(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer fh.Close()

	f, err := Decode(fh, format)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return f, nil
}

// WriteFile encodes f to path, replacing the file atomically via rename so
// a watching server never sees a partial write.
func WriteFile(path string, f *File) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".dict-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if err := Encode(tmp, f, format); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename dictionary: %w", err)
	}
	return nil
}

// Load reads the file at path and builds an immutable Dictionary from it.
func Load(path string) (*matcher.Dictionary, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	d, err := matcher.New(f.Metadata, f.Entries)
	if err != nil {
		return nil, fmt.Errorf("build dictionary: %w", err)
	}
	return d, nil
}
