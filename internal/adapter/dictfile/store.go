package dictfile

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/heartmarshall/slang-backend/internal/matcher"
)

// Store holds the currently loaded dictionary. Readers never lock; Reload
// calls are serialized and a failed reload keeps the previous dictionary.
type Store struct {
	log  *slog.Logger
	path string

	mu       sync.Mutex
	current  atomic.Pointer[matcher.Dictionary]
	loadedAt atomic.Int64
}

// NewStore creates a Store for the dictionary file at path. Nothing is
// loaded until Reload is called.
func NewStore(logger *slog.Logger, path string) *Store {
	return &Store{
		log:  logger.With("component", "dictionary_store"),
		path: path,
	}
}

// Path returns the dictionary file path.
func (s *Store) Path() string { return s.path }

// Current returns the loaded dictionary, or false if none was ever loaded.
func (s *Store) Current() (*matcher.Dictionary, bool) {
	d := s.current.Load()
	return d, d != nil
}

// LoadedAt returns the time of the last successful load.
func (s *Store) LoadedAt() time.Time {
	ns := s.loadedAt.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}

// Reload reads the dictionary file and swaps it in on success.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	d, err := Load(s.path)
	if err != nil {
		attrs := []any{
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		}
		if _, ok := s.Current(); ok {
			s.log.WarnContext(ctx, "dictionary reload failed, keeping previous version", attrs...)
		} else {
			s.log.ErrorContext(ctx, "dictionary load failed", attrs...)
		}
		return err
	}

	s.current.Store(d)
	s.loadedAt.Store(time.Now().UnixNano())

	meta := d.Metadata()
	s.log.InfoContext(ctx, "dictionary loaded",
		slog.String("path", s.path),
		slog.Int("entries", meta.TotalEntries),
		slog.String("version", meta.Version),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}
