// Package client talks to the slang translation API.
//
// Lookups go to the network first. When the server cannot be reached the
// client answers from its response cache and then from an optional local
// dictionary, reporting which of the three produced the result.
package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sony/gobreaker"

	"github.com/heartmarshall/slang-backend/internal/domain"
)

// ErrOffline is returned by network calls when no server URL is configured.
var ErrOffline = errors.New("client: no server configured")

// Source tells where a result came from.
type Source string

const (
	SourceNetwork Source = "network"
	SourceCache   Source = "cache"
	SourceLocal   Source = "local"
)

// Translation is a translate result as shown to users.
type Translation struct {
	OriginalPhrase string   `json:"originalPhrase"`
	Translation    string   `json:"translation"`
	Confidence     float64  `json:"confidence"`
	Alternatives   []string `json:"alternatives"`
	Kind           string   `json:"kind"`
	MatchedTerm    string   `json:"matchedTerm,omitempty"`
	Source         Source   `json:"-"`
}

// Suggestions is a suggest result.
type Suggestions struct {
	Terms  []string
	Source Source
}

// Entry is an entry lookup result.
type Entry struct {
	domain.Entry
	Source Source
}

// Fallback answers lookups without the network.
type Fallback interface {
	Translate(ctx context.Context, phrase string) (*domain.Translation, error)
	Suggest(ctx context.Context, query string, limit int) ([]string, error)
	Entry(ctx context.Context, term string) (*domain.Entry, error)
}

// Config holds client settings.
type Config struct {
	BaseURL         string
	Timeout         time.Duration
	RetryAttempts   uint
	RetryDelay      time.Duration
	CacheSize       int
	CacheTTL        time.Duration
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// DefaultConfig returns production defaults for the given server URL.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:         baseURL,
		Timeout:         5 * time.Second,
		RetryAttempts:   2,
		RetryDelay:      200 * time.Millisecond,
		CacheSize:       512,
		CacheTTL:        time.Hour,
		BreakerFailures: 5,
		BreakerTimeout:  30 * time.Second,
	}
}

// Client is a network-first API client with cache and local fallback.
// With an empty BaseURL every lookup goes straight to the fallback.
// It is safe for concurrent use.
type Client struct {
	log      *slog.Logger
	cfg      Config
	http     *resty.Client
	breaker  *gobreaker.CircuitBreaker
	fallback Fallback

	translations *expirable.LRU[string, Translation]
	suggestions  *expirable.LRU[string, []string]
}

// New creates a Client. fallback may be nil.
func New(logger *slog.Logger, cfg Config, fallback Fallback) *Client {
	log := logger.With("component", "api_client")

	c := &Client{
		log:          log,
		cfg:          cfg,
		fallback:     fallback,
		http:         resty.New().SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).SetTimeout(cfg.Timeout),
		translations: expirable.NewLRU[string, Translation](cfg.CacheSize, nil, cfg.CacheTTL),
		suggestions:  expirable.NewLRU[string, []string](cfg.CacheSize, nil, cfg.CacheTTL),
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "slang-api",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isClientError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return c
}

// Translate looks up a phrase.
func (c *Client) Translate(ctx context.Context, phrase string) (*Translation, error) {
	if strings.TrimSpace(phrase) == "" {
		return nil, domain.NewValidationError("phrase", "Phrase cannot be empty")
	}
	key := domain.Normalize(phrase)

	var out Translation
	err := c.call(ctx, func() error {
		return c.post(ctx, "/api/translate", map[string]string{"phrase": phrase}, &out)
	})
	if err == nil {
		out.Source = SourceNetwork
		c.translations.Add(key, out)
		return &out, nil
	}
	if isClientError(err) {
		return nil, err
	}

	if cached, ok := c.translations.Get(key); ok {
		c.log.DebugContext(ctx, "serving translation from cache", slog.String("error", err.Error()))
		cached.Source = SourceCache
		return &cached, nil
	}

	if c.fallback == nil {
		return nil, fmt.Errorf("translate %q: %w", phrase, err)
	}
	c.log.DebugContext(ctx, "serving translation from local dictionary", slog.String("error", err.Error()))

	local, lerr := c.fallback.Translate(ctx, phrase)
	if lerr != nil {
		return nil, fmt.Errorf("translate %q: %w", phrase, errors.Join(err, lerr))
	}
	return fromDomain(local), nil
}

// Suggest returns ranked suggestions for query.
func (c *Client) Suggest(ctx context.Context, query string, limit int) (*Suggestions, error) {
	if strings.TrimSpace(query) == "" {
		return &Suggestions{Terms: []string{}, Source: SourceLocal}, nil
	}
	key := fmt.Sprintf("%s\x00%d", domain.Normalize(query), limit)

	var terms []string
	err := c.call(ctx, func() error {
		params := url.Values{"query": {query}}
		if limit > 0 {
			params.Set("limit", fmt.Sprint(limit))
		}
		return c.get(ctx, "/api/suggestions?"+params.Encode(), &terms)
	})
	if err == nil {
		if terms == nil {
			terms = []string{}
		}
		c.suggestions.Add(key, terms)
		return &Suggestions{Terms: terms, Source: SourceNetwork}, nil
	}
	if isClientError(err) {
		return nil, err
	}

	if cached, ok := c.suggestions.Get(key); ok {
		return &Suggestions{Terms: cached, Source: SourceCache}, nil
	}
	if c.fallback == nil {
		return nil, fmt.Errorf("suggest %q: %w", query, err)
	}

	local, lerr := c.fallback.Suggest(ctx, query, limit)
	if lerr != nil {
		return nil, fmt.Errorf("suggest %q: %w", query, errors.Join(err, lerr))
	}
	return &Suggestions{Terms: local, Source: SourceLocal}, nil
}

// Entry returns the details of one dictionary term.
func (c *Client) Entry(ctx context.Context, term string) (*Entry, error) {
	if strings.TrimSpace(term) == "" {
		return nil, domain.NewValidationError("term", "required")
	}

	var out domain.Entry
	err := c.call(ctx, func() error {
		return c.get(ctx, "/api/entries/"+url.PathEscape(term), &out)
	})
	if err == nil {
		return &Entry{Entry: out, Source: SourceNetwork}, nil
	}
	if isClientError(err) || c.fallback == nil {
		return nil, err
	}

	local, lerr := c.fallback.Entry(ctx, term)
	if lerr != nil {
		if errors.Is(lerr, domain.ErrNotFound) {
			return nil, lerr
		}
		return nil, fmt.Errorf("entry %q: %w", term, errors.Join(err, lerr))
	}
	return &Entry{Entry: *local, Source: SourceLocal}, nil
}

// call runs fn through the circuit breaker with retries. Client errors, an
// unloaded server dictionary and an open breaker are not retried.
func (c *Client) call(ctx context.Context, fn func() error) error {
	if c.cfg.BaseURL == "" {
		return ErrOffline
	}
	return retry.Do(
		func() error {
			_, err := c.breaker.Execute(func() (interface{}, error) {
				return nil, fn()
			})
			if err != nil && !isRetryable(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.cfg.RetryAttempts+1),
		retry.Delay(c.cfg.RetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
}

func isRetryable(err error) bool {
	if isClientError(err) ||
		errors.Is(err, domain.ErrDictionaryUnavailable) ||
		errors.Is(err, gobreaker.ErrOpenState) ||
		errors.Is(err, gobreaker.ErrTooManyRequests) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

func fromDomain(t *domain.Translation) *Translation {
	alternatives := t.Alternatives
	if alternatives == nil {
		alternatives = []string{}
	}
	return &Translation{
		OriginalPhrase: t.OriginalPhrase,
		Translation:    t.DisplayText(),
		Confidence:     t.Confidence,
		Alternatives:   alternatives,
		Kind:           t.Kind.String(),
		MatchedTerm:    t.MatchedTerm,
		Source:         SourceLocal,
	}
}
