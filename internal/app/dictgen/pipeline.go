package dictgen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/slang-backend/internal/adapter/dictfile"
)

// Results summarizes one generation run.
type Results struct {
	Entries    int
	ByCategory map[string]int
	Output     string
	Written    bool
	Duration   time.Duration
}

// Pipeline reads a source dictionary, enriches it and writes the result.
type Pipeline struct {
	log *slog.Logger
	cfg Config
	now func() time.Time
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, cfg Config) *Pipeline {
	return &Pipeline{log: log, cfg: cfg, now: time.Now}
}

// Run executes the pipeline. In dry-run mode nothing is written.
func (p *Pipeline) Run(ctx context.Context) (*Results, error) {
	start := p.now()

	mapping, err := LoadMapping(p.cfg.CategoriesPath)
	if err != nil {
		return nil, fmt.Errorf("load mapping: %w", err)
	}

	src, err := dictfile.ReadFile(p.cfg.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	p.log.Info("source loaded",
		slog.String("path", p.cfg.SourcePath),
		slog.Int("entries", len(src.Entries)),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lastUpdated := p.cfg.LastUpdated
	if lastUpdated == "" {
		lastUpdated = start.Format(time.DateOnly)
	}
	out := Enrich(src, mapping, MetadataOptions{
		Version:     p.cfg.Version,
		LastUpdated: lastUpdated,
		Description: p.cfg.Description,
	})

	res := &Results{
		Entries:    len(out.Entries),
		ByCategory: make(map[string]int),
		Output:     p.cfg.OutputPath,
	}
	for _, e := range out.Entries {
		res.ByCategory[e.Category]++
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("generated dictionary: %w", err)
	}

	if p.cfg.DryRun {
		p.log.Info("dry run, output not written", slog.String("output", p.cfg.OutputPath))
	} else {
		if err := dictfile.WriteFile(p.cfg.OutputPath, out); err != nil {
			return nil, fmt.Errorf("write output: %w", err)
		}
		res.Written = true
	}

	res.Duration = time.Since(start)
	p.log.Info("dictionary generated",
		slog.String("output", p.cfg.OutputPath),
		slog.Int("entries", res.Entries),
		slog.Int("categories", len(res.ByCategory)),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}
