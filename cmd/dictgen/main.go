// Command dictgen turns a plain slang dictionary into the extended format
// with categories, cultural context and examples. It runs offline, not as
// part of the server.
//
// Flags:
//
//	--source          source dictionary (.json or .msgpack)
//	--output          output file; the extension selects JSON or msgpack
//	--categories      category mapping YAML (default: built-in Mumbai mapping)
//	--dictgen-config  path to dictgen YAML config file
//	--dry-run         build the dictionary without writing it
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sort"

	"github.com/heartmarshall/slang-backend/internal/app"
	"github.com/heartmarshall/slang-backend/internal/app/dictgen"
	"github.com/heartmarshall/slang-backend/internal/config"
)

func main() {
	sourceFlag := flag.String("source", "", "source dictionary path")
	outputFlag := flag.String("output", "", "output dictionary path (.json or .msgpack)")
	categoriesFlag := flag.String("categories", "", "category mapping YAML")
	configFlag := flag.String("dictgen-config", "", "path to dictgen YAML config file")
	dryRunFlag := flag.Bool("dry-run", false, "build without writing the output")
	flag.Parse()

	// App config only provides logging settings here.
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)
	logger.Info("dictgen starting", slog.String("build", app.BuildVersion()))

	cfg, err := dictgen.LoadConfig(*configFlag)
	if err != nil {
		logger.Error("load dictgen config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *sourceFlag != "" {
		cfg.SourcePath = *sourceFlag
	}
	if *outputFlag != "" {
		cfg.OutputPath = *outputFlag
	}
	if *categoriesFlag != "" {
		cfg.CategoriesPath = *categoriesFlag
	}
	if *dryRunFlag {
		cfg.DryRun = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := dictgen.NewPipeline(logger, *cfg).Run(ctx)
	if err != nil {
		logger.Error("dictgen failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slugs := make([]string, 0, len(res.ByCategory))
	for slug := range res.ByCategory {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	for _, slug := range slugs {
		logger.Info("category", slog.String("slug", slug), slog.Int("entries", res.ByCategory[slug]))
	}
}
