package cmd

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/slang-backend/internal/adapter/dictfile"
	"github.com/heartmarshall/slang-backend/internal/app"
	"github.com/heartmarshall/slang-backend/internal/config"
	"github.com/heartmarshall/slang-backend/internal/service/translator"
	"github.com/heartmarshall/slang-backend/pkg/client"
)

type options struct {
	dictionary string
	server     string
	verbose    bool
	json       bool
	noColor    bool
}

// lookup is what the subcommands need from the client.
type lookup interface {
	Translate(ctx context.Context, phrase string) (*client.Translation, error)
	Suggest(ctx context.Context, query string, limit int) (*client.Suggestions, error)
	Entry(ctx context.Context, term string) (*client.Entry, error)
}

// NewRootCmd builds the slang command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "slang",
		Short:         "Translate Mumbai slang to English",
		Long:          "Look up Mumbai slang terms on a slang server, falling back to the local dictionary file when the server is unreachable.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.dictionary, "dictionary", "d", envOr("SLANG_DICTIONARY", "./data/slang_dictionary.json"), "local dictionary file used offline")
	flags.StringVarP(&opts.server, "server", "s", os.Getenv("SLANG_SERVER"), "slang server URL, e.g. http://localhost:5000")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log client activity to stderr")
	flags.BoolVar(&opts.json, "json", false, "print results as JSON")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newTranslateCmd(opts))
	root.AddCommand(newSuggestCmd(opts))
	root.AddCommand(newEntryCmd(opts))

	return root
}

// newLookup wires the API client with the local dictionary as fallback.
// A dictionary that cannot be loaded only disables the fallback.
func newLookup(ctx context.Context, opts *options) lookup {
	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	logger := app.NewLoggerTo(os.Stderr, config.LogConfig{Level: level, Format: "text"})

	var fallback client.Fallback
	store := dictfile.NewStore(logger, opts.dictionary)
	if err := store.Reload(ctx); err == nil {
		fallback = translator.NewService(logger, store)
	}

	return client.New(logger, client.DefaultConfig(opts.server), fallback)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
