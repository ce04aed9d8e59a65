// Command server runs the slang translation HTTP API.
//
// Configuration is read from -config (default CONFIG_PATH, then
// ./config.yaml) and environment variables. The dictionary file is
// reloaded on change.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/slang-backend/internal/app"
)

func main() {
	configPath := flag.String("config", "", "path to config YAML (overrides CONFIG_PATH)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, *configPath); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
