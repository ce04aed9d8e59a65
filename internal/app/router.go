package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/slang-backend/internal/config"
	"github.com/heartmarshall/slang-backend/internal/service/translator"
	"github.com/heartmarshall/slang-backend/internal/transport/middleware"
	"github.com/heartmarshall/slang-backend/internal/transport/rest"
)

// NewRouter builds the HTTP handler with all routes and middleware.
// Health probes are exempt from rate limiting. limiter may be nil.
func NewRouter(cfg *config.Config, logger *slog.Logger, svc *translator.Service, limiter *middleware.RateLimiter) http.Handler {
	translate := rest.NewTranslateHandler(svc, logger, cfg.Suggest.MaxLimit)
	health := rest.NewHealthHandler(svc, BuildVersion())

	var rateLimit middleware.Middleware
	if limiter != nil {
		rateLimit = limiter.Middleware()
	}
	limited := middleware.Chain(rateLimit)

	mux := http.NewServeMux()
	mux.Handle("POST /api/translate", limited(http.HandlerFunc(translate.Translate)))
	mux.Handle("GET /api/suggestions", limited(http.HandlerFunc(translate.Suggestions)))
	mux.Handle("GET /api/entries/{term}", limited(http.HandlerFunc(translate.Entry)))
	mux.Handle("GET /api/categories", limited(http.HandlerFunc(translate.Categories)))
	mux.HandleFunc("GET /api/health", health.Health)
	mux.HandleFunc("GET /api/ready", health.Ready)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}
