package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/slang-backend/internal/config"
)

// exposedHeaders are readable by browser clients on cross-origin answers.
var exposedHeaders = strings.Join([]string{RequestIDHeader, "RateLimit-Limit", "RateLimit-Remaining", "Retry-After"}, ", ")

// CORS answers preflight requests itself and decorates every other answer
// for allowed origins. A "*" entry allows any origin.
func CORS(cfg config.CORSConfig) Middleware {
	allowed := make(map[string]struct{})
	for _, o := range cfg.Origins() {
		allowed[o] = struct{}{}
	}
	_, anyOrigin := allowed["*"]
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			origin := r.Header.Get("Origin")
			if _, ok := allowed[origin]; origin != "" && (ok || anyOrigin) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
			h.Set("Access-Control-Max-Age", maxAge)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
