package middleware

import (
	"net/http"
	"os"
	"strings"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:5174",
	"https://empoweredvote.github.io",
}

// CORSMiddleware allows the built-in origins only.
var CORSMiddleware = CORS()

// CORS echoes the request origin back when it is on the allow-list formed by
// the built-in origins plus extra.
func CORS(extra ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(defaultOrigins)+len(extra))
	for _, o := range append(append([]string(nil), defaultOrigins...), extra...) {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			allowed[o] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin") // important for caches
				w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			}

			w.Header().Set("Access-Control-Expose-Headers", "X-Resolution, Retry-After, Cache-Control, Server-Timing")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// OriginsFromEnv splits CORS_ORIGINS on commas.
func OriginsFromEnv() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
