package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// CORS handles cross-origin requests. With no allowed hosts configured it
// stays wide open (local development); otherwise the Origin header must
// match one of the configured hosts, port ignored.
func CORS(allowedHosts []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			switch {
			case len(allowedHosts) == 0:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && isOriginAllowed(origin, allowedHosts):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "3600")

			// Handle preflight requests
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isOriginAllowed matches an Origin header value against the allowed
// hosts list, comparing hostnames case-insensitively and ignoring ports
// unless the allowed entry pins one.
func isOriginAllowed(origin string, allowedHosts []string) bool {
	parsed, err := url.Parse(origin)
	if err != nil || parsed.Host == "" {
		return false
	}

	originHost := strings.ToLower(parsed.Host)
	originHostname := strings.ToLower(parsed.Hostname())

	for _, allowed := range allowedHosts {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		if allowed == "" {
			continue
		}
		if strings.Contains(allowed, ":") {
			if originHost == allowed {
				return true
			}
			continue
		}
		if originHostname == allowed {
			return true
		}
	}

	return false
}
