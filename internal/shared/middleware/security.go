package middleware

import (
	"net"
	"net/http"
	"strings"
)

// HSTS adds Strict-Transport-Security header to enforce HTTPS
func HSTS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Enforce HTTPS for 1 year, including all subdomains
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// AllowedHosts rejects requests whose Host header is not in the
// configured list, guarding against Host header spoofing behind a
// misconfigured proxy. An empty list admits everything.
func AllowedHosts(allowedHosts []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsHostAllowed(r.Host, allowedHosts) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"status":"fail","message":"Host not allowed"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsHostAllowed validates a Host header against the allowed hosts list.
// Returns true when no allowed hosts are configured.
func IsHostAllowed(host string, allowedHosts []string) bool {
	if len(allowedHosts) == 0 {
		return true
	}

	host = strings.ToLower(strings.TrimSpace(host))
	hostWithoutPort, _, err := net.SplitHostPort(host)
	if err != nil {
		hostWithoutPort = host // No port present
	}

	for _, allowed := range allowedHosts {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		allowedWithoutPort := allowed
		if idx := strings.Index(allowed, ":"); idx != -1 {
			allowedWithoutPort = allowed[:idx]
		}

		if host == allowed || hostWithoutPort == allowedWithoutPort {
			return true
		}
	}

	return false
}
