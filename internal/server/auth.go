package server

import (
	"crypto/subtle"
	"net/http"
)

// SecretHeader carries the shared secret set by the webhook source.
const SecretHeader = "x-webhook-secret"

// SecretMiddleware wraps an http.Handler and checks the x-webhook-secret
// header against the configured secret. When secret is empty the check is
// disabled and all requests pass through. GET /healthz is always exempt.
func SecretMiddleware(secret string, next http.Handler) http.Handler {
	if secret == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Exempt health check.
		if r.Method == http.MethodGet && r.URL.Path == "/healthz" {
			next.ServeHTTP(w, r)
			return
		}

		provided := r.Header.Get(SecretHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			writeText(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}
