// Package middleware holds the HTTP middleware shared by every route:
// panic recovery, request ids, access logging, CORS, rate limiting and
// bearer-token authentication.
package middleware

import (
	"encoding/json"
	"net/http"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// writeError writes the JSON error body used across the API.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
