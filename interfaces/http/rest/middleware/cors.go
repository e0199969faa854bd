package middleware

import (
	"net/http"
)

// Fixed CORS preflight response values. The service is origin-open by
// contract, so every OPTIONS request gets the same answer regardless of
// path or requested method.
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET,POST,PUT,DELETE,OPTIONS"
	corsAllowHeaders = "Content-Type"
)

// Preflight short-circuits every OPTIONS request with a 200, the three
// fixed CORS headers, and no body. Non-OPTIONS requests pass through.
func Preflight() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Origin", corsAllowOrigin)
				w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
				w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
