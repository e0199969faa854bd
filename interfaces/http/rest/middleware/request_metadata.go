// Package middleware contains the cross-cutting HTTP middleware: request
// metadata, CORS preflight, panic recovery, and request logging.
package middleware

import (
	"net/http"
	"time"

	"stocks-api/pkg/common"

	"github.com/google/uuid"
)

// RequestMetadata assigns every request an id and a start time before any
// other processing. An inbound X-Request-ID is honored so ids survive
// gateway hops; otherwise a UUID is generated. The id is echoed back in
// the response header and stamped into every envelope.
func RequestMetadata() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := common.WithRequestID(r.Context(), requestID)
			ctx = common.WithStartTime(ctx, time.Now())

			w.Header().Set("X-Request-ID", requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
