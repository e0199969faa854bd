package middleware

import (
	"net/http"

	"stocks-api/pkg/common"
	apperrors "stocks-api/pkg/errors"

	"go.uber.org/zap"
)

// Recovery is the top-level catch-all: any panic below it is logged with
// the request id and converted to a 500 envelope. Nothing propagates to
// the transport layer.
func Recovery(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				requestID, _ := common.GetRequestID(r.Context())
				logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("requestID", requestID),
					zap.Stack("stack"),
				)

				common.RespondError(w, r, http.StatusInternalServerError,
					string(apperrors.ErrorTypeInternal), "Internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
