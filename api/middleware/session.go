package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mohit-1289/martx-backend/pkg/logger"
)

// SessionHeader carries the storefront session identifier. A request without
// one is assigned a fresh session, echoed back for the client to keep.
const SessionHeader = "X-Martx-Session"

func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(SessionHeader)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(SessionHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
