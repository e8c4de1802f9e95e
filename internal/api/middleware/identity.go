package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/api/shared"
	"github.com/wordtrail/wordtrail-api/internal/platform/logger"
)

// UserIDHeader carries the caller's user ID. Authentication lives in the
// gateway in front of this service; by the time a request reaches us the
// header is trusted and only needs to parse.
const UserIDHeader = "X-User-ID"

// IdentityMiddleware extracts the user ID from the request header and places
// it in the context under shared.UserIDContextKey. Requests without a valid
// user ID are rejected with 401.
func IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContextOrDefault(r.Context(), nil)

		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			log.Warn("missing user ID header", "path", r.URL.Path)
			shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID is required")
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil || userID == uuid.Nil {
			log.Warn("invalid user ID header", "path", r.URL.Path)
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid user ID")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
