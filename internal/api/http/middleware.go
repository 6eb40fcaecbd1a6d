package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/MysticHqra/Rydio/internal/domain"
	"github.com/MysticHqra/Rydio/internal/logger"
	"github.com/MysticHqra/Rydio/internal/security"

	"github.com/google/uuid"
)

type contextKey string

const (
	actorContextKey     contextKey = "actor"
	requestIDContextKey contextKey = "request_id"
)

// actorFromContext returns the authenticated caller, if any.
func actorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(domain.Actor)
	return actor, ok
}

// RequestIDMiddleware tags every request with a unique id for log correlation.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggingMiddleware logs each request with its duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		requestID, _ := r.Context().Value(requestIDContextKey).(string)
		logger.Debug("Handled request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestID)
	})
}

// AuthMiddleware validates the bearer token and stores the acting user in
// the request context. The services never look at tokens themselves; they
// receive the resolved Actor.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing or malformed authorization header"})
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
				return
			}

			actor := domain.Actor{UserID: claims.UserID, Role: claims.Role}
			ctx := context.WithValue(r.Context(), actorContextKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnlyMiddleware rejects non-admin callers before the handler runs.
func AdminOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok || !actor.IsAdmin() {
			respondJSON(w, http.StatusForbidden, errorResponse{Error: domain.ErrAccessDenied.Error()})
			return
		}
		next.ServeHTTP(w, r)
	})
}
