// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/holdview/Holdings-View-Backend/internal/api/response"
)

// contextKey is a private type for request context keys to avoid collisions.
type contextKey string

const (
	tokenKey   contextKey = "sessionToken"
	subjectKey contextKey = "sessionSubject"
)

// TokenAuth gates requests behind a fernet session token carried in the
// Authorization header as "Bearer <token>". The decrypted payload is the
// session subject (user identifier), stored in the request context together
// with the raw token so handlers can forward it to the upstream services.
//
// Missing, malformed or expired tokens get 401; the request never reaches
// the handler.
func TokenAuth(key *fernet.Key, ttl time.Duration) func(http.Handler) http.Handler {
	keys := []*fernet.Key{key}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing session token")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Malformed Authorization header")
				return
			}

			subject := fernet.VerifyAndDecrypt([]byte(token), ttl, keys)
			if subject == nil {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired session token")
				return
			}

			ctx := context.WithValue(r.Context(), tokenKey, token)
			ctx = context.WithValue(ctx, subjectKey, string(subject))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromContext returns the raw session token for forwarding upstream,
// or "" when the request was not authenticated.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// SubjectFromContext returns the authenticated session subject, or "" when
// the request was not authenticated.
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(subjectKey).(string)
	return subject
}
