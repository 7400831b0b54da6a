package middleware

import (
	"context"
	"net/http"
	"strings"

	"quora-backend/backend/app/apperr"
)

type ctxKey int

const tokenKey ctxKey = 1

// RequireToken pulls the bearer token out of the authorization header and
// stows it in the request context. The stored-session check happens later in
// the Authorizer; a missing header is rejected here.
func RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("authorization")
		if authz == "" {
			apperr.Write(w, apperr.ErrUnauthenticated)
			return
		}
		// Clients send either the raw access token or "Bearer <token>".
		token := strings.TrimPrefix(authz, "Bearer ")
		ctx := context.WithValue(r.Context(), tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
