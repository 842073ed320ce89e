package middleware

import (
	"context"
	"net/http"

	"activities-service/internal/session"
)

// unexported, collision-proof context key
type usernameContextKeyType struct{}

var usernameKey = usernameContextKeyType{}

// UsernameFromContext extracts the authenticated teacher from context.
func UsernameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(usernameKey).(string)
	return name, ok
}

type AuthMiddleware struct {
	Store session.Store
}

func NewAuthMiddleware(store session.Store) *AuthMiddleware {
	return &AuthMiddleware{Store: store}
}

// RequireAuth gates mutating routes. It is a read-only check: no
// session state changes here, and no expiry either since the registry
// keeps sessions until logout.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read session cookie
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			unauthorized(w)
			return
		}

		// 2. Load session
		sess, err := a.Store.Get(r.Context(), cookie.Value)
		if err != nil || sess == nil {
			unauthorized(w)
			return
		}

		// 3. Attach username to context
		ctx := context.WithValue(r.Context(), usernameKey, sess.Username)

		// 4. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"detail":"Authentication required"}`))
}
