package auth

import (
	"context"
	"net/http"
)

type contextKey string

const sessionKey contextKey = "admin_session"

// AdminFromContext returns the authenticated admin's session, if any.
func AdminFromContext(ctx context.Context) (Session, bool) {
	v, ok := ctx.Value(sessionKey).(Session)
	return v, ok
}

// WithSession sets the admin session on the context.
func WithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// LoginPath is where unauthenticated dashboard requests are sent.
const LoginPath = "/auth/login"

// RequireAdmin gates protected routes. Requests without a valid session are
// redirected to the login page; this is control flow, not an error, and no
// downstream handler runs.
func RequireAdmin(sessions *MemoryStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			sess, ok := sessions.Get(cookie.Value)
			if !ok {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			ctx := WithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
