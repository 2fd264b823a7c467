package auth

import (
	"log/slog"
	"net/http"

	"github.com/partydrop/partydrop/internal/platform/httpx"
	"github.com/partydrop/partydrop/internal/shared"
)

// Middleware gates protected routes on a valid session token.
type Middleware struct {
	Sessions *shared.SessionManager
	Logger   *slog.Logger
}

// RequireAuth verifies the session cookie and attaches the decoded claims to
// the request context. A missing cookie and a failed verification both reject
// with 401, but neither path mutates the cookie: clearing a bad cookie is the
// WhoAmI handler's job, not the guard's.
func (m Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := m.Sessions.Token(r)
		if err != nil {
			httpx.RespondError(w, shared.ErrAuthRequired)
			return
		}

		claims, err := m.Sessions.Verify(raw)
		if err != nil {
			if m.Logger != nil {
				m.Logger.Debug("session verify failed", "path", r.URL.Path)
			}
			httpx.RespondError(w, shared.ErrInvalidSession)
			return
		}

		ctx := shared.ContextWithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
