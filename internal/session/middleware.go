package session

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftease/shiftease-web/internal/policy"
)

// Verifier decodes the session cookie into the request context. It never
// rejects on its own; Require does that so the login page stays reachable.
func (m *Manager) Verifier() func(http.Handler) http.Handler {
	return jwtauth.Verify(m.tokenAuth, tokenFromCookie)
}

// Require redirects to the login page when no valid session is present.
func (m *Manager) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := FromContext(r.Context())
		if err != nil {
			http.Redirect(w, r, "/?error=Please+log+in", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), s)))
	})
}

// RequireCapability gates a route group on a single capability.
func (m *Manager) RequireCapability(capability policy.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := FromContext(r.Context())
			if err != nil {
				http.Redirect(w, r, "/?error=Please+log+in", http.StatusFound)
				return
			}
			if !s.Can(capability) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), s)))
		})
	}
}
