package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/shiftease/shiftease-web/internal/policy"
)

const CookieName = "shiftease_session"

var (
	ErrNoSession      = errors.New("no active session")
	ErrInvalidSession = errors.New("invalid session")
)

// Session is the application session established after a successful backend
// login: the backend bearer token plus the identity claims the UI needs.
// It replaces ad-hoc browser-side storage of token/role/userId.
type Session struct {
	Token  string
	Role   policy.Role
	UserID string
}

func (s Session) Can(capability policy.Capability) bool {
	return policy.Can(s.Role, capability)
}

// Manager signs sessions into an HS256 cookie and reads them back.
type Manager struct {
	tokenAuth *jwtauth.JWTAuth
	ttl       time.Duration
	secure    bool
}

func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		tokenAuth: jwtauth.New("HS256", []byte(secret), nil, jwt.WithAcceptableSkew(30*time.Second)),
		ttl:       ttl,
		secure:    secure,
	}
}

func (m *Manager) JWTAuth() *jwtauth.JWTAuth {
	return m.tokenAuth
}

// Issue establishes a session cookie on the response.
func (m *Manager) Issue(w http.ResponseWriter, s Session) error {
	expiresAt := time.Now().Add(m.ttl)

	_, tokenString, err := m.tokenAuth.Encode(map[string]interface{}{
		"token":   s.Token,
		"role":    string(s.Role),
		"user_id": s.UserID,
		"exp":     expiresAt.Unix(),
	})
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tokenString,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear tears the session down on logout.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

type ctxKey struct{}

// NewContext attaches an already-decoded session, bypassing cookie
// verification. Used by the middleware after Verify and by tests.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session placed in ctx by NewContext, falling
// back to the claims decoded by the Verifier middleware.
func FromContext(ctx context.Context) (Session, error) {
	if s, ok := ctx.Value(ctxKey{}).(Session); ok {
		return s, nil
	}

	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Session{}, ErrNoSession
	}
	if token == nil {
		return Session{}, ErrNoSession
	}

	bearer, ok := claims["token"].(string)
	if !ok || bearer == "" {
		return Session{}, ErrInvalidSession
	}
	role, ok := claims["role"].(string)
	if !ok {
		return Session{}, ErrInvalidSession
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return Session{}, ErrInvalidSession
	}

	return Session{
		Token:  bearer,
		Role:   policy.ParseRole(role),
		UserID: userID,
	}, nil
}

// tokenFromCookie feeds the session cookie into the jwtauth verifier.
func tokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
