package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftease/shiftease-web/internal/policy"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager("test-secret-at-least-32-bytes-long!", time.Hour, false)
}

func issueCookie(t *testing.T, m *Manager, s Session) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, s))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestIssueSetsHardenedCookie(t *testing.T) {
	m := newTestManager(t)

	cookie := issueCookie(t, m, Session{Token: "bearer-abc", Role: policy.RoleAdmin, UserID: "u1"})

	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.NotEmpty(t, cookie.Value)
}

func TestVerifierRoundTrip(t *testing.T) {
	m := newTestManager(t)
	issued := Session{Token: "bearer-abc", Role: policy.RoleManager, UserID: "u42"}

	var got Session
	handler := m.Verifier()(m.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		got, err = FromContext(r.Context())
		require.NoError(t, err)
	})))

	req := httptest.NewRequest(http.MethodGet, "/employee", nil)
	req.AddCookie(issueCookie(t, m, issued))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, issued, got)
}

func TestRequireRedirectsWithoutSession(t *testing.T) {
	m := newTestManager(t)

	handler := m.Verifier()(m.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})))

	req := httptest.NewRequest(http.MethodGet, "/employee", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/?error=Please+log+in", rec.Header().Get("Location"))
}

func TestRequireRejectsTamperedCookie(t *testing.T) {
	m := newTestManager(t)
	other := NewManager("a-different-secret-32-bytes-long!!!!", time.Hour, false)

	handler := m.Verifier()(m.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})))

	req := httptest.NewRequest(http.MethodGet, "/employee", nil)
	req.AddCookie(issueCookie(t, other, Session{Token: "x", Role: policy.RoleUser, UserID: "u"}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRequireCapability(t *testing.T) {
	m := newTestManager(t)

	handler := m.Verifier()(m.RequireCapability(policy.CapShiftManage)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(issueCookie(t, m, Session{Token: "t", Role: policy.RoleUser, UserID: "u"}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(issueCookie(t, m, Session{Token: "t", Role: policy.RoleManager, UserID: "m"}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClearExpiresCookie(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	m.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
