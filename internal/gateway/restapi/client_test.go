package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftease/shiftease-web/internal/config"
	"github.com/shiftease/shiftease-web/internal/policy"
	"github.com/shiftease/shiftease-web/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.APIConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
}

func authedContext(token string) context.Context {
	return session.NewContext(context.Background(), session.Session{
		Token:  token,
		Role:   policy.RoleAdmin,
		UserID: "u1",
	})
}

func TestDoSendsBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))

	var out map[string]any
	err := client.do(authedContext("backend-token"), http.MethodGet, "/api/users", nil, &out)

	require.NoError(t, err)
	assert.Equal(t, "Bearer backend-token", gotAuth)
}

func TestDoOmitsBearerWithoutSession(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))

	err := client.do(context.Background(), http.MethodGet, "/api/users", nil, nil)

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestDoDecodesErrorBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "nope"})
	}))

	err := client.do(context.Background(), http.MethodGet, "/api/shifts/week/2024-06-03", nil, nil)

	require.Error(t, err)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusForbidden, se.Code)
	assert.Equal(t, "nope", se.Message)
}

func TestDoEncodesBody(t *testing.T) {
	var gotBody map[string]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
	}))

	err := client.do(context.Background(), http.MethodPost, "/api/shifts", map[string]string{"date": "2024-06-03"}, nil)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"date": "2024-06-03"}, gotBody)
}
