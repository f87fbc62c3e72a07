package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shiftease/shiftease-web/internal/domain/auth"
)

type AuthGateway struct {
	client *Client
}

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// Login authenticates against the API. Unlike every other call this one
// carries no bearer token, and a 4xx response still has a meaningful
// body: the field/message pair the form should surface.
func (g *AuthGateway) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResult, error) {
	buf, err := json.Marshal(req)
	if err != nil {
		return auth.LoginResult{}, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.client.baseURL+"/api/auth/login", bytes.NewReader(buf))
	if err != nil {
		return auth.LoginResult{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.http.Do(httpReq)
	if err != nil {
		return auth.LoginResult{}, auth.ErrBackendUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return auth.LoginResult{}, auth.ErrBackendUnavailable
	}

	var result auth.LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return auth.LoginResult{}, fmt.Errorf("decode response: %w", err)
	}

	if !result.Success {
		if result.Field != "" {
			return result, &auth.FieldError{Field: result.Field, Message: result.Message}
		}
		return result, auth.ErrInvalidCredentials
	}

	return result, nil
}
