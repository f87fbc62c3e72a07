package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shiftease/shiftease-web/internal/config"
	"github.com/shiftease/shiftease-web/internal/session"
)

// Client talks to the scheduling API. One instance is shared by all
// entity gateways; per-request authentication comes from the session in
// the request context.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.APIConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// StatusError is a non-2xx API response. Message carries whichever of
// the API's "error" or "message" fields was set.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api responded %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("api responded %d", e.Code)
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do issues a JSON request and decodes the response into out (which may
// be nil). The session's backend token, when present in ctx, is sent as
// a bearer credential.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if sess, err := session.FromContext(ctx); err == nil && sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload apiError
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		msg := payload.Error
		if msg == "" {
			msg = payload.Message
		}
		return &StatusError{Code: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// statusIs reports whether err is a StatusError with the given code.
func statusIs(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
