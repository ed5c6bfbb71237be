// Package otp talks to the remote one-time-password service that owns
// challenge issuance and validation. We only consume challenges: check
// during account activation, then invalidate so they cannot replay.
package otp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/keyfold/authd/internal/authd/domain"
	"github.com/keyfold/authd/pkg/slogx"
)

// DefaultTimeout bounds every remote call. The service fails closed on
// timeout, so a slow OTP backend surfaces as "invalid OTP" rather than
// a hung request.
const DefaultTimeout = 5 * time.Second

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a verifier client for the service at baseURL.
// A non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type challengeRequest struct {
	Code        string `json:"code"`
	SessionCode string `json:"session_code"`
}

type checkResponse struct {
	Valid bool `json:"valid"`
}

// Check reports whether the challenge is valid according to the remote
// service. Any transport failure, non-2xx status, or malformed body is
// treated as not valid.
func (c *Client) Check(ctx context.Context, ch domain.OTPChallenge) bool {
	resp, err := c.post(ctx, "/check", ch)
	if err != nil {
		slogx.FromContext(ctx).Warn("otp check request failed", "err", err)
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slogx.FromContext(ctx).Warn("otp check rejected", "status", resp.StatusCode)
		return false
	}

	var body checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		slogx.FromContext(ctx).Warn("otp check response malformed", "err", err)
		return false
	}

	return body.Valid
}

// Invalidate consumes the challenge so it cannot be replayed. This is
// best-effort; callers log failures instead of failing the activation
// that already succeeded.
func (c *Client) Invalidate(ctx context.Context, ch domain.OTPChallenge) error {
	resp, err := c.post(ctx, "/invalidate", ch)
	if err != nil {
		return fmt.Errorf("otp: invalidate request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("otp: invalidate failed status=%d", resp.StatusCode)
	}
	return nil
}

func (c *Client) post(
	ctx context.Context,
	path string,
	ch domain.OTPChallenge,
) (*http.Response, error) {
	raw, err := json.Marshal(challengeRequest{
		Code:        ch.Code,
		SessionCode: ch.SessionCode,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL+path,
		bytes.NewReader(raw),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.HTTPClient.Do(req)
}
