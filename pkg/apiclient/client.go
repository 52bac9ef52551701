// Package apiclient is the HTTP adapter every ERP action goes through.
//
// It resolves the bearer token from a session.Provider, sends JSON and turns
// failed responses into *AuthenticationError or *RequestError. It never
// retries and never validates the shape of a successful body.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"erp-admin/pkg/log"
	"erp-admin/pkg/metrics"
	"erp-admin/pkg/session"
)

// Requester is the contract actions depend on. *Client implements it.
type Requester interface {
	Request(ctx context.Context, path string, opt Options, out any) error
}

// Options describes one call. Method defaults to GET.
// Body may be nil, []byte / json.RawMessage (sent verbatim) or any JSON-marshalable value.
type Options struct {
	Method  string
	Body    any
	Headers map[string]string
}

// Config holds client configuration.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RatePerSec float64 // 0 disables outbound throttling
	Burst      int
	HTTPClient *http.Client
}

// Client is the ERP REST API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   session.Provider
	limiter    *rate.Limiter
	l          log.Logger
}

// New creates a new ERP API client.
func New(cfg Config, sessions session.Provider, l log.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("apiclient: base URL is required")
	}
	if sessions == nil {
		return nil, errors.New("apiclient: session provider is required")
	}
	if l == nil {
		return nil, errors.New("apiclient: logger is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if cfg.RatePerSec > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), burst)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		sessions:   sessions,
		limiter:    limiter,
		l:          l,
	}, nil
}

// Request sends one call to path (relative to the base URL) and decodes the
// JSON answer into out. out may be nil when the caller does not need the body.
func (c *Client) Request(ctx context.Context, path string, opt Options, out any) error {
	sess, err := Authorize(ctx, c.sessions)
	if err != nil {
		return err
	}

	method := opt.Method
	if method == "" {
		method = http.MethodGet
	}
	url := c.baseURL + path

	body, err := encodeBody(opt.Body)
	if err != nil {
		return fmt.Errorf("apiclient: failed to marshal %s %s body: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("apiclient: failed to build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	for k, v := range opt.Headers {
		req.Header.Set(k, v)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("apiclient: rate limiter: %w", err)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(method, 0, time.Since(start))
		return fmt.Errorf("apiclient: failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	metrics.ObserveUpstream(method, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("apiclient: failed to read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.failure(ctx, method, url, resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("apiclient: failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// Authorize resolves the current session and rejects it the way Request does:
// a provider error, a refresh failure or an empty token is an
// *AuthenticationError.
func Authorize(ctx context.Context, sessions session.Provider) (session.Session, error) {
	sess, err := sessions.Session(ctx)
	if err != nil {
		return session.Session{}, &AuthenticationError{Reason: "session unavailable", Err: err}
	}
	if sess.Expired() {
		return session.Session{}, &AuthenticationError{Reason: "token refresh failed"}
	}
	if sess.AccessToken == "" {
		return session.Session{}, &AuthenticationError{Reason: "no access token"}
	}
	return sess, nil
}

func (c *Client) failure(ctx context.Context, method, url string, status int, raw []byte) error {
	if status == http.StatusUnauthorized {
		c.l.Warnf(ctx, "apiclient: %s %s -> %d: unauthorized", method, url, status)
		return &AuthenticationError{Reason: "ERP API answered 401"}
	}

	msg, code := extractMessage(status, raw)
	c.l.Warnf(ctx, "apiclient: %s %s -> %d: %s", method, url, status, msg)
	return &RequestError{Status: status, Code: code, Message: msg}
}

func encodeBody(body any) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		return bytes.NewReader(b), nil
	case []byte:
		return bytes.NewReader(b), nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	}
}

// Do is Request with the result returned by value.
func Do[T any](ctx context.Context, r Requester, path string, opt Options) (T, error) {
	var out T
	if err := r.Request(ctx, path, opt, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
