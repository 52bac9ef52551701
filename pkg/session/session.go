// Package session resolves the bearer token used to call the ERP API.
//
// A Provider never performs sign-in. It only reports the current access token,
// or flags that refreshing it failed so callers can stop before going to the
// network.
package session

import (
	"context"
	"errors"
)

// ErrorRefreshToken is reported in Session.Error when the token could not be refreshed.
const ErrorRefreshToken = "RefreshTokenError"

// Session is the token state handed to the API client.
type Session struct {
	AccessToken string `json:"access_token,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Expired reports whether the session carries a refresh failure.
func (s Session) Expired() bool {
	return s.Error == ErrorRefreshToken
}

// Provider returns the current session.
type Provider interface {
	Session(ctx context.Context) (Session, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) (Session, error)

func (f ProviderFunc) Session(ctx context.Context) (Session, error) { return f(ctx) }

var ErrNoToken = errors.New("session: no access token")

// Static always returns the same token.
type Static struct {
	token string
}

// NewStatic returns a Provider for a fixed token, typically a service token from config.
func NewStatic(token string) *Static {
	return &Static{token: token}
}

func (p *Static) Session(ctx context.Context) (Session, error) {
	if p.token == "" {
		return Session{}, ErrNoToken
	}
	return Session{AccessToken: p.token}, nil
}
