package session

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	GrantRefreshToken      = "refresh_token"
	GrantClientCredentials = "client_credentials"
)

// OAuth2Config describes how to obtain tokens from the identity provider.
type OAuth2Config struct {
	Grant        string
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
	RefreshToken string
}

// TokenSource wraps an oauth2.TokenSource. A failing refresh does not surface
// as a Go error; it is reported as Session{Error: ErrorRefreshToken}.
type TokenSource struct {
	src oauth2.TokenSource
}

// NewTokenSource wraps src in a ReuseTokenSource so tokens are cached until they expire.
func NewTokenSource(src oauth2.TokenSource) *TokenSource {
	return &TokenSource{src: oauth2.ReuseTokenSource(nil, src)}
}

// NewOAuth2 builds a TokenSource for the configured grant.
func NewOAuth2(ctx context.Context, cfg OAuth2Config) *TokenSource {
	if cfg.Grant == GrantClientCredentials {
		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}
		return NewTokenSource(cc.TokenSource(ctx))
	}

	oc := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       cfg.Scopes,
		Endpoint:     oauth2.Endpoint{TokenURL: cfg.TokenURL},
	}
	return NewTokenSource(oc.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken}))
}

func (p *TokenSource) Session(ctx context.Context) (Session, error) {
	tok, err := p.src.Token()
	if err != nil {
		return Session{Error: ErrorRefreshToken}, nil
	}
	if !tok.Valid() {
		return Session{Error: ErrorRefreshToken}, nil
	}
	return Session{AccessToken: tok.AccessToken}, nil
}
