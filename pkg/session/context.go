package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type tokenKey struct{}

// WithAccessToken attaches the caller's bearer token to ctx.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// AccessTokenFromContext returns the token attached by WithAccessToken.
func AccessTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Forward hands the dashboard user's own token to the ERP API.
//
// The signature is not verified here, the ERP API does that. The expiry claim
// is read so an expired JWT fails early as a refresh failure. Opaque
// (non-JWT) tokens are forwarded as-is.
type Forward struct {
	parser *jwt.Parser
	now    func() time.Time
}

// NewForward returns a Provider reading the token from the request context.
func NewForward() *Forward {
	return &Forward{
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

func (p *Forward) Session(ctx context.Context) (Session, error) {
	token := AccessTokenFromContext(ctx)
	if token == "" {
		return Session{}, ErrNoToken
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := p.parser.ParseUnverified(token, &claims); err != nil {
		return Session{AccessToken: token}, nil
	}
	if claims.ExpiresAt != nil && !p.now().Before(claims.ExpiresAt.Time) {
		return Session{Error: ErrorRefreshToken}, nil
	}
	return Session{AccessToken: token}, nil
}
