package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"erp-admin/pkg/log"
	"erp-admin/pkg/metrics"
	"erp-admin/pkg/response"
	"erp-admin/pkg/session"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderSessionID = "X-Session-ID"

	sessionIDKey = "session_id"
	defaultTab   = "default"
	maxTabLen    = 64
)

// RequestID tags the request context with the incoming X-Request-ID or a new one.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// Auth puts the dashboard bearer token into the request context, where the
// forwarding session provider picks it up.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearer(c.GetHeader("Authorization"))
		if token == "" {
			if m.requireBearer {
				response.Unauthorized(c)
				c.Abort()
				return
			}
			c.Next()
			return
		}
		c.Request = c.Request.WithContext(session.WithAccessToken(c.Request.Context(), token))
		c.Next()
	}
}

// Session resolves which workspace serves the request. The workspace key is
// bound to the credential in use: a hash of the bearer token, or the service
// credential when no bearer is sent. X-Session-ID only tells apart tabs that
// share a credential, so a caller can never reach another token's workspace.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		tab := c.GetHeader(HeaderSessionID)
		if tab == "" {
			tab = defaultTab
		}
		if len(tab) > maxTabLen {
			tab = tab[:maxTabLen]
		}
		c.Set(sessionIDKey, credentialKey(bearer(c.GetHeader("Authorization")))+"/"+tab)
		c.Header(HeaderSessionID, tab)
		c.Next()
	}
}

// credentialKey identifies a bearer token without keeping it.
func credentialKey(token string) string {
	if token == "" {
		return "service"
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:16])
}

// SessionID returns the workspace key set by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}

// RateLimit throttles each client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		if err := m.limiter.Allow(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Metrics records every request under its route template.
func (m Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

func bearer(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
