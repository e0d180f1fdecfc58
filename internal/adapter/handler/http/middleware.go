package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
)

const (
	authorizationHeaderKey = "authorization"
	authorizationType      = "bearer"
	serviceKeyHeader       = "X-Service-Key"

	// authenticatedKey marks a request the filter has already seen.
	authenticatedKey = "authentication_applied"
)

// Authenticate resolves a bearer token into an identity on the request context.
// It never aborts: requests without a valid token continue unauthenticated and
// protected routes reject them through RequireAuth or RequireRole.
func Authenticate(tokens ports.TokenService, logger ports.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, seen := c.Get(authenticatedKey); seen {
			c.Next()
			return
		}
		c.Set(authenticatedKey, true)

		ctx := c.Request.Context()
		if _, ok := domain.IdentityFromContext(ctx); ok {
			c.Next()
			return
		}

		accessToken, ok := bearerToken(c.GetHeader(authorizationHeaderKey))
		if !ok {
			c.Next()
			return
		}

		payload, err := tokens.VerifyToken(accessToken)
		if err != nil {
			reason := "unknown"
			var tokenErr *domain.TokenError
			if errors.As(err, &tokenErr) {
				reason = tokenErr.Kind.String()
			}
			logger.DebugContext(ctx, "Bearer token rejected", map[string]interface{}{
				"reason": reason,
				"path":   c.Request.URL.Path,
			})
			c.Next()
			return
		}

		roles := make([]domain.UserRole, len(payload.Roles))
		copy(roles, payload.Roles)
		c.Request = c.Request.WithContext(domain.WithIdentity(ctx, &domain.Identity{
			Subject: payload.Subject,
			Roles:   roles,
		}))
		c.Next()
	}
}

// bearerToken extracts the credential of a "Bearer <token>" header value.
func bearerToken(header string) (string, bool) {
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return "", false
	}
	if strings.ToLower(fields[0]) != authorizationType {
		return "", false
	}
	return fields[1], true
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := getIdentity(c); !ok {
			newErrorResponse(c, http.StatusUnauthorized, "Authorization required")
			return
		}
		c.Next()
	}
}

func RequireRole(role domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := getIdentity(c)
		if !ok {
			newErrorResponse(c, http.StatusUnauthorized, "Authorization required")
			return
		}
		if !id.HasRole(role) {
			newErrorResponse(c, http.StatusForbidden, "Access denied")
			return
		}
		c.Next()
	}
}

// RequireServiceKey guards internal endpoints. An empty key disables the check.
func RequireServiceKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		got := c.GetHeader(serviceKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid service key")
			return
		}
		c.Next()
	}
}

func RequestLogger(logger ports.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if id, ok := getIdentity(c); ok {
			fields["subject"] = domain.MaskEmail(id.Subject)
		}

		ctx := c.Request.Context()
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.ErrorContext(ctx, "HTTP request", fields)
		case c.Writer.Status() >= http.StatusBadRequest:
			logger.WarnContext(ctx, "HTTP request", fields)
		default:
			logger.InfoContext(ctx, "HTTP request", fields)
		}
	}
}
