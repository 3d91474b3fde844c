package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/resumevault/resume-vault/src/models"
	"github.com/rs/zerolog/log"
)

// SessionVerifier resolves a bearer token to an admin identity. A nil
// identity with nil error means the token is unknown or expired.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*models.SessionIdentity, error)
}

// AdminAuth guards admin routes with bearer session tokens. On success
// the admin id and email are stored in the request context.
func AdminAuth(sessions SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Missing or invalid authorization header",
			})
			c.Abort()
			return
		}

		ident, err := sessions.Verify(c.Request.Context(), token)
		if err != nil {
			log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("session verification failed")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to verify session",
			})
			c.Abort()
			return
		}
		if ident == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
			})
			c.Abort()
			return
		}

		c.Set("admin_id", ident.AdminID.String())
		c.Set("admin_email", ident.AdminEmail)
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header, or ""
// when the header is missing or not a Bearer scheme.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return ""
	}
	return parts[1]
}
