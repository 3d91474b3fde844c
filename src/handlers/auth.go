package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resumevault/resume-vault/src/middleware"
	"github.com/resumevault/resume-vault/src/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles admin login and logout
type AuthHandler struct {
	sessions    *services.SessionService
	expiryHours int
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *services.SessionService, expiryHours int) *AuthHandler {
	return &AuthHandler{
		sessions:    sessions,
		expiryHours: expiryHours,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin authenticates admin credentials and issues a session token.
// Bad credentials always get the same response regardless of which part
// was wrong.
func (ah *AuthHandler) HandleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email and password are required",
		})
		return
	}

	token, err := ah.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid credentials",
			})
			return
		}
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to process login",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Login successful",
		"session_token":    token,
		"expires_in_hours": ah.expiryHours,
	})
}

// HandleLogout destroys the caller's session. Runs behind AdminAuth, so
// the token is known to be present and valid.
func (ah *AuthHandler) HandleLogout(c *gin.Context) {
	token := middleware.BearerToken(c)

	if err := ah.sessions.Logout(c.Request.Context(), token); err != nil {
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("logout failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to process logout",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
	})
}
