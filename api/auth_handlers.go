package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MarkupMedia/pagetags-go/internal/observability/logging"
	"github.com/MarkupMedia/pagetags-go/utils"
)

// AuthHandlers contains all authentication-related HTTP handlers
type AuthHandlers struct {
	jwtSecret         string
	adminPasswordHash string
	logger            *logging.ChanneledLogger
}

// NewAuthHandlers creates auth handlers with injected dependencies
func NewAuthHandlers(jwtSecret, adminPasswordHash string, logger *logging.ChanneledLogger) *AuthHandlers {
	return &AuthHandlers{
		jwtSecret:         jwtSecret,
		adminPasswordHash: adminPasswordHash,
		logger:            logger,
	}
}

// PostLogin handles POST /api/v1/auth/login - editor authentication
func (h *AuthHandlers) PostLogin(c *gin.Context) {
	var loginReq struct {
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if h.adminPasswordHash == "" || !utils.CheckPassword(loginReq.Password, h.adminPasswordHash) {
		h.logger.LogAuthOperation("login", c.ClientIP(), false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminToken(h.jwtSecret)
	if err != nil {
		h.logger.LogError(logging.ChannelAuth, "login", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}

	// HTTP-only cookie alongside the bearer token for browser editors
	c.SetCookie(
		"admin_auth", // name
		token,        // value
		86400,        // maxAge (24 hours in seconds)
		"/",          // path
		"",           // domain (empty for current domain)
		false,        // secure (set to true in production with HTTPS)
		true,         // httpOnly
	)

	h.logger.LogAuthOperation("login", c.ClientIP(), true)
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"role":   "admin",
		"token":  token,
	})
}
