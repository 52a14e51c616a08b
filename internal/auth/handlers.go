package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// IssueTokenRequest names the platform identity a token is minted for
type IssueTokenRequest struct {
	UserID   string `json:"user_id" binding:"required,max=64"`
	Username string `json:"username" binding:"max=128"`
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
	botKey  string
}

// NewAuthHandler creates a new authentication handler. An empty botKey disables token issuing.
func NewAuthHandler(service *AuthService, botKey string) *AuthHandler {
	return &AuthHandler{service: service, botKey: botKey}
}

// IssueToken handles POST /api/v1/auth/token
// @Summary Issue a bearer token
// @Description The chat bot mints a token for a platform user after the platform has authenticated them
// @Tags authentication
// @Accept json
// @Produce json
// @Param X-Bot-Key header string true "Shared bot key"
// @Param request body IssueTokenRequest true "Platform identity"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Invalid bot key"
// @Failure 404 {object} map[string]interface{} "Token issuing disabled"
// @Router /api/v1/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	if h.botKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "token issuing is disabled"})
		return
	}
	if subtle.ConstantTimeCompare([]byte(c.GetHeader("X-Bot-Key")), []byte(h.botKey)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid bot key"})
		return
	}

	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.service.GenerateJWT(req.UserID, req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, token)
}

// Me handles GET /api/v1/auth/me
// @Summary Current identity
// @Description Returns the identity carried by the bearer token
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	username, _ := GetUsername(c)
	c.JSON(http.StatusOK, gin.H{"user_id": userID, "username": username})
}
