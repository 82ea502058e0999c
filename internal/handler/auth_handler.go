package handler

import (
	"errors"
	"net/http"

	"sisauth/internal/middleware"
	"sisauth/internal/model"
	"sisauth/internal/service"
	"sisauth/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func tokenBody(user *model.User, token utils.Token) gin.H {
	return gin.H{
		"access_token": token.Value,
		"token_type":   "bearer",
		"expires_in":   token.ExpiresIn,
		"user":         user,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, http.StatusUnprocessableEntity, err)
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		internalError(c, err, "login failed")
		return
	}

	c.JSON(http.StatusOK, tokenBody(user, token))
}

// Logout only acknowledges; tokens stay valid until they expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, _ := middleware.AuthUserID(c)
	log.Info().Int64("user_id", userID).Msg("user signed out")
	c.JSON(http.StatusOK, gin.H{"message": "User successfully signed out"})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	raw, ok := middleware.AuthToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	user, token, err := h.service.Refresh(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidToken) || errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
			return
		}
		internalError(c, err, "token refresh failed")
		return
	}

	c.JSON(http.StatusOK, tokenBody(user, token))
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID, _ := middleware.AuthUserID(c)

	user, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
			return
		}
		internalError(c, err, "profile lookup failed")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, _ := middleware.AuthUserID(c)

	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, http.StatusBadRequest, err)
		return
	}

	user, err := h.service.ChangePassword(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailMismatch), errors.Is(err, service.ErrOldPasswordMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		default:
			internalError(c, err, "password change failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User successfully changed password",
		"user":    user,
	})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW, anyRoleMW gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", authMW, h.Logout)
		authGroup.POST("/refresh", authMW, h.Refresh)
		authGroup.GET("/profile", authMW, anyRoleMW, h.Profile)
		authGroup.POST("/change-password", authMW, anyRoleMW, h.ChangePassword)
	}
}
