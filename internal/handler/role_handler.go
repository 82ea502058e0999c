package handler

import (
	"context"
	"errors"
	"net/http"

	"sisauth/internal/model"
	"sisauth/internal/service"

	"github.com/gin-gonic/gin"
)

// RoleHandler manages role listings and assignments
type RoleHandler struct {
	service service.RoleService
}

// NewRoleHandler creates a new RoleHandler
func NewRoleHandler(s service.RoleService) *RoleHandler {
	return &RoleHandler{service: s}
}

func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.service.All(c.Request.Context())
	if err != nil {
		internalError(c, err, "failed to list roles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

func (h *RoleHandler) UserRoles(c *gin.Context) {
	userID, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	roles, err := h.service.UserRoles(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, "failed to list user roles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

func (h *RoleHandler) Assign(c *gin.Context) {
	h.change(c, h.service.Assign, "Roles assigned successfully")
}

func (h *RoleHandler) Revoke(c *gin.Context) {
	h.change(c, h.service.Revoke, "Roles revoked successfully")
}

func (h *RoleHandler) change(c *gin.Context, apply func(ctx context.Context, userID int64, ids []int64) error, okMsg string) {
	userID, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	var req model.RoleIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, http.StatusUnprocessableEntity, err)
		return
	}

	if err := apply(c.Request.Context(), userID, req.Roles); err != nil {
		h.writeError(c, err, "failed to change roles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": okMsg})
}

func (h *RoleHandler) writeError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownRole):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": gin.H{"roles": err.Error()},
		})
	default:
		internalError(c, err, msg)
	}
}

// RegisterRoleRoutes registers admin-only role routes
func (h *RoleHandler) RegisterRoleRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.GET("/roles", authMW, adminMW, h.List)
	rg.GET("/users/:id/roles", authMW, adminMW, h.UserRoles)
	rg.POST("/users/:id/assign-role", authMW, adminMW, h.Assign)
	rg.POST("/users/:id/revoke-role", authMW, adminMW, h.Revoke)
}
