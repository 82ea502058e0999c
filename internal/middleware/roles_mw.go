package middleware

import (
	"context"
	"net/http"

	"sisauth/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RoleLookup loads the role names held by a user.
type RoleLookup interface {
	RoleNames(ctx context.Context, userID int64) ([]string, error)
}

// RoleMiddleware lets the request through when the authenticated user holds
// at least one of allowedRoles.
func RoleMiddleware(lookup RoleLookup, allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		userID, ok := AuthUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized, sem permissão 401"})
			return
		}

		names, err := lookup.RoleNames(c.Request.Context(), userID)
		if err != nil {
			log.Error().Err(err).Int64("user_id", userID).Msg("role lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}

		for _, name := range names {
			if _, ok := allowed[name]; ok {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Unauthorized, sem permissão 403"})
	}
}

// AdminMiddleware allows Admin only
func AdminMiddleware(lookup RoleLookup) gin.HandlerFunc {
	return RoleMiddleware(lookup, model.RoleAdmin)
}

// StaffMiddleware allows Admin and Editor
func StaffMiddleware(lookup RoleLookup) gin.HandlerFunc {
	return RoleMiddleware(lookup, model.RoleAdmin, model.RoleEditor)
}

// AnyRoleMiddleware allows any user holding one of the known roles
func AnyRoleMiddleware(lookup RoleLookup) gin.HandlerFunc {
	return RoleMiddleware(lookup, model.RoleAdmin, model.RoleEditor, model.RoleViewer)
}
