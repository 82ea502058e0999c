package handler

import (
	"context"
	"net/http"
	"time"

	"sisauth/internal/middleware"
	"sisauth/internal/service"
	"sisauth/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Auth      service.AuthService
	Users     service.UserService
	Addresses service.AddressService
	Roles     service.RoleService
}

// NewRouter builds the gin engine with every route and gate wired.
func NewRouter(jwtUtil *utils.JWTUtil, svc Services, db Pinger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recover(), middleware.RequestLogger(), middleware.CORS())

	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	adminMW := middleware.AdminMiddleware(svc.Roles)
	staffMW := middleware.StaffMiddleware(svc.Roles)
	anyRoleMW := middleware.AnyRoleMiddleware(svc.Roles)

	root := router.Group("")
	NewAuthHandler(svc.Auth).RegisterAuthRoutes(root, jwtAuthMW, anyRoleMW)
	NewUserHandler(svc.Users).RegisterUserRoutes(root, jwtAuthMW, staffMW)
	NewAddressHandler(svc.Addresses).RegisterAddressRoutes(root, jwtAuthMW, staffMW)
	NewRoleHandler(svc.Roles).RegisterRoleRoutes(root, jwtAuthMW, adminMW)

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("health check: database unreachable")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	return router
}
