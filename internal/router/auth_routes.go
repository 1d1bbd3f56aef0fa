package router

import (
	"bayaaz-server/internal/handler"
	"bayaaz-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *handler.AuthHandler) {
	api.POST("/auth/register", authLimiter, h.Register)
	api.POST("/auth/login", authLimiter, h.Login)

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.JWTAuth())

	authGroup.GET("/me", h.Me)
	authGroup.POST("/refresh", h.RefreshToken)
	authGroup.PUT("/profile", h.UpdateProfile)
	authGroup.PUT("/preferences", h.UpdatePreferences)
	authGroup.PUT("/password", h.ChangePassword)
	authGroup.PUT("/email", h.ChangeEmail)
	authGroup.DELETE("/account", h.DeleteAccount)
}
