package router

import (
	"bayaaz-server/internal/handler"
	"bayaaz-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, h *handler.UserHandler) {
	userGroup := api.Group("/user")
	userGroup.Use(middleware.JWTAuth())

	userGroup.GET("/dashboard", h.Dashboard)
	userGroup.GET("/statistics", h.Statistics)
	userGroup.GET("/search", h.Search)
	userGroup.GET("/export", h.Export)
	userGroup.POST("/import", h.Import)
	userGroup.GET("/sync", h.Sync)
	userGroup.GET("/settings", h.Settings)
	userGroup.PUT("/settings", h.UpdateSettings)
}
