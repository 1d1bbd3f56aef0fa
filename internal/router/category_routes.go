package router

import (
	"bayaaz-server/internal/handler"
	"bayaaz-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerCategoryRoutes(api *gin.RouterGroup, h *handler.CategoryHandler) {
	categoryGroup := api.Group("/categories")
	categoryGroup.Use(middleware.JWTAuth())

	categoryGroup.GET("", h.List)
	categoryGroup.POST("", h.Create)
	categoryGroup.GET("/stats", h.Stats)
	categoryGroup.PUT("/reorder", h.Reorder)
	categoryGroup.GET("/:id", h.Get)
	categoryGroup.PUT("/:id", h.Update)
	categoryGroup.DELETE("/:id", h.Delete)
	categoryGroup.PATCH("/:id/archive", h.ToggleArchive)
}
