package router

import (
	"bayaaz-server/internal/handler"
	"bayaaz-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerLyricRoutes(api *gin.RouterGroup, h *handler.LyricHandler) {
	lyricGroup := api.Group("/lyrics")
	lyricGroup.Use(middleware.JWTAuth())

	lyricGroup.GET("", h.List)
	lyricGroup.POST("", h.Create)
	lyricGroup.GET("/stats", h.Stats)
	lyricGroup.GET("/:id", h.Get)
	lyricGroup.PUT("/:id", h.Update)
	lyricGroup.DELETE("/:id", h.Delete)
	lyricGroup.PATCH("/:id/favorite", h.ToggleFavorite)
	lyricGroup.PATCH("/:id/pin", h.TogglePin)
	lyricGroup.GET("/:id/versions", h.Versions)
	lyricGroup.POST("/:id/versions/:index/restore", h.RestoreVersion)
}
