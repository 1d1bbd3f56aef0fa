package router

import (
	"bayaaz-server/internal/handler"
	"bayaaz-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerUploadRoutes(api *gin.RouterGroup, h *handler.UploadHandler) {
	uploadGroup := api.Group("/upload")
	uploadGroup.Use(middleware.JWTAuth())

	uploadGroup.POST("/image", middleware.UploadBodyLimitMiddleware(10), h.UploadImage)
	uploadGroup.POST("/audio", middleware.UploadBodyLimitMiddleware(50), h.UploadAudio)
	uploadGroup.POST("/document", middleware.UploadBodyLimitMiddleware(20), h.UploadDocument)
	uploadGroup.GET("/file/*publicId", h.FileInfo)
	uploadGroup.DELETE("/file", h.Delete)
	uploadGroup.POST("/signature", h.Signature)
}
