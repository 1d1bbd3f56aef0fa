package handler

import (
	"net/http"
	"strings"

	"bayaaz-server/internal/common/httpx"
	"bayaaz-server/internal/middleware"
	"bayaaz-server/internal/service"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	media *service.MediaService
}

func NewUploadHandler(media *service.MediaService) *UploadHandler {
	return &UploadHandler{media: media}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	h.upload(c, service.MediaKindImage)
}

func (h *UploadHandler) UploadAudio(c *gin.Context) {
	h.upload(c, service.MediaKindAudio)
}

func (h *UploadHandler) UploadDocument(c *gin.Context) {
	h.upload(c, service.MediaKindDocument)
}

func (h *UploadHandler) upload(c *gin.Context, kind string) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	attachment, err := h.media.Upload(c.Request.Context(), userID, kind, fileHeader.Filename, mimeType, fileHeader.Size, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "upload failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "upload successful", "attachment": attachment})
}

func (h *UploadHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req struct {
		PublicID string `json:"public_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.media.Delete(c.Request.Context(), userID, req.PublicID); err != nil {
		httpx.WriteServiceError(c, err, "failed to delete file")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}

// FileInfo reports metadata for a stored object. The public id contains
// slashes, so the route binds it as a wildcard.
func (h *UploadHandler) FileInfo(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	publicID := strings.TrimPrefix(c.Param("publicId"), "/")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "public id is required"})
		return
	}

	info, err := h.media.Stat(c.Request.Context(), userID, publicID)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to fetch file info")
		return
	}
	c.JSON(http.StatusOK, gin.H{"file": info})
}

// Signature hands out a presigned direct-upload URL so large files skip the
// API server.
func (h *UploadHandler) Signature(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req struct {
		Kind     string `json:"kind" binding:"required"`
		FileName string `json:"file_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	publicID, url, err := h.media.PresignUpload(c.Request.Context(), userID, req.Kind, req.FileName)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to sign upload")
		return
	}
	c.JSON(http.StatusOK, gin.H{"public_id": publicID, "upload_url": url})
}
