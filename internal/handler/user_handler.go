package handler

import (
	"net/http"
	"strconv"
	"time"

	"bayaaz-server/internal/common/httpx"
	"bayaaz-server/internal/middleware"
	"bayaaz-server/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users   *service.UserService
	queries *service.QueryService
}

func NewUserHandler(users *service.UserService, queries *service.QueryService) *UserHandler {
	return &UserHandler{users: users, queries: queries}
}

func (h *UserHandler) Dashboard(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	dashboard, err := h.users.Dashboard(userID)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *UserHandler) Statistics(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	stats, err := h.queries.Statistics(userID)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *UserHandler) Search(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.queries.Search(userID, c.Query("q"), c.Query("scope"), c.Query("sort_by"), page, pageSize)
	if err != nil {
		httpx.WriteServiceError(c, err, "search failed")
		return
	}

	for i := range result.Lyrics {
		result.Lyrics[i].Versions = nil
	}
	c.JSON(http.StatusOK, result)
}

func (h *UserHandler) Export(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	data, err := h.users.Export(userID)
	if err != nil {
		httpx.WriteServiceError(c, err, "export failed")
		return
	}
	c.Header("Content-Disposition", "attachment; filename=bayaaz-export.json")
	c.JSON(http.StatusOK, data)
}

func (h *UserHandler) Import(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req struct {
		Strategy string             `json:"strategy"`
		Data     service.ImportData `json:"data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.users.Import(userID, req.Data, req.Strategy)
	if err != nil {
		httpx.WriteServiceError(c, err, "import failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "import finished", "result": result})
}

func (h *UserHandler) Sync(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var lastSync time.Time
	if raw := c.Query("last_sync"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "last_sync must be RFC3339"})
			return
		}
		lastSync = parsed
	}

	data, err := h.users.Sync(userID, lastSync)
	if err != nil {
		httpx.WriteServiceError(c, err, "sync failed")
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *UserHandler) Settings(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	settings, err := h.users.Settings(userID)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *UserHandler) UpdateSettings(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req struct {
		Theme         *string `json:"theme"`
		FontSize      *int    `json:"font_size"`
		AutoSync      *bool   `json:"auto_sync"`
		Notifications *bool   `json:"notifications"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	settings, err := h.users.UpdateSettings(userID, service.PreferencesUpdate{
		Theme:         req.Theme,
		FontSize:      req.FontSize,
		AutoSync:      req.AutoSync,
		Notifications: req.Notifications,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to update settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
