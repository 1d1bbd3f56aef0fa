package handler

import (
	"net/http"
	"strconv"

	"bayaaz-server/internal/common/httpx"
	"bayaaz-server/internal/middleware"
	"bayaaz-server/internal/model"
	repo "bayaaz-server/internal/repository"
	"bayaaz-server/internal/service"

	"github.com/gin-gonic/gin"
)

type LyricHandler struct {
	lyrics  *service.LyricService
	queries *service.QueryService
}

func NewLyricHandler(lyrics *service.LyricService, queries *service.QueryService) *LyricHandler {
	return &LyricHandler{lyrics: lyrics, queries: queries}
}

// lyricBody is the full single-lyric response with the category populated.
func (h *LyricHandler) lyricBody(userID uint, lyric *model.Lyric) gin.H {
	return gin.H{
		"lyric":    lyric,
		"category": h.lyrics.CategoryRef(userID, lyric.CategoryID),
	}
}

func (h *LyricHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	filter := repo.LyricFilter{
		Poet:   c.Query("poet"),
		Search: c.Query("search"),
		Status: c.Query("status"),
		SortBy: c.Query("sort_by"),
	}
	if v, err := strconv.ParseUint(c.Query("category_id"), 10, 32); err == nil {
		filter.CategoryID = uint(v)
	}
	if v, err := strconv.Atoi(c.Query("year")); err == nil {
		filter.Year = v
	}
	if v, err := strconv.ParseBool(c.Query("favorite")); err == nil {
		filter.IsFavorite = &v
	}
	if v, err := strconv.ParseBool(c.Query("pinned")); err == nil {
		filter.IsPinned = &v
	}
	if tags := c.QueryArray("tags"); len(tags) > 0 {
		filter.Tags = tags
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.queries.ListLyrics(userID, filter)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to list lyrics")
		return
	}

	// Listings never carry version history.
	for i := range result.Lyrics {
		result.Lyrics[i].Versions = nil
	}
	c.JSON(http.StatusOK, result)
}

func (h *LyricHandler) Stats(c *gin.Context) {
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

func (h *LyricHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	lyric, err := h.lyrics.Get(userID, id)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to fetch lyric")
		return
	}
	c.JSON(http.StatusOK, h.lyricBody(userID, lyric))
}

type lyricRequest struct {
	Title      string              `json:"title" binding:"required"`
	Poet       string              `json:"poet"`
	Year       int                 `json:"year"`
	Content    string              `json:"content" binding:"required"`
	CategoryID uint                `json:"category_id" binding:"required"`
	Tags       []string            `json:"tags"`
	Language   string              `json:"language"`
	Metadata   model.LyricMetadata `json:"metadata"`
	Status     string              `json:"status"`
	Visibility string              `json:"visibility"`
	IsLocked   bool                `json:"is_locked"`
	LockPin    string              `json:"lock_pin"`
}

func (h *LyricHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req lyricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	lyric, err := h.lyrics.Create(userID, service.LyricInput{
		Title:      req.Title,
		Poet:       req.Poet,
		Year:       req.Year,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		Language:   req.Language,
		Metadata:   req.Metadata,
		Status:     req.Status,
		Visibility: req.Visibility,
		IsLocked:   req.IsLocked,
		LockPin:    req.LockPin,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to create lyric")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "lyric created",
		"lyric":    lyric,
		"category": h.lyrics.CategoryRef(userID, lyric.CategoryID),
	})
}

func (h *LyricHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Title      *string              `json:"title"`
		Poet       *string              `json:"poet"`
		Year       *int                 `json:"year"`
		Content    *string              `json:"content"`
		CategoryID *uint                `json:"category_id"`
		Tags       []string             `json:"tags"`
		Language   *string              `json:"language"`
		Metadata   *model.LyricMetadata `json:"metadata"`
		Status     *string              `json:"status"`
		Visibility *string              `json:"visibility"`
		IsFavorite *bool                `json:"is_favorite"`
		IsPinned   *bool                `json:"is_pinned"`
		IsLocked   *bool                `json:"is_locked"`
		LockPin    *string              `json:"lock_pin"`
		Pin        string               `json:"pin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	lyric, err := h.lyrics.Update(userID, id, service.LyricUpdate{
		Title:      req.Title,
		Poet:       req.Poet,
		Year:       req.Year,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		Language:   req.Language,
		Metadata:   req.Metadata,
		Status:     req.Status,
		Visibility: req.Visibility,
		IsFavorite: req.IsFavorite,
		IsPinned:   req.IsPinned,
		IsLocked:   req.IsLocked,
		LockPin:    req.LockPin,
		Pin:        req.Pin,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to update lyric")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "lyric updated",
		"lyric":    lyric,
		"category": h.lyrics.CategoryRef(userID, lyric.CategoryID),
	})
}

func (h *LyricHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Pin string `json:"pin"`
	}
	// Body is optional for unlocked lyrics.
	_ = c.ShouldBindJSON(&req)

	if err := h.lyrics.Delete(userID, id, req.Pin); err != nil {
		httpx.WriteServiceError(c, err, "failed to delete lyric")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "lyric deleted"})
}

func (h *LyricHandler) ToggleFavorite(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	lyric, err := h.lyrics.ToggleFavorite(userID, id)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to update lyric")
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorite": lyric.IsFavorite})
}

func (h *LyricHandler) TogglePin(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	lyric, err := h.lyrics.TogglePin(userID, id)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to update lyric")
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_pinned": lyric.IsPinned})
}

func (h *LyricHandler) Versions(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	versions, err := h.lyrics.Versions(userID, id)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to fetch versions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"versions": versions})
}

func (h *LyricHandler) RestoreVersion(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid version index"})
		return
	}

	var req struct {
		Pin string `json:"pin"`
	}
	_ = c.ShouldBindJSON(&req)

	lyric, restoreErr := h.lyrics.RestoreVersion(userID, id, index, req.Pin)
	if restoreErr != nil {
		httpx.WriteServiceError(c, restoreErr, "failed to restore version")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "version restored", "lyric": lyric})
}
