package handler

import (
	"net/http"
	"strconv"

	"bayaaz-server/internal/common/httpx"
	"bayaaz-server/internal/middleware"
	"bayaaz-server/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// parseID resolves the :id path parameter; malformed ids are a 400.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func (h *CategoryHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	includeArchived := c.Query("include_archived") == "true"
	categories, err := h.categories.List(userID, includeArchived)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to list categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CategoryHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.categories.Get(userID, id)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to fetch category")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Color       string `json:"color"`
		Icon        string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category, err := h.categories.Create(userID, service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to create category")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "category created", "category": category})
}

func (h *CategoryHandler) Update(c *gin.Context) {
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
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Color       *string `json:"color"`
		Icon        *string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category, err := h.categories.Update(userID, id, service.CategoryUpdate{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to update category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category updated", "category": category})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.categories.Delete(userID, id); err != nil {
		httpx.WriteServiceError(c, err, "failed to delete category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

func (h *CategoryHandler) ToggleArchive(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.categories.ToggleArchive(userID, id)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to update category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category updated", "category": category})
}

func (h *CategoryHandler) Reorder(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req struct {
		Orders []service.CategoryOrder `json:"orders" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.categories.Reorder(userID, req.Orders); err != nil {
		httpx.WriteServiceError(c, err, "failed to reorder categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "categories reordered"})
}

func (h *CategoryHandler) Stats(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	stats, err := h.categories.Stats(userID)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to fetch category stats")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": stats})
}
