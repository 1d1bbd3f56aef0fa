package service

import (
	"errors"
	"strings"

	"bayaaz-server/internal/common"
	"bayaaz-server/internal/model"
	repo "bayaaz-server/internal/repository"
	"bayaaz-server/internal/utils"

	"gorm.io/gorm"
)

// defaultCategories are seeded for every new user, order 0..5. They can
// never be renamed, deleted or archived.
var defaultCategories = []model.Category{
	{Name: "Nauha", Description: "Mourning poetry for Imam Hussain", Color: "#1f2937", Icon: "heart", IsDefault: true},
	{Name: "Salaam", Description: "Salutations to Ahlul Bayt", Color: "#059669", Icon: "pray", IsDefault: true},
	{Name: "Manqabat", Description: "Praise poetry for saints", Color: "#7c3aed", Icon: "star", IsDefault: true},
	{Name: "Marsiya", Description: "Elegy poetry", Color: "#dc2626", Icon: "cloud", IsDefault: true},
	{Name: "Qasida", Description: "Classical poetry form", Color: "#ea580c", Icon: "scroll", IsDefault: true},
	{Name: "Poetry", Description: "General poetry", Color: "#0891b2", Icon: "feather", IsDefault: true},
}

// CreateDefaultCategories seeds the six fixed categories at registration. The
// batch insert gives whatever atomicity the store gives; a mid-way failure is
// surfaced to the caller.
func (s *CategoryService) CreateDefaultCategories(userID uint) error {
	categories := make([]model.Category, len(defaultCategories))
	for i, cat := range defaultCategories {
		cat.UserID = userID
		cat.Order = i
		categories[i] = cat
	}
	return s.categories.BatchInsert(categories)
}

func (s *CategoryService) List(userID uint, includeArchived bool) ([]model.Category, error) {
	categories, err := s.categories.List(userID, includeArchived)
	if err != nil {
		return nil, common.NewInternalError("failed to fetch categories")
	}
	return categories, nil
}

func (s *CategoryService) Get(userID, id uint) (*model.Category, error) {
	category, err := s.categories.FindByID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("category not found")
		}
		return nil, common.NewInternalError("failed to fetch category")
	}
	return category, nil
}

type CategoryInput struct {
	Name        string
	Description string
	Color       string
	Icon        string
}

func (s *CategoryService) Create(userID uint, input CategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > 50 {
		return nil, common.NewValidationError("category name must be between 1 and 50 characters")
	}
	if input.Color != "" && !utils.ValidateColor(input.Color) {
		return nil, common.NewValidationError("invalid color format")
	}

	exists, err := s.categories.NameExists(userID, name, nil)
	if err != nil {
		return nil, common.NewInternalError("failed to check category name")
	}
	if exists {
		return nil, common.NewConflictError("category with this name already exists")
	}

	maxOrder, err := s.categories.MaxOrder(userID)
	if err != nil {
		return nil, common.NewInternalError("failed to compute category order")
	}

	category := &model.Category{
		Name:        name,
		Description: input.Description,
		Color:       input.Color,
		Icon:        input.Icon,
		UserID:      userID,
		Order:       maxOrder + 1,
	}
	if err := s.categories.Create(category); err != nil {
		return nil, common.NewInternalError("failed to create category")
	}
	return category, nil
}

type CategoryUpdate struct {
	Name        *string
	Description *string
	Color       *string
	Icon        *string
	Order       *int
}

func (s *CategoryService) Update(userID, id uint, update CategoryUpdate) (*model.Category, error) {
	category, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	if category.IsDefault {
		return nil, common.NewForbiddenError("cannot edit default categories")
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" || len(name) > 50 {
			return nil, common.NewValidationError("category name must be between 1 and 50 characters")
		}
		if name != category.Name {
			exists, err := s.categories.NameExists(userID, name, &id)
			if err != nil {
				return nil, common.NewInternalError("failed to check category name")
			}
			if exists {
				return nil, common.NewConflictError("category with this name already exists")
			}
		}
		category.Name = name
	}
	if update.Description != nil {
		category.Description = *update.Description
	}
	if update.Color != nil {
		if !utils.ValidateColor(*update.Color) {
			return nil, common.NewValidationError("invalid color format")
		}
		category.Color = *update.Color
	}
	if update.Icon != nil {
		category.Icon = *update.Icon
	}
	if update.Order != nil {
		category.Order = *update.Order
	}

	if err := s.categories.Save(category); err != nil {
		return nil, common.NewInternalError("failed to update category")
	}
	return category, nil
}

func (s *CategoryService) Delete(userID, id uint) error {
	category, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	if category.IsDefault {
		return common.NewForbiddenError("cannot delete default categories")
	}

	lyricsCount, err := s.lyricCounter.CountByCategory(userID, id)
	if err != nil {
		return common.NewInternalError("failed to count lyrics in category")
	}
	if lyricsCount > 0 {
		return common.NewServiceErrorWithDetails(common.ErrorCodeConflict,
			"cannot delete category that contains lyrics, move or delete the lyrics first",
			map[string]interface{}{"lyrics_count": lyricsCount})
	}

	if err := s.categories.Delete(userID, id); err != nil {
		return common.NewInternalError("failed to delete category")
	}
	return nil
}

func (s *CategoryService) ToggleArchive(userID, id uint) (*model.Category, error) {
	category, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	if category.IsDefault {
		return nil, common.NewForbiddenError("cannot archive default categories")
	}

	category.IsArchived = !category.IsArchived
	if err := s.categories.Save(category); err != nil {
		return nil, common.NewInternalError("failed to update category")
	}
	return category, nil
}

type CategoryOrder struct {
	CategoryID uint `json:"category_id"`
	Order      int  `json:"order"`
}

// Reorder verifies that the requested set resolves exactly to categories the
// user owns (size match, not per-id diffing) and then applies the updates as
// a best-effort batch.
func (s *CategoryService) Reorder(userID uint, orders []CategoryOrder) error {
	if len(orders) == 0 {
		return common.NewValidationError("category orders must be a non-empty list")
	}

	ids := make([]uint, 0, len(orders))
	updates := make(map[uint]int, len(orders))
	for _, item := range orders {
		if item.CategoryID == 0 {
			return common.NewValidationError("invalid category id in the list")
		}
		ids = append(ids, item.CategoryID)
		updates[item.CategoryID] = item.Order
	}

	owned, err := s.categories.FindByIDs(userID, ids)
	if err != nil {
		return common.NewInternalError("failed to resolve categories")
	}
	if len(owned) != len(ids) {
		return common.NewNotFoundError("one or more categories not found")
	}

	if err := s.categories.UpdateOrders(userID, updates); err != nil {
		return common.NewInternalError("failed to reorder categories")
	}
	return nil
}

func (s *CategoryService) CountForUser(userID uint) (int64, error) {
	return s.categories.CountByUser(userID)
}

func (s *CategoryService) Stats(userID uint) ([]repo.CategoryStatsRow, error) {
	rows, err := s.categories.Stats(userID)
	if err != nil {
		return nil, common.NewInternalError("failed to fetch category statistics")
	}
	return rows, nil
}
