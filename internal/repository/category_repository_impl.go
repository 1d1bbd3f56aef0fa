package repository

import (
	"strings"
	"time"

	"bayaaz-server/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func (r *CategoryRepository) FindByID(userID, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindByIDs(userID uint, ids []uint) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Where("id IN ? AND user_id = ?", ids, userID).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) NameExists(userID uint, name string, excludeID *uint) (bool, error) {
	query := r.db.Model(&model.Category{}).Where("user_id = ? AND name = ?", userID, strings.TrimSpace(name))
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CategoryRepository) MaxOrder(userID uint) (int, error) {
	var maxOrder int
	err := r.db.Model(&model.Category{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(sort_order), -1)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, err
	}
	return maxOrder, nil
}

func (r *CategoryRepository) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) BatchInsert(categories []model.Category) error {
	return r.db.Create(&categories).Error
}

func (r *CategoryRepository) Save(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *CategoryRepository) Delete(userID, id uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Category{}, id).Error
}

func (r *CategoryRepository) List(userID uint, includeArchived bool) ([]model.Category, error) {
	query := r.db.Where("user_id = ?", userID)
	if !includeArchived {
		query = query.Where("is_archived = ?", false)
	}

	var categories []model.Category
	if err := query.Order("sort_order ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) SearchByName(userID uint, query string) ([]model.Category, error) {
	var categories []model.Category
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.Where("user_id = ? AND is_archived = ? AND LOWER(name) LIKE ?", userID, false, pattern).
		Order("is_default DESC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// UpdateOrders applies the order updates one by one; there is no cross-row
// atomicity guarantee, a mid-batch failure leaves earlier updates in place.
func (r *CategoryRepository) UpdateOrders(userID uint, orders map[uint]int) error {
	for id, order := range orders {
		err := r.db.Model(&model.Category{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("sort_order", order).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *CategoryRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Category{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CategoryRepository) UpdatedSince(userID uint, since time.Time) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Where("user_id = ? AND updated_at > ?", userID, since).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) DeleteNonDefault(userID uint) error {
	return r.db.Where("user_id = ? AND is_default = ?", userID, false).Delete(&model.Category{}).Error
}

func (r *CategoryRepository) Stats(userID uint) ([]CategoryStatsRow, error) {
	var rows []CategoryStatsRow
	err := r.db.Model(&model.Category{}).
		Select("categories.id AS id, categories.name AS name, categories.color AS color, categories.icon AS icon, " +
			"categories.is_default AS is_default, categories.is_archived AS is_archived, " +
			"COUNT(lyrics.id) AS lyrics_count, " +
			"COALESCE(SUM(lyrics.view_count), 0) AS total_views, " +
			"COALESCE(SUM(CASE WHEN lyrics.is_favorite THEN 1 ELSE 0 END), 0) AS favorites_count").
		Joins("LEFT JOIN lyrics ON lyrics.category_id = categories.id").
		Where("categories.user_id = ?", userID).
		Group("categories.id, categories.name, categories.color, categories.icon, categories.is_default, categories.is_archived").
		Order("lyrics_count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
