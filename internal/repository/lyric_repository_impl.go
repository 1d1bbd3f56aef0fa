package repository

import (
	"strings"
	"time"

	"bayaaz-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LyricRepository struct {
	db *gorm.DB
}

func (r *LyricRepository) FindByID(userID, id uint) (*model.Lyric, error) {
	var lyric model.Lyric
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&lyric).Error; err != nil {
		return nil, err
	}
	return &lyric, nil
}

func (r *LyricRepository) Create(lyric *model.Lyric) error {
	return r.db.Create(lyric).Error
}

func (r *LyricRepository) Save(lyric *model.Lyric) error {
	return r.db.Save(lyric).Error
}

func (r *LyricRepository) Delete(userID, id uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Lyric{}, id).Error
}

func (r *LyricRepository) List(userID uint, filter LyricFilter) ([]model.Lyric, int64, error) {
	query := r.db.Model(&model.Lyric{}).Where("user_id = ?", userID)
	query = applyLyricFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyLyricOrder(query, filter)

	offset := (filter.Page - 1) * filter.PageSize
	var lyrics []model.Lyric
	if err := query.Offset(offset).Limit(filter.PageSize).Find(&lyrics).Error; err != nil {
		return nil, 0, err
	}
	return lyrics, total, nil
}

func applyLyricFilter(query *gorm.DB, filter LyricFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Poet != "" {
		query = query.Where("LOWER(poet) LIKE ?", "%"+strings.ToLower(filter.Poet)+"%")
	}
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}
	if filter.IsFavorite != nil {
		query = query.Where("is_favorite = ?", *filter.IsFavorite)
	}
	if filter.IsPinned != nil {
		query = query.Where("is_pinned = ?", *filter.IsPinned)
	}
	if len(filter.Tags) > 0 {
		// Tags are stored as a JSON array; any-of membership is a LIKE
		// disjunction over the quoted tag values.
		conds := make([]string, 0, len(filter.Tags))
		args := make([]interface{}, 0, len(filter.Tags))
		for _, tag := range filter.Tags {
			conds = append(conds, "tags LIKE ?")
			args = append(args, `%"`+tag+`"%`)
		}
		query = query.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		for _, term := range strings.Fields(strings.ToLower(s)) {
			query = query.Where("search_index LIKE ?", "%"+term+"%")
		}
	}
	return query
}

// applyLyricOrder builds the ORDER BY clause. Pinned lyrics always come
// before unpinned ones, whatever the secondary sort is.
func applyLyricOrder(query *gorm.DB, filter LyricFilter) *gorm.DB {
	if filter.Relevance && strings.TrimSpace(filter.Search) != "" {
		pattern := "%" + strings.ToLower(strings.TrimSpace(filter.Search)) + "%"
		scoreSQL := "is_pinned DESC, (" +
			"CASE WHEN LOWER(title) LIKE ? THEN 4 ELSE 0 END + " +
			"CASE WHEN LOWER(poet) LIKE ? THEN 3 ELSE 0 END + " +
			"CASE WHEN LOWER(tags) LIKE ? THEN 2 ELSE 0 END + " +
			"CASE WHEN LOWER(plain_text) LIKE ? THEN 1 ELSE 0 END" +
			") DESC, created_at DESC"
		return query.Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                scoreSQL,
			Vars:               []interface{}{pattern, pattern, pattern, pattern},
			WithoutParentheses: true,
		}})
	}

	query = query.Order("is_pinned DESC")
	switch filter.SortBy {
	case "title":
		return query.Order("title ASC")
	case "poet":
		return query.Order("poet ASC")
	case "year":
		return query.Order("year DESC")
	case "views":
		return query.Order("view_count DESC")
	default: // recent
		return query.Order("created_at DESC")
	}
}

func (r *LyricRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Lyric{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *LyricRepository) CountByCategory(userID, categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Lyric{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&count).Error
	return count, err
}

func (r *LyricRepository) SumViews(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&model.Lyric{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&total).Error
	return total, err
}

func (r *LyricRepository) CountFavorites(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Lyric{}).
		Where("user_id = ? AND is_favorite = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *LyricRepository) CountPinned(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Lyric{}).
		Where("user_id = ? AND is_pinned = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *LyricRepository) CountDistinctPoets(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Lyric{}).
		Where("user_id = ? AND poet != ''", userID).
		Select("COUNT(DISTINCT poet)").
		Scan(&count).Error
	return count, err
}

func (r *LyricRepository) ListTagSets(userID uint) ([][]string, error) {
	var lyrics []model.Lyric
	if err := r.db.Select("tags").Where("user_id = ?", userID).Find(&lyrics).Error; err != nil {
		return nil, err
	}

	sets := make([][]string, 0, len(lyrics))
	for _, lyric := range lyrics {
		sets = append(sets, lyric.Tags)
	}
	return sets, nil
}

func (r *LyricRepository) CategoryBreakdown(userID uint) ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.Model(&model.Lyric{}).
		Select("lyrics.category_id AS category_id, categories.name AS name, categories.color AS color, COUNT(*) AS count").
		Joins("JOIN categories ON categories.id = lyrics.category_id").
		Where("lyrics.user_id = ?", userID).
		Group("lyrics.category_id, categories.name, categories.color").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *LyricRepository) RecentlyViewed(userID uint, limit int) ([]model.Lyric, error) {
	var lyrics []model.Lyric
	err := r.db.Where("user_id = ?", userID).
		Order("last_viewed_at DESC").
		Limit(limit).
		Find(&lyrics).Error
	return lyrics, err
}

func (r *LyricRepository) Favorites(userID uint, limit int) ([]model.Lyric, error) {
	var lyrics []model.Lyric
	query := r.db.Where("user_id = ? AND is_favorite = ?", userID, true).
		Order("last_viewed_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&lyrics).Error
	return lyrics, err
}

func (r *LyricRepository) Pinned(userID uint) ([]model.Lyric, error) {
	var lyrics []model.Lyric
	err := r.db.Where("user_id = ? AND is_pinned = ?", userID, true).
		Order("created_at DESC").
		Find(&lyrics).Error
	return lyrics, err
}

func (r *LyricRepository) CreatedSince(userID uint, since time.Time) ([]model.Lyric, error) {
	var lyrics []model.Lyric
	err := r.db.Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Find(&lyrics).Error
	return lyrics, err
}

func (r *LyricRepository) UpdatedSince(userID uint, since time.Time) ([]model.Lyric, error) {
	var lyrics []model.Lyric
	err := r.db.Where("user_id = ? AND updated_at > ?", userID, since).Find(&lyrics).Error
	return lyrics, err
}

func (r *LyricRepository) ListAll(userID uint) ([]model.Lyric, error) {
	var lyrics []model.Lyric
	err := r.db.Where("user_id = ?", userID).Find(&lyrics).Error
	return lyrics, err
}

func (r *LyricRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Lyric{}).Error
}
