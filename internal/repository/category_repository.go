package repository

import (
	"time"

	"bayaaz-server/internal/model"
)

// CategoryStatsRow is one category joined with its lyric aggregates.
type CategoryStatsRow struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Color          string `json:"color"`
	Icon           string `json:"icon"`
	IsDefault      bool   `json:"is_default"`
	IsArchived     bool   `json:"is_archived"`
	LyricsCount    int64  `json:"lyrics_count"`
	TotalViews     int64  `json:"total_views"`
	FavoritesCount int64  `json:"favorites_count"`
}

// CategoryStore is the ownership-scoped access layer for categories. Every
// lookup and mutation takes the owning user's ID so scoping cannot be
// forgotten at the handler layer.
type CategoryStore interface {
	FindByID(userID, id uint) (*model.Category, error)
	FindByIDs(userID uint, ids []uint) ([]model.Category, error)
	NameExists(userID uint, name string, excludeID *uint) (bool, error)
	MaxOrder(userID uint) (int, error)
	Create(category *model.Category) error
	BatchInsert(categories []model.Category) error
	Save(category *model.Category) error
	Delete(userID, id uint) error
	List(userID uint, includeArchived bool) ([]model.Category, error)
	SearchByName(userID uint, query string) ([]model.Category, error)
	UpdateOrders(userID uint, orders map[uint]int) error
	CountByUser(userID uint) (int64, error)
	UpdatedSince(userID uint, since time.Time) ([]model.Category, error)
	DeleteNonDefault(userID uint) error
	Stats(userID uint) ([]CategoryStatsRow, error)
}
