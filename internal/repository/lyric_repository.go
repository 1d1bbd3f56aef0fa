package repository

import (
	"time"

	"bayaaz-server/internal/model"
)

// LyricFilter describes a filtered, sorted, paginated lyric listing. All
// filters combine by logical AND.
type LyricFilter struct {
	CategoryID uint
	Poet       string // substring, case-insensitive
	Year       int
	IsFavorite *bool
	IsPinned   *bool
	Tags       []string // any-of membership
	Search     string   // free text over the search index
	Status     string
	SortBy     string // title, poet, year, views, recent
	Relevance  bool   // order by search relevance instead of SortBy
	Page       int    // 1-indexed
	PageSize   int
}

// CategoryCount is one row of the per-category statistics breakdown.
type CategoryCount struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Count      int64  `json:"count"`
}

// LyricStore is the ownership-scoped access layer for lyrics. As with
// CategoryStore, the user filter lives here, not in handlers.
type LyricStore interface {
	FindByID(userID, id uint) (*model.Lyric, error)
	Create(lyric *model.Lyric) error
	Save(lyric *model.Lyric) error
	Delete(userID, id uint) error
	List(userID uint, filter LyricFilter) ([]model.Lyric, int64, error)

	CountByUser(userID uint) (int64, error)
	CountByCategory(userID, categoryID uint) (int64, error)
	SumViews(userID uint) (int64, error)
	CountFavorites(userID uint) (int64, error)
	CountPinned(userID uint) (int64, error)
	CountDistinctPoets(userID uint) (int64, error)
	// ListTagSets returns the raw per-lyric tag lists; callers flatten them
	// before distinct-counting.
	ListTagSets(userID uint) ([][]string, error)
	CategoryBreakdown(userID uint) ([]CategoryCount, error)

	RecentlyViewed(userID uint, limit int) ([]model.Lyric, error)
	Favorites(userID uint, limit int) ([]model.Lyric, error)
	Pinned(userID uint) ([]model.Lyric, error)
	CreatedSince(userID uint, since time.Time) ([]model.Lyric, error)
	UpdatedSince(userID uint, since time.Time) ([]model.Lyric, error)
	ListAll(userID uint) ([]model.Lyric, error)
	DeleteByUser(userID uint) error
}
