package service

import (
	"strings"
	"unicode/utf8"

	"bayaaz-server/internal/common"
	"bayaaz-server/internal/model"
	repo "bayaaz-server/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Pagination is the page metadata returned alongside every listing.
type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
	Pages    int   `json:"pages"`
}

func paginate(page, pageSize int, total int64) Pagination {
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{Page: page, PageSize: pageSize, Total: total, Pages: pages}
}

func clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

type LyricListResult struct {
	Lyrics     []model.Lyric `json:"lyrics"`
	Pagination Pagination    `json:"pagination"`
}

// ListLyrics applies the AND-combined filter set. Status defaults to
// "published"; pass "all" to list every status.
func (s *QueryService) ListLyrics(userID uint, filter repo.LyricFilter) (*LyricListResult, error) {
	filter.Page, filter.PageSize = clampPage(filter.Page, filter.PageSize)
	if filter.Status == "" {
		filter.Status = model.LyricStatusPublished
	}
	if filter.Status == "all" {
		filter.Status = ""
	}
	filter.Search = strings.TrimSpace(filter.Search)
	// Relevance ordering belongs to Search; listings always honor SortBy.
	filter.Relevance = false

	lyrics, total, err := s.lyrics.List(userID, filter)
	if err != nil {
		return nil, common.NewInternalError("failed to list lyrics")
	}
	return &LyricListResult{
		Lyrics:     lyrics,
		Pagination: paginate(filter.Page, filter.PageSize, total),
	}, nil
}

type Statistics struct {
	TotalLyrics       int64                `json:"total_lyrics"`
	TotalViews        int64                `json:"total_views"`
	FavoritesCount    int64                `json:"favorites_count"`
	PinnedCount       int64                `json:"pinned_count"`
	DistinctPoets     int64                `json:"distinct_poets"`
	DistinctTags      int64                `json:"distinct_tags"`
	CategoryBreakdown []repo.CategoryCount `json:"category_breakdown"`
}

// Statistics aggregates ownership-scoped counts. Tags are flattened across
// all lyrics before distinct-counting.
func (s *QueryService) Statistics(userID uint) (*Statistics, error) {
	stats := &Statistics{}
	var err error

	if stats.TotalLyrics, err = s.lyrics.CountByUser(userID); err != nil {
		return nil, common.NewInternalError("failed to compute statistics")
	}
	if stats.TotalViews, err = s.lyrics.SumViews(userID); err != nil {
		return nil, common.NewInternalError("failed to compute statistics")
	}
	if stats.FavoritesCount, err = s.lyrics.CountFavorites(userID); err != nil {
		return nil, common.NewInternalError("failed to compute statistics")
	}
	if stats.PinnedCount, err = s.lyrics.CountPinned(userID); err != nil {
		return nil, common.NewInternalError("failed to compute statistics")
	}
	if stats.DistinctPoets, err = s.lyrics.CountDistinctPoets(userID); err != nil {
		return nil, common.NewInternalError("failed to compute statistics")
	}

	tagSets, err := s.lyrics.ListTagSets(userID)
	if err != nil {
		return nil, common.NewInternalError("failed to compute statistics")
	}
	distinct := make(map[string]struct{})
	for _, tags := range tagSets {
		for _, tag := range tags {
			distinct[tag] = struct{}{}
		}
	}
	stats.DistinctTags = int64(len(distinct))

	if stats.CategoryBreakdown, err = s.lyrics.CategoryBreakdown(userID); err != nil {
		return nil, common.NewInternalError("failed to compute statistics")
	}
	if stats.CategoryBreakdown == nil {
		stats.CategoryBreakdown = []repo.CategoryCount{}
	}
	return stats, nil
}

const (
	SearchScopeLyrics     = "lyrics"
	SearchScopeCategories = "categories"
	SearchScopeAll        = "all"
)

type SearchResult struct {
	Query           string           `json:"query"`
	Lyrics          []model.Lyric    `json:"lyrics,omitempty"`
	LyricsMeta      *Pagination      `json:"lyrics_pagination,omitempty"`
	Categories      []model.Category `json:"categories,omitempty"`
	CategoriesTotal *int64           `json:"categories_total,omitempty"`
}

// Search runs a free-text query over lyrics, categories or both. Lyric hits
// are restricted to published status and relevance-ordered unless sortBy is
// "recent"; pinned lyrics always come first. Category matching is a
// case-insensitive substring on the name.
func (s *QueryService) Search(userID uint, query, scope, sortBy string, page, pageSize int) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < 2 {
		return nil, common.NewValidationError("search query must be at least 2 characters")
	}
	switch scope {
	case "":
		scope = SearchScopeAll
	case SearchScopeLyrics, SearchScopeCategories, SearchScopeAll:
	default:
		return nil, common.NewValidationError("scope must be one of lyrics, categories, all")
	}

	result := &SearchResult{Query: query}

	if scope == SearchScopeLyrics || scope == SearchScopeAll {
		page, pageSize = clampPage(page, pageSize)
		filter := repo.LyricFilter{
			Search:    query,
			Status:    model.LyricStatusPublished,
			SortBy:    sortBy,
			Relevance: sortBy != "recent",
			Page:      page,
			PageSize:  pageSize,
		}
		lyrics, total, err := s.lyrics.List(userID, filter)
		if err != nil {
			return nil, common.NewInternalError("failed to search lyrics")
		}
		meta := paginate(page, pageSize, total)
		result.Lyrics = lyrics
		result.LyricsMeta = &meta
	}

	if scope == SearchScopeCategories || scope == SearchScopeAll {
		categories, err := s.categories.SearchByName(userID, query)
		if err != nil {
			return nil, common.NewInternalError("failed to search categories")
		}
		if categories == nil {
			categories = []model.Category{}
		}
		total := int64(len(categories))
		result.Categories = categories
		result.CategoriesTotal = &total
	}

	return result, nil
}
