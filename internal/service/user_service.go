package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bayaaz-server/internal/common"
	"bayaaz-server/internal/consts"
	"bayaaz-server/internal/model"
	repo "bayaaz-server/internal/repository"

	"gorm.io/gorm"
)

type Dashboard struct {
	RecentLyrics   []model.Lyric           `json:"recent_lyrics"`
	Favorites      []model.Lyric           `json:"favorites"`
	Pinned         []model.Lyric           `json:"pinned"`
	Categories     []repo.CategoryStatsRow `json:"categories"`
	RecentActivity int64                   `json:"recent_activity"` // lyrics created in the last 7 days
	Stats          *Statistics             `json:"stats"`
}

// Dashboard assembles the landing-page summary in one call.
func (s *UserService) Dashboard(userID uint) (*Dashboard, error) {
	recent, err := s.lyrics.RecentlyViewed(userID, 5)
	if err != nil {
		return nil, common.NewInternalError("failed to load dashboard")
	}
	favorites, err := s.lyrics.Favorites(userID, 5)
	if err != nil {
		return nil, common.NewInternalError("failed to load dashboard")
	}
	pinned, err := s.lyrics.Pinned(userID)
	if err != nil {
		return nil, common.NewInternalError("failed to load dashboard")
	}
	categoryStats, err := s.categories.Stats(userID)
	if err != nil {
		return nil, common.NewInternalError("failed to load dashboard")
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	created, err := s.lyrics.CreatedSince(userID, weekAgo)
	if err != nil {
		return nil, common.NewInternalError("failed to load dashboard")
	}

	stats, err := s.statistics(userID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		RecentLyrics:   emptyIfNil(recent),
		Favorites:      emptyIfNil(favorites),
		Pinned:         emptyIfNil(pinned),
		Categories:     categoryStats,
		RecentActivity: int64(len(created)),
		Stats:          stats,
	}, nil
}

func emptyIfNil(lyrics []model.Lyric) []model.Lyric {
	if lyrics == nil {
		return []model.Lyric{}
	}
	return lyrics
}

// statistics mirrors QueryService.Statistics; UserService keeps its own copy
// of the aggregation so the dashboard has no service-to-service dependency.
func (s *UserService) statistics(userID uint) (*Statistics, error) {
	q := &QueryService{lyrics: s.lyrics, categories: s.categories}
	return q.Statistics(userID)
}

type ExportCategory struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	Icon       string `json:"icon"`
	IsDefault  bool   `json:"is_default"`
	IsArchived bool   `json:"is_archived"`
	Order      int    `json:"order"`
}

type ExportLyric struct {
	Title       string              `json:"title"`
	Poet        string              `json:"poet,omitempty"`
	Year        int                 `json:"year,omitempty"`
	Content     string              `json:"content"`
	Category    string              `json:"category"`
	Tags        []string            `json:"tags"`
	Language    string              `json:"language"`
	Metadata    model.LyricMetadata `json:"metadata"`
	Status      string              `json:"status"`
	Visibility  string              `json:"visibility"`
	IsFavorite  bool                `json:"is_favorite"`
	IsPinned    bool                `json:"is_pinned"`
	ViewCount   int64               `json:"view_count"`
	Attachments []model.Attachment  `json:"attachments"`
	CreatedAt   time.Time           `json:"created_at"`
}

type ExportData struct {
	Version    string           `json:"version"`
	ExportedAt time.Time        `json:"exported_at"`
	User       ExportUser       `json:"user"`
	Categories []ExportCategory `json:"categories"`
	Lyrics     []ExportLyric    `json:"lyrics"`
}

type ExportUser struct {
	Username    string            `json:"username"`
	Email       string            `json:"email"`
	Profile     model.Profile     `json:"profile"`
	Preferences model.Preferences `json:"preferences"`
}

// Export dumps everything the user owns. Lock PINs and version history are
// deliberately left out of the dump.
func (s *UserService) Export(userID uint) (*ExportData, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.List(userID, true)
	if err != nil {
		return nil, common.NewInternalError("failed to export categories")
	}
	lyrics, err := s.lyrics.ListAll(userID)
	if err != nil {
		return nil, common.NewInternalError("failed to export lyrics")
	}

	categoryNames := make(map[uint]string, len(categories))
	exportCategories := make([]ExportCategory, 0, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
		exportCategories = append(exportCategories, ExportCategory{
			Name:       category.Name,
			Color:      category.Color,
			Icon:       category.Icon,
			IsDefault:  category.IsDefault,
			IsArchived: category.IsArchived,
			Order:      category.Order,
		})
	}

	exportLyrics := make([]ExportLyric, 0, len(lyrics))
	for _, lyric := range lyrics {
		tags := lyric.Tags
		if tags == nil {
			tags = []string{}
		}
		attachments := lyric.Attachments
		if attachments == nil {
			attachments = []model.Attachment{}
		}
		exportLyrics = append(exportLyrics, ExportLyric{
			Title:       lyric.Title,
			Poet:        lyric.Poet,
			Year:        lyric.Year,
			Content:     lyric.Content,
			Category:    categoryNames[lyric.CategoryID],
			Tags:        tags,
			Language:    lyric.Language,
			Metadata:    lyric.Metadata,
			Status:      lyric.Status,
			Visibility:  lyric.Visibility,
			IsFavorite:  lyric.IsFavorite,
			IsPinned:    lyric.IsPinned,
			ViewCount:   lyric.ViewCount,
			Attachments: attachments,
			CreatedAt:   lyric.CreatedAt,
		})
	}

	return &ExportData{
		Version:    consts.ExportFormatVersion,
		ExportedAt: time.Now(),
		User: ExportUser{
			Username:    user.Username,
			Email:       user.Email,
			Profile:     user.Profile,
			Preferences: user.Preferences,
		},
		Categories: exportCategories,
		Lyrics:     exportLyrics,
	}, nil
}

const (
	ImportStrategyReplace = "replace"
	ImportStrategyMerge   = "merge"
)

type ImportData struct {
	Version    string           `json:"version"`
	Categories []ExportCategory `json:"categories"`
	Lyrics     []ExportLyric    `json:"lyrics"`
}

type ImportResult struct {
	CategoriesImported int      `json:"categories_imported"`
	LyricsImported     int      `json:"lyrics_imported"`
	Errors             []string `json:"errors"`
}

// Import restores a previous export. "replace" (the default) wipes existing
// lyrics and non-default categories first; "merge" keeps what is there and
// skips categories whose name already exists. Per-item failures are
// collected and reported, they do not abort the batch.
func (s *UserService) Import(userID uint, data ImportData, strategy string) (*ImportResult, error) {
	switch strategy {
	case ImportStrategyReplace, ImportStrategyMerge:
	case "":
		strategy = ImportStrategyReplace
	default:
		return nil, common.NewValidationError("strategy must be replace or merge")
	}
	if data.Version != "" && data.Version != consts.ExportFormatVersion {
		return nil, common.NewValidationError("unsupported export format version")
	}

	result := &ImportResult{Errors: []string{}}

	if strategy == ImportStrategyReplace {
		if err := s.lyrics.DeleteByUser(userID); err != nil {
			return nil, common.NewInternalError("failed to clear lyrics")
		}
		if err := s.categories.DeleteNonDefault(userID); err != nil {
			return nil, common.NewInternalError("failed to clear categories")
		}
	}

	existing, err := s.categories.List(userID, true)
	if err != nil {
		return nil, common.NewInternalError("failed to list categories")
	}
	byName := make(map[string]uint, len(existing))
	for _, category := range existing {
		byName[strings.ToLower(category.Name)] = category.ID
	}

	for _, entry := range data.Categories {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			result.Errors = append(result.Errors, "category with empty name skipped")
			continue
		}
		if entry.IsDefault {
			continue // defaults are seeded at registration, never imported
		}
		if _, exists := byName[strings.ToLower(name)]; exists {
			continue
		}
		category := &model.Category{
			Name:       name,
			Color:      entry.Color,
			Icon:       entry.Icon,
			IsArchived: entry.IsArchived,
			Order:      entry.Order,
			UserID:     userID,
		}
		if err := s.categories.Create(category); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("category %q: import failed", name))
			continue
		}
		byName[strings.ToLower(name)] = category.ID
		result.CategoriesImported++
	}

	for _, entry := range data.Lyrics {
		title := strings.TrimSpace(entry.Title)
		if title == "" || strings.TrimSpace(entry.Content) == "" {
			result.Errors = append(result.Errors, "lyric with empty title or content skipped")
			continue
		}
		categoryID, ok := byName[strings.ToLower(strings.TrimSpace(entry.Category))]
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("lyric %q: category %q not found", title, entry.Category))
			continue
		}
		tags := entry.Tags
		if tags == nil {
			tags = []string{}
		}
		attachments := entry.Attachments
		if attachments == nil {
			attachments = []model.Attachment{}
		}
		status := entry.Status
		if status == "" {
			status = model.LyricStatusPublished
		}
		visibility := entry.Visibility
		if visibility == "" {
			visibility = model.LyricVisibilityPrivate
		}
		lyric := &model.Lyric{
			Title:       title,
			Poet:        entry.Poet,
			Year:        entry.Year,
			Content:     entry.Content,
			UserID:      userID,
			CategoryID:  categoryID,
			Tags:        tags,
			Language:    normalizeLanguage(entry.Language),
			Metadata:    entry.Metadata,
			Status:      status,
			Visibility:  visibility,
			IsFavorite:  entry.IsFavorite,
			IsPinned:    entry.IsPinned,
			ViewCount:   entry.ViewCount,
			Attachments: attachments,
		}
		PrepareForSave(lyric, "", true, true)
		if err := s.lyrics.Create(lyric); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("lyric %q: import failed", title))
			continue
		}
		result.LyricsImported++
	}

	if err := s.recomputeStats(userID); err != nil {
		return nil, err
	}
	return result, nil
}

type SyncData struct {
	Full       bool             `json:"full"`
	Lyrics     []model.Lyric    `json:"lyrics"`
	Categories []model.Category `json:"categories"`
	SyncTime   time.Time        `json:"sync_time"`
}

// Sync returns everything changed since lastSync, or a full snapshot when
// lastSync is zero. Conflict resolution happens on the device, not here.
func (s *UserService) Sync(userID uint, lastSync time.Time) (*SyncData, error) {
	data := &SyncData{SyncTime: time.Now()}
	var err error

	if lastSync.IsZero() {
		data.Full = true
		data.Lyrics, err = s.lyrics.ListAll(userID)
		if err != nil {
			return nil, common.NewInternalError("failed to sync lyrics")
		}
		data.Categories, err = s.categories.List(userID, true)
		if err != nil {
			return nil, common.NewInternalError("failed to sync categories")
		}
	} else {
		data.Lyrics, err = s.lyrics.UpdatedSince(userID, lastSync)
		if err != nil {
			return nil, common.NewInternalError("failed to sync lyrics")
		}
		data.Categories, err = s.categories.UpdatedSince(userID, lastSync)
		if err != nil {
			return nil, common.NewInternalError("failed to sync categories")
		}
	}

	if data.Lyrics == nil {
		data.Lyrics = []model.Lyric{}
	}
	if data.Categories == nil {
		data.Categories = []model.Category{}
	}
	return data, nil
}

type Settings struct {
	Preferences  model.Preferences  `json:"preferences"`
	Subscription model.Subscription `json:"subscription"`
	Stats        model.UserStats    `json:"stats"`
}

func (s *UserService) Settings(userID uint) (*Settings, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	return &Settings{
		Preferences:  user.Preferences,
		Subscription: user.Subscription,
		Stats:        user.Stats,
	}, nil
}

// UpdateSettings applies a partial preferences update and returns the
// refreshed settings view.
func (s *UserService) UpdateSettings(userID uint, update PreferencesUpdate) (*Settings, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	if err := applyPreferences(user, update); err != nil {
		return nil, err
	}
	if err := s.users.Save(user); err != nil {
		return nil, common.NewInternalError("failed to update settings")
	}
	return &Settings{
		Preferences:  user.Preferences,
		Subscription: user.Subscription,
		Stats:        user.Stats,
	}, nil
}

func (s *UserService) recomputeStats(userID uint) error {
	user, err := s.findUser(userID)
	if err != nil {
		return err
	}
	totalLyrics, err := s.lyrics.CountByUser(userID)
	if err != nil {
		return common.NewInternalError("failed to recompute stats")
	}
	totalCategories, err := s.categories.CountByUser(userID)
	if err != nil {
		return common.NewInternalError("failed to recompute stats")
	}
	user.Stats.TotalLyrics = totalLyrics
	user.Stats.TotalCategories = totalCategories
	if err := s.users.Save(user); err != nil {
		return common.NewInternalError("failed to recompute stats")
	}
	return nil
}

func (s *UserService) findUser(userID uint) (*model.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("user not found")
		}
		return nil, common.NewInternalError("failed to fetch user")
	}
	return user, nil
}
