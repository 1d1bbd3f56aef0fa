package service

import (
	"errors"
	"strings"
	"time"

	"bayaaz-server/internal/common"
	"bayaaz-server/internal/model"
	"bayaaz-server/internal/utils"

	"gorm.io/gorm"
)

type LyricInput struct {
	Title      string
	Poet       string
	Year       int
	Content    string
	CategoryID uint
	Tags       []string
	Language   string
	Metadata   model.LyricMetadata
	Status     string
	Visibility string
	IsLocked   bool
	LockPin    string
}

func validLyricStatus(status string) bool {
	switch status {
	case model.LyricStatusDraft, model.LyricStatusPublished, model.LyricStatusArchived:
		return true
	}
	return false
}

func validLyricVisibility(visibility string) bool {
	switch visibility {
	case model.LyricVisibilityPrivate, model.LyricVisibilityPublic:
		return true
	}
	return false
}

func normalizeLanguage(language string) string {
	for _, known := range model.LyricLanguages {
		if language == known {
			return language
		}
	}
	return "urdu"
}

func validateLyricInput(input *LyricInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
	if input.Title == "" || len(input.Title) > 200 {
		return common.NewValidationError("title must be between 1 and 200 characters")
	}
	if input.Content == "" {
		return common.NewValidationError("content is required")
	}
	if input.CategoryID == 0 {
		return common.NewValidationError("category id is required")
	}
	if len(input.Poet) > 100 {
		return common.NewValidationError("poet name cannot exceed 100 characters")
	}
	if input.Year != 0 && !utils.ValidateYear(input.Year) {
		return common.NewValidationError("please provide a valid year")
	}
	for _, tag := range input.Tags {
		if tag == "" || len(tag) > 50 {
			return common.NewValidationError("each tag must be between 1 and 50 characters")
		}
	}
	return nil
}

func (s *LyricService) Create(userID uint, input LyricInput) (*model.Lyric, error) {
	if err := validateLyricInput(&input); err != nil {
		return nil, err
	}

	if _, err := s.categories.FindByID(userID, input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("category not found")
		}
		return nil, common.NewInternalError("failed to resolve category")
	}

	status := input.Status
	if status == "" {
		status = model.LyricStatusPublished
	} else if !validLyricStatus(status) {
		return nil, common.NewValidationError("status must be one of draft, published, archived")
	}
	visibility := input.Visibility
	if visibility == "" {
		visibility = model.LyricVisibilityPrivate
	} else if !validLyricVisibility(visibility) {
		return nil, common.NewValidationError("visibility must be one of private, public")
	}
	lockPin := ""
	if input.IsLocked {
		lockPin = input.LockPin
	}

	lyric := &model.Lyric{
		Title:      input.Title,
		Poet:       input.Poet,
		Year:       input.Year,
		Content:    input.Content,
		UserID:     userID,
		CategoryID: input.CategoryID,
		Tags:       input.Tags,
		Language:   normalizeLanguage(input.Language),
		Metadata:   input.Metadata,
		Status:     status,
		Visibility: visibility,
		IsLocked:   input.IsLocked,
		LockPin:    lockPin,
	}
	if lyric.Tags == nil {
		lyric.Tags = []string{}
	}

	PrepareForSave(lyric, "", true, true)

	if err := s.lyrics.Create(lyric); err != nil {
		return nil, common.NewInternalError("failed to create lyric")
	}
	return lyric, nil
}

// Get loads an owned lyric and counts the view.
func (s *LyricService) Get(userID, id uint) (*model.Lyric, error) {
	lyric, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.IncrementViewCount(lyric); err != nil {
		return nil, err
	}
	return lyric, nil
}

// IncrementViewCount bumps the counter and persists. Each call increments;
// there is no idempotency guarantee.
func (s *LyricService) IncrementViewCount(lyric *model.Lyric) error {
	lyric.ViewCount++
	now := time.Now()
	lyric.LastViewedAt = &now
	if err := s.lyrics.Save(lyric); err != nil {
		return common.NewInternalError("failed to update view count")
	}
	return nil
}

type LyricUpdate struct {
	Title      *string
	Poet       *string
	Year       *int
	Content    *string
	CategoryID *uint
	Tags       []string
	Language   *string
	Metadata   *model.LyricMetadata
	Status     *string
	Visibility *string
	IsFavorite *bool
	IsPinned   *bool
	IsLocked   *bool
	LockPin    *string
	Pin        string // supplied PIN for locked lyrics
}

func (s *LyricService) Update(userID, id uint, update LyricUpdate) (*model.Lyric, error) {
	lyric, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}
	if !AuthorizeMutation(lyric, update.Pin) {
		return nil, common.NewForbiddenError("incorrect PIN, lyric is locked")
	}

	previousContent := lyric.Content

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" || len(title) > 200 {
			return nil, common.NewValidationError("title must be between 1 and 200 characters")
		}
		lyric.Title = title
	}
	if update.Poet != nil {
		if len(*update.Poet) > 100 {
			return nil, common.NewValidationError("poet name cannot exceed 100 characters")
		}
		lyric.Poet = *update.Poet
	}
	if update.Year != nil {
		if *update.Year != 0 && !utils.ValidateYear(*update.Year) {
			return nil, common.NewValidationError("please provide a valid year")
		}
		lyric.Year = *update.Year
	}
	if update.Content != nil {
		content := strings.TrimSpace(*update.Content)
		if content == "" {
			return nil, common.NewValidationError("content is required")
		}
		lyric.Content = content
	}
	if update.CategoryID != nil {
		if _, err := s.categories.FindByID(userID, *update.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.NewNotFoundError("category not found")
			}
			return nil, common.NewInternalError("failed to resolve category")
		}
		lyric.CategoryID = *update.CategoryID
	}
	if update.Tags != nil {
		for _, tag := range update.Tags {
			if tag == "" || len(tag) > 50 {
				return nil, common.NewValidationError("each tag must be between 1 and 50 characters")
			}
		}
		lyric.Tags = update.Tags
	}
	if update.Language != nil {
		lyric.Language = normalizeLanguage(*update.Language)
	}
	if update.Metadata != nil {
		lyric.Metadata = *update.Metadata
	}
	if update.Status != nil {
		if !validLyricStatus(*update.Status) {
			return nil, common.NewValidationError("status must be one of draft, published, archived")
		}
		lyric.Status = *update.Status
	}
	if update.Visibility != nil {
		if !validLyricVisibility(*update.Visibility) {
			return nil, common.NewValidationError("visibility must be one of private, public")
		}
		lyric.Visibility = *update.Visibility
	}
	if update.IsFavorite != nil {
		lyric.IsFavorite = *update.IsFavorite
	}
	if update.IsPinned != nil {
		lyric.IsPinned = *update.IsPinned
	}
	if update.IsLocked != nil {
		lyric.IsLocked = *update.IsLocked
	}
	if update.LockPin != nil {
		lyric.LockPin = *update.LockPin
	}

	contentChanged := lyric.Content != previousContent
	PrepareForSave(lyric, previousContent, false, contentChanged)

	if err := s.lyrics.Save(lyric); err != nil {
		return nil, common.NewInternalError("failed to update lyric")
	}
	return lyric, nil
}

func (s *LyricService) Delete(userID, id uint, pin string) error {
	lyric, err := s.find(userID, id)
	if err != nil {
		return err
	}
	if !AuthorizeMutation(lyric, pin) {
		return common.NewForbiddenError("incorrect PIN, cannot delete locked lyric")
	}
	// Attachments in the media store are left behind on purpose; deletion is
	// unilateral with no cascade.
	if err := s.lyrics.Delete(userID, id); err != nil {
		return common.NewInternalError("failed to delete lyric")
	}
	return nil
}

func (s *LyricService) ToggleFavorite(userID, id uint) (*model.Lyric, error) {
	return s.toggle(userID, id, func(lyric *model.Lyric) {
		lyric.IsFavorite = !lyric.IsFavorite
	})
}

func (s *LyricService) TogglePin(userID, id uint) (*model.Lyric, error) {
	return s.toggle(userID, id, func(lyric *model.Lyric) {
		lyric.IsPinned = !lyric.IsPinned
	})
}

func (s *LyricService) toggle(userID, id uint, mutate func(*model.Lyric)) (*model.Lyric, error) {
	lyric, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}
	mutate(lyric)
	// Content unchanged, so the pipeline only stamps last_viewed_at.
	PrepareForSave(lyric, lyric.Content, false, false)
	if err := s.lyrics.Save(lyric); err != nil {
		return nil, common.NewInternalError("failed to update lyric")
	}
	return lyric, nil
}

func (s *LyricService) Versions(userID, id uint) ([]model.LyricVersion, error) {
	lyric, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}
	if lyric.Versions == nil {
		return []model.LyricVersion{}, nil
	}
	return lyric.Versions, nil
}

// RestoreVersion replaces content with the selected snapshot and runs the
// standard save pipeline, which pushes the just-replaced content as a new
// history entry. Restoring grows history, it does not truncate to it.
func (s *LyricService) RestoreVersion(userID, id uint, index int, pin string) (*model.Lyric, error) {
	lyric, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(lyric.Versions) {
		return nil, common.NewValidationError("invalid version index")
	}
	if !AuthorizeMutation(lyric, pin) {
		return nil, common.NewForbiddenError("incorrect PIN, cannot restore locked lyric")
	}

	previousContent := lyric.Content
	lyric.Content = lyric.Versions[index].Content
	contentChanged := lyric.Content != previousContent
	PrepareForSave(lyric, previousContent, false, contentChanged)

	if err := s.lyrics.Save(lyric); err != nil {
		return nil, common.NewInternalError("failed to restore version")
	}
	return lyric, nil
}

// CategoryRef resolves the populated category summary for lyric responses.
// Returns nil when the category cannot be resolved.
func (s *LyricService) CategoryRef(userID, categoryID uint) *model.CategoryRef {
	category, err := s.categories.FindByID(userID, categoryID)
	if err != nil {
		return nil
	}
	return &model.CategoryRef{
		ID:    category.ID,
		Name:  category.Name,
		Color: category.Color,
		Icon:  category.Icon,
	}
}

func (s *LyricService) find(userID, id uint) (*model.Lyric, error) {
	lyric, err := s.lyrics.FindByID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("lyric not found")
		}
		return nil, common.NewInternalError("failed to fetch lyric")
	}
	return lyric, nil
}
