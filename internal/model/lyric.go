package model

import "time"

const (
	LyricStatusDraft     = "draft"
	LyricStatusPublished = "published"
	LyricStatusArchived  = "archived"

	LyricVisibilityPrivate = "private"
	LyricVisibilityPublic  = "public"
)

// Languages accepted for a lyric. Anything else falls back to "other".
var LyricLanguages = []string{"urdu", "arabic", "persian", "english", "hindi", "other"}

// VersionHistoryLimit caps the bounded version history; the newest entry
// replaces the oldest once the cap is reached.
const VersionHistoryLimit = 10

type Attachment struct {
	Type       string    `json:"type"` // audio, image, document
	URL        string    `json:"url"`
	PublicID   string    `json:"public_id"`
	FileName   string    `json:"file_name"`
	FileSize   int64     `json:"file_size"`
	MimeType   string    `json:"mime_type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type LyricVersion struct {
	Content    string    `json:"content"`
	ModifiedAt time.Time `json:"modified_at"`
	Reason     string    `json:"reason"`
}

type LyricMetadata struct {
	Source    string `json:"source"`
	Reference string `json:"reference"`
	Notes     string `json:"notes"`
}

type Lyric struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title   string `json:"title" gorm:"not null;size:200"`
	Poet    string `json:"poet" gorm:"size:100;index:idx_lyrics_user_poet,priority:2"`
	Year    int    `json:"year,omitempty" gorm:"index:idx_lyrics_user_year,priority:2"`
	Content string `json:"content" gorm:"not null"`

	// PlainText and SearchIndex are derived from Content on every save that
	// modifies it; see service.PrepareForSave.
	PlainText   string `json:"plain_text"`
	SearchIndex string `json:"-"`

	UserID     uint     `json:"user_id" gorm:"not null;index;index:idx_lyrics_user_poet,priority:1;index:idx_lyrics_user_year,priority:1;index:idx_lyrics_user_category,priority:1"`
	User       User     `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	CategoryID uint     `json:"category_id" gorm:"not null;index:idx_lyrics_user_category,priority:2"`
	Category   Category `json:"-" gorm:"foreignKey:CategoryID;references:ID"`

	Tags        []string      `json:"tags" gorm:"serializer:json;type:text"`
	Language    string        `json:"language" gorm:"default:urdu"`
	Attachments []Attachment  `json:"attachments" gorm:"serializer:json;type:text"`
	Metadata    LyricMetadata `json:"metadata" gorm:"embedded;embeddedPrefix:meta_"`

	Status     string `json:"status" gorm:"default:published;index"`
	Visibility string `json:"visibility" gorm:"default:private"`

	IsFavorite bool   `json:"is_favorite" gorm:"default:false"`
	IsPinned   bool   `json:"is_pinned" gorm:"default:false"`
	IsLocked   bool   `json:"is_locked" gorm:"default:false"`
	LockPin    string `json:"-"` // plaintext PIN, compared only in AuthorizeMutation

	ViewCount    int64          `json:"view_count" gorm:"default:0"`
	Versions     []LyricVersion `json:"versions,omitempty" gorm:"serializer:json;type:text"`
	LastViewedAt *time.Time     `json:"last_viewed_at"`
}

// CategoryRef is the populated category summary embedded in lyric responses.
type CategoryRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}
