package service

import (
	"regexp"
	"strings"
	"time"

	"bayaaz-server/internal/model"
)

// The lyric save pipeline. Every content-changing write goes through
// PrepareForSave before commit so derivation, view stamping and version
// capping happen in one visible, ordered place instead of scattered hooks.

var (
	markupTagRe  = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// StripMarkup removes markup tags and collapses whitespace. Best effort: the
// content is not validated as HTML, malformed input passes through as-is.
func StripMarkup(content string) string {
	plain := markupTagRe.ReplaceAllString(content, "")
	plain = whitespaceRe.ReplaceAllString(plain, " ")
	return strings.TrimSpace(plain)
}

// BuildSearchIndex derives the lowercase search blob from title, poet,
// tags and plain text.
func BuildSearchIndex(lyric *model.Lyric) string {
	fields := []string{
		lyric.Title,
		lyric.Poet,
		strings.Join(lyric.Tags, " "),
		lyric.PlainText,
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// PrepareForSave runs the save pipeline on a lyric whose fields have already
// been assigned. previousContent is the content as stored before this
// mutation; it becomes the newest version-history entry when content changed
// on an existing lyric. The very first save seeds derived fields without
// writing a history entry.
func PrepareForSave(lyric *model.Lyric, previousContent string, isNew, contentChanged bool) {
	now := time.Now()

	if contentChanged {
		lyric.PlainText = StripMarkup(lyric.Content)
		lyric.SearchIndex = BuildSearchIndex(lyric)
	}

	// Quirk preserved from the previous implementation: saving stamps the
	// last-viewed time even when nothing was viewed.
	lyric.LastViewedAt = &now

	if contentChanged && !isNew {
		entry := model.LyricVersion{
			Content:    previousContent,
			ModifiedAt: now,
			Reason:     "auto-save",
		}
		lyric.Versions = append([]model.LyricVersion{entry}, lyric.Versions...)
		if len(lyric.Versions) > model.VersionHistoryLimit {
			lyric.Versions = lyric.Versions[:model.VersionHistoryLimit]
		}
	}
}

// AuthorizeMutation reports whether a content-changing or deleting operation
// may proceed. The PIN comparison is deliberately concentrated here: it is a
// plaintext, case-sensitive equality today and can become a hashed
// comparison without touching any call site.
func AuthorizeMutation(lyric *model.Lyric, suppliedPin string) bool {
	if !lyric.IsLocked {
		return true
	}
	return suppliedPin == lyric.LockPin
}
