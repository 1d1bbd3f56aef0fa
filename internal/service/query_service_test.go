package service

import (
	"fmt"
	"testing"

	"bayaaz-server/internal/common"
	"bayaaz-server/internal/model"
	repo "bayaaz-server/internal/repository"
)

func TestListLyricsPagination(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")
	category := newTestCategory(t, ts, user.ID, "Nauha")

	for i := 0; i < 25; i++ {
		newTestLyric(t, ts, user.ID, category.ID, fmt.Sprintf("Lyric %02d", i), "content")
	}

	result, err := ts.querySvc.ListLyrics(user.ID, repo.LyricFilter{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Pagination.Total != 25 {
		t.Errorf("total = %d, want 25", result.Pagination.Total)
	}
	if result.Pagination.Pages != 3 {
		t.Errorf("pages = %d, want 3", result.Pagination.Pages)
	}
	if len(result.Lyrics) != 10 {
		t.Errorf("page size = %d, want 10", len(result.Lyrics))
	}
}

func TestListLyricsFilters(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")
	other := newTestUser(t, ts, "reader")
	nauha := newTestCategory(t, ts, user.ID, "Nauha")
	salaam := newTestCategory(t, ts, user.ID, "Salaam")
	foreign := newTestCategory(t, ts, other.ID, "Nauha")

	mk := func(title, poet string, year int, categoryID uint, tags []string) *model.Lyric {
		lyric, err := ts.lyricSvc.Create(user.ID, LyricInput{
			Title: title, Poet: poet, Year: year, Content: "content",
			CategoryID: categoryID, Tags: tags,
		})
		if err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
		return lyric
	}
	mk("One", "Mir Anees", 1850, nauha.ID, []string{"karbala"})
	mk("Two", "Mir Anees", 1855, salaam.ID, nil)
	mk("Three", "Josh", 1950, nauha.ID, []string{"muharram"})
	newTestLyric(t, ts, other.ID, foreign.ID, "Foreign", "content")

	// Category + poet substring, AND-combined.
	result, err := ts.querySvc.ListLyrics(user.ID, repo.LyricFilter{CategoryID: nauha.ID, Poet: "anees"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Lyrics) != 1 || result.Lyrics[0].Title != "One" {
		t.Errorf("filtered result = %d lyrics", len(result.Lyrics))
	}

	// Tag any-of membership.
	result, _ = ts.querySvc.ListLyrics(user.ID, repo.LyricFilter{Tags: []string{"karbala", "muharram"}})
	if len(result.Lyrics) != 2 {
		t.Errorf("tag filter = %d lyrics, want 2", len(result.Lyrics))
	}

	// Year exact.
	result, _ = ts.querySvc.ListLyrics(user.ID, repo.LyricFilter{Year: 1950})
	if len(result.Lyrics) != 1 || result.Lyrics[0].Title != "Three" {
		t.Errorf("year filter mismatch")
	}

	// Never another user's rows.
	result, _ = ts.querySvc.ListLyrics(user.ID, repo.LyricFilter{})
	for _, lyric := range result.Lyrics {
		if lyric.UserID != user.ID {
			t.Fatalf("leaked lyric owned by %d", lyric.UserID)
		}
	}
}

func TestListLyricsPinnedFirst(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")
	category := newTestCategory(t, ts, user.ID, "Nauha")

	newTestLyric(t, ts, user.ID, category.ID, "AAA Plain", "content")
	pinned := newTestLyric(t, ts, user.ID, category.ID, "ZZZ Pinned", "content")
	if _, err := ts.lyricSvc.TogglePin(user.ID, pinned.ID); err != nil {
		t.Fatalf("pin: %v", err)
	}

	result, err := ts.querySvc.ListLyrics(user.ID, repo.LyricFilter{SortBy: "title"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Lyrics) != 2 || result.Lyrics[0].ID != pinned.ID {
		t.Errorf("pinned lyric not surfaced first")
	}
}

func TestStatistics(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")
	nauha := newTestCategory(t, ts, user.ID, "Nauha")
	salaam := newTestCategory(t, ts, user.ID, "Salaam")

	mk := func(title, poet string, categoryID uint, tags []string) *model.Lyric {
		lyric, err := ts.lyricSvc.Create(user.ID, LyricInput{
			Title: title, Poet: poet, Content: "content", CategoryID: categoryID, Tags: tags,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		return lyric
	}
	a := mk("One", "Mir Anees", nauha.ID, []string{"karbala", "muharram"})
	mk("Two", "Mir Anees", nauha.ID, []string{"karbala"})
	mk("Three", "Josh", salaam.ID, nil)

	if _, err := ts.lyricSvc.ToggleFavorite(user.ID, a.ID); err != nil {
		t.Fatalf("favorite: %v", err)
	}
	// Two views on one lyric.
	ts.lyricSvc.Get(user.ID, a.ID)
	ts.lyricSvc.Get(user.ID, a.ID)

	stats, err := ts.querySvc.Statistics(user.ID)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalLyrics != 3 {
		t.Errorf("total lyrics = %d", stats.TotalLyrics)
	}
	if stats.TotalViews != 2 {
		t.Errorf("total views = %d", stats.TotalViews)
	}
	if stats.FavoritesCount != 1 {
		t.Errorf("favorites = %d", stats.FavoritesCount)
	}
	if stats.DistinctPoets != 2 {
		t.Errorf("distinct poets = %d", stats.DistinctPoets)
	}
	if stats.DistinctTags != 2 {
		t.Errorf("distinct tags = %d, want 2 (flattened)", stats.DistinctTags)
	}
	if len(stats.CategoryBreakdown) != 2 {
		t.Fatalf("breakdown rows = %d", len(stats.CategoryBreakdown))
	}
	// Sorted by count descending.
	if stats.CategoryBreakdown[0].Name != "Nauha" || stats.CategoryBreakdown[0].Count != 2 {
		t.Errorf("breakdown[0] = %+v", stats.CategoryBreakdown[0])
	}
}

func TestSearchQueryLength(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")

	_, err := ts.querySvc.Search(user.ID, "a", SearchScopeAll, "", 1, 20)
	assertServiceError(t, err, common.ErrorCodeValidation)

	_, err = ts.querySvc.Search(user.ID, "  a  ", SearchScopeAll, "", 1, 20)
	assertServiceError(t, err, common.ErrorCodeValidation)

	if _, err := ts.querySvc.Search(user.ID, "ab", SearchScopeAll, "", 1, 20); err != nil {
		t.Fatalf("two-character query must succeed: %v", err)
	}

	// Length is counted in runes, not bytes, so a single Urdu letter is
	// still a one-character query.
	_, err = ts.querySvc.Search(user.ID, "م", SearchScopeAll, "", 1, 20)
	assertServiceError(t, err, common.ErrorCodeValidation)

	if _, err := ts.querySvc.Search(user.ID, "حر", SearchScopeAll, "", 1, 20); err != nil {
		t.Fatalf("two-letter urdu query must succeed: %v", err)
	}
}

func TestSearchReturnsOnlyPublishedLyrics(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")
	category := newTestCategory(t, ts, user.ID, "Nauha")
	lyric := newTestLyric(t, ts, user.ID, category.ID, "Shab e Karbala", "karbala ki raat")

	draft := model.LyricStatusDraft
	if _, err := ts.lyricSvc.Update(user.ID, lyric.ID, LyricUpdate{Status: &draft}); err != nil {
		t.Fatalf("update: %v", err)
	}

	result, err := ts.querySvc.Search(user.ID, "karbala", SearchScopeLyrics, "", 1, 20)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result.Lyrics) != 0 {
		t.Errorf("draft lyric surfaced in search: %d hits", len(result.Lyrics))
	}

	published := model.LyricStatusPublished
	if _, err := ts.lyricSvc.Update(user.ID, lyric.ID, LyricUpdate{Status: &published}); err != nil {
		t.Fatalf("update: %v", err)
	}
	result, err = ts.querySvc.Search(user.ID, "karbala", SearchScopeLyrics, "", 1, 20)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result.Lyrics) != 1 {
		t.Errorf("published lyric hits = %d, want 1", len(result.Lyrics))
	}
}

func TestListLyricsSearchKeepsSortKey(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")
	category := newTestCategory(t, ts, user.ID, "Nauha")
	newTestLyric(t, ts, user.ID, category.ID, "Zainab Karbala", "zikr e husain")
	newTestLyric(t, ts, user.ID, category.ID, "Aansu", "dastan e karbala")

	result, err := ts.querySvc.ListLyrics(user.ID, repo.LyricFilter{Search: "karbala", SortBy: "title"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Lyrics) != 2 {
		t.Fatalf("hits = %d, want 2", len(result.Lyrics))
	}
	if result.Lyrics[0].Title != "Aansu" {
		t.Errorf("first title = %q, want title-ascending order", result.Lyrics[0].Title)
	}
}

func TestSearchScopes(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")
	category := newTestCategory(t, ts, user.ID, "Karbala Collection")
	newTestLyric(t, ts, user.ID, category.ID, "Night of Karbala", "the plains of karbala")

	result, err := ts.querySvc.Search(user.ID, "karbala", SearchScopeAll, "", 1, 20)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result.Lyrics) != 1 {
		t.Errorf("lyric hits = %d", len(result.Lyrics))
	}
	if result.LyricsMeta == nil || result.LyricsMeta.Total != 1 {
		t.Errorf("lyric pagination missing or wrong")
	}
	if len(result.Categories) != 1 {
		t.Errorf("category hits = %d", len(result.Categories))
	}
	if result.CategoriesTotal == nil || *result.CategoriesTotal != 1 {
		t.Error("category total missing or wrong")
	}

	lyricsOnly, err := ts.querySvc.Search(user.ID, "karbala", SearchScopeLyrics, "", 1, 20)
	if err != nil {
		t.Fatalf("search lyrics: %v", err)
	}
	if lyricsOnly.Categories != nil {
		t.Error("lyrics scope must not return categories")
	}

	categoriesOnly, err := ts.querySvc.Search(user.ID, "karbala", SearchScopeCategories, "", 1, 20)
	if err != nil {
		t.Fatalf("search categories: %v", err)
	}
	if categoriesOnly.Lyrics != nil {
		t.Error("categories scope must not return lyrics")
	}
	if lyricsOnly.CategoriesTotal != nil {
		t.Error("lyrics scope must not carry a category total")
	}
}

func TestSearchRelevanceOrdersTitleMatchFirst(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")
	category := newTestCategory(t, ts, user.ID, "Nauha")

	newTestLyric(t, ts, user.ID, category.ID, "Other Title", "body mentions karbala here")
	title := newTestLyric(t, ts, user.ID, category.ID, "Karbala", "unrelated body")

	result, err := ts.querySvc.Search(user.ID, "karbala", SearchScopeLyrics, "", 1, 20)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result.Lyrics) != 2 {
		t.Fatalf("hits = %d, want 2", len(result.Lyrics))
	}
	if result.Lyrics[0].ID != title.ID {
		t.Errorf("title match not ranked first")
	}
}
