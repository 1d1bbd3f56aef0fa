package service

import (
	"testing"

	"bayaaz-server/internal/common"
)

func assertServiceError(t *testing.T, err error, code common.ErrorCode) *common.ServiceError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	serviceErr, ok := common.AsServiceError(err)
	if !ok {
		t.Fatalf("expected ServiceError, got %T: %v", err, err)
	}
	if serviceErr.Code != code {
		t.Fatalf("error code = %s, want %s (%s)", serviceErr.Code, code, serviceErr.Message)
	}
	return serviceErr
}

func TestCreateDefaultCategories(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")

	if err := ts.categories.CreateDefaultCategories(user.ID); err != nil {
		t.Fatalf("seed defaults: %v", err)
	}

	categories, err := ts.categories.List(user.ID, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(categories) != 6 {
		t.Fatalf("defaults = %d, want 6", len(categories))
	}
	for i, category := range categories {
		if !category.IsDefault {
			t.Errorf("category %q not marked default", category.Name)
		}
		if category.Order != i {
			t.Errorf("category %q order = %d, want %d", category.Name, category.Order, i)
		}
	}
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")
	other := newTestUser(t, ts, "reader")

	if _, err := ts.categories.Create(user.ID, CategoryInput{Name: "Ghazal"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := ts.categories.Create(user.ID, CategoryInput{Name: "Ghazal"})
	assertServiceError(t, err, common.ErrorCodeConflict)

	// Same name for a different user is fine.
	if _, err := ts.categories.Create(other.ID, CategoryInput{Name: "Ghazal"}); err != nil {
		t.Fatalf("create for second user: %v", err)
	}
}

func TestCreateCategoryAssignsNextOrder(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")
	if err := ts.categories.CreateDefaultCategories(user.ID); err != nil {
		t.Fatalf("seed defaults: %v", err)
	}

	category, err := ts.categories.Create(user.ID, CategoryInput{Name: "Ghazal"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if category.Order != 6 {
		t.Errorf("order = %d, want 6 (after six defaults)", category.Order)
	}
}

func TestUpdateDefaultCategoryForbidden(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")
	if err := ts.categories.CreateDefaultCategories(user.ID); err != nil {
		t.Fatalf("seed defaults: %v", err)
	}
	categories, _ := ts.categories.List(user.ID, true)

	name := "Renamed"
	_, err := ts.categories.Update(user.ID, categories[0].ID, CategoryUpdate{Name: &name})
	assertServiceError(t, err, common.ErrorCodeForbidden)

	err = ts.categories.Delete(user.ID, categories[0].ID)
	assertServiceError(t, err, common.ErrorCodeForbidden)
}

func TestDeleteCategoryWithLyrics(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")
	category := newTestCategory(t, ts, user.ID, "Ghazal")

	var lyricIDs []uint
	for i := 0; i < 3; i++ {
		lyric := newTestLyric(t, ts, user.ID, category.ID, "Title", "content")
		lyricIDs = append(lyricIDs, lyric.ID)
	}

	err := ts.categories.Delete(user.ID, category.ID)
	serviceErr := assertServiceError(t, err, common.ErrorCodeConflict)
	if count, ok := serviceErr.Details["lyrics_count"].(int64); !ok || count != 3 {
		t.Errorf("lyrics_count detail = %v, want 3", serviceErr.Details["lyrics_count"])
	}

	for _, id := range lyricIDs {
		if err := ts.lyricSvc.Delete(user.ID, id, ""); err != nil {
			t.Fatalf("delete lyric: %v", err)
		}
	}
	if err := ts.categories.Delete(user.ID, category.ID); err != nil {
		t.Fatalf("delete after reassignment: %v", err)
	}
}

func TestReorderCategories(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")
	other := newTestUser(t, ts, "reader")

	a := newTestCategory(t, ts, user.ID, "A")
	b := newTestCategory(t, ts, user.ID, "B")
	foreign := newTestCategory(t, ts, other.ID, "C")

	err := ts.categories.Reorder(user.ID, []CategoryOrder{
		{CategoryID: a.ID, Order: 1},
		{CategoryID: foreign.ID, Order: 0},
	})
	assertServiceError(t, err, common.ErrorCodeNotFound)

	// The failed call must not have moved anything.
	got, _ := ts.categories.Get(user.ID, a.ID)
	if got.Order != a.Order {
		t.Errorf("order changed after failed reorder: %d", got.Order)
	}

	if err := ts.categories.Reorder(user.ID, []CategoryOrder{
		{CategoryID: a.ID, Order: 1},
		{CategoryID: b.ID, Order: 0},
	}); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	got, _ = ts.categories.Get(user.ID, a.ID)
	if got.Order != 1 {
		t.Errorf("a.Order = %d, want 1", got.Order)
	}
}

func TestReorderValidation(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")

	err := ts.categories.Reorder(user.ID, nil)
	assertServiceError(t, err, common.ErrorCodeValidation)

	err = ts.categories.Reorder(user.ID, []CategoryOrder{{CategoryID: 0, Order: 0}})
	assertServiceError(t, err, common.ErrorCodeValidation)
}

func TestToggleArchive(t *testing.T) {
	ts := setupServices(t)
	user := newTestUser(t, ts, "poet")
	category := newTestCategory(t, ts, user.ID, "Ghazal")

	archived, err := ts.categories.ToggleArchive(user.ID, category.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !archived.IsArchived {
		t.Error("expected archived")
	}

	// Archived categories drop out of the default listing.
	visible, _ := ts.categories.List(user.ID, false)
	for _, c := range visible {
		if c.ID == category.ID {
			t.Error("archived category still listed")
		}
	}
}
