package service

import (
	"testing"

	"bayaaz-server/internal/model"
	repo "bayaaz-server/internal/repository"
	"bayaaz-server/internal/testutils"

	"gorm.io/gorm"
)

type testServices struct {
	db         *gorm.DB
	users      repo.UserStore
	lyrics     repo.LyricStore
	categories *CategoryService
	lyricSvc   *LyricService
	querySvc   *QueryService
	authSvc    *AuthService
	userSvc    *UserService
}

func setupServices(t *testing.T) *testServices {
	t.Helper()
	gdb := testutils.SetupDB(t)

	users := repo.NewUserRepository(gdb)
	categories := repo.NewCategoryRepository(gdb)
	lyrics := repo.NewLyricRepository(gdb)

	categorySvc := NewCategoryService(categories, lyrics)
	return &testServices{
		db:         gdb,
		users:      users,
		lyrics:     lyrics,
		categories: categorySvc,
		lyricSvc:   NewLyricService(lyrics, categories),
		querySvc:   NewQueryService(lyrics, categories),
		authSvc:    NewAuthService(users, lyrics, categorySvc),
		userSvc:    NewUserService(users, lyrics, categories),
	}
}

// newTestUser inserts a user directly, bypassing registration.
func newTestUser(t *testing.T, ts *testServices, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "irrelevant-hash",
	}
	if err := ts.users.Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func newTestCategory(t *testing.T, ts *testServices, userID uint, name string) *model.Category {
	t.Helper()
	category, err := ts.categories.Create(userID, CategoryInput{Name: name})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category
}

func newTestLyric(t *testing.T, ts *testServices, userID, categoryID uint, title, content string) *model.Lyric {
	t.Helper()
	lyric, err := ts.lyricSvc.Create(userID, LyricInput{
		Title:      title,
		Content:    content,
		CategoryID: categoryID,
	})
	if err != nil {
		t.Fatalf("create lyric: %v", err)
	}
	return lyric
}
