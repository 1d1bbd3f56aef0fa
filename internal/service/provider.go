package service

import (
	repo "bayaaz-server/internal/repository"
)

// LyricCounter is the narrow capability the category manager needs from the
// lyric side: how many lyrics still reference a category.
type LyricCounter interface {
	CountByCategory(userID, categoryID uint) (int64, error)
}

type AuthService struct {
	users      repo.UserStore
	lyrics     repo.LyricStore
	categories *CategoryService
}

type CategoryService struct {
	categories   repo.CategoryStore
	lyricCounter LyricCounter
}

type LyricService struct {
	lyrics     repo.LyricStore
	categories repo.CategoryStore
}

type QueryService struct {
	lyrics     repo.LyricStore
	categories repo.CategoryStore
}

type UserService struct {
	users      repo.UserStore
	lyrics     repo.LyricStore
	categories repo.CategoryStore
}

func NewAuthService(users repo.UserStore, lyrics repo.LyricStore, categories *CategoryService) *AuthService {
	return &AuthService{users: users, lyrics: lyrics, categories: categories}
}

func NewCategoryService(categories repo.CategoryStore, lyrics repo.LyricStore) *CategoryService {
	return &CategoryService{categories: categories, lyricCounter: lyrics}
}

func NewLyricService(lyrics repo.LyricStore, categories repo.CategoryStore) *LyricService {
	return &LyricService{lyrics: lyrics, categories: categories}
}

func NewQueryService(lyrics repo.LyricStore, categories repo.CategoryStore) *QueryService {
	return &QueryService{lyrics: lyrics, categories: categories}
}

func NewUserService(users repo.UserStore, lyrics repo.LyricStore, categories repo.CategoryStore) *UserService {
	return &UserService{users: users, lyrics: lyrics, categories: categories}
}
