package repository

import (
	"gorm.io/gorm"
)

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func NewCategoryRepository(db *gorm.DB) CategoryStore {
	return &CategoryRepository{db: db}
}

func NewLyricRepository(db *gorm.DB) LyricStore {
	return &LyricRepository{db: db}
}
