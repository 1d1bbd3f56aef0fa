package model

import (
	"time"
)

type Profile struct {
	FirstName string `json:"first_name" gorm:"size:50"`
	LastName  string `json:"last_name" gorm:"size:50"`
	Avatar    string `json:"avatar"`
	Bio       string `json:"bio" gorm:"size:500"`
}

type Preferences struct {
	Theme         string `json:"theme" gorm:"default:light"` // light, dark, auto
	FontSize      int    `json:"font_size" gorm:"default:16"`
	AutoSync      bool   `json:"auto_sync" gorm:"default:true"`
	Notifications bool   `json:"notifications" gorm:"default:true"`
}

type Subscription struct {
	Type      string     `json:"type" gorm:"default:free"` // free, premium
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type UserStats struct {
	TotalLyrics     int64      `json:"total_lyrics" gorm:"default:0"`
	TotalCategories int64      `json:"total_categories" gorm:"default:0"`
	StorageUsed     int64      `json:"storage_used" gorm:"default:0"` // bytes
	LastLogin       *time.Time `json:"last_login"`
}

type User struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Username     string       `json:"username" gorm:"unique;not null;size:30"`
	Email        string       `json:"email" gorm:"unique;index;size:255;not null"`
	Password     string       `json:"-" gorm:"not null"`
	Profile      Profile      `json:"profile" gorm:"embedded;embeddedPrefix:profile_"`
	Preferences  Preferences  `json:"preferences" gorm:"embedded;embeddedPrefix:pref_"`
	Subscription Subscription `json:"subscription" gorm:"embedded;embeddedPrefix:sub_"`
	Stats        UserStats    `json:"stats" gorm:"embedded;embeddedPrefix:stats_"`
}
