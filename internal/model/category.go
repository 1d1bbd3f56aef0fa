package model

import "time"

type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name" gorm:"not null;size:50;uniqueIndex:idx_categories_name_user"`
	Description string    `json:"description" gorm:"size:200"`
	Color       string    `json:"color" gorm:"default:#6366f1"`
	Icon        string    `json:"icon" gorm:"default:book"`
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_categories_name_user;index"`
	IsDefault   bool      `json:"is_default" gorm:"default:false"`
	IsArchived  bool      `json:"is_archived" gorm:"default:false"`
	Order       int       `json:"order" gorm:"column:sort_order;default:0"`
}
