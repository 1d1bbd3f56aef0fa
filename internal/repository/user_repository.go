package repository

import "bayaaz-server/internal/model"

type UserField string

const (
	UserFieldUsername UserField = "username"
	UserFieldEmail    UserField = "email"
)

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	Save(user *model.User) error
	FieldExists(field UserField, value string, excludeUserID *uint) (bool, error)
	// DeleteAccountCascade removes the user together with every owned lyric
	// and category in a single transaction.
	DeleteAccountCascade(userID uint) error
}
