package service

import (
	"errors"
	"strings"
	"time"

	"bayaaz-server/internal/common"
	"bayaaz-server/internal/config"
	"bayaaz-server/internal/model"
	repo "bayaaz-server/internal/repository"
	"bayaaz-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type AuthResult struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func tokenDuration() time.Duration {
	return time.Duration(config.Get().JWT.ExpirationHours) * time.Hour
}

// Register creates the account, seeds the six default categories and issues
// a login token.
func (s *AuthService) Register(input RegisterInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if ok, msg := utils.ValidateUsername(input.Username); !ok {
		return nil, common.NewValidationError(msg)
	}
	if !utils.ValidateEmail(input.Email) {
		return nil, common.NewValidationError("please provide a valid email address")
	}
	if ok, msg := utils.ValidatePassword(input.Password); !ok {
		return nil, common.NewValidationError(msg)
	}

	if exists, err := s.users.FieldExists(repo.UserFieldUsername, input.Username, nil); err != nil {
		return nil, common.NewInternalError("failed to check username")
	} else if exists {
		return nil, common.NewConflictError("username is already taken")
	}
	if exists, err := s.users.FieldExists(repo.UserFieldEmail, input.Email, nil); err != nil {
		return nil, common.NewInternalError("failed to check email")
	} else if exists {
		return nil, common.NewConflictError("email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewInternalError("failed to hash password")
	}

	user := &model.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		Preferences: model.Preferences{
			Theme:         "light",
			FontSize:      16,
			AutoSync:      true,
			Notifications: true,
		},
		Subscription: model.Subscription{Type: "free"},
	}
	if err := s.users.Create(user); err != nil {
		return nil, common.NewInternalError("failed to create user")
	}

	if err := s.categories.CreateDefaultCategories(user.ID); err != nil {
		return nil, err
	}
	user.Stats.TotalCategories = int64(len(defaultCategories))
	if err := s.users.Save(user); err != nil {
		return nil, common.NewInternalError("failed to update user stats")
	}

	token, err := utils.GenerateLoginToken(user.ID, user.Username, tokenDuration())
	if err != nil {
		return nil, common.NewInternalError("failed to issue token")
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Login authenticates by email and password and refreshes the stored stats
// snapshot on success.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, common.NewValidationError("email and password are required")
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewUnauthorizedError("invalid email or password")
		}
		return nil, common.NewInternalError("failed to fetch user")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, common.NewUnauthorizedError("invalid email or password")
	}

	if err := s.refreshStats(user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateLoginToken(user.ID, user.Username, tokenDuration())
	if err != nil {
		return nil, common.NewInternalError("failed to issue token")
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) refreshStats(user *model.User) error {
	totalLyrics, err := s.lyrics.CountByUser(user.ID)
	if err != nil {
		return common.NewInternalError("failed to refresh stats")
	}
	totalCategories, err := s.categories.CountForUser(user.ID)
	if err != nil {
		return common.NewInternalError("failed to refresh stats")
	}
	now := time.Now()
	user.Stats.TotalLyrics = totalLyrics
	user.Stats.TotalCategories = totalCategories
	user.Stats.LastLogin = &now
	if err := s.users.Save(user); err != nil {
		return common.NewInternalError("failed to refresh stats")
	}
	return nil
}

func (s *AuthService) Me(userID uint) (*model.User, error) {
	return s.findUser(userID)
}

// RefreshToken re-issues a token for a still-valid session.
func (s *AuthService) RefreshToken(userID uint) (string, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return "", err
	}
	token, err := utils.GenerateLoginToken(user.ID, user.Username, tokenDuration())
	if err != nil {
		return "", common.NewInternalError("failed to issue token")
	}
	return token, nil
}

type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Avatar    *string
	Bio       *string
}

func (s *AuthService) UpdateProfile(userID uint, update ProfileUpdate) (*model.User, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	if update.FirstName != nil {
		if len(*update.FirstName) > 50 {
			return nil, common.NewValidationError("first name cannot exceed 50 characters")
		}
		user.Profile.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		if len(*update.LastName) > 50 {
			return nil, common.NewValidationError("last name cannot exceed 50 characters")
		}
		user.Profile.LastName = *update.LastName
	}
	if update.Avatar != nil {
		user.Profile.Avatar = *update.Avatar
	}
	if update.Bio != nil {
		if len(*update.Bio) > 500 {
			return nil, common.NewValidationError("bio cannot exceed 500 characters")
		}
		user.Profile.Bio = *update.Bio
	}
	if err := s.users.Save(user); err != nil {
		return nil, common.NewInternalError("failed to update profile")
	}
	return user, nil
}

type PreferencesUpdate struct {
	Theme         *string
	FontSize      *int
	AutoSync      *bool
	Notifications *bool
}

func (s *AuthService) UpdatePreferences(userID uint, update PreferencesUpdate) (*model.User, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	if err := applyPreferences(user, update); err != nil {
		return nil, err
	}
	if err := s.users.Save(user); err != nil {
		return nil, common.NewInternalError("failed to update preferences")
	}
	return user, nil
}

func applyPreferences(user *model.User, update PreferencesUpdate) error {
	if update.Theme != nil {
		switch *update.Theme {
		case "light", "dark", "auto":
			user.Preferences.Theme = *update.Theme
		default:
			return common.NewValidationError("theme must be one of light, dark, auto")
		}
	}
	if update.FontSize != nil {
		if *update.FontSize < 10 || *update.FontSize > 32 {
			return common.NewValidationError("font size must be between 10 and 32")
		}
		user.Preferences.FontSize = *update.FontSize
	}
	if update.AutoSync != nil {
		user.Preferences.AutoSync = *update.AutoSync
	}
	if update.Notifications != nil {
		user.Preferences.Notifications = *update.Notifications
	}
	return nil
}

func (s *AuthService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	user, err := s.findUser(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)) != nil {
		return common.NewUnauthorizedError("current password is incorrect")
	}
	if ok, msg := utils.ValidatePassword(newPassword); !ok {
		return common.NewValidationError(msg)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewInternalError("failed to hash password")
	}
	user.Password = string(hashed)
	if err := s.users.Save(user); err != nil {
		return common.NewInternalError("failed to change password")
	}
	return nil
}

func (s *AuthService) ChangeEmail(userID uint, newEmail, password string) (*model.User, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, common.NewUnauthorizedError("password is incorrect")
	}
	newEmail = strings.ToLower(strings.TrimSpace(newEmail))
	if !utils.ValidateEmail(newEmail) {
		return nil, common.NewValidationError("please provide a valid email address")
	}
	exists, err := s.users.FieldExists(repo.UserFieldEmail, newEmail, &userID)
	if err != nil {
		return nil, common.NewInternalError("failed to check email")
	}
	if exists {
		return nil, common.NewConflictError("email is already registered")
	}
	user.Email = newEmail
	if err := s.users.Save(user); err != nil {
		return nil, common.NewInternalError("failed to change email")
	}
	return user, nil
}

// DeleteAccount removes the user and everything they own in one transaction.
func (s *AuthService) DeleteAccount(userID uint, password string) error {
	user, err := s.findUser(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return common.NewUnauthorizedError("password is incorrect")
	}
	if err := s.users.DeleteAccountCascade(userID); err != nil {
		return common.NewInternalError("failed to delete account")
	}
	return nil
}

func (s *AuthService) findUser(userID uint) (*model.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("user not found")
		}
		return nil, common.NewInternalError("failed to fetch user")
	}
	return user, nil
}
