package utils

import (
	"regexp"
	"time"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)
	colorRe    = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	upperRe    = regexp.MustCompile(`[A-Z]`)
	digitRe    = regexp.MustCompile(`[0-9]`)
)

// ValidateUsername checks if the username meets the requirements.
func ValidateUsername(username string) (bool, string) {
	if len(username) < 3 || len(username) > 30 {
		return false, "username must be between 3 and 30 characters"
	}
	if !usernameRe.MatchString(username) {
		return false, "username can only contain letters, numbers, and underscores"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements.
// Returns true if valid, otherwise false and an error message.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 6 {
		return false, "password must be at least 6 characters long"
	}
	if !lowerRe.MatchString(password) || !upperRe.MatchString(password) || !digitRe.MatchString(password) {
		return false, "password must contain at least one uppercase letter, one lowercase letter, and one number"
	}
	return true, ""
}

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidateColor accepts #RGB and #RRGGBB hex colors.
func ValidateColor(color string) bool {
	return colorRe.MatchString(color)
}

// ValidateYear bounds a lyric's year between 100 and next year.
func ValidateYear(year int) bool {
	return year >= 100 && year <= time.Now().Year()+1
}
