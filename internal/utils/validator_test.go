package utils

import (
	"testing"
	"time"
)

func TestValidateUsername(t *testing.T) {
	valid := []string{"abc", "mir_anees", "user123", "A_1"}
	for _, u := range valid {
		if ok, msg := ValidateUsername(u); !ok {
			t.Errorf("ValidateUsername(%q) rejected: %s", u, msg)
		}
	}
	invalid := []string{"ab", "mir anees", "user!", "", "0123456789012345678901234567890"}
	for _, u := range invalid {
		if ok, _ := ValidateUsername(u); ok {
			t.Errorf("ValidateUsername(%q) accepted", u)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("Passw0rd"); !ok {
		t.Error("strong password rejected")
	}
	for _, p := range []string{"short", "alllowercase1", "ALLUPPER1", "NoDigits"} {
		if ok, _ := ValidatePassword(p); ok {
			t.Errorf("ValidatePassword(%q) accepted", p)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if !ValidateEmail("poet@example.com") {
		t.Error("valid email rejected")
	}
	for _, e := range []string{"", "poet", "poet@", "@example.com"} {
		if ValidateEmail(e) {
			t.Errorf("ValidateEmail(%q) accepted", e)
		}
	}
}

func TestValidateColor(t *testing.T) {
	for _, c := range []string{"#fff", "#FF0000", "#6366f1"} {
		if !ValidateColor(c) {
			t.Errorf("ValidateColor(%q) rejected", c)
		}
	}
	for _, c := range []string{"fff", "#ff", "#ggg", "red"} {
		if ValidateColor(c) {
			t.Errorf("ValidateColor(%q) accepted", c)
		}
	}
}

func TestValidateYear(t *testing.T) {
	if !ValidateYear(1850) {
		t.Error("historic year rejected")
	}
	if !ValidateYear(time.Now().Year() + 1) {
		t.Error("next year rejected")
	}
	if ValidateYear(99) || ValidateYear(time.Now().Year()+2) {
		t.Error("out-of-range year accepted")
	}
}
