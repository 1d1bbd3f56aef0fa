package config_test

import (
	"testing"

	"bayaaz-server/internal/config"
	"bayaaz-server/internal/testutils"
)

func TestConfigDefaults(t *testing.T) {
	config.InitConfig(t.TempDir())

	cfg := config.Get()
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Database.Type != "sqlite" {
		t.Errorf("database type = %q", cfg.Database.Type)
	}
	if cfg.JWT.ExpirationHours != 168 {
		t.Errorf("jwt expiration = %d hours", cfg.JWT.ExpirationHours)
	}
	if !cfg.Rate.Enabled || cfg.Rate.AuthBurst != 5 {
		t.Errorf("rate config = %+v", cfg.Rate)
	}
}

func TestConfigEnvOverride(t *testing.T) {
	saved := []testutils.SavedEnv{
		testutils.SetEnv("BAYAAZ_SERVER_PORT", "9090"),
		testutils.SetEnv("BAYAAZ_JWT_SECRET", "env-secret"),
		testutils.SetEnv("BAYAAZ_JWT_EXPIRATION_HOURS", "24"),
	}
	defer testutils.RestoreEnv(saved)

	config.InitConfig(t.TempDir())

	cfg := config.Get()
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want env override 9090", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("jwt secret = %q, want env override", cfg.JWT.Secret)
	}
	if cfg.JWT.ExpirationHours != 24 {
		t.Errorf("jwt expiration = %d hours, want 24", cfg.JWT.ExpirationHours)
	}
}

func TestDevModeFallsBackToDefaultSecret(t *testing.T) {
	saved := []testutils.SavedEnv{
		testutils.SetEnv("BAYAAZ_SERVER_MODE", "debug"),
		testutils.SetEnv("BAYAAZ_JWT_SECRET", ""),
	}
	defer testutils.RestoreEnv(saved)

	config.InitConfig(t.TempDir())

	if config.Get().JWT.Secret != "bayaaz_secret" {
		t.Errorf("jwt secret = %q, want the dev fallback", config.Get().JWT.Secret)
	}
}

func TestReleaseModeAcceptsCustomSecret(t *testing.T) {
	saved := []testutils.SavedEnv{
		testutils.SetEnv("BAYAAZ_SERVER_MODE", "release"),
		testutils.SetEnv("BAYAAZ_JWT_SECRET", "release-grade-secret"),
	}
	defer testutils.RestoreEnv(saved)

	config.InitConfig(t.TempDir())

	cfg := config.Get()
	if cfg.Server.Mode != "release" {
		t.Errorf("mode = %q", cfg.Server.Mode)
	}
	if cfg.JWT.Secret != "release-grade-secret" {
		t.Errorf("jwt secret = %q", cfg.JWT.Secret)
	}
}
