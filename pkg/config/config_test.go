package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("NOTIFX_PROVIDER", "")
	t.Setenv("APP_BASE_URL", "https://journals.example.org/")

	cfg := Load()

	if cfg.Notifx.Provider != "console" {
		t.Fatalf("expected console provider, got %s", cfg.Notifx.Provider)
	}
	if cfg.App.BaseURL != "https://journals.example.org" {
		t.Fatalf("expected trailing slash to be trimmed, got %s", cfg.App.BaseURL)
	}
	if !cfg.Notifx.Enabled {
		t.Fatal("mail should be enabled by default")
	}
}

func TestGetters_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("X_INT", "nope")
	t.Setenv("X_DUR", "soon")
	t.Setenv("X_BOOL", "maybe")
	t.Setenv("X_LIST", " a, ,b ")

	if getEnvInt("X_INT", 3) != 3 {
		t.Fatal("invalid int should fall back")
	}
	if getEnvDuration("X_DUR", time.Second) != time.Second {
		t.Fatal("invalid duration should fall back")
	}
	if getEnvBool("X_BOOL", true) != true {
		t.Fatal("invalid bool should fall back")
	}
	list := getEnvStringSlice("X_LIST", nil)
	if len(list) != 2 || list[0] != "a" || list[1] != "b" {
		t.Fatalf("unexpected list %v", list)
	}
}
