package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %s", cfg.Addr)
	}
	if cfg.DataFile != "data/hrpro.json" {
		t.Fatalf("expected default data file, got %s", cfg.DataFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("ASSISTANT_TIMEOUT", "5s")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")

	cfg := Load()
	if cfg.Addr != ":9090" {
		t.Fatalf("expected :9090, got %s", cfg.Addr)
	}
	if cfg.AssistantTimeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", cfg.AssistantTimeout)
	}
	if cfg.GeminiModel != "gemini-2.5-pro" {
		t.Fatalf("expected model override, got %s", cfg.GeminiModel)
	}
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.DataFile = " "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for blank data file")
	}

	cfg = Load()
	cfg.AssistantTimeout = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}
