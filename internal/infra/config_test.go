package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("RENDER_TIMEOUT_SECONDS", "")
	t.Setenv("RENDER_MAX_CONCURRENT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.GeminiAPIKey != "" {
		t.Fatalf("GeminiAPIKey = %q, want empty", cfg.GeminiAPIKey)
	}
	if cfg.RenderTimeout != 240*time.Second {
		t.Fatalf("RenderTimeout = %v, want 240s", cfg.RenderTimeout)
	}
	if cfg.RenderMaxJobs != 2 {
		t.Fatalf("RenderMaxJobs = %d, want 2", cfg.RenderMaxJobs)
	}
	if cfg.ManimBinary != "manim" {
		t.Fatalf("ManimBinary = %q, want manim", cfg.ManimBinary)
	}
}

func TestLoadConfigMissingAPIKeyIsNotFatal(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := LoadConfig(); err != nil {
		t.Fatalf("LoadConfig should tolerate a missing API key, got %v", err)
	}
}

func TestLoadConfigRejectsNonPositiveRenderTimeout(t *testing.T) {
	t.Setenv("RENDER_TIMEOUT_SECONDS", "0")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for zero render timeout")
	}
}

func TestLoadConfigTrimsAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "  key-123  ")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.GeminiAPIKey != "key-123" {
		t.Fatalf("GeminiAPIKey = %q, want key-123", cfg.GeminiAPIKey)
	}
}

func TestLoadConfigAllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("AllowedOrigins = %#v", cfg.AllowedOrigins)
	}
}
