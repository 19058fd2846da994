package config

import (
	"testing"
	"time"
)

func TestGetGeminiConfig_Defaults(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("GEMINI_API_URL", "")
	t.Setenv("GEMINI_TIMEOUT_SECONDS", "")

	cfg, err := GetGeminiConfig()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if cfg.Model != DefaultGeminiModel {
		t.Errorf("unexpected model: %s", cfg.Model)
	}
	if cfg.ApiUrl != DefaultGeminiApiUrl {
		t.Errorf("unexpected api url: %s", cfg.ApiUrl)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("unexpected timeout: %s", cfg.Timeout)
	}
}

func TestGetGeminiConfig_MissingKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")

	if _, err := GetGeminiConfig(); err == nil {
		t.Fatal("expected an error when GOOGLE_API_KEY is unset")
	}
}

func TestGetGeminiConfig_BadTimeout(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("GEMINI_TIMEOUT_SECONDS", "sixty")

	if _, err := GetGeminiConfig(); err == nil {
		t.Fatal("expected an error for a non-numeric timeout")
	}
}
