package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	DefaultGeminiModel  = "gemini-1.5-flash-latest"
	DefaultGeminiApiUrl = "https://generativelanguage.googleapis.com/v1beta"

	defaultGeminiTimeoutSeconds = 60
)

type GeminiConfig struct {
	ApiUrl  string
	ApiKey  string
	Model   string
	Timeout time.Duration
}

func GetGeminiConfig() (*GeminiConfig, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY must be set")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultGeminiModel
	}

	apiUrl := os.Getenv("GEMINI_API_URL")
	if apiUrl == "" {
		apiUrl = DefaultGeminiApiUrl
	}

	timeoutSeconds := defaultGeminiTimeoutSeconds
	if rawTimeout := os.Getenv("GEMINI_TIMEOUT_SECONDS"); rawTimeout != "" {
		parsed, err := strconv.Atoi(rawTimeout)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("GEMINI_TIMEOUT_SECONDS must be a positive integer, got %q", rawTimeout)
		}
		timeoutSeconds = parsed
	}

	return &GeminiConfig{
		ApiUrl:  apiUrl,
		ApiKey:  apiKey,
		Model:   model,
		Timeout: time.Duration(timeoutSeconds) * time.Second,
	}, nil
}
