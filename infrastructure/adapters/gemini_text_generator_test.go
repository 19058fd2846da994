package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Igormartins234/backend-ia-historia/config"
	"github.com/Igormartins234/backend-ia-historia/domain"
)

func newTestGenerator(t *testing.T, serverURL string) *geminiTextGenerator {
	t.Helper()

	logger := NewZerologWrapper()
	geminiConfig := &config.GeminiConfig{
		ApiUrl:  serverURL,
		ApiKey:  "test-key",
		Model:   "gemini-1.5-flash-latest",
		Timeout: 5 * time.Second,
	}
	fetcher := NewContentFetcher(geminiConfig.Timeout, logger)

	return NewGeminiTextGenerator(fetcher, geminiConfig, logger).(*geminiTextGenerator)
}

func TestGeminiTextGenerator_Success(t *testing.T) {
	reply := `{"candidates":[{"content":{"parts":[{"text":"{\"titulo\":\"T\",\"conteudo\":\"C\"}"}]}}]}`

	var gotPath, gotKey string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reply))
	}))
	defer server.Close()

	generator := newTestGenerator(t, server.URL)

	text, err := generator.GenerateText(context.Background(), "conte uma história")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if text != `{"titulo":"T","conteudo":"C"}` {
		t.Errorf("unexpected text: %s", text)
	}

	if gotPath != "/models/gemini-1.5-flash-latest:generateContent" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("unexpected api key header: %s", gotKey)
	}

	var sent geminiRequest
	if err := json.Unmarshal(gotBody, &sent); err != nil {
		t.Fatal("request body is not valid JSON:", err)
	}
	if sent.GenerationConfig.ResponseMimeType != "application/json" {
		t.Errorf("JSON output was not requested: %+v", sent.GenerationConfig)
	}
	if len(sent.Contents) != 1 || len(sent.Contents[0].Parts) != 1 {
		t.Fatalf("unexpected contents shape: %+v", sent.Contents)
	}
	if !strings.Contains(sent.Contents[0].Parts[0].Text, "conte uma história") {
		t.Errorf("prompt missing from request: %s", sent.Contents[0].Parts[0].Text)
	}
}

func TestGeminiTextGenerator_EmptyReplies(t *testing.T) {
	cases := map[string]string{
		"no candidates":   `{"candidates":[]}`,
		"null candidates": `{}`,
		"no content":      `{"candidates":[{}]}`,
		"no parts":        `{"candidates":[{"content":{"parts":[]}}]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			generator := newTestGenerator(t, server.URL)

			_, err := generator.GenerateText(context.Background(), "prompt")

			var storyErr *domain.StoryError
			if !errors.As(err, &storyErr) {
				t.Fatalf("expected a StoryError, got %v", err)
			}
			if storyErr.Kind != domain.ErrorKindEmptyResponse {
				t.Errorf("expected kind %s, got %s", domain.ErrorKindEmptyResponse, storyErr.Kind)
			}
		})
	}
}

func TestGeminiTextGenerator_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer server.Close()

	generator := newTestGenerator(t, server.URL)

	_, err := generator.GenerateText(context.Background(), "prompt")

	var storyErr *domain.StoryError
	if !errors.As(err, &storyErr) {
		t.Fatalf("expected a StoryError, got %v", err)
	}
	if storyErr.Kind != domain.ErrorKindUpstream {
		t.Errorf("expected kind %s, got %s", domain.ErrorKindUpstream, storyErr.Kind)
	}
}

func TestGeminiTextGenerator_MalformedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	generator := newTestGenerator(t, server.URL)

	_, err := generator.GenerateText(context.Background(), "prompt")

	var storyErr *domain.StoryError
	if !errors.As(err, &storyErr) {
		t.Fatalf("expected a StoryError, got %v", err)
	}
	if storyErr.Kind != domain.ErrorKindUpstream {
		t.Errorf("expected kind %s, got %s", domain.ErrorKindUpstream, storyErr.Kind)
	}
}
