package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Igormartins234/backend-ia-historia/application/ports/outbound"
	"github.com/Igormartins234/backend-ia-historia/config"
	"github.com/Igormartins234/backend-ia-historia/domain"
)

const jsonMimeType = "application/json"

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiTextGenerator struct {
	logger       outbound.LoggerPort
	geminiConfig *config.GeminiConfig
	ContentFetcher
}

func NewGeminiTextGenerator(contentFetcher ContentFetcher, geminiConfig *config.GeminiConfig, logger outbound.LoggerPort) outbound.StoryTextGeneratorPort {
	return &geminiTextGenerator{
		logger:         logger,
		geminiConfig:   geminiConfig,
		ContentFetcher: contentFetcher,
	}
}

// GenerateText runs one generateContent round trip and returns the text of
// the first part of the first candidate. The candidates, content and parts
// levels may each be absent or empty in a syntactically valid reply, so each
// is checked before the next is touched.
func (g *geminiTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	req, err := g.createRequest(ctx, prompt)
	if err != nil {
		g.logger.Error(err, "Failed to create the Gemini HTTP request")
		return "", domain.WrapStoryError(domain.ErrorKindUpstream, "error communicating with the AI", err)
	}

	rawRes, err := g.FetchContent(req)
	if err != nil {
		g.logger.Error(err, "Failed to fetch content from the Gemini API")
		return "", domain.WrapStoryError(domain.ErrorKindUpstream, "error communicating with the AI", err)
	}

	var geminiRes geminiResponse
	if err = json.Unmarshal(rawRes, &geminiRes); err != nil {
		g.logger.Error(err, "Failed to unmarshal the Gemini response envelope")
		return "", domain.WrapStoryError(domain.ErrorKindUpstream, "error communicating with the AI", err)
	}

	g.logger.DebugWithFields("Received Gemini response", map[string]interface{}{
		"candidates": len(geminiRes.Candidates),
	})

	if len(geminiRes.Candidates) == 0 {
		g.logger.Warn("Gemini reply carries no candidates")
		return "", domain.NewStoryError(domain.ErrorKindEmptyResponse, "invalid or empty AI response")
	}

	candidate := geminiRes.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		g.logger.Warn("First Gemini candidate carries no content parts")
		return "", domain.NewStoryError(domain.ErrorKindEmptyResponse, "invalid or empty AI response")
	}

	return candidate.Content.Parts[0].Text, nil
}

func (g *geminiTextGenerator) createRequest(ctx context.Context, prompt string) (*http.Request, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: jsonMimeType,
		},
	}

	payloadBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.geminiConfig.ApiUrl, g.geminiConfig.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, err
	}

	req.Header.Set("x-goog-api-key", g.geminiConfig.ApiKey)
	req.Header.Set("Content-Type", jsonMimeType)

	return req, nil
}
