package outbound

import "context"

// StoryTextGeneratorPort wraps the generative-text API. GenerateText sends a
// single prompt and returns the raw text of the first candidate reply; with
// JSON output requested from the model, that text is expected to be a JSON
// document, but callers must not assume it parses.
type StoryTextGeneratorPort interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
