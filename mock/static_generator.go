package mock_generator

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Igormartins234/backend-ia-historia/application/ports/outbound"
)

// staticStoryGenerator stands in for the Gemini adapter when MOCK_AI is set,
// so the service runs end to end without an API credential.
type staticStoryGenerator struct {
	logger outbound.LoggerPort
	delay  time.Duration
}

func NewStaticStoryGenerator(delay time.Duration, logger outbound.LoggerPort) outbound.StoryTextGeneratorPort {
	return &staticStoryGenerator{
		logger: logger,
		delay:  delay,
	}
}

func (s *staticStoryGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.logger.InfoWithFields("Serving canned story instead of calling the AI", map[string]interface{}{
		"prompt_length": len(prompt),
	})

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.delay):
		}
	}

	canned := map[string]string{
		"titulo":   "O Segredo da Montanha Cintilante",
		"conteudo": "Era uma vez, em um vale escondido, uma montanha que brilhava ao luar...",
	}

	payload, err := json.Marshal(canned)
	if err != nil {
		return "", err
	}

	return string(payload), nil
}
