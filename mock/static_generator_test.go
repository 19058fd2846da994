package mock_generator

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Igormartins234/backend-ia-historia/infrastructure/adapters"
)

func TestStaticStoryGenerator_ReplyShape(t *testing.T) {
	generator := NewStaticStoryGenerator(0, adapters.NewZerologWrapper())

	text, err := generator.GenerateText(context.Background(), "qualquer prompt")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	var parsed map[string]string
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		t.Fatal("canned reply is not valid JSON:", err)
	}
	if parsed["titulo"] == "" || parsed["conteudo"] == "" {
		t.Errorf("canned reply is missing required keys: %v", parsed)
	}
}

func TestStaticStoryGenerator_CancelledContext(t *testing.T) {
	generator := NewStaticStoryGenerator(time.Minute, adapters.NewZerologWrapper())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := generator.GenerateText(ctx, "prompt"); err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
}
