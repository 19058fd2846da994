package inbound

import (
	"context"

	"github.com/Igormartins234/backend-ia-historia/domain"
)

type MakeStoryParams struct {
	Details   []string
	RequestID string
}

type StoryMakerPort interface {
	MakeStory(ctx context.Context, params MakeStoryParams) (domain.Story, error)
}
