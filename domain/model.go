package domain

// Story is the generated result returned to the caller. The field names come
// from the AI reply and are passed through verbatim.
type Story struct {
	Titulo   string `json:"titulo"`
	Conteudo string `json:"conteudo"`
}

type StoryDetails struct {
	SuggestedTitle string
	MainPrompt     string
}

// NewStoryDetails splits the raw "detalhes" list into its named parts.
// Elements beyond the first two are ignored.
func NewStoryDetails(details []string) (StoryDetails, error) {
	if len(details) < 2 {
		return StoryDetails{}, NewStoryError(ErrorKindMissingFields, "suggested title and main prompt are required")
	}
	return StoryDetails{
		SuggestedTitle: details[0],
		MainPrompt:     details[1],
	}, nil
}
