package dto

import "encoding/json"

// CreateStoryRequest is the body of POST /historia. Detalhes stays raw so
// the handler can tell an absent field, a non-list value and a short list
// apart, each with its own diagnostic.
type CreateStoryRequest struct {
	Detalhes json.RawMessage `json:"detalhes"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
