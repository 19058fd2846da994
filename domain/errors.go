package domain

import "fmt"

type ErrorKind string

const (
	ErrorKindMissingFields       ErrorKind = "missing_fields"
	ErrorKindInvalidRequestShape ErrorKind = "invalid_request_shape"
	ErrorKindEmptyResponse       ErrorKind = "empty_response"
	ErrorKindInvalidJSON         ErrorKind = "invalid_json"
	ErrorKindUnexpectedShape     ErrorKind = "unexpected_shape"
	ErrorKindUpstream            ErrorKind = "upstream"
)

// StoryError is a classified failure of the generation pipeline. Anything
// that is not a StoryError is treated as unclassified by the HTTP boundary
// and mapped to a 500.
type StoryError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func NewStoryError(kind ErrorKind, message string) *StoryError {
	return &StoryError{
		Kind:    kind,
		Message: message,
	}
}

func WrapStoryError(kind ErrorKind, message string, cause error) *StoryError {
	return &StoryError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

func (e *StoryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Cause)
	}
	return e.Message
}

func (e *StoryError) Unwrap() error {
	return e.Cause
}
