package chat

import (
	"errors"

	"github.com/mindfulme/mindful/internal/llm"
)

// ServiceError is a chat failure safe to render inline as a conversation
// message. Message never exposes transport internals.
type ServiceError struct {
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error { return e.Err }

// newServiceError wraps a provider failure with a display-safe message.
func newServiceError(err error) *ServiceError {
	var rateLimit *llm.ErrRateLimit
	if errors.As(err, &rateLimit) {
		return &ServiceError{
			Message: "The assistant is receiving too many requests right now. Please wait a moment and try again.",
			Err:     err,
		}
	}

	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) {
		return &ServiceError{
			Message: "The assistant returned an unexpected response. Please try again.",
			Err:     err,
		}
	}

	return &ServiceError{
		Message: "Failed to get a response. Please try again.",
		Err:     err,
	}
}
