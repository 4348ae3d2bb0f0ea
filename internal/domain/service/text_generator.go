package service

import (
	"context"
	"errors"
)

// ErrGeneratorDisabled is returned by a text generator with no provider configured.
var ErrGeneratorDisabled = errors.New("text generator is not configured")

// TextRequest is a single stateless completion request.
type TextRequest struct {
	Model     string
	System    string
	Prompt    string
	MaxTokens int
	// SessionID identifies the request for tracing; no history is shared between sessions.
	SessionID string
}

// TextGenerator turns a prompt into free-form text through an external model.
type TextGenerator interface {
	Generate(ctx context.Context, req TextRequest) (string, error)
}
