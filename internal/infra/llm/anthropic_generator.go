package llm

import (
	"context"
	"strings"

	"nutriplan/config"
	"nutriplan/internal/domain/service"
	"nutriplan/internal/errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicGenerator calls the Anthropic Messages API. Each call is a fresh
// conversation with a single user turn.
type AnthropicGenerator struct {
	client anthropic.Client
}

// NewAnthropicGenerator builds a generator from config. Extra options are appended
// after the config-derived ones.
func NewAnthropicGenerator(cfg *config.GeneratorConfig, opts ...option.RequestOption) *AnthropicGenerator {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// a failed call falls back to the placeholder plan instead of retrying
		option.WithMaxRetries(0),
	}
	if cfg.Timeout > 0 {
		base = append(base, option.WithRequestTimeout(cfg.Timeout))
	}

	return &AnthropicGenerator{
		client: anthropic.NewClient(append(base, opts...)...),
	}
}

// Generate returns the concatenated text blocks of the model reply.
func (g *AnthropicGenerator) Generate(ctx context.Context, req service.TextRequest) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return "", errors.Wrapf(err, "anthropic messages request failed (session %s)", req.SessionID)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", errors.Errorf("anthropic reply had no text content (session %s)", req.SessionID)
	}

	return text.String(), nil
}
