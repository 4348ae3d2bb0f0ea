// Package llm adapts external text-generation providers to service.TextGenerator.
package llm

import (
	"context"
	"log/slog"
	"strings"

	"nutriplan/config"
	"nutriplan/internal/domain/constants"
	"nutriplan/internal/domain/service"
	"nutriplan/internal/errors"
)

// NewTextGenerator picks the provider named in the generator config. Without an
// API key the disabled generator is used and every meal plan falls back.
func NewTextGenerator(cfg *config.Config, logger *slog.Logger) (service.TextGenerator, error) {
	genCfg := cfg.Generator
	if genCfg == nil || strings.TrimSpace(genCfg.Provider) == "" {
		logger.Warn("No text generator provider configured, meal plans will use the fallback plan")

		return disabledGenerator{}, nil
	}

	switch genCfg.Provider {
	case constants.GeneratorProviderAnthropic:
		if genCfg.APIKey == "" {
			logger.Warn("Anthropic API key is empty, meal plans will use the fallback plan")

			return disabledGenerator{}, nil
		}
		logger.Info("Using Anthropic text generator", slog.String("model", genCfg.Model))

		return NewAnthropicGenerator(genCfg), nil
	default:
		return nil, errors.Errorf("unknown generator provider: %s", genCfg.Provider)
	}
}

type disabledGenerator struct{}

func (disabledGenerator) Generate(context.Context, service.TextRequest) (string, error) {
	return "", service.ErrGeneratorDisabled
}
