package service

import (
	"context"
	"fmt"

	"github.com/pageza/promptchef/backend/config"
)

// NewGenerator builds the upstream generator selected by cfg.Provider.
// The returned close func releases any client connections and is never nil.
func NewGenerator(ctx context.Context, cfg *config.Config) (Generator, func() error, error) {
	var (
		gen     Generator
		closeFn = func() error { return nil }
	)

	switch cfg.Provider {
	case config.ProviderGemini:
		gemini, err := NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.Model)
		if err != nil {
			return nil, nil, err
		}
		gen, closeFn = gemini, gemini.Close

	case config.ProviderDeepSeek:
		deepseek, err := NewDeepSeekGenerator(cfg.DeepSeekAPIKey, cfg.DeepSeekAPIURL, cfg.Model)
		if err != nil {
			return nil, nil, err
		}
		gen = deepseek

	case config.ProviderFallback:
		gemini, err := NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.Model)
		if err != nil {
			return nil, nil, err
		}
		deepseek, err := NewDeepSeekGenerator(cfg.DeepSeekAPIKey, cfg.DeepSeekAPIURL, cfg.DeepSeekModel)
		if err != nil {
			gemini.Close()
			return nil, nil, err
		}
		gen = &FallbackGenerator{Primary: gemini, Secondary: deepseek}
		closeFn = gemini.Close

	default:
		return nil, nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}

	if cfg.UpstreamTimeout > 0 {
		gen = &TimeoutGenerator{Next: gen, Timeout: cfg.UpstreamTimeout}
	}

	return gen, closeFn, nil
}
