package llm

import (
	"fmt"
	"time"

	"comment-sentiment/internal/gemini"
	"comment-sentiment/internal/sentiment"

	"go.uber.org/zap"
)

// GeminiConfig holds the settings of the Gemini scorer
type GeminiConfig struct {
	APIKey            string        `yaml:"api_key"`
	ModelName         string        `yaml:"model_name"`
	MaxRetries        int           `yaml:"max_retries"`
	RetryDelay        time.Duration `yaml:"retry_delay"`
	RequestsPerMinute int           `yaml:"requests_per_minute"`
}

// ScorerConfig selects and configures the polarity scorer
type ScorerConfig struct {
	Type   ProviderType `yaml:"type"` // "vader" or "gemini"
	Gemini GeminiConfig `yaml:"gemini"`
}

// NewScorer builds the configured scorer. The returned close func releases
// remote clients and is never nil.
func NewScorer(cfg ScorerConfig, logger *zap.Logger) (sentiment.Scorer, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Type {
	case "", ProviderVader:
		logger.Info("Using VADER scorer")
		return sentiment.NewVaderScorer(), noop, nil

	case ProviderGemini:
		if cfg.Gemini.APIKey == "" || cfg.Gemini.APIKey == "YOUR_API_KEY_HERE" {
			return nil, noop, fmt.Errorf("gemini API key not configured")
		}

		client, err := gemini.NewClient(gemini.Config{
			APIKey:     cfg.Gemini.APIKey,
			ModelName:  cfg.Gemini.ModelName,
			MaxRetries: cfg.Gemini.MaxRetries,
			RetryDelay: cfg.Gemini.RetryDelay,
		}, logger)
		if err != nil {
			return nil, noop, err
		}

		logger.Info("Using Gemini scorer",
			zap.Any("model_info", client.GetModelInfo()),
			zap.Int("rate_limit", cfg.Gemini.RequestsPerMinute))

		return NewRateLimitedScorer(client, cfg.Gemini.RequestsPerMinute, logger), client.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown scorer type %q", cfg.Type)
	}
}
