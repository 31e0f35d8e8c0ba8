package llm

import (
	"context"
	"fmt"

	"comment-sentiment/internal/sentiment"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ProviderType selects the scoring backend
type ProviderType string

const (
	ProviderVader  ProviderType = "vader"
	ProviderGemini ProviderType = "gemini"
)

// RateLimitedScorer wraps a remote scorer with a requests-per-minute limit
type RateLimitedScorer struct {
	scorer  sentiment.Scorer
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewRateLimitedScorer allows requestsPerMinute calls per minute with a
// burst of one. A non-positive rate disables limiting.
func NewRateLimitedScorer(scorer sentiment.Scorer, requestsPerMinute int, logger *zap.Logger) *RateLimitedScorer {
	limit := rate.Inf
	if requestsPerMinute > 0 {
		limit = rate.Limit(float64(requestsPerMinute) / 60.0)
	}
	return &RateLimitedScorer{
		scorer:  scorer,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

// Score waits for the limiter and delegates
func (p *RateLimitedScorer) Score(ctx context.Context, text string) (float64, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		p.logger.Debug("Scorer rate limit wait aborted", zap.Error(err))
		return 0, fmt.Errorf("rate limit wait cancelled: %w", err)
	}
	return p.scorer.Score(ctx, text)
}
