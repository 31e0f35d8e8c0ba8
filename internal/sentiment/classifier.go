package sentiment

import (
	"context"
	"fmt"

	"comment-sentiment/internal/models"

	"go.uber.org/zap"
)

// Scorer returns a compound polarity score in [-1, 1] for a piece of text
type Scorer interface {
	Score(ctx context.Context, text string) (float64, error)
}

// Label buckets a compound score. Exactly zero is neutral; there is no
// tolerance band around it.
func Label(score float64) models.SentimentLabel {
	switch {
	case score == 0.0:
		return models.Neutral
	case score > 0.0:
		return models.Positive
	default:
		return models.Negative
	}
}

// Classifier turns comment texts into labels and summaries
type Classifier struct {
	scorer Scorer
	logger *zap.Logger
}

// NewClassifier creates a classifier backed by scorer
func NewClassifier(scorer Scorer, logger *zap.Logger) *Classifier {
	return &Classifier{
		scorer: scorer,
		logger: logger,
	}
}

// Classify scores and labels a single text
func (c *Classifier) Classify(ctx context.Context, text string) (models.SentimentLabel, error) {
	score, err := c.scorer.Score(ctx, text)
	if err != nil {
		return "", fmt.Errorf("failed to score text: %w", err)
	}
	return Label(score), nil
}

// Summarize classifies every text and tallies the labels
func (c *Classifier) Summarize(ctx context.Context, texts []string) (models.SentimentSummary, error) {
	var summary models.SentimentSummary

	for i, text := range texts {
		label, err := c.Classify(ctx, text)
		if err != nil {
			return models.SentimentSummary{}, fmt.Errorf("comment %d: %w", i, err)
		}
		summary.Add(label)
	}

	c.logger.Debug("Comments classified",
		zap.Int("total", summary.Total()),
		zap.Int("positive", summary.Positive),
		zap.Int("negative", summary.Negative),
		zap.Int("neutral", summary.Neutral))

	return summary, nil
}

// SummarizeComments is Summarize over comment bodies
func (c *Classifier) SummarizeComments(ctx context.Context, comments []models.Comment) (models.SentimentSummary, error) {
	return c.Summarize(ctx, models.Texts(comments))
}
