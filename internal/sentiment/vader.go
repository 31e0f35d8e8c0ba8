package sentiment

import (
	"context"

	"github.com/jonreiter/govader"
)

// VaderScorer scores text with the VADER lexicon
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer loads the bundled lexicon
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the VADER compound score. It never fails.
func (v *VaderScorer) Score(_ context.Context, text string) (float64, error) {
	return v.analyzer.PolarityScores(text).Compound, nil
}
