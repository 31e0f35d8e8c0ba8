package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type constScorer float64

func (c constScorer) Score(context.Context, string) (float64, error) {
	return float64(c), nil
}

func TestRateLimitedScorer_Delegates(t *testing.T) {
	s := NewRateLimitedScorer(constScorer(0.5), 0, zap.NewNop())

	for i := 0; i < 5; i++ {
		got, err := s.Score(context.Background(), "x")
		require.NoError(t, err)
		assert.Equal(t, 0.5, got)
	}
}

func TestRateLimitedScorer_CancelledWait(t *testing.T) {
	s := NewRateLimitedScorer(constScorer(0.5), 1, zap.NewNop())

	// first call takes the only token
	_, err := s.Score(context.Background(), "x")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = s.Score(ctx, "x")
	assert.Error(t, err)
}
