package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"comment-sentiment/internal/models"
	"comment-sentiment/internal/report"
	"comment-sentiment/internal/repository"
	"comment-sentiment/internal/sentiment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePlatform struct {
	comments    map[string][]models.Comment
	commentsErr error
	channelErr  error
	statsErr    error
	infoErr     error
	calls       []string
}

func (f *fakePlatform) ChannelID(_ context.Context, videoID string) (string, error) {
	f.calls = append(f.calls, "channel_id")
	if f.channelErr != nil {
		return "", f.channelErr
	}
	return "UC-" + videoID, nil
}

func (f *fakePlatform) Comments(_ context.Context, videoID string) ([]models.Comment, error) {
	f.calls = append(f.calls, "comments")
	if f.commentsErr != nil {
		return nil, f.commentsErr
	}
	return f.comments[videoID], nil
}

func (f *fakePlatform) VideoStats(context.Context, string) (*models.VideoStats, error) {
	f.calls = append(f.calls, "stats")
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return &models.VideoStats{ViewCount: 100, LikeCount: 10, CommentCount: 3}, nil
}

func (f *fakePlatform) ChannelInfo(_ context.Context, channelID string) (*models.ChannelInfo, error) {
	f.calls = append(f.calls, "channel_info")
	if f.infoErr != nil {
		return nil, f.infoErr
	}
	return &models.ChannelInfo{ID: channelID, Title: "Channel", CreatedAt: "2006-09-23T12:00:00Z"}, nil
}

// prefixScorer scores "+" texts positive, "-" texts negative, anything else zero
type prefixScorer struct{}

func (prefixScorer) Score(_ context.Context, text string) (float64, error) {
	switch {
	case strings.HasPrefix(text, "+"):
		return 0.6, nil
	case strings.HasPrefix(text, "-"):
		return -0.3, nil
	default:
		return 0.0, nil
	}
}

// driftingScorer counts calls and turns every comment negative after the
// first `stable` calls, so any reclassification changes the counts.
type driftingScorer struct {
	stable int
	calls  int
}

func (d *driftingScorer) Score(context.Context, string) (float64, error) {
	d.calls++
	if d.calls > d.stable {
		return -0.5, nil
	}
	return 0.5, nil
}

const rickroll = "dQw4w9WgXcQ"

func newTestAnalyzer(platform *fakePlatform) (*Analyzer, *repository.CommentCache) {
	logger := zap.NewNop()
	cache := repository.NewCommentCache(logger)
	classifier := sentiment.NewClassifier(prefixScorer{}, logger)
	return NewAnalyzer(platform, classifier, cache, logger), cache
}

func threeComments() map[string][]models.Comment {
	return map[string][]models.Comment{
		rickroll: {
			{Author: "a", Text: "+ love it"},
			{Author: "b", Text: "- meh"},
			{Author: "c", Text: "first"},
		},
	}
}

func TestAnalyze_FullPipeline(t *testing.T) {
	platform := &fakePlatform{comments: threeComments()}
	analyzer, cache := newTestAnalyzer(platform)

	dashboard, err := analyzer.Analyze(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=5s")
	require.NoError(t, err)

	assert.Equal(t, rickroll, dashboard.VideoID)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", dashboard.EmbedURL)
	assert.Equal(t, 3, dashboard.CommentCount)
	assert.Equal(t, models.SentimentSummary{Positive: 1, Negative: 1, Neutral: 1}, dashboard.Summary)
	assert.Equal(t, dashboard.CommentCount, dashboard.Summary.Total())
	assert.Equal(t, report.OverallNeutral, dashboard.Overall)
	require.NotNil(t, dashboard.Channel)
	assert.Equal(t, "UC-"+rickroll, dashboard.Channel.ID)
	require.NotNil(t, dashboard.Stats)
	assert.Equal(t, uint64(100), dashboard.Stats.ViewCount)
	assert.Len(t, dashboard.BarChart, 3)
	assert.Len(t, dashboard.PieChart, 3)

	assert.Equal(t, rickroll, cache.Current())
}

func TestAnalyze_ShortLink(t *testing.T) {
	analyzer, _ := newTestAnalyzer(&fakePlatform{comments: threeComments()})

	dashboard, err := analyzer.Analyze(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, rickroll, dashboard.VideoID)
}

func TestAnalyze_InvalidLinkHaltsPipeline(t *testing.T) {
	platform := &fakePlatform{}
	analyzer, cache := newTestAnalyzer(platform)

	_, err := analyzer.Analyze(context.Background(), "not a url")
	assert.ErrorIs(t, err, ErrInvalidLink)
	assert.Empty(t, platform.calls)
	assert.Equal(t, "", cache.Current())
}

func TestAnalyze_CommentFetchFailure(t *testing.T) {
	platform := &fakePlatform{commentsErr: errors.New("transport down")}
	analyzer, cache := newTestAnalyzer(platform)

	_, err := analyzer.Analyze(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ErrFetchComments)
	assert.Contains(t, err.Error(), "transport down")
	assert.NotContains(t, platform.calls, "stats")
	assert.Equal(t, "", cache.Current())
}

func TestAnalyze_MetadataFailuresDegrade(t *testing.T) {
	platform := &fakePlatform{
		comments: threeComments(),
		infoErr:  errors.New("quota"),
		statsErr: errors.New("quota"),
	}
	analyzer, _ := newTestAnalyzer(platform)

	dashboard, err := analyzer.Analyze(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Nil(t, dashboard.Channel)
	assert.Nil(t, dashboard.Stats)
	assert.Equal(t, 3, dashboard.Summary.Total())
}

func TestAnalyze_ChannelLookupFailureSkipsChannelInfo(t *testing.T) {
	platform := &fakePlatform{comments: threeComments(), channelErr: errors.New("boom")}
	analyzer, _ := newTestAnalyzer(platform)

	dashboard, err := analyzer.Analyze(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Nil(t, dashboard.Channel)
	assert.NotContains(t, platform.calls, "channel_info")
}

func TestAnalyze_NoComments(t *testing.T) {
	analyzer, _ := newTestAnalyzer(&fakePlatform{})

	dashboard, err := analyzer.Analyze(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, models.SentimentSummary{}, dashboard.Summary)
	assert.Equal(t, report.OverallNeutral, dashboard.Overall)
}

func TestAnalyze_NewVideoEvictsPrevious(t *testing.T) {
	comments := threeComments()
	comments["aaaaaaaaaaa"] = []models.Comment{{Author: "z", Text: "+ yes"}}
	analyzer, _ := newTestAnalyzer(&fakePlatform{comments: comments})
	ctx := context.Background()

	_, err := analyzer.Analyze(ctx, "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	_, err = analyzer.Analyze(ctx, "https://youtu.be/aaaaaaaaaaa")
	require.NoError(t, err)

	_, ok, err := analyzer.CommentsCSV(rickroll)
	require.NoError(t, err)
	assert.False(t, ok)

	data, ok, err := analyzer.CommentsCSV("aaaaaaaaaaa")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Username,comment\nz,+ yes\n", string(data))
}

func TestSummary(t *testing.T) {
	analyzer, _ := newTestAnalyzer(&fakePlatform{comments: threeComments()})
	ctx := context.Background()

	_, ok, err := analyzer.Summary(ctx, rickroll)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = analyzer.Analyze(ctx, "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)

	summary, ok, err := analyzer.Summary(ctx, rickroll)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.SentimentSummary{Positive: 1, Negative: 1, Neutral: 1}, summary)
}

func TestSummary_ReusesDashboardCounts(t *testing.T) {
	logger := zap.NewNop()
	scorer := &driftingScorer{stable: 3}
	analyzer := NewAnalyzer(
		&fakePlatform{comments: threeComments()},
		sentiment.NewClassifier(scorer, logger),
		repository.NewCommentCache(logger),
		logger,
	)
	ctx := context.Background()

	dashboard, err := analyzer.Analyze(ctx, "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, models.SentimentSummary{Positive: 3}, dashboard.Summary)

	for i := 0; i < 2; i++ {
		summary, ok, err := analyzer.Summary(ctx, rickroll)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, dashboard.Summary, summary)
	}
	assert.Equal(t, 3, scorer.calls, "charts must not rescore comments")
}

func TestSummary_ClassifiesWhenOnlyCommentsAreCached(t *testing.T) {
	logger := zap.NewNop()
	scorer := &driftingScorer{stable: 10}
	cache := repository.NewCommentCache(logger)
	analyzer := NewAnalyzer(&fakePlatform{}, sentiment.NewClassifier(scorer, logger), cache, logger)
	ctx := context.Background()

	cache.Put(rickroll, threeComments()[rickroll])

	summary, ok, err := analyzer.Summary(ctx, rickroll)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.SentimentSummary{Positive: 3}, summary)

	_, _, err = analyzer.Summary(ctx, rickroll)
	require.NoError(t, err)
	assert.Equal(t, 3, scorer.calls)
}
