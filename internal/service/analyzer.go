package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"comment-sentiment/internal/models"
	"comment-sentiment/internal/report"
	"comment-sentiment/internal/repository"
	"comment-sentiment/internal/sentiment"
	"comment-sentiment/internal/youtube"

	"go.uber.org/zap"
)

var (
	// ErrInvalidLink is returned when no video ID can be extracted from the input
	ErrInvalidLink = errors.New("invalid youtube link or video id not found")
	// ErrFetchComments is returned when the comment list could not be retrieved
	ErrFetchComments = errors.New("failed to fetch comments")
)

// VideoPlatform is the subset of the YouTube Data API the analyzer needs
type VideoPlatform interface {
	ChannelID(ctx context.Context, videoID string) (string, error)
	Comments(ctx context.Context, videoID string) ([]models.Comment, error)
	VideoStats(ctx context.Context, videoID string) (*models.VideoStats, error)
	ChannelInfo(ctx context.Context, channelID string) (*models.ChannelInfo, error)
}

// Analyzer runs the link → comments → sentiment pipeline
type Analyzer struct {
	platform   VideoPlatform
	classifier *sentiment.Classifier
	cache      *repository.CommentCache
	logger     *zap.Logger
}

// NewAnalyzer creates a new analyzer service
func NewAnalyzer(
	platform VideoPlatform,
	classifier *sentiment.Classifier,
	cache *repository.CommentCache,
	logger *zap.Logger,
) *Analyzer {
	return &Analyzer{
		platform:   platform,
		classifier: classifier,
		cache:      cache,
		logger:     logger,
	}
}

// Analyze resolves a link to a video, fetches and classifies its comments
// and gathers channel and video metadata. Metadata lookups that fail leave
// their section nil; a failed comment fetch fails the whole call.
func (a *Analyzer) Analyze(ctx context.Context, link string) (*models.Dashboard, error) {
	videoID, ok := youtube.ExtractVideoID(link)
	if !ok {
		return nil, ErrInvalidLink
	}

	logger := a.logger.With(zap.String("video_id", videoID))

	channelID, err := a.platform.ChannelID(ctx, videoID)
	if err != nil {
		logger.Warn("Channel lookup failed", zap.Error(err))
		channelID = ""
	}

	comments, err := a.platform.Comments(ctx, videoID)
	if err != nil {
		logger.Error("Comment fetch failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFetchComments, err)
	}
	a.cache.Put(videoID, comments)

	logger.Info("Comments saved", zap.Int("count", len(comments)))

	dashboard := &models.Dashboard{
		VideoID:      videoID,
		Link:         link,
		EmbedURL:     youtube.EmbedURL(videoID),
		CommentCount: len(comments),
	}

	if channelID != "" {
		info, err := a.platform.ChannelInfo(ctx, channelID)
		if err != nil {
			logger.Warn("Channel info unavailable", zap.String("channel_id", channelID), zap.Error(err))
		} else {
			dashboard.Channel = info
		}
	}

	stats, err := a.platform.VideoStats(ctx, videoID)
	if err != nil {
		logger.Warn("Video stats unavailable", zap.Error(err))
	} else {
		dashboard.Stats = stats
	}

	summary, err := a.classifier.SummarizeComments(ctx, comments)
	if err != nil {
		return nil, fmt.Errorf("failed to classify comments: %w", err)
	}

	a.cache.SetSummary(videoID, summary)

	dashboard.Summary = summary
	dashboard.Overall = report.Overall(summary)
	dashboard.BarChart = report.BarTable(summary)
	dashboard.PieChart = report.PieTable(summary)

	logger.Info("Video analyzed",
		zap.Int("positive", summary.Positive),
		zap.Int("negative", summary.Negative),
		zap.Int("neutral", summary.Neutral),
		zap.String("overall", dashboard.Overall))

	return dashboard, nil
}

// Summary returns the sentiment of the cached video. The summary computed
// by Analyze is reused so charts match the dashboard counts; it is only
// classified again when none was recorded. ok is false when videoID is not
// the cached video.
func (a *Analyzer) Summary(ctx context.Context, videoID string) (summary models.SentimentSummary, ok bool, err error) {
	if summary, ok := a.cache.Summary(videoID); ok {
		return summary, true, nil
	}

	comments, ok := a.cache.Get(videoID)
	if !ok {
		return models.SentimentSummary{}, false, nil
	}

	summary, err = a.classifier.SummarizeComments(ctx, comments)
	if err != nil {
		return models.SentimentSummary{}, true, fmt.Errorf("failed to classify comments: %w", err)
	}
	a.cache.SetSummary(videoID, summary)
	return summary, true, nil
}

// CommentsCSV exports the cached comments of videoID
func (a *Analyzer) CommentsCSV(videoID string) ([]byte, bool, error) {
	comments, ok := a.cache.Get(videoID)
	if !ok {
		return nil, false, nil
	}

	var buf bytes.Buffer
	if err := repository.WriteCSV(&buf, comments); err != nil {
		return nil, true, fmt.Errorf("failed to export comments: %w", err)
	}
	return buf.Bytes(), true, nil
}
