package youtube

import (
	"context"
	"errors"
	"fmt"

	"comment-sentiment/internal/models"

	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// ErrNotFound is returned when the API answers without the expected item
// or without the fields we read from it.
var ErrNotFound = errors.New("youtube: resource not found")

// Client wraps the YouTube Data API v3 service
type Client struct {
	service  *yt.Service
	logger   *zap.Logger
	pageSize int64
}

// Config for YouTube client
type Config struct {
	APIKey   string
	PageSize int64 // commentThreads page size, 1..100. Default: 100
}

// NewClient creates a new YouTube Data API client. Extra options are
// appended after the API key and are mostly useful to point the client at
// a test server.
func NewClient(ctx context.Context, cfg Config, logger *zap.Logger, opts ...option.ClientOption) (*Client, error) {
	if cfg.APIKey == "" && len(opts) == 0 {
		return nil, fmt.Errorf("youtube API key is required")
	}

	if cfg.PageSize <= 0 || cfg.PageSize > 100 {
		cfg.PageSize = 100
	}

	clientOpts := make([]option.ClientOption, 0, len(opts)+1)
	if cfg.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(cfg.APIKey))
	}
	clientOpts = append(clientOpts, opts...)

	service, err := yt.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	logger.Info("YouTube client initialized", zap.Int64("page_size", cfg.PageSize))

	return NewClientWithService(service, cfg.PageSize, logger), nil
}

// NewClientWithService wraps an already configured service
func NewClientWithService(service *yt.Service, pageSize int64, logger *zap.Logger) *Client {
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 100
	}
	return &Client{
		service:  service,
		logger:   logger,
		pageSize: pageSize,
	}
}

// ChannelID looks up the channel that published a video
func (c *Client) ChannelID(ctx context.Context, videoID string) (string, error) {
	resp, err := c.service.Videos.List([]string{"snippet"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		c.logAPIError("videos.list snippet", videoID, err)
		return "", fmt.Errorf("youtube videos.list: %w", err)
	}

	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil || resp.Items[0].Snippet.ChannelId == "" {
		return "", fmt.Errorf("channel of video %s: %w", videoID, ErrNotFound)
	}

	return resp.Items[0].Snippet.ChannelId, nil
}

// Comments fetches every top-level comment of a video, following page
// tokens until the API stops returning one. Any failure aborts the fetch.
func (c *Client) Comments(ctx context.Context, videoID string) ([]models.Comment, error) {
	var (
		comments  []models.Comment
		pageToken string
		pages     int
	)

	for {
		call := c.service.CommentThreads.List([]string{"snippet"}).
			VideoId(videoID).
			TextFormat("plainText").
			MaxResults(c.pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			c.logAPIError("commentThreads.list", videoID, err)
			return nil, fmt.Errorf("youtube commentThreads.list page %d: %w", pages+1, err)
		}
		pages++

		for _, item := range resp.Items {
			if item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
				return nil, fmt.Errorf("comment thread %s without top-level snippet: %w", item.Id, ErrNotFound)
			}
			snippet := item.Snippet.TopLevelComment.Snippet
			comments = append(comments, models.Comment{
				Author: snippet.AuthorDisplayName,
				Text:   snippet.TextDisplay,
			})
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	c.logger.Debug("Fetched comments",
		zap.String("video_id", videoID),
		zap.Int("pages", pages),
		zap.Int("count", len(comments)))

	return comments, nil
}

// VideoStats returns view, like and comment counters
func (c *Client) VideoStats(ctx context.Context, videoID string) (*models.VideoStats, error) {
	resp, err := c.service.Videos.List([]string{"statistics"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		c.logAPIError("videos.list statistics", videoID, err)
		return nil, fmt.Errorf("youtube videos.list: %w", err)
	}

	if len(resp.Items) == 0 || resp.Items[0].Statistics == nil {
		return nil, fmt.Errorf("statistics of video %s: %w", videoID, ErrNotFound)
	}

	stats := resp.Items[0].Statistics
	return &models.VideoStats{
		ViewCount:    stats.ViewCount,
		LikeCount:    stats.LikeCount,
		CommentCount: stats.CommentCount,
	}, nil
}

// ChannelInfo returns title, logo, creation date, counters and description
func (c *Client) ChannelInfo(ctx context.Context, channelID string) (*models.ChannelInfo, error) {
	resp, err := c.service.Channels.List([]string{"snippet", "statistics", "brandingSettings"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		c.logAPIError("channels.list", channelID, err)
		return nil, fmt.Errorf("youtube channels.list: %w", err)
	}

	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil || resp.Items[0].Statistics == nil {
		return nil, fmt.Errorf("channel %s: %w", channelID, ErrNotFound)
	}

	ch := resp.Items[0]
	info := &models.ChannelInfo{
		ID:              channelID,
		Title:           ch.Snippet.Title,
		CreatedAt:       ch.Snippet.PublishedAt,
		Description:     ch.Snippet.Description,
		SubscriberCount: ch.Statistics.SubscriberCount,
		VideoCount:      ch.Statistics.VideoCount,
	}
	if th := ch.Snippet.Thumbnails; th != nil && th.High != nil {
		info.LogoURL = th.High.Url
	}

	return info, nil
}

func (c *Client) logAPIError(method, id string, err error) {
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("id", id),
		zap.Error(err),
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		fields = append(fields, zap.Int("status", apiErr.Code))
	}

	c.logger.Error("YouTube API error", fields...)
}
