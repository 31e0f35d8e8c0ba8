package repository

import (
	"sync"

	"comment-sentiment/internal/models"

	"go.uber.org/zap"
)

// CommentCache keeps the comments of at most one video, plus the summary
// computed from them once known. Storing a new video evicts the previous one.
type CommentCache struct {
	mu       sync.RWMutex
	videoID  string
	comments []models.Comment
	summary  *models.SentimentSummary
	logger   *zap.Logger
}

// NewCommentCache creates an empty cache
func NewCommentCache(logger *zap.Logger) *CommentCache {
	return &CommentCache{logger: logger}
}

// Put stores comments for videoID, replacing whatever was held before
func (c *CommentCache) Put(videoID string, comments []models.Comment) {
	stored := make([]models.Comment, len(comments))
	copy(stored, comments)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.videoID != "" && c.videoID != videoID {
		c.logger.Info("Evicting cached comments",
			zap.String("video_id", c.videoID),
			zap.Int("count", len(c.comments)))
	}

	c.videoID = videoID
	c.comments = stored
	c.summary = nil
}

// SetSummary records the summary of the cached comments. It is ignored
// when videoID is no longer the cached video.
func (c *CommentCache) SetSummary(videoID string, summary models.SentimentSummary) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if videoID == "" || c.videoID != videoID {
		return false
	}
	c.summary = &summary
	return true
}

// Summary returns the recorded summary of videoID, if any
func (c *CommentCache) Summary(videoID string) (models.SentimentSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if videoID == "" || c.videoID != videoID || c.summary == nil {
		return models.SentimentSummary{}, false
	}
	return *c.summary, true
}

// Get returns the comments of videoID if it is the cached video
func (c *CommentCache) Get(videoID string) ([]models.Comment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if videoID == "" || c.videoID != videoID {
		return nil, false
	}

	out := make([]models.Comment, len(c.comments))
	copy(out, c.comments)
	return out, true
}

// Current returns the cached video ID, or "" when empty
func (c *CommentCache) Current() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.videoID
}
