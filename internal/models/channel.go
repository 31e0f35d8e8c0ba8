package models

// ChannelInfo describes the channel that owns a video
type ChannelInfo struct {
	ID              string `json:"channel_id"`
	Title           string `json:"channel_title"`
	LogoURL         string `json:"channel_logo_url"`
	CreatedAt       string `json:"channel_created_date"` // RFC 3339 as returned by the API
	SubscriberCount uint64 `json:"subscriber_count"`
	VideoCount      uint64 `json:"video_count"`
	Description     string `json:"channel_description"`
}

// CreatedDate returns the YYYY-MM-DD part of CreatedAt
func (c *ChannelInfo) CreatedDate() string {
	if len(c.CreatedAt) < 10 {
		return c.CreatedAt
	}
	return c.CreatedAt[:10]
}

// VideoStats are the public counters of a video
type VideoStats struct {
	ViewCount    uint64 `json:"view_count"`
	LikeCount    uint64 `json:"like_count"`
	CommentCount uint64 `json:"comment_count"`
}
