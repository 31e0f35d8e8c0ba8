package models

// ChartRow is one category of a chart table
type ChartRow struct {
	Label SentimentLabel `json:"label"`
	Count int            `json:"count"`
	Color string         `json:"color"`
}

// Dashboard is everything needed to render one analysed video
type Dashboard struct {
	VideoID      string           `json:"video_id"`
	Link         string           `json:"link"`
	EmbedURL     string           `json:"embed_url"`
	Channel      *ChannelInfo     `json:"channel,omitempty"` // nil when the API returned no data
	Stats        *VideoStats      `json:"stats,omitempty"`   // nil when the API returned no data
	CommentCount int              `json:"comment_count"`
	Summary      SentimentSummary `json:"summary"`
	Overall      string           `json:"overall_sentiment"`
	BarChart     []ChartRow       `json:"bar_chart"`
	PieChart     []ChartRow       `json:"pie_chart"`
}
