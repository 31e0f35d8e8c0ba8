package models

// SentimentLabel is the bucket a comment falls into
type SentimentLabel string

const (
	Positive SentimentLabel = "Positive"
	Negative SentimentLabel = "Negative"
	Neutral  SentimentLabel = "Neutral"
)

// SentimentSummary holds per-label comment counts
type SentimentSummary struct {
	Positive int `json:"num_positive"`
	Negative int `json:"num_negative"`
	Neutral  int `json:"num_neutral"`
}

// Add counts one comment under label
func (s *SentimentSummary) Add(label SentimentLabel) {
	switch label {
	case Positive:
		s.Positive++
	case Negative:
		s.Negative++
	default:
		s.Neutral++
	}
}

// Total is the number of classified comments
func (s SentimentSummary) Total() int {
	return s.Positive + s.Negative + s.Neutral
}
