package report

import (
	"strings"

	"comment-sentiment/internal/models"
)

// Overall sentiment values
const (
	OverallPositive = "POSITIVE"
	OverallNegative = "NEGATIVE"
	OverallNeutral  = "NEUTRAL"
)

// BarTable returns the rows of the categorical bar chart
func BarTable(s models.SentimentSummary) []models.ChartRow {
	return []models.ChartRow{
		{Label: models.Positive, Count: s.Positive, Color: "#87CEFA"},
		{Label: models.Negative, Count: s.Negative, Color: "#FFA07A"},
		{Label: models.Neutral, Count: s.Neutral, Color: "#D3D3D3"},
	}
}

// PieTable returns the rows of the proportion chart. Order and colors are fixed.
func PieTable(s models.SentimentSummary) []models.ChartRow {
	return []models.ChartRow{
		{Label: models.Neutral, Count: s.Neutral, Color: "yellow"},
		{Label: models.Positive, Count: s.Positive, Color: "green"},
		{Label: models.Negative, Count: s.Negative, Color: "red"},
	}
}

// Overall compares positive against negative; a tie is neutral.
// The neutral count does not take part, so 1 positive and 100 neutral
// comments still read as POSITIVE. Kept as is for compatibility.
func Overall(s models.SentimentSummary) string {
	switch {
	case s.Positive > s.Negative:
		return OverallPositive
	case s.Negative > s.Positive:
		return OverallNegative
	default:
		return OverallNeutral
	}
}

// Banner centers the overall sentiment in a field of width columns
func Banner(s models.SentimentSummary, width int) string {
	word := Overall(s)
	if width <= len(word) {
		return word
	}
	pad := width - len(word)
	left := pad / 2
	return strings.Repeat(" ", left) + word + strings.Repeat(" ", pad-left)
}
