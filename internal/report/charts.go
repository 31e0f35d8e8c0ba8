package report

import (
	"io"

	"comment-sentiment/internal/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const chartTitle = "Sentiment Analysis Results"

// NewBarChart builds the bar chart of comment counts per label
func NewBarChart(s models.SentimentSummary) *charts.Bar {
	rows := BarTable(s)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: chartTitle}),
		charts.WithTitleOpts(opts.Title{
			Title:      chartTitle,
			TitleStyle: &opts.TextStyle{FontSize: 25},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Comments"}),
	)

	labels := make([]string, len(rows))
	items := make([]opts.BarData, len(rows))
	for i, row := range rows {
		labels[i] = string(row.Label)
		items[i] = opts.BarData{
			Name:      string(row.Label),
			Value:     row.Count,
			ItemStyle: &opts.ItemStyle{Color: row.Color},
		}
	}

	bar.SetXAxis(labels).AddSeries("Number of Comments", items)
	return bar
}

// NewPieChart builds the proportion chart with label and percent on each slice
func NewPieChart(s models.SentimentSummary) *charts.Pie {
	rows := PieTable(s)

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: chartTitle}),
		charts.WithTitleOpts(opts.Title{
			Title:      chartTitle,
			Left:       "center",
			TitleStyle: &opts.TextStyle{FontSize: 20, Color: "grey"},
		}),
	)

	items := make([]opts.PieData, len(rows))
	for i, row := range rows {
		items[i] = opts.PieData{
			Name:      string(row.Label),
			Value:     row.Count,
			ItemStyle: &opts.ItemStyle{Color: row.Color},
		}
	}

	pie.AddSeries("Sentiment", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {d}%",
		}))
	return pie
}

// RenderBar writes a standalone HTML page with the bar chart
func RenderBar(w io.Writer, s models.SentimentSummary) error {
	return NewBarChart(s).Render(w)
}

// RenderPie writes a standalone HTML page with the pie chart
func RenderPie(w io.Writer, s models.SentimentSummary) error {
	return NewPieChart(s).Render(w)
}
