// Command sentiment prints the comment sentiment of a video to the terminal.
//
//	sentiment [-config configs/config.yml] [-csv out.csv] <youtube link>
//	sentiment -from-csv dQw4w9WgXcQ.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"comment-sentiment/internal/config"
	"comment-sentiment/internal/llm"
	"comment-sentiment/internal/models"
	"comment-sentiment/internal/report"
	"comment-sentiment/internal/repository"
	"comment-sentiment/internal/sentiment"
	"comment-sentiment/internal/youtube"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "configs/config.yml", "path to the YAML config file")
	csvOut := flag.String("csv", "", "write the fetched comments to this CSV file")
	fromCSV := flag.String("from-csv", "", "classify a previously exported CSV instead of fetching")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx := context.Background()

	var comments []models.Comment
	if *fromCSV != "" {
		comments, err = readCSV(*fromCSV)
		if err != nil {
			logger.Fatal("Failed to read CSV", zap.Error(err))
		}
	} else {
		comments, err = fetch(ctx, cfg, flag.Arg(0), logger)
		if err != nil {
			logger.Fatal("Failed to fetch comments", zap.Error(err))
		}
		if *csvOut != "" {
			if err := writeCSV(*csvOut, comments); err != nil {
				logger.Fatal("Failed to write CSV", zap.Error(err))
			}
		}
	}

	scorer, closeScorer, err := llm.NewScorer(cfg.Scorer, logger)
	if err != nil {
		logger.Fatal("Failed to initialize scorer", zap.Error(err))
	}
	defer closeScorer()

	summary, err := sentiment.NewClassifier(scorer, logger).SummarizeComments(ctx, comments)
	if err != nil {
		logger.Fatal("Failed to classify comments", zap.Error(err))
	}

	printSummary(os.Stdout, summary)
}

func fetch(ctx context.Context, cfg *config.Config, link string, logger *zap.Logger) ([]models.Comment, error) {
	videoID, ok := youtube.ExtractVideoID(link)
	if !ok {
		return nil, fmt.Errorf("invalid youtube link or video id not found: %q", link)
	}

	client, err := youtube.NewClient(ctx, youtube.Config{
		APIKey:   cfg.YouTube.APIKey,
		PageSize: cfg.YouTube.PageSize,
	}, logger)
	if err != nil {
		return nil, err
	}

	return client.Comments(ctx, videoID)
}

func readCSV(path string) ([]models.Comment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return repository.ReadCSV(f)
}

func writeCSV(path string, comments []models.Comment) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := repository.WriteCSV(f, comments); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSummary(w io.Writer, summary models.SentimentSummary) {
	fmt.Fprintf(w, "Positive Comments: %d\n", summary.Positive)
	fmt.Fprintf(w, "Negative Comments: %d\n", summary.Negative)
	fmt.Fprintf(w, "Neutral Comments:  %d\n", summary.Neutral)

	var c *color.Color
	switch report.Overall(summary) {
	case report.OverallPositive:
		c = color.New(color.Bold, color.FgGreen)
	case report.OverallNegative:
		c = color.New(color.Bold, color.FgRed)
	default:
		c = color.New(color.Bold, color.FgYellow)
	}

	fmt.Fprintln(w)
	c.Fprintln(w, report.Banner(summary, 50))
}
