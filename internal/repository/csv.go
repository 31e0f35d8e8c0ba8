package repository

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"comment-sentiment/internal/models"
)

// CSVHeader is the first row of every comment export
var CSVHeader = []string{"Username", "comment"}

const utf8BOM = '\uFEFF'

// WriteCSV writes the header and one row per comment
func WriteCSV(w io.Writer, comments []models.Comment) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, c := range comments {
		if err := writer.Write([]string{c.Author, c.Text}); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadCSV parses a comment export. A leading byte order mark is skipped.
func ReadCSV(r io.Reader) ([]models.Comment, error) {
	br := bufio.NewReader(r)
	if ch, _, err := br.ReadRune(); err == nil && ch != utf8BOM {
		if err := br.UnreadRune(); err != nil {
			return nil, err
		}
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = len(CSVHeader)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty csv")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if header[0] != CSVHeader[0] || header[1] != CSVHeader[1] {
		return nil, fmt.Errorf("unexpected csv header %q", header)
	}

	var comments []models.Comment
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		comments = append(comments, models.Comment{Author: row[0], Text: row[1]})
	}

	return comments, nil
}
