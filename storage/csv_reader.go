package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"f1-highlights-analytics/models"
)

// LoadCSV reads a persisted table back into memory. The dashboard calls
// this once at startup; a missing file, wrong header, or malformed row
// is an error the caller treats as fatal.
func LoadCSV(path string) ([]*models.VideoRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv: %q is empty (no header row)", path)
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	var records []*models.VideoRecord
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row: %w", err)
		}
		line++

		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("csv: line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func validateHeader(header []string) error {
	if len(header) != len(csvColumns) {
		return fmt.Errorf("csv: expected %d columns, found %d", len(csvColumns), len(header))
	}
	for i, want := range csvColumns {
		if header[i] != want {
			return fmt.Errorf("csv: column %d is %q, expected %q", i, header[i], want)
		}
	}
	return nil
}

func parseRow(row []string) (*models.VideoRecord, error) {
	published, err := time.Parse(time.RFC3339, row[2])
	if err != nil {
		return nil, fmt.Errorf("published_at %q: %w", row[2], err)
	}
	duration, err := strconv.Atoi(row[3])
	if err != nil {
		return nil, fmt.Errorf("duration_seconds %q: %w", row[3], err)
	}
	views, err := strconv.ParseInt(row[4], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("view_count %q: %w", row[4], err)
	}
	likes, err := strconv.ParseInt(row[5], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("like_count %q: %w", row[5], err)
	}
	comments, err := strconv.ParseInt(row[6], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("comment_count %q: %w", row[6], err)
	}
	engagement, err := strconv.ParseFloat(row[7], 64)
	if err != nil {
		return nil, fmt.Errorf("engagement_rate %q: %w", row[7], err)
	}

	return &models.VideoRecord{
		VideoID:         row[0],
		Title:           row[1],
		PublishedAt:     published,
		DurationSeconds: duration,
		ViewCount:       views,
		LikeCount:       likes,
		CommentCount:    comments,
		EngagementRate:  engagement,
	}, nil
}
