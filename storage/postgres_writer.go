package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"f1-highlights-analytics/models"
	"f1-highlights-analytics/utils"
)

// PostgresWriter mirrors the collected table into PostgreSQL for ad-hoc
// SQL queries. The dashboard does not read from it; the CSV remains the
// contract file.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{MaxAttempts: 5, BaseDelay: 2 * time.Second, Logger: logger}
	if err := retry.Do("postgres-ping", db.Ping); err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS videos (
			id               SERIAL PRIMARY KEY,
			video_id         VARCHAR(32)  UNIQUE NOT NULL,
			title            TEXT         NOT NULL,
			published_at     TIMESTAMPTZ  NOT NULL,
			duration_seconds INTEGER      NOT NULL DEFAULT 0,
			view_count       BIGINT       NOT NULL DEFAULT 0,
			like_count       BIGINT       NOT NULL DEFAULT 0,
			comment_count    BIGINT       NOT NULL DEFAULT 0,
			engagement_rate  NUMERIC(8,4) NOT NULL DEFAULT 0,
			created_at       TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_videos_published  ON videos(published_at);
		CREATE INDEX IF NOT EXISTS idx_videos_views      ON videos(view_count);
		CREATE INDEX IF NOT EXISTS idx_videos_engagement ON videos(engagement_rate);
	`)
	return err
}

// Clear deletes all existing rows. Each collector run replaces the table.
func (pw *PostgresWriter) Clear() error {
	_, err := pw.db.Exec("DELETE FROM videos")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Write batch-inserts all records, clearing old data first.
func (pw *PostgresWriter) Write(records []*models.VideoRecord) error {
	if len(records) == 0 {
		return nil
	}

	if err := pw.Clear(); err != nil {
		return err
	}

	const batchSize = 50
	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := pw.insertBatch(records[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batch []*models.VideoRecord) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*8)

	for idx, r := range batch {
		base := idx * 8
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8))
		valueArgs = append(valueArgs,
			r.VideoID, r.Title, r.PublishedAt, r.DurationSeconds,
			r.ViewCount, r.LikeCount, r.CommentCount, r.EngagementRate)
	}

	query := fmt.Sprintf(`
		INSERT INTO videos (video_id, title, published_at, duration_seconds,
		                    view_count, like_count, comment_count, engagement_rate)
		VALUES %s
		ON CONFLICT (video_id) DO NOTHING
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

// FetchAll retrieves all stored records ordered by publication date.
func (pw *PostgresWriter) FetchAll() ([]*models.VideoRecord, error) {
	rows, err := pw.db.Query(`
		SELECT video_id, title, published_at, duration_seconds,
		       view_count, like_count, comment_count, engagement_rate
		FROM videos
		ORDER BY published_at
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var records []*models.VideoRecord
	for rows.Next() {
		r := &models.VideoRecord{}
		if err := rows.Scan(
			&r.VideoID, &r.Title, &r.PublishedAt, &r.DurationSeconds,
			&r.ViewCount, &r.LikeCount, &r.CommentCount, &r.EngagementRate,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
