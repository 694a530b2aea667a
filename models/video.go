package models

import "time"

// PlaylistItem holds the listing-level metadata returned while paging
// through a playlist. This is what the highlight filter runs against,
// before any statistics are fetched.
type PlaylistItem struct {
	VideoID     string
	Title       string
	Description string
	PublishedAt time.Time
}

// VideoStats holds the per-video counters and duration returned by the
// statistics endpoint. Missing counters are zero, never an error.
type VideoStats struct {
	ViewCount       int64
	LikeCount       int64
	CommentCount    int64
	DurationSeconds int
}

// VideoRecord is one row of the persisted table: a highlight video with
// its statistics and the derived engagement rate.
type VideoRecord struct {
	VideoID         string
	Title           string
	PublishedAt     time.Time
	DurationSeconds int
	ViewCount       int64
	LikeCount       int64
	CommentCount    int64
	EngagementRate  float64
}

// SummaryReport holds the computed analytics over the collected dataset.
type SummaryReport struct {
	TotalVideos     int
	TotalViews      int64
	TotalLikes      int64
	TotalComments   int64
	AvgEngagement   float64
	TopByViews      *VideoRecord
	TopByEngagement *VideoRecord
	DriverMentions  map[string]int
	TopDriver       string
	TopDriverCount  int
}
