package services

import (
	"math"
	"strings"

	"f1-highlights-analytics/models"
	"f1-highlights-analytics/utils"
)

var (
	// highlightKeywords mark a video as a race recap. At least one must
	// appear in the title or description.
	highlightKeywords = []string{
		"highlights",
		"race recap",
	}

	// excludeKeywords knock a video out even when a highlight keyword
	// matched. The filter is conservative: ambiguous titles are dropped.
	excludeKeywords = []string{
		"full race",
		"live stream",
		"press conference",
		"interview",
		"trailer",
		"onboard",
	}
)

// IsHighlight decides whether a video belongs in the dataset. It is a
// pure keyword heuristic over title and description; false negatives
// are acceptable, false positives are not.
func IsHighlight(title, description string) bool {
	text := strings.ToLower(title) + " " + strings.ToLower(description)

	matched := false
	for _, kw := range highlightKeywords {
		if strings.Contains(text, kw) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	for _, kw := range excludeKeywords {
		if strings.Contains(text, kw) {
			return false
		}
	}
	return true
}

// Filter transforms playlist items into the highlight subset.
type Filter struct {
	logger *utils.Logger
}

// NewFilter creates a Filter with the given logger.
func NewFilter(logger *utils.Logger) *Filter {
	return &Filter{logger: logger}
}

// Highlights returns the items that pass IsHighlight.
func (f *Filter) Highlights(items []*models.PlaylistItem) []*models.PlaylistItem {
	result := make([]*models.PlaylistItem, 0, len(items))

	for _, it := range items {
		if !IsHighlight(it.Title, it.Description) {
			f.logger.Debug("[filter] Not a highlight, skipped: %s", it.Title)
			continue
		}
		result = append(result, it)
	}

	f.logger.Info("[filter] Kept %d of %d videos as highlights", len(result), len(items))
	return result
}

// EngagementRate computes (likes + comments) / views, guarded against a
// zero view count, rounded to 4 decimals.
func EngagementRate(views, likes, comments int64) float64 {
	if views == 0 {
		return 0
	}
	rate := float64(likes+comments) / float64(views)
	return math.Round(rate*10000) / 10000
}

// BuildRecords joins filtered playlist items with their statistics into
// the final table rows. A video with no statistics entry is kept with
// zero-valued counts — never dropped, never partially written.
func (f *Filter) BuildRecords(items []*models.PlaylistItem, stats map[string]models.VideoStats) []*models.VideoRecord {
	records := make([]*models.VideoRecord, 0, len(items))

	for _, it := range items {
		s, found := stats[it.VideoID]
		if !found {
			f.logger.Warn("[filter] No statistics for %s (%s) — zero-filling", it.VideoID, it.Title)
		}
		records = append(records, &models.VideoRecord{
			VideoID:         it.VideoID,
			Title:           it.Title,
			PublishedAt:     it.PublishedAt,
			DurationSeconds: s.DurationSeconds,
			ViewCount:       s.ViewCount,
			LikeCount:       s.LikeCount,
			CommentCount:    s.CommentCount,
			EngagementRate:  EngagementRate(s.ViewCount, s.LikeCount, s.CommentCount),
		})
	}

	return records
}
