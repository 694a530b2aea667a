package dashboard

import (
	"sort"

	"f1-highlights-analytics/models"
)

// ApplyFilters returns the subset of records inside the (inclusive)
// date range, ordered by the requested sort key. Pure: no I/O, and the
// input slice is never modified.
func ApplyFilters(records []*models.VideoRecord, opts models.FilterOptions) []*models.VideoRecord {
	result := make([]*models.VideoRecord, 0, len(records))

	for _, r := range records {
		if opts.From != nil && r.PublishedAt.Before(*opts.From) {
			continue
		}
		if opts.To != nil && r.PublishedAt.After(*opts.To) {
			continue
		}
		result = append(result, r)
	}

	less := lessFunc(opts.SortKey)
	sort.SliceStable(result, func(i, j int) bool {
		if opts.Descending {
			return less(result[j], result[i])
		}
		return less(result[i], result[j])
	})

	return result
}

func lessFunc(key models.SortKey) func(a, b *models.VideoRecord) bool {
	switch key {
	case models.SortByViews:
		return func(a, b *models.VideoRecord) bool { return a.ViewCount < b.ViewCount }
	case models.SortByLikes:
		return func(a, b *models.VideoRecord) bool { return a.LikeCount < b.LikeCount }
	case models.SortByComments:
		return func(a, b *models.VideoRecord) bool { return a.CommentCount < b.CommentCount }
	case models.SortByEngagement:
		return func(a, b *models.VideoRecord) bool { return a.EngagementRate < b.EngagementRate }
	default:
		return func(a, b *models.VideoRecord) bool { return a.PublishedAt.Before(b.PublishedAt) }
	}
}
