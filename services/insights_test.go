package services

import (
	"testing"
	"time"

	"f1-highlights-analytics/models"
	"f1-highlights-analytics/utils"
)

func sampleRecords() []*models.VideoRecord {
	day := time.Date(2024, 3, 2, 18, 0, 0, 0, time.UTC)
	return []*models.VideoRecord{
		{VideoID: "v1", Title: "Race Highlights | Bahrain — Verstappen wins", PublishedAt: day, ViewCount: 1000, LikeCount: 50, CommentCount: 10, EngagementRate: 0.06},
		{VideoID: "v2", Title: "Race Highlights | Jeddah", PublishedAt: day.AddDate(0, 0, 7), ViewCount: 2000, LikeCount: 40, CommentCount: 20, EngagementRate: 0.03},
		{VideoID: "v3", Title: "Race Highlights | Melbourne — Sainz triumphs", PublishedAt: day.AddDate(0, 0, 22), ViewCount: 500, LikeCount: 45, CommentCount: 5, EngagementRate: 0.1},
		{VideoID: "v4", Title: "Race Highlights | Suzuka — Verstappen again", PublishedAt: day.AddDate(0, 1, 5), ViewCount: 800, LikeCount: 8, CommentCount: 0, EngagementRate: 0.01},
	}
}

func TestInsightTotals(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(sampleRecords())

	if r.TotalVideos != 4 {
		t.Errorf("TotalVideos: got %d, want 4", r.TotalVideos)
	}
	if r.TotalViews != 4300 {
		t.Errorf("TotalViews: got %d, want 4300", r.TotalViews)
	}
	if r.TotalLikes != 143 {
		t.Errorf("TotalLikes: got %d, want 143", r.TotalLikes)
	}
	if r.TotalComments != 35 {
		t.Errorf("TotalComments: got %d, want 35", r.TotalComments)
	}
	if r.AvgEngagement != 0.05 {
		t.Errorf("AvgEngagement: got %v, want 0.05", r.AvgEngagement)
	}
}

func TestInsightTopVideos(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(sampleRecords())

	if r.TopByViews == nil || r.TopByViews.VideoID != "v2" {
		t.Errorf("TopByViews: got %+v, want v2", r.TopByViews)
	}
	if r.TopByEngagement == nil || r.TopByEngagement.VideoID != "v3" {
		t.Errorf("TopByEngagement: got %+v, want v3", r.TopByEngagement)
	}
}

func TestInsightDriverMentions(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(sampleRecords())

	if r.DriverMentions["Verstappen"] != 2 {
		t.Errorf("Verstappen mentions: got %d, want 2", r.DriverMentions["Verstappen"])
	}
	if r.DriverMentions["Sainz"] != 1 {
		t.Errorf("Sainz mentions: got %d, want 1", r.DriverMentions["Sainz"])
	}
	if r.TopDriver != "Verstappen" || r.TopDriverCount != 2 {
		t.Errorf("TopDriver: got %s (%d), want Verstappen (2)", r.TopDriver, r.TopDriverCount)
	}
}

func TestInsightEmptyInput(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(nil)

	if r.TotalVideos != 0 || r.TotalViews != 0 || r.AvgEngagement != 0 {
		t.Errorf("expected zeroed report for empty input, got %+v", r)
	}
	if r.TopByViews != nil || r.TopByEngagement != nil {
		t.Error("top videos must be nil for empty input")
	}
}
