package youtube

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"f1-highlights-analytics/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLogger() }

// fakeAPI serves a three-page playlist and a videos endpoint keyed by id.
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	pages := map[string]string{
		"": `{
			"nextPageToken": "p2",
			"items": [
				{"snippet": {"title": "Race Highlights | Bahrain", "description": "", "publishedAt": "2024-03-02T18:00:00Z", "resourceId": {"videoId": "vid1"}}},
				{"snippet": {"title": "Race Highlights | Jeddah", "description": "", "publishedAt": "2024-03-09T18:00:00Z", "resourceId": {"videoId": "vid2"}}}
			]
		}`,
		"p2": `{
			"nextPageToken": "p3",
			"items": [
				{"snippet": {"title": "Race Highlights | Melbourne", "description": "", "publishedAt": "2024-03-24T08:00:00Z", "resourceId": {"videoId": "vid3"}}},
				{"snippet": {"title": "Race Highlights | Jeddah", "description": "", "publishedAt": "2024-03-09T18:00:00Z", "resourceId": {"videoId": "vid2"}}}
			]
		}`,
		"p3": `{
			"items": [
				{"snippet": {"title": "Race Highlights | Suzuka", "description": "", "publishedAt": "2024-04-07T09:00:00Z", "resourceId": {"videoId": "vid4"}}}
			]
		}`,
	}

	mux.HandleFunc("/playlistItems", func(w http.ResponseWriter, r *http.Request) {
		body, exists := pages[r.URL.Query().Get("pageToken")]
		if !exists {
			http.Error(w, `{"error":{"code":404}}`, http.StatusNotFound)
			return
		}
		fmt.Fprint(w, body)
	})

	mux.HandleFunc("/videos", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"items": [
				{"id": "vid1", "statistics": {"viewCount": "1000", "likeCount": "50", "commentCount": "10"}, "contentDetails": {"duration": "PT7M32S"}},
				{"id": "vid2", "statistics": {}, "contentDetails": {"duration": "PT6M"}}
			]
		}`)
	})

	return httptest.NewServer(mux)
}

func TestListPlaylistVideosAllPagesNoDuplicates(t *testing.T) {
	srv := fakeAPI(t)
	defer srv.Close()

	c := NewWithBaseURL("test-key", srv.URL, newTestLogger())
	items, err := c.ListPlaylistVideos("PLtest")
	if err != nil {
		t.Fatalf("ListPlaylistVideos: %v", err)
	}

	if len(items) != 4 {
		t.Fatalf("expected 4 unique items across 3 pages, got %d", len(items))
	}

	wantOrder := []string{"vid1", "vid2", "vid3", "vid4"}
	for i, want := range wantOrder {
		if items[i].VideoID != want {
			t.Errorf("item %d: got %q, want %q", i, items[i].VideoID, want)
		}
	}
}

func TestFetchStatisticsMissingFieldsDefaultToZero(t *testing.T) {
	srv := fakeAPI(t)
	defer srv.Close()

	c := NewWithBaseURL("test-key", srv.URL, newTestLogger())
	stats, err := c.FetchStatistics([]string{"vid1", "vid2"})
	if err != nil {
		t.Fatalf("FetchStatistics: %v", err)
	}

	s1 := stats["vid1"]
	if s1.ViewCount != 1000 || s1.LikeCount != 50 || s1.CommentCount != 10 {
		t.Errorf("vid1 stats: got %+v", s1)
	}
	if s1.DurationSeconds != 452 {
		t.Errorf("vid1 duration: got %d, want 452", s1.DurationSeconds)
	}

	s2 := stats["vid2"]
	if s2.ViewCount != 0 || s2.LikeCount != 0 || s2.CommentCount != 0 {
		t.Errorf("vid2 stats should be zero, got %+v", s2)
	}
}

func TestFetchStatisticsBatchFailureDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":500}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewWithBaseURL("test-key", srv.URL, newTestLogger())
	stats, err := c.FetchStatistics([]string{"vid1", "vid2"})
	if err != nil {
		t.Fatalf("a non-fatal batch failure must not abort the run: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("expected no stats from a failed batch, got %d", len(stats))
	}
}

func TestAuthFailureAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":401}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewWithBaseURL("bad-key", srv.URL, newTestLogger())

	if _, err := c.ListPlaylistVideos("PLtest"); !errors.Is(err, ErrAuth) {
		t.Errorf("ListPlaylistVideos: expected ErrAuth, got %v", err)
	}
	if _, err := c.FetchStatistics([]string{"vid1"}); !errors.Is(err, ErrAuth) {
		t.Errorf("FetchStatistics: expected ErrAuth, got %v", err)
	}
}

func TestQuotaFailureAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"errors":[{"reason":"quotaExceeded"}]}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewWithBaseURL("test-key", srv.URL, newTestLogger())

	if _, err := c.ListPlaylistVideos("PLtest"); !errors.Is(err, ErrQuota) {
		t.Errorf("ListPlaylistVideos: expected ErrQuota, got %v", err)
	}
	if _, err := c.FetchStatistics([]string{"vid1"}); !errors.Is(err, ErrQuota) {
		t.Errorf("FetchStatistics: expected ErrQuota, got %v", err)
	}
}
