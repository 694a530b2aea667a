package dashboard

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"f1-highlights-analytics/models"
	"f1-highlights-analytics/services"
	"f1-highlights-analytics/utils"
)

//go:embed static
var staticFS embed.FS

// Server presents the collected table over HTTP. The table is loaded
// once at startup and never mutated, so handlers read it without
// locking.
type Server struct {
	records  []*models.VideoRecord
	insights *services.InsightService
	logger   *utils.Logger
	router   *chi.Mux
}

// New creates a Server over an in-memory table.
func New(records []*models.VideoRecord, logger *utils.Logger) *Server {
	s := &Server{
		records:  records,
		insights: services.NewInsightService(logger),
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/api/videos", s.handleVideos)
	r.Get("/api/summary", s.handleSummary)

	s.router = r
	return s
}

// Router exposes the configured handler for http.ListenAndServe.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	f, err := staticFS.Open("static/index.html")
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.Copy(w, f)
}

// videoJSON is the wire shape of one table row.
type videoJSON struct {
	VideoID         string  `json:"video_id"`
	Title           string  `json:"title"`
	PublishedAt     string  `json:"published_at"`
	DurationSeconds int     `json:"duration_seconds"`
	ViewCount       int64   `json:"view_count"`
	LikeCount       int64   `json:"like_count"`
	CommentCount    int64   `json:"comment_count"`
	EngagementRate  float64 `json:"engagement_rate"`
}

func (s *Server) handleVideos(w http.ResponseWriter, r *http.Request) {
	opts, err := parseFilters(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	filtered := ApplyFilters(s.records, opts)

	out := make([]videoJSON, 0, len(filtered))
	for _, rec := range filtered {
		out = append(out, videoJSON{
			VideoID:         rec.VideoID,
			Title:           rec.Title,
			PublishedAt:     rec.PublishedAt.Format(time.RFC3339),
			DurationSeconds: rec.DurationSeconds,
			ViewCount:       rec.ViewCount,
			LikeCount:       rec.LikeCount,
			CommentCount:    rec.CommentCount,
			EngagementRate:  rec.EngagementRate,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// summaryJSON is the wire shape of the summary cards.
type summaryJSON struct {
	TotalVideos     int            `json:"total_videos"`
	TotalViews      int64          `json:"total_views"`
	TotalLikes      int64          `json:"total_likes"`
	TotalComments   int64          `json:"total_comments"`
	AvgEngagement   float64        `json:"avg_engagement"`
	TopByViews      string         `json:"top_by_views"`
	TopByEngagement string         `json:"top_by_engagement"`
	TopDriver       string         `json:"top_driver"`
	TopDriverCount  int            `json:"top_driver_count"`
	DriverMentions  map[string]int `json:"driver_mentions"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	opts, err := parseFilters(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	filtered := ApplyFilters(s.records, opts)
	report := s.insights.Generate(filtered)

	out := summaryJSON{
		TotalVideos:    report.TotalVideos,
		TotalViews:     report.TotalViews,
		TotalLikes:     report.TotalLikes,
		TotalComments:  report.TotalComments,
		AvgEngagement:  report.AvgEngagement,
		TopDriver:      report.TopDriver,
		TopDriverCount: report.TopDriverCount,
		DriverMentions: report.DriverMentions,
	}
	if report.TopByViews != nil {
		out.TopByViews = report.TopByViews.Title
	}
	if report.TopByEngagement != nil {
		out.TopByEngagement = report.TopByEngagement.Title
	}
	writeJSON(w, http.StatusOK, out)
}

// parseFilters maps the query string to FilterOptions. Dates arrive as
// YYYY-MM-DD; the upper bound becomes end-of-day so both ends are
// inclusive.
func parseFilters(r *http.Request) (models.FilterOptions, error) {
	var opts models.FilterOptions
	q := r.URL.Query()

	if v := q.Get("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return opts, fmt.Errorf("invalid from date %q", v)
		}
		opts.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return opts, fmt.Errorf("invalid to date %q", v)
		}
		end := t.Add(24*time.Hour - time.Second)
		opts.To = &end
	}

	key, err := models.ParseSortKey(q.Get("sort"))
	if err != nil {
		return opts, err
	}
	opts.SortKey = key

	switch q.Get("order") {
	case "", "asc":
	case "desc":
		opts.Descending = true
	default:
		return opts, fmt.Errorf("invalid order %q", q.Get("order"))
	}

	return opts, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
