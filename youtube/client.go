package youtube

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"f1-highlights-analytics/models"
	"f1-highlights-analytics/utils"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// maxPageSize is the largest page the Data API allows for both the
// playlistItems and videos endpoints.
const maxPageSize = 50

var (
	// ErrAuth means the API rejected the key. The run cannot continue.
	ErrAuth = errors.New("youtube: authentication failed")
	// ErrQuota means the daily quota is exhausted. The run cannot continue.
	ErrQuota = errors.New("youtube: quota exceeded")
)

// Client talks to the YouTube Data API v3. It is constructed explicitly
// and passed around — there is no package-level client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *utils.Logger
}

// New creates a ready-to-use Client with the given API key.
func New(apiKey string, logger *utils.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// NewWithBaseURL creates a Client pointed at an alternative endpoint.
// Used by tests to target a local fake API.
func NewWithBaseURL(apiKey, baseURL string, logger *utils.Logger) *Client {
	c := New(apiKey, logger)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// apiError mirrors the error envelope the Data API returns on failures.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

type playlistItemsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			PublishedAt string `json:"publishedAt"`
			ResourceID  struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

type videosResponse struct {
	Items []struct {
		ID         string `json:"id"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// ListPlaylistVideos pages through the playlist and returns every item
// exactly once. Pagination stops when the API reports no further pages.
// Authentication and quota failures abort with ErrAuth/ErrQuota.
func (c *Client) ListPlaylistVideos(playlistID string) ([]*models.PlaylistItem, error) {
	var items []*models.PlaylistItem
	seen := utils.NewIDSet()
	pageToken := ""
	page := 0

	c.logger.Info("[youtube] Listing playlist %s", playlistID)

	for {
		page++
		params := url.Values{
			"part":       {"snippet"},
			"playlistId": {playlistID},
			"maxResults": {strconv.Itoa(maxPageSize)},
		}
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var resp playlistItemsResponse
		if err := c.get("playlistItems", params, &resp); err != nil {
			return nil, fmt.Errorf("list playlist page %d: %w", page, err)
		}

		for _, it := range resp.Items {
			id := it.Snippet.ResourceID.VideoID
			if id == "" {
				c.logger.Warn("[youtube] Playlist item without video ID skipped (title: %s)", it.Snippet.Title)
				continue
			}
			if !seen.Add(id) {
				c.logger.Debug("[youtube] Duplicate video %s skipped", id)
				continue
			}
			items = append(items, &models.PlaylistItem{
				VideoID:     id,
				Title:       it.Snippet.Title,
				Description: it.Snippet.Description,
				PublishedAt: parseTimestamp(it.Snippet.PublishedAt),
			})
		}

		c.logger.Info("[youtube] Page %d done — %d items so far", page, len(items))

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	c.logger.Info("[youtube] Playlist listing complete — %d videos", len(items))
	return items, nil
}

// FetchStatistics retrieves counters and duration for the given video
// IDs, batched up to 50 per request. A failed batch is logged and its
// videos are simply absent from the result (the caller zero-fills);
// only ErrAuth/ErrQuota abort.
func (c *Client) FetchStatistics(ids []string) (map[string]models.VideoStats, error) {
	stats := make(map[string]models.VideoStats, len(ids))

	for i := 0; i < len(ids); i += maxPageSize {
		end := i + maxPageSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[i:end]

		params := url.Values{
			"part": {"snippet,statistics,contentDetails"},
			"id":   {strings.Join(batch, ",")},
		}

		var resp videosResponse
		if err := c.get("videos", params, &resp); err != nil {
			if errors.Is(err, ErrAuth) || errors.Is(err, ErrQuota) {
				return nil, fmt.Errorf("fetch statistics: %w", err)
			}
			c.logger.Warn("[youtube] Statistics batch of %d videos failed: %v — counts default to zero", len(batch), err)
			continue
		}

		for _, it := range resp.Items {
			stats[it.ID] = models.VideoStats{
				ViewCount:       parseCount(it.Statistics.ViewCount),
				LikeCount:       parseCount(it.Statistics.LikeCount),
				CommentCount:    parseCount(it.Statistics.CommentCount),
				DurationSeconds: ParseISODuration(it.ContentDetails.Duration),
			}
		}
	}

	c.logger.Info("[youtube] Statistics fetched for %d of %d videos", len(stats), len(ids))
	return stats, nil
}

// get performs one API request and decodes the response into out.
func (c *Client) get(endpoint string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	reqURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return fmt.Errorf("youtube: %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.statusError(endpoint, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("youtube: decode %s response: %w", endpoint, err)
	}
	return nil
}

// statusError maps API failure statuses to the error taxonomy: 401 and
// key-related 403s are ErrAuth, quota 403s and 429 are ErrQuota.
func (c *Client) statusError(endpoint string, resp *http.Response) error {
	var apiErr apiError
	reason := ""
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && len(apiErr.Error.Errors) > 0 {
		reason = apiErr.Error.Errors[0].Reason
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w (%s)", ErrAuth, endpoint)
	case http.StatusForbidden:
		if reason == "quotaExceeded" || reason == "dailyLimitExceeded" || reason == "rateLimitExceeded" {
			return fmt.Errorf("%w (%s)", ErrQuota, endpoint)
		}
		return fmt.Errorf("%w (%s, reason %q)", ErrAuth, endpoint, reason)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w (%s)", ErrQuota, endpoint)
	}
	return fmt.Errorf("youtube: %s returned status %d (reason %q)", endpoint, resp.StatusCode, reason)
}

// parseCount parses an API count field. Counts arrive as strings and
// may be absent entirely; both cases yield zero.
func parseCount(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
