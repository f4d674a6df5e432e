package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/softnews/softnews/internal/cache"
	"github.com/softnews/softnews/internal/config"
	"github.com/softnews/softnews/internal/logger"
	"github.com/softnews/softnews/internal/models"
)

const searchBaseURL = "https://www.googleapis.com/youtube/v3/search"

const (
	defaultQuery = "teknoloji haberleri"
	defaultMax   = 12
	maxResults   = 25
)

// Service proxies YouTube search for the video section. A missing key or a
// failed upstream call degrades to the curated fallback list; this endpoint
// never errors.
type Service struct {
	cfg    *config.Config
	client *resty.Client
	store  cache.Store
}

func NewService(cfg *config.Config, store cache.Store) *Service {
	return &Service{
		cfg:    cfg,
		client: resty.New().SetTimeout(cfg.UpstreamTimeout),
		store:  store,
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search returns videos for the query, serving from cache within the TTL
// window. Only successful upstream results are cached; the fallback list is
// recomputed per request so a later fetch can replace it.
func (s *Service) Search(ctx context.Context, query string, max int) models.VideoResult {
	if query == "" {
		query = defaultQuery
	}
	if max <= 0 {
		max = defaultMax
	}
	if max > maxResults {
		max = maxResults
	}

	slot := cache.New[models.VideoResult](s.store, fmt.Sprintf("videos:%s:%d", query, max), s.cfg.VideoCacheTTL)
	if cached, hit := slot.Read(ctx); hit {
		return cached
	}

	if s.cfg.YouTubeAPIKey == "" {
		logger.Get().Debug().Msg("YOUTUBE_API_KEY not set, serving fallback videos")
		return fallbackResult(max)
	}

	items, err := s.search(ctx, query, max)
	if err != nil {
		logger.Get().Warn().Err(err).Str("query", query).Msg("YouTube search failed, serving fallback videos")
		return fallbackResult(max)
	}

	result := models.VideoResult{OK: true, Source: "youtube", Items: items}
	slot.Write(ctx, result)
	return result
}

func (s *Service) search(ctx context.Context, query string, max int) ([]models.Video, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("q", query)
	params.Set("maxResults", fmt.Sprintf("%d", max))
	params.Set("relevanceLanguage", "tr")
	params.Set("regionCode", "TR")
	params.Set("order", "date")
	params.Set("key", s.cfg.YouTubeAPIKey)

	resp, err := s.client.R().
		SetContext(ctx).
		Get(searchBaseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("youtube search request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("youtube search returned status %d", resp.StatusCode())
	}

	var body searchResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("failed to parse youtube response: %w", err)
	}

	videos := make([]models.Video, 0, len(body.Items))
	for _, item := range body.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, models.Video{
			ID:          item.ID.VideoID,
			Title:       item.Snippet.Title,
			Channel:     item.Snippet.ChannelTitle,
			Thumbnail:   item.Snippet.Thumbnails.High.URL,
			PublishedAt: item.Snippet.PublishedAt,
			URL:         "https://www.youtube.com/watch?v=" + item.ID.VideoID,
		})
	}
	return videos, nil
}
