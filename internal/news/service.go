package news

import (
	"context"
	"time"

	"github.com/softnews/softnews/internal/cache"
	"github.com/softnews/softnews/internal/config"
	"github.com/softnews/softnews/internal/logger"
	"github.com/softnews/softnews/internal/models"
)

const cacheKey = "news:latest"

// Result is what the news endpoint returns: the shaped feed plus the
// per-source fetch report from the run that produced it. A cached Result
// carries the report of the run that populated the cache.
type Result struct {
	Articles  []models.Article      `json:"articles"`
	Sources   []models.SourceReport `json:"sources,omitempty"`
	FromCache bool                  `json:"-"`
}

// Service runs the full pipeline: cache check, provider fan-out, filter,
// dedupe, shape, cache write.
type Service struct {
	cfg     *config.Config
	fetcher *Fetcher
	cache   *cache.Cache[Result]
}

func NewService(cfg *config.Config, store cache.Store) *Service {
	return &Service{
		cfg:     cfg,
		fetcher: NewFetcher(cfg.UpstreamTimeout),
		cache:   cache.New[Result](store, cacheKey, cfg.NewsCacheTTL),
	}
}

// Latest returns the current feed, serving from cache within the TTL window.
// The only error it can return is a configuration error (ErrConfig); all
// upstream failures degrade to a smaller or empty feed.
func (s *Service) Latest(ctx context.Context) (Result, error) {
	if cached, hit := s.cache.Read(ctx); hit {
		cached.FromCache = true
		return cached, nil
	}
	return s.refresh(ctx)
}

// Refresh drops the cached feed and re-runs the pipeline.
func (s *Service) Refresh(ctx context.Context) (Result, error) {
	s.cache.Invalidate(ctx)
	return s.refresh(ctx)
}

func (s *Service) refresh(ctx context.Context) (Result, error) {
	start := time.Now()

	descriptors, err := BuildRequests(s.cfg.NewsProvider, s.cfg.GNewsAPIKey, s.cfg.NewsMaxArticles)
	if err != nil {
		return Result{}, err
	}

	raw, reports := s.fetcher.FetchAll(ctx, descriptors)
	shaped := ShapeAll(Dedupe(Filter(raw)), s.cfg.NewsMaxArticles)

	logger.Get().Info().
		Int("fetched", len(raw)).
		Int("shaped", len(shaped)).
		Dur("duration", time.Since(start)).
		Msg("News pipeline finished")

	result := Result{Articles: shaped, Sources: reports}
	s.cache.Write(ctx, result)
	return result, nil
}
