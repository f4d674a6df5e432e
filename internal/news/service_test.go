package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/softnews/softnews/internal/cache"
	"github.com/softnews/softnews/internal/config"
	"github.com/softnews/softnews/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		NewsProvider:    "gnews",
		NewsMaxArticles: 30,
		NewsCacheTTL:    24 * time.Hour,
		UpstreamTimeout: time.Second,
	}
}

func TestLatestMissingKeyIsConfigError(t *testing.T) {
	cfg := testConfig()
	cfg.GNewsAPIKey = ""
	svc := NewService(cfg, cache.NewMemoryStore())

	_, err := svc.Latest(context.Background())
	if !errors.Is(err, ErrConfig) {
		t.Errorf("Expected ErrConfig for missing key, got %v", err)
	}
}

func TestLatestServesFromCacheWithoutFetching(t *testing.T) {
	cfg := testConfig()
	cfg.GNewsAPIKey = "" // any fetch attempt would fail with ErrConfig

	store := cache.NewMemoryStore()
	cached := Result{Articles: []models.Article{{ID: "abc123", Title: "Önbellekten", URL: "https://example.com/1"}}}
	cache.New[Result](store, cacheKey, cfg.NewsCacheTTL).Write(context.Background(), cached)

	svc := NewService(cfg, store)
	got, err := svc.Latest(context.Background())
	if err != nil {
		t.Fatalf("Expected cache hit to bypass the pipeline, got %v", err)
	}
	if !got.FromCache {
		t.Error("Expected FromCache to be set")
	}
	if len(got.Articles) != 1 || got.Articles[0].Title != "Önbellekten" {
		t.Errorf("Unexpected cached payload: %+v", got.Articles)
	}
}

func TestRefreshInvalidatesCache(t *testing.T) {
	cfg := testConfig()
	cfg.GNewsAPIKey = ""

	store := cache.NewMemoryStore()
	cache.New[Result](store, cacheKey, cfg.NewsCacheTTL).
		Write(context.Background(), Result{Articles: []models.Article{{ID: "x"}}})

	svc := NewService(cfg, store)

	// Refresh skips the cache and hits the pipeline, which fails on config.
	if _, err := svc.Refresh(context.Background()); !errors.Is(err, ErrConfig) {
		t.Fatalf("Expected refresh to re-run the pipeline, got %v", err)
	}

	// The stale entry is gone, so a plain Latest also reaches the pipeline.
	if _, err := svc.Latest(context.Background()); !errors.Is(err, ErrConfig) {
		t.Errorf("Expected cache to be invalidated, got %v", err)
	}
}
