package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/softnews/softnews/internal/logger"
	"github.com/softnews/softnews/internal/models"
)

type Fetcher struct {
	client *resty.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

type gnewsResponse struct {
	TotalArticles int                 `json:"totalArticles"`
	Articles      []models.RawArticle `json:"articles"`
}

// fetchOne executes a single request descriptor and returns that source's
// raw articles.
func (f *Fetcher) fetchOne(ctx context.Context, desc RequestDescriptor) ([]models.RawArticle, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(desc.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", desc.Source, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode(), desc.Source)
	}

	var body gnewsResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("failed to parse response from %s: %w", desc.Source, err)
	}

	return body.Articles, nil
}

// FetchAll executes all descriptors concurrently and concatenates the
// successful result sets. A failed source contributes zero articles and an
// error entry in its report; the aggregate call itself never fails. The
// report slice follows descriptor order.
func (f *Fetcher) FetchAll(ctx context.Context, descriptors []RequestDescriptor) ([]models.RawArticle, []models.SourceReport) {
	type result struct {
		idx      int
		articles []models.RawArticle
		err      error
	}

	results := make(chan result, len(descriptors))

	for i, desc := range descriptors {
		go func(idx int, d RequestDescriptor) {
			articles, err := f.fetchOne(ctx, d)
			results <- result{idx: idx, articles: articles, err: err}
		}(i, desc)
	}

	reports := make([]models.SourceReport, len(descriptors))
	collected := make([][]models.RawArticle, len(descriptors))

	for range descriptors {
		res := <-results
		report := models.SourceReport{Source: descriptors[res.idx].Source}
		if res.err != nil {
			logger.Get().Warn().
				Err(res.err).
				Str("source", report.Source).
				Msg("Upstream news fetch failed")
			report.Error = res.err.Error()
		} else {
			report.OK = true
			report.Count = len(res.articles)
			collected[res.idx] = res.articles
		}
		reports[res.idx] = report
	}

	var all []models.RawArticle
	for _, articles := range collected {
		all = append(all, articles...)
	}

	return all, reports
}
