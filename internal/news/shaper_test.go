package news

import (
	"testing"

	"github.com/softnews/softnews/internal/models"
	"github.com/softnews/softnews/internal/utils"
)

func TestShapeMapsCanonicalFields(t *testing.T) {
	raw := models.RawArticle{
		Title:       "Yeni telefon tanıtıldı",
		Description: "Kısa açıklama",
		Content:     "Uzun içerik metni",
		URL:         "https://example.com/haber",
		Image:       "https://example.com/resim.jpg",
		PublishedAt: "2024-01-05T10:00:00Z",
	}
	raw.Source.Name = "Örnek Haber"

	got := Shape(raw)

	if got.Title != raw.Title || got.Description != raw.Description || got.Content != raw.Content {
		t.Errorf("Shape changed text fields: %+v", got)
	}
	if got.URL != raw.URL || got.PublishedAt != raw.PublishedAt {
		t.Errorf("Shape changed url/publishedAt: %+v", got)
	}
	if got.ImageURL == nil || *got.ImageURL != raw.Image {
		t.Errorf("Expected imageUrl %q, got %v", raw.Image, got.ImageURL)
	}
	if got.SourceName == nil || *got.SourceName != "Örnek Haber" {
		t.Errorf("Expected sourceName, got %v", got.SourceName)
	}
	if got.Category != defaultCategory {
		t.Errorf("Expected category %q, got %q", defaultCategory, got.Category)
	}
}

func TestShapeContentFallsBackToDescription(t *testing.T) {
	raw := models.RawArticle{
		Title:       "Başlık",
		Description: "Açıklama metni",
		URL:         "https://example.com/1",
	}

	if got := Shape(raw); got.Content != "Açıklama metni" {
		t.Errorf("Expected content to fall back to description, got %q", got.Content)
	}
}

func TestShapeEmptyOptionalFieldsAreNil(t *testing.T) {
	got := Shape(models.RawArticle{Title: "t", URL: "https://example.com/1"})
	if got.ImageURL != nil {
		t.Errorf("Expected nil imageUrl, got %v", got.ImageURL)
	}
	if got.SourceName != nil {
		t.Errorf("Expected nil sourceName, got %v", got.SourceName)
	}
}

func TestShapeIDIsStableAcrossCalls(t *testing.T) {
	raw := models.RawArticle{Title: "t", URL: "https://example.com/haber"}

	first := Shape(raw)
	second := Shape(raw)

	if first.ID != second.ID {
		t.Errorf("Expected stable id for same url, got %q and %q", first.ID, second.ID)
	}
	if first.ID != utils.ShortHash(raw.URL) {
		t.Errorf("Expected id derived from url hash, got %q", first.ID)
	}
}

func TestShapeURLLessArticleGetsRandomID(t *testing.T) {
	got := Shape(models.RawArticle{Title: "t"})
	if got.ID == "" {
		t.Error("Expected a fallback id for url-less article")
	}
}

func TestShapeAllCapsResult(t *testing.T) {
	raw := make([]models.RawArticle, 50)
	for i := range raw {
		raw[i] = models.RawArticle{Title: "t", URL: "https://example.com/" + string(rune('a'+i%26))}
	}

	if got := ShapeAll(raw, 30); len(got) != 30 {
		t.Errorf("Expected result capped to 30, got %d", len(got))
	}
	if got := ShapeAll(raw[:5], 30); len(got) != 5 {
		t.Errorf("Expected 5 shaped articles, got %d", len(got))
	}
}

func TestPipelineIdempotentModuloRandomIDs(t *testing.T) {
	raw := []models.RawArticle{
		{Title: "Birinci haber", Description: "açıklama", URL: "https://example.com/1"},
		{Title: "İkinci haber", Description: "açıklama", URL: "https://example.com/2"},
		{Title: "Birinci haber", Description: "açıklama", URL: "https://example.com/1"},
	}

	first := ShapeAll(Dedupe(Filter(raw)), 30)
	second := ShapeAll(Dedupe(Filter(raw)), 30)

	if len(first) != len(second) {
		t.Fatalf("Pipeline not idempotent: %d vs %d articles", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Article %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestDuplicateURLDifferentCasingYieldsFirstSeen(t *testing.T) {
	raw := []models.RawArticle{
		{Title: "özgün başlık", URL: "https://example.com/ayni"},
		{Title: "ÖZGÜN BAŞLIK", URL: "https://example.com/ayni"},
	}

	got := ShapeAll(Dedupe(Filter(raw)), 30)

	if len(got) != 1 {
		t.Fatalf("Expected exactly one article, got %d", len(got))
	}
	if got[0].Title != "özgün başlık" {
		t.Errorf("Expected first-seen title, got %q", got[0].Title)
	}
}
