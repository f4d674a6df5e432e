package extract

import (
	"context"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/softnews/softnews/internal/logger"
	"github.com/softnews/softnews/internal/models"
)

// Best-effort extraction of a readable {title, text} pair from arbitrary
// third-party HTML. Every failure path degrades to empty strings; the caller
// falls back to the short list-level description.

const (
	// maxHTMLBytes caps how much of an uncontrolled page gets scanned.
	maxHTMLBytes = 2 << 20

	// minMainTextLen is the floor below which a "main content" block is
	// considered site chrome rather than the article body.
	minMainTextLen = 400

	// minParagraphLen drops boilerplate one-liners from the <p> fallback.
	minParagraphLen = 80
)

var (
	scriptRe    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe     = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagRe       = regexp.MustCompile(`<[^>]*>`)
	articleRe   = regexp.MustCompile(`(?is)<article[^>]*>(.*?)</article>`)
	containerRe = regexp.MustCompile(`(?is)<(?:div|main)[^>]+(?:id|class)\s*=\s*["'][^"']*(?:content|main|article|post)[^"']*["'][^>]*>(.*?)</(?:div|main)>`)
	sectionRe   = regexp.MustCompile(`(?is)<section[^>]*>(.*?)</section>`)
	paragraphRe = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	titleTagRe  = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	ogTitleRe   = regexp.MustCompile(`(?i)<meta[^>]+property\s*=\s*["']og:title["'][^>]+content\s*=\s*["']([^"']*)["']`)
	h1Re        = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
)

type Extractor struct {
	client *resty.Client
}

func NewExtractor(timeout time.Duration) *Extractor {
	return &Extractor{
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("User-Agent", "Mozilla/5.0 (compatible; SoftNewsBot/1.0)"),
	}
}

// Extract fetches the URL and heuristically pulls out a title and body text.
// It never returns an error: a failed fetch, a non-2xx status or a page the
// heuristics cannot read all yield {ok:true, "", "", url}.
func (e *Extractor) Extract(ctx context.Context, target string) models.ExtractedArticle {
	result := models.ExtractedArticle{OK: true, Source: target}

	resp, err := e.client.R().
		SetContext(ctx).
		Get(target)
	if err != nil {
		logger.Get().Warn().Err(err).Str("url", target).Msg("Article fetch failed")
		return result
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		logger.Get().Debug().Int("status", resp.StatusCode()).Str("url", target).Msg("Article fetch non-2xx")
		return result
	}

	body := resp.Body()
	if len(body) > maxHTMLBytes {
		body = body[:maxHTMLBytes]
	}
	page := string(body)

	result.Title = extractTitle(page)
	result.Text = extractMainText(page)
	return result
}

// stripTags converts an HTML fragment to collapsed plain text.
func stripTags(fragment string) string {
	cleaned := scriptRe.ReplaceAllString(fragment, " ")
	cleaned = styleRe.ReplaceAllString(cleaned, " ")
	cleaned = tagRe.ReplaceAllString(cleaned, " ")
	cleaned = html.UnescapeString(cleaned)
	return strings.Join(strings.Fields(cleaned), " ")
}

// extractMainText scans likely content containers in priority order and
// keeps the longest plain-text block. If nothing reaches the length floor it
// falls back to concatenating substantial <p> contents in document order,
// and keeps whichever candidate ends up longer.
func extractMainText(page string) string {
	var best string
	for _, re := range []*regexp.Regexp{articleRe, containerRe, sectionRe} {
		for _, match := range re.FindAllStringSubmatch(page, -1) {
			if text := stripTags(match[1]); len(text) > len(best) {
				best = text
			}
		}
	}

	if len(best) >= minMainTextLen {
		return best
	}

	var paragraphs []string
	for _, match := range paragraphRe.FindAllStringSubmatch(page, -1) {
		if text := stripTags(match[1]); len(text) >= minParagraphLen {
			paragraphs = append(paragraphs, text)
		}
	}
	if joined := strings.Join(paragraphs, "\n"); len(joined) > len(best) {
		return joined
	}
	return best
}

// extractTitle picks the longest non-empty candidate among <title>, og:title
// and <h1>. Longest, not first: specific headlines beat generic site chrome.
func extractTitle(page string) string {
	var best string

	if match := titleTagRe.FindStringSubmatch(page); match != nil {
		if text := stripTags(match[1]); len(text) > len(best) {
			best = text
		}
	}
	if match := ogTitleRe.FindStringSubmatch(page); match != nil {
		if text := strings.TrimSpace(html.UnescapeString(match[1])); len(text) > len(best) {
			best = text
		}
	}
	if match := h1Re.FindStringSubmatch(page); match != nil {
		if text := stripTags(match[1]); len(text) > len(best) {
			best = text
		}
	}
	return best
}
