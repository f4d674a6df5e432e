package news

import (
	"strings"

	"github.com/softnews/softnews/internal/models"
)

// excludedKeywords drops articles about crime, legal proceedings, war and
// similar topics that leak into Turkish-language technology queries.
// Matching is a case-insensitive substring check over title+description, so
// stems catch their inflected forms ("tutuklan" matches "tutuklandı").
var excludedKeywords = []string{
	"cinayet",
	"öldür",
	"gözaltı",
	"tutuklan",
	"mahkeme",
	"dava",
	"savaş",
	"saldırı",
	"terör",
	"bomba",
	"silah",
	"kaza",
	"deprem",
	"yangın",
	"taciz",
	"istismar",
	"dolandırıcı",
	"kumar",
	"yasadışı bahis",
}

// Filter removes articles whose title+description contains any excluded
// keyword. Pure; order preserving.
func Filter(articles []models.RawArticle) []models.RawArticle {
	kept := make([]models.RawArticle, 0, len(articles))
	for _, a := range articles {
		haystack := strings.ToLower(a.Title + " " + a.Description)
		excluded := false
		for _, kw := range excludedKeywords {
			if strings.Contains(haystack, kw) {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, a)
		}
	}
	return kept
}

// Dedupe removes articles whose exact URL has already been seen, keeping the
// first occurrence in place. Articles without a URL cannot be keyed and all
// pass through. Pure; order preserving.
func Dedupe(articles []models.RawArticle) []models.RawArticle {
	seen := make(map[string]struct{}, len(articles))
	kept := make([]models.RawArticle, 0, len(articles))
	for _, a := range articles {
		if a.URL != "" {
			if _, dup := seen[a.URL]; dup {
				continue
			}
			seen[a.URL] = struct{}{}
		}
		kept = append(kept, a)
	}
	return kept
}
