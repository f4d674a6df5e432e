package news

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/softnews/softnews/internal/models"
	"github.com/softnews/softnews/internal/utils"
)

// defaultCategory is the label stamped on every shaped article. The feed
// runs technology queries only, so a single fixed category is accurate.
const defaultCategory = "Teknoloji"

// Shape maps a provider-native article into the canonical Article. The id is
// a stable hash of the URL so it survives cache refreshes; url-less articles
// fall back to a random id since there is nothing durable to key on.
func Shape(raw models.RawArticle) models.Article {
	content := strings.TrimSpace(raw.Content)
	if content == "" {
		content = raw.Description
	}

	var imageURL *string
	if img := strings.TrimSpace(raw.Image); img != "" {
		imageURL = &img
	}

	var sourceName *string
	if name := strings.TrimSpace(raw.Source.Name); name != "" {
		sourceName = &name
	}

	id := randomID()
	if raw.URL != "" {
		id = utils.ShortHash(raw.URL)
	}

	return models.Article{
		ID:          id,
		Title:       raw.Title,
		Description: raw.Description,
		Content:     content,
		URL:         raw.URL,
		ImageURL:    imageURL,
		PublishedAt: raw.PublishedAt,
		SourceName:  sourceName,
		Category:    defaultCategory,
	}
}

// ShapeAll shapes every article and caps the result to the first max in
// filtered order.
func ShapeAll(raw []models.RawArticle, max int) []models.Article {
	if max > 0 && len(raw) > max {
		raw = raw[:max]
	}
	shaped := make([]models.Article, 0, len(raw))
	for _, a := range raw {
		shaped = append(shaped, Shape(a))
	}
	return shaped
}

func randomID() string {
	return strconv.FormatInt(rand.Int63(), 36)
}
