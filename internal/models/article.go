package models

// Article is the canonical shape every provider's raw article is mapped into.
// ID is a stable prefix of the sha256 of the URL, so it survives cache
// refreshes and can be used as a routing key.
type Article struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	URL         string  `json:"url"`
	ImageURL    *string `json:"imageUrl"`
	PublishedAt string  `json:"publishedAt"`
	SourceName  *string `json:"sourceName"`
	Category    string  `json:"category"`
}

// RawArticle is the provider-native article shape before filtering and
// shaping. GNews nests the source name one level down.
type RawArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"source"`
}

// SourceReport records the outcome of one upstream query. The pipeline
// proceeds on the union of successes; failed sources contribute zero
// articles but stay visible here instead of vanishing into a log line.
type SourceReport struct {
	Source string `json:"source"`
	OK     bool   `json:"ok"`
	Count  int    `json:"count"`
	Error  string `json:"error,omitempty"`
}

// ExtractedArticle is the best-effort output of the article text extractor.
// Empty Title/Text stand in for "not found"; OK is true even then.
type ExtractedArticle struct {
	OK     bool   `json:"ok"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Source string `json:"source"`
}
