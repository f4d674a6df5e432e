package models

// Video is one entry in the video section, either from the YouTube search
// API or from the curated fallback list.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	Thumbnail   string `json:"thumbnail"`
	PublishedAt string `json:"publishedAt"`
	URL         string `json:"url"`
}

// VideoResult is the /api/youtube response body. Source names where the
// items came from: "youtube" or "fallback".
type VideoResult struct {
	OK     bool    `json:"ok"`
	Source string  `json:"source"`
	Items  []Video `json:"items"`
}
