package youtube

import "github.com/softnews/softnews/internal/models"

// fallbackVideos keeps the video section populated when no API key is
// configured or the search API is down. Curated Turkish technology channels.
var fallbackVideos = []models.Video{
	{
		ID:          "fallback-1",
		Title:       "Haftanın Teknoloji Gündemi",
		Channel:     "Teknoloji Dünyası",
		Thumbnail:   "https://placehold.co/480x360?text=Teknoloji",
		PublishedAt: "2024-01-08T09:00:00Z",
		URL:         "https://www.youtube.com/results?search_query=teknoloji+g%C3%BCndemi",
	},
	{
		ID:          "fallback-2",
		Title:       "Yapay Zeka Bu Hafta Neler Yaptı?",
		Channel:     "Yapay Zeka TR",
		Thumbnail:   "https://placehold.co/480x360?text=Yapay+Zeka",
		PublishedAt: "2024-01-07T18:30:00Z",
		URL:         "https://www.youtube.com/results?search_query=yapay+zeka+haberleri",
	},
	{
		ID:          "fallback-3",
		Title:       "Yazılım Geliştiriciler İçin Haftalık Özet",
		Channel:     "Kod Saati",
		Thumbnail:   "https://placehold.co/480x360?text=Yazilim",
		PublishedAt: "2024-01-06T12:00:00Z",
		URL:         "https://www.youtube.com/results?search_query=yaz%C4%B1l%C4%B1m+haberleri",
	},
	{
		ID:          "fallback-4",
		Title:       "Akıllı Telefon İncelemeleri",
		Channel:     "Mobil Dünya",
		Thumbnail:   "https://placehold.co/480x360?text=Mobil",
		PublishedAt: "2024-01-05T15:45:00Z",
		URL:         "https://www.youtube.com/results?search_query=telefon+inceleme",
	},
}

func fallbackResult(max int) models.VideoResult {
	items := fallbackVideos
	if max > 0 && len(items) > max {
		items = items[:max]
	}
	return models.VideoResult{OK: true, Source: "fallback", Items: items}
}
