package news

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrConfig marks deployment defects (missing key, unknown provider). These
// surface as HTTP 500, unlike upstream fetch failures which degrade to an
// empty result.
var ErrConfig = errors.New("news: configuration error")

const gnewsBaseURL = "https://gnews.io/api/v4/search"

// gnewsQueries are the searches run against GNews on every refresh. Two
// queries widen coverage beyond what a single term returns.
var gnewsQueries = []string{
	"teknoloji",
	"yapay zeka OR yazılım",
}

// RequestDescriptor is one fully-formed upstream GET, ready to execute.
type RequestDescriptor struct {
	Source string
	URL    string
}

// BuildRequests maps the configured provider name to the list of upstream
// queries to run. The provider name is matched case-insensitively. A provider
// that requires an API key signals ErrConfig when the key is absent.
func BuildRequests(provider, apiKey string, maxPerQuery int) ([]RequestDescriptor, error) {
	switch strings.ToLower(provider) {
	case "", "gnews":
		if apiKey == "" {
			return nil, fmt.Errorf("%w: GNEWS_API_KEY is not set", ErrConfig)
		}
		descriptors := make([]RequestDescriptor, 0, len(gnewsQueries))
		for _, q := range gnewsQueries {
			params := url.Values{}
			params.Set("q", q)
			params.Set("lang", "tr")
			params.Set("country", "tr")
			params.Set("max", fmt.Sprintf("%d", maxPerQuery))
			params.Set("apikey", apiKey)
			descriptors = append(descriptors, RequestDescriptor{
				Source: "gnews:" + q,
				URL:    gnewsBaseURL + "?" + params.Encode(),
			})
		}
		return descriptors, nil
	default:
		return nil, fmt.Errorf("%w: unknown news provider %q", ErrConfig, provider)
	}
}
