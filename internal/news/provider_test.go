package news

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildRequestsGNews(t *testing.T) {
	descriptors, err := BuildRequests("gnews", "test-key", 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(descriptors) != len(gnewsQueries) {
		t.Fatalf("Expected %d descriptors, got %d", len(gnewsQueries), len(descriptors))
	}
	for _, d := range descriptors {
		if !strings.HasPrefix(d.URL, gnewsBaseURL) {
			t.Errorf("Descriptor URL %q does not target GNews", d.URL)
		}
		for _, want := range []string{"apikey=test-key", "lang=tr", "country=tr", "max=10"} {
			if !strings.Contains(d.URL, want) {
				t.Errorf("Descriptor URL %q missing %q", d.URL, want)
			}
		}
		if d.Source == "" {
			t.Error("Descriptor missing source label")
		}
	}
}

func TestBuildRequestsProviderNameIsCaseInsensitive(t *testing.T) {
	if _, err := BuildRequests("GNews", "test-key", 10); err != nil {
		t.Errorf("Expected case-insensitive provider match, got %v", err)
	}
}

func TestBuildRequestsMissingKeyIsConfigError(t *testing.T) {
	_, err := BuildRequests("gnews", "", 10)
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}
	if !errors.Is(err, ErrConfig) {
		t.Errorf("Expected ErrConfig, got %v", err)
	}
}

func TestBuildRequestsUnknownProviderIsConfigError(t *testing.T) {
	_, err := BuildRequests("definitely-not-a-provider", "key", 10)
	if !errors.Is(err, ErrConfig) {
		t.Errorf("Expected ErrConfig for unknown provider, got %v", err)
	}
}
