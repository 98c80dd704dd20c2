package search

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestCreateProviderSerpAPI(t *testing.T) {
	factory := NewProviderFactory()

	provider, err := factory.CreateProvider(ProviderTypeSerpAPI, map[string]string{"api_key": "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.GetName() != "SerpAPI" {
		t.Errorf("expected provider name SerpAPI, got %s", provider.GetName())
	}
}

func TestCreateProviderSerpAPIMissingKey(t *testing.T) {
	factory := NewProviderFactory()

	if _, err := factory.CreateProvider(ProviderTypeSerpAPI, map[string]string{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}

	if _, err := factory.CreateProvider(ProviderTypeSerpAPI, map[string]string{"api_key": ""}); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey for empty key, got %v", err)
	}
}

func TestCreateProviderMock(t *testing.T) {
	factory := NewProviderFactory()

	provider, err := factory.CreateProvider(ProviderTypeMock, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.GetName() != "Mock" {
		t.Errorf("expected provider name Mock, got %s", provider.GetName())
	}
}

func TestCreateProviderUnsupported(t *testing.T) {
	factory := NewProviderFactory()

	if _, err := factory.CreateProvider("duckduckgo", nil); !errors.Is(err, ErrUnsupportedProvider) {
		t.Errorf("expected ErrUnsupportedProvider, got %v", err)
	}
}

func TestSerpAPISearch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("tbm") != "nws" {
			t.Errorf("expected tbm=nws, got %s", q.Get("tbm"))
		}
		if q.Get("tbs") != "qdr:d" {
			t.Errorf("expected tbs=qdr:d for 24h window, got %s", q.Get("tbs"))
		}
		if q.Get("num") != "3" {
			t.Errorf("expected num=3, got %s", q.Get("num"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"news_results": [
				{"title": "Story One", "link": "https://example.com/1", "snippet": "First snippet", "source": "Wire A", "date": "1 hour ago", "position": 1},
				{"title": "Story Two", "link": "https://example.com/2", "snippet": "Second snippet", "source": "Wire B", "date": "2 hours ago", "position": 2}
			]
		}`))
	}))
	defer ts.Close()

	provider := NewSerpAPIProvider("test-key")
	provider.SetBaseURL(ts.URL)

	results, err := provider.Search(context.Background(), "news", Config{MaxResults: 3, SinceTime: 24 * time.Hour})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Title != "Story One" {
		t.Errorf("expected title 'Story One', got %q", results[0].Title)
	}
	if results[0].Source != "Wire A" {
		t.Errorf("expected source 'Wire A', got %q", results[0].Source)
	}
	if results[1].Position != 2 {
		t.Errorf("expected position 2, got %d", results[1].Position)
	}
}

func TestSerpAPISearchNoResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"search_metadata": {"status": "Success"}}`))
	}))
	defer ts.Close()

	provider := NewSerpAPIProvider("test-key")
	provider.SetBaseURL(ts.URL)

	results, err := provider.Search(context.Background(), "nothing matches this", Config{MaxResults: 3})
	if err != nil {
		t.Fatalf("missing news_results should not be an error, got: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
	if results == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestSerpAPISearchAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error": {"code": 401, "message": "Invalid API key"}}`))
	}))
	defer ts.Close()

	provider := NewSerpAPIProvider("bad-key")
	provider.SetBaseURL(ts.URL)

	if _, err := provider.Search(context.Background(), "news", Config{MaxResults: 3}); err == nil {
		t.Error("expected error for API error payload")
	}
}

func TestSerpAPISearchHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	provider := NewSerpAPIProvider("test-key")
	provider.SetBaseURL(ts.URL)

	if _, err := provider.Search(context.Background(), "news", Config{MaxResults: 3}); err == nil {
		t.Error("expected error for HTTP 503")
	}
}

func TestSerpAPISearchConcurrent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"news_results": [
				{"title": "Story One", "link": "https://example.com/1", "snippet": "First snippet", "source": "Wire A", "date": "1 hour ago", "position": 1}
			]
		}`))
	}))
	defer ts.Close()

	provider := NewSerpAPIProvider("test-key")
	provider.SetBaseURL(ts.URL)
	provider.rateLimit = time.Millisecond

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, err := provider.Search(context.Background(), "news", Config{MaxResults: 3})
			if err != nil {
				errs <- err
				return
			}
			if len(results) != 1 {
				errs <- errors.New("unexpected result count")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent search failed: %v", err)
	}
}

func TestMockProviderLimit(t *testing.T) {
	provider := NewMockProvider()

	results, err := provider.Search(context.Background(), "news", Config{MaxResults: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}

func TestMockProviderError(t *testing.T) {
	provider := NewMockProvider()
	provider.SetError(ErrProviderUnavailable)

	if _, err := provider.Search(context.Background(), "news", Config{MaxResults: 3}); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
}
