package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"newsdesk/internal/logger"
)

// SerpAPIProvider implements Provider using SerpAPI's Google News engine
type SerpAPIProvider struct {
	apiKey    string
	baseURL   string
	client    *http.Client
	rateLimit time.Duration

	// mu guards lastCall; one provider instance serves every request
	mu       sync.Mutex
	lastCall time.Time
}

// NewSerpAPIProvider creates a new SerpAPI news search provider
func NewSerpAPIProvider(apiKey string) *SerpAPIProvider {
	return &SerpAPIProvider{
		apiKey:  apiKey,
		baseURL: "https://serpapi.com/search",
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		rateLimit: 1 * time.Second,
	}
}

// GetName returns the name of this provider
func (s *SerpAPIProvider) GetName() string {
	return "SerpAPI"
}

// SetBaseURL overrides the API endpoint (used in tests)
func (s *SerpAPIProvider) SetBaseURL(baseURL string) {
	s.baseURL = baseURL
}

// Search performs a Google News search using SerpAPI
func (s *SerpAPIProvider) Search(ctx context.Context, query string, config Config) ([]Result, error) {
	// Respect rate limiting. Holding the lock through the sleep serializes
	// concurrent callers so each gets its own window.
	s.mu.Lock()
	if elapsed := time.Since(s.lastCall); elapsed < s.rateLimit {
		time.Sleep(s.rateLimit - elapsed)
	}
	s.lastCall = time.Now()
	s.mu.Unlock()

	params := url.Values{}
	params.Set("q", query)
	params.Set("engine", "google")
	params.Set("tbm", "nws")
	params.Set("api_key", s.apiKey)
	if config.MaxResults > 0 {
		params.Set("num", strconv.Itoa(config.MaxResults))
	}

	// Add time filter if specified
	if config.SinceTime > 0 {
		days := int(config.SinceTime.Hours() / 24)
		switch {
		case days <= 1:
			params.Set("tbs", "qdr:d")
		case days <= 7:
			params.Set("tbs", "qdr:w")
		case days <= 30:
			params.Set("tbs", "qdr:m")
		default:
			params.Set("tbs", "qdr:y")
		}
	}

	fullURL := s.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create SerpAPI request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute SerpAPI request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SerpAPI request failed with status: %d", resp.StatusCode)
	}

	// Parse JSON response
	var apiResponse struct {
		NewsResults []struct {
			Title    string `json:"title"`
			Link     string `json:"link"`
			Snippet  string `json:"snippet"`
			Source   string `json:"source"`
			Date     string `json:"date"`
			Position int    `json:"position"`
		} `json:"news_results"`
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error,omitempty"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, fmt.Errorf("failed to parse SerpAPI response: %w", err)
	}

	// Check for API errors
	if apiResponse.Error.Code != 0 {
		return nil, fmt.Errorf("SerpAPI error (%d): %s", apiResponse.Error.Code, apiResponse.Error.Message)
	}

	// Absent news_results means no matching stories, not a failure
	results := make([]Result, 0, len(apiResponse.NewsResults))
	for _, item := range apiResponse.NewsResults {
		results = append(results, Result{
			Title:    item.Title,
			Snippet:  item.Snippet,
			Source:   item.Source,
			Link:     item.Link,
			Date:     item.Date,
			Position: item.Position,
		})
	}

	logger.Info("SerpAPI news search completed", "query", query, "results_found", len(results))

	return results, nil
}
