package search

import (
	"context"
	"time"
)

// Provider defines the unified interface for news search providers
type Provider interface {
	// Search performs a news search with configuration
	Search(ctx context.Context, query string, config Config) ([]Result, error)

	// GetName returns the name of the search provider
	GetName() string
}

// Config holds configuration for search requests
type Config struct {
	MaxResults int           // Maximum number of results to return
	SinceTime  time.Duration // Only return results newer than this duration
}

// Result represents a unified news search result
type Result struct {
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
	Source   string `json:"source"`   // Outlet name as reported by the provider
	Link     string `json:"link"`     // Link to the full story
	Date     string `json:"date"`     // Provider-formatted publication date
	Position int    `json:"position"` // Position in search results
}

// ProviderType represents the type of search provider
type ProviderType string

const (
	ProviderTypeSerpAPI ProviderType = "serpapi"
	ProviderTypeMock    ProviderType = "mock"
)

// ProviderFactory creates search providers based on type and configuration
type ProviderFactory struct{}

// NewProviderFactory creates a new provider factory
func NewProviderFactory() *ProviderFactory {
	return &ProviderFactory{}
}

// CreateProvider creates a search provider of the specified type
func (f *ProviderFactory) CreateProvider(providerType ProviderType, config map[string]string) (Provider, error) {
	switch providerType {
	case ProviderTypeSerpAPI:
		apiKey, exists := config["api_key"]
		if !exists || apiKey == "" {
			return nil, ErrMissingAPIKey
		}
		return NewSerpAPIProvider(apiKey), nil
	case ProviderTypeMock:
		return NewMockProvider(), nil
	default:
		return nil, ErrUnsupportedProvider
	}
}
