package search

import "errors"

var (
	// ErrMissingAPIKey is returned when a required API key is not provided
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnsupportedProvider is returned when an unsupported provider type is specified
	ErrUnsupportedProvider = errors.New("unsupported search provider")

	// ErrProviderUnavailable is returned when a provider service is unavailable
	ErrProviderUnavailable = errors.New("search provider is currently unavailable")
)
