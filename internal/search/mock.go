package search

import "context"

// MockProvider implements Provider for testing purposes
type MockProvider struct {
	name    string
	results []Result
	err     error
}

// NewMockProvider creates a new mock search provider
func NewMockProvider() *MockProvider {
	return &MockProvider{
		name: "Mock",
		results: []Result{
			{
				Title:    "Global Markets React to Policy Shift",
				Snippet:  "Markets moved sharply after the announcement of new monetary policy measures.",
				Source:   "Example Wire",
				Link:     "https://example.com/markets",
				Date:     "2 hours ago",
				Position: 1,
			},
			{
				Title:    "Breakthrough Reported in Battery Research",
				Snippet:  "Researchers describe a new electrode design with higher energy density.",
				Source:   "Test Journal",
				Link:     "https://test.org/battery",
				Date:     "5 hours ago",
				Position: 2,
			},
			{
				Title:    "New Climate Report Released",
				Snippet:  "The latest assessment highlights accelerating regional impacts.",
				Source:   "Demo Times",
				Link:     "https://demo.net/climate",
				Date:     "8 hours ago",
				Position: 3,
			},
		},
	}
}

// GetName returns the name of this provider
func (m *MockProvider) GetName() string {
	return m.name
}

// Search returns the configured mock results
func (m *MockProvider) Search(ctx context.Context, query string, config Config) ([]Result, error) {
	if m.err != nil {
		return nil, m.err
	}

	maxResults := config.MaxResults
	if maxResults <= 0 || maxResults > len(m.results) {
		maxResults = len(m.results)
	}

	results := make([]Result, maxResults)
	copy(results, m.results[:maxResults])
	return results, nil
}

// SetResults allows customization of mock results for testing
func (m *MockProvider) SetResults(results []Result) {
	m.results = results
}

// SetError makes subsequent searches fail with the given error
func (m *MockProvider) SetError(err error) {
	m.err = err
}
