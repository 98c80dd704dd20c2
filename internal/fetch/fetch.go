package fetch

import (
	"context"
	"fmt"
	"time"

	"newsdesk/internal/core"
	"newsdesk/internal/logger"
	"newsdesk/internal/search"
)

// Placeholder enrichment text. A future enrichment stage could derive these
// per story; downstream consumers rely only on the fields being present.
const (
	defaultSignificance   = "This story is significant as it represents current developments in important global events."
	defaultCommentaryNote = "Expert analysis would provide deeper insights into the implications and potential developments."
)

// Fetcher queries the search provider and normalizes raw hits into
// StoryRecord entries.
type Fetcher struct {
	provider search.Provider
}

// NewFetcher creates a news fetcher backed by the given search provider.
func NewFetcher(provider search.Provider) *Fetcher {
	return &Fetcher{provider: provider}
}

// Fetch retrieves up to limit stories matching query within the given time
// window. A provider returning zero stories yields an empty slice, not an
// error; only a failing provider call is an error.
func (f *Fetcher) Fetch(ctx context.Context, query string, window time.Duration, limit int) ([]core.StoryRecord, error) {
	results, err := f.provider.Search(ctx, query, search.Config{
		MaxResults: limit,
		SinceTime:  window,
	})
	if err != nil {
		return nil, fmt.Errorf("search provider error: %w", err)
	}

	stories := make([]core.StoryRecord, 0, len(results))
	for _, r := range results {
		var keyEntities []string
		if r.Source != "" {
			keyEntities = append(keyEntities, r.Source)
		}

		stories = append(stories, core.StoryRecord{
			Headline:       r.Title,
			Summary:        r.Snippet,
			Significance:   defaultSignificance,
			KeyEntities:    keyEntities,
			CommentaryNote: defaultCommentaryNote,
		})
	}

	logger.Info("fetched news stories", "provider", f.provider.GetName(), "query", query, "count", len(stories))

	return stories, nil
}
