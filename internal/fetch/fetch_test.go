package fetch

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsdesk/internal/search"
)

func TestFetchNormalizesResults(t *testing.T) {
	provider := search.NewMockProvider()
	provider.SetResults([]search.Result{
		{
			Title:    "Central Bank Raises Rates",
			Snippet:  "The central bank raised rates by 50 basis points.",
			Source:   "Example Wire",
			Link:     "https://example.com/rates",
			Date:     "3 hours ago",
			Position: 1,
		},
	})

	fetcher := NewFetcher(provider)

	stories, err := fetcher.Fetch(context.Background(), "news", 24*time.Hour, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stories) != 1 {
		t.Fatalf("expected 1 story, got %d", len(stories))
	}

	story := stories[0]
	if story.Headline != "Central Bank Raises Rates" {
		t.Errorf("title should map to headline, got %q", story.Headline)
	}
	if story.Summary != "The central bank raised rates by 50 basis points." {
		t.Errorf("snippet should map to summary, got %q", story.Summary)
	}
	if len(story.KeyEntities) != 1 || story.KeyEntities[0] != "Example Wire" {
		t.Errorf("source should be the first key entity, got %v", story.KeyEntities)
	}
	if story.Significance == "" {
		t.Error("significance must be populated")
	}
	if story.CommentaryNote == "" {
		t.Error("commentary_note must be populated")
	}
}

func TestFetchSkipsEmptySource(t *testing.T) {
	provider := search.NewMockProvider()
	provider.SetResults([]search.Result{
		{Title: "No Source Story", Snippet: "A story without an outlet.", Position: 1},
	})

	fetcher := NewFetcher(provider)

	stories, err := fetcher.Fetch(context.Background(), "news", 24*time.Hour, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stories[0].KeyEntities) != 0 {
		t.Errorf("expected no key entities, got %v", stories[0].KeyEntities)
	}
}

func TestFetchEmptyResultsIsNotAnError(t *testing.T) {
	provider := search.NewMockProvider()
	provider.SetResults(nil)

	fetcher := NewFetcher(provider)

	stories, err := fetcher.Fetch(context.Background(), "news", 24*time.Hour, 3)
	if err != nil {
		t.Fatalf("empty result set must not be an error, got: %v", err)
	}
	if stories == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(stories) != 0 {
		t.Errorf("expected 0 stories, got %d", len(stories))
	}
}

func TestFetchProviderErrorPropagates(t *testing.T) {
	provider := search.NewMockProvider()
	provider.SetError(errors.New("provider down"))

	fetcher := NewFetcher(provider)

	if _, err := fetcher.Fetch(context.Background(), "news", 24*time.Hour, 3); err == nil {
		t.Error("provider failure must propagate as an error")
	}
}
