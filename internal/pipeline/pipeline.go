package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/core"
	"newsdesk/internal/logger"
)

// Config holds pipeline defaults shared by every route.
type Config struct {
	DefaultQuery string        // Query used when the caller supplies none
	Window       time.Duration // Recency window for news fetches
	StoryLimit   int           // Story cap per fetch
}

// DefaultConfig returns the standard pipeline defaults: generic news from
// the last 24 hours, capped at 3 stories.
func DefaultConfig() Config {
	return Config{
		DefaultQuery: "news",
		Window:       24 * time.Hour,
		StoryLimit:   3,
	}
}

// NewsPayload is the envelope payload for fetch-only requests.
type NewsPayload struct {
	NewsStories []core.StoryRecord `json:"news_stories"`
}

// Pipeline is the canonical composition of the four stages. Routes differ
// only in which stages they invoke and what query or category they pass in;
// all of them go through this one module.
type Pipeline struct {
	fetcher  StoryFetcher
	selector TopicSelector
	finder   ExpertFinder
	drafter  EmailDrafter
	config   Config
}

// New creates a pipeline from its stage components.
func New(fetcher StoryFetcher, selector TopicSelector, finder ExpertFinder, drafter EmailDrafter, config Config) *Pipeline {
	if config.StoryLimit <= 0 {
		config = DefaultConfig()
	}
	return &Pipeline{
		fetcher:  fetcher,
		selector: selector,
		finder:   finder,
		drafter:  drafter,
		config:   config,
	}
}

// Stories runs the fetch stage only. An empty query falls back to the
// configured default. Fetch failure is the one hard error in the system.
func (p *Pipeline) Stories(ctx context.Context, query string) (NewsPayload, error) {
	runID := uuid.NewString()
	query = p.resolveQuery(query)

	logger.Info("pipeline run: fetch", "run_id", runID, "query", query)

	stories, err := p.fetcher.Fetch(ctx, query, p.config.Window, p.config.StoryLimit)
	if err != nil {
		return NewsPayload{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	return NewsPayload{NewsStories: stories}, nil
}

// Analysis runs fetch followed by topic selection. The category, when
// present, becomes the search query. A selection failure propagates so the
// route can degrade into an error envelope with empty selected_topics.
func (p *Pipeline) Analysis(ctx context.Context, category string) (core.TopicAnalysis, error) {
	runID := uuid.NewString()
	query := p.resolveQuery(category)

	logger.Info("pipeline run: analysis", "run_id", runID, "query", query)

	stories, err := p.fetcher.Fetch(ctx, query, p.config.Window, p.config.StoryLimit)
	if err != nil {
		return core.TopicAnalysis{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	analysis, err := p.selector.SelectTopics(ctx, stories)
	if err != nil {
		return core.TopicAnalysis{}, err
	}

	logger.Info("pipeline run: analysis complete", "run_id", runID, "topics", len(analysis.SelectedTopics))

	return analysis, nil
}

// ExpertsFromNews runs the full chain: fetch, select, find experts in batch
// mode. Selection failure propagates; the expert stage degrades internally
// and cannot fail.
func (p *Pipeline) ExpertsFromNews(ctx context.Context) (core.ExpertReport, error) {
	runID := uuid.NewString()

	logger.Info("pipeline run: experts", "run_id", runID)

	stories, err := p.fetcher.Fetch(ctx, p.config.DefaultQuery, p.config.Window, p.config.StoryLimit)
	if err != nil {
		return core.ExpertReport{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	analysis, err := p.selector.SelectTopics(ctx, stories)
	if err != nil {
		return core.ExpertReport{}, err
	}

	report := p.finder.FindForTopics(ctx, analysis)

	logger.Info("pipeline run: experts complete", "run_id", runID, "recommendations", len(report.ExpertRecommendations))

	return report, nil
}

// ExpertsForTopic runs the expert stage alone against a caller-supplied
// topic, skipping fetch and selection.
func (p *Pipeline) ExpertsForTopic(ctx context.Context, topic core.Topic) core.ExpertReport {
	if topic.TopicID == 0 {
		topic.TopicID = 1
	}
	return p.finder.FindForTopic(ctx, topic)
}

// DraftEmail runs the email stage alone.
func (p *Pipeline) DraftEmail(ctx context.Context, req core.EmailRequest) core.EmailDraft {
	return p.drafter.Draft(ctx, req)
}

// FormatSimpleEmail runs the email polish mode.
func (p *Pipeline) FormatSimpleEmail(ctx context.Context, subject, body, name string) core.FormattedEmailResult {
	return p.drafter.FormatSimple(ctx, subject, body, name)
}

// TopNews is the alternate normalization path: the fetched records are
// compacted (headline stands in for a missing snippet, entity list trimmed
// to the outlet) before selection, and the story list rides along with the
// analysis in the payload.
func (p *Pipeline) TopNews(ctx context.Context) (TopNewsPayload, error) {
	runID := uuid.NewString()

	logger.Info("pipeline run: top news", "run_id", runID)

	stories, err := p.fetcher.Fetch(ctx, p.config.DefaultQuery, p.config.Window, p.config.StoryLimit)
	if err != nil {
		return TopNewsPayload{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	compacted := make([]core.StoryRecord, len(stories))
	for i, s := range stories {
		if strings.TrimSpace(s.Summary) == "" {
			s.Summary = s.Headline
		}
		if len(s.KeyEntities) > 1 {
			s.KeyEntities = s.KeyEntities[:1]
		}
		compacted[i] = s
	}

	analysis, err := p.selector.SelectTopics(ctx, compacted)
	if err != nil {
		// The fetch succeeded; return the stories so a degraded response
		// still has something to render alongside the empty analysis.
		return TopNewsPayload{
			TopStories: compacted,
			Analysis:   core.TopicAnalysis{SelectedTopics: []core.Topic{}},
		}, fmt.Errorf("top news analysis failed: %w", err)
	}

	return TopNewsPayload{
		TopStories: compacted,
		Analysis:   analysis,
	}, nil
}

// TopNewsPayload is the envelope payload for the top-news route.
type TopNewsPayload struct {
	TopStories []core.StoryRecord `json:"top_stories"`
	Analysis   core.TopicAnalysis `json:"analysis"`
}

func (p *Pipeline) resolveQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return p.config.DefaultQuery
	}
	return query
}
