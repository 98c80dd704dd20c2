package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"newsdesk/internal/core"
	"newsdesk/internal/llm"
	"newsdesk/internal/logger"
)

// expectedTopicCount is what the prompt asks the model for. Drift is logged,
// not corrected: the list passes through as returned.
const expectedTopicCount = 3

// Options configures the topic analyzer.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// DefaultOptions returns the analyzer defaults.
func DefaultOptions() Options {
	return Options{
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   5000,
	}
}

// Analyzer selects the news topics most in need of expert commentary.
type Analyzer struct {
	llm  llm.Completer
	opts Options
}

// NewAnalyzer creates a topic analyzer backed by the given LLM client.
func NewAnalyzer(client llm.Completer, opts Options) *Analyzer {
	if opts.Model == "" {
		opts = DefaultOptions()
	}
	return &Analyzer{llm: client, opts: opts}
}

// SelectTopics asks the model to rank the given stories and pick the 3 topics
// most in need of expert commentary. The returned analysis carries a
// wall-clock timestamp. Any failure is wrapped as a single analysis error;
// the caller decides how to degrade.
func (a *Analyzer) SelectTopics(ctx context.Context, stories []core.StoryRecord) (core.TopicAnalysis, error) {
	storiesJSON, err := json.MarshalIndent(stories, "", "  ")
	if err != nil {
		return core.TopicAnalysis{}, fmt.Errorf("error analyzing news: %w", err)
	}

	raw, err := a.llm.Complete(ctx, llm.Request{
		Model:        a.opts.Model,
		SystemPrompt: TopicSelectionSystemPrompt,
		UserPrompt:   fmt.Sprintf(TopicSelectionPromptTemplate, string(storiesJSON)),
		Temperature:  a.opts.Temperature,
		MaxTokens:    a.opts.MaxTokens,
	})
	if err != nil {
		return core.TopicAnalysis{}, fmt.Errorf("error analyzing news: %w", err)
	}

	var analysis core.TopicAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return core.TopicAnalysis{}, fmt.Errorf("error analyzing news: failed to parse model output: %w", err)
	}

	if len(analysis.SelectedTopics) != expectedTopicCount {
		logger.Warn("model returned unexpected topic count",
			"expected", expectedTopicCount,
			"got", len(analysis.SelectedTopics),
		)
	}

	analysis.AnalysisTimestamp = time.Now().Format(time.RFC3339)

	return analysis, nil
}
