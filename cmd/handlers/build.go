package handlers

import (
	"fmt"
	"strings"

	"newsdesk/internal/analyze"
	"newsdesk/internal/config"
	"newsdesk/internal/email"
	"newsdesk/internal/experts"
	"newsdesk/internal/fetch"
	"newsdesk/internal/llm"
	"newsdesk/internal/pipeline"
	"newsdesk/internal/search"
)

// buildPipeline wires the four stage components from configuration. Every
// command and the HTTP server go through this one constructor.
func buildPipeline(cfg *config.Config) (*pipeline.Pipeline, error) {
	factory := search.NewProviderFactory()
	provider, err := factory.CreateProvider(
		search.ProviderType(strings.ToLower(cfg.Search.Provider)),
		map[string]string{"api_key": cfg.Search.SerpAPI.APIKey},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create search provider: %w", err)
	}

	client, err := llm.NewClient(cfg.AI.OpenAI.APIKey, cfg.AI.OpenAI.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	fetcher := fetch.NewFetcher(provider)

	analyzer := analyze.NewAnalyzer(client, analyze.Options{
		Model:       cfg.AI.OpenAI.AnalysisModel,
		Temperature: cfg.AI.OpenAI.Temperature,
		MaxTokens:   cfg.AI.OpenAI.AnalysisMaxTokens,
	})

	finder := experts.NewFinder(client, experts.Options{
		Model:       cfg.AI.OpenAI.ExpertModel,
		Temperature: cfg.AI.OpenAI.Temperature,
		MaxTokens:   cfg.AI.OpenAI.ExpertMaxTokens,
	})

	drafter := email.NewDrafter(client, email.Options{
		Model:       cfg.AI.OpenAI.EmailModel,
		Temperature: cfg.AI.OpenAI.Temperature,
		MaxTokens:   cfg.AI.OpenAI.EmailMaxTokens,
	})

	return pipeline.New(fetcher, analyzer, finder, drafter, pipeline.Config{
		DefaultQuery: cfg.Pipeline.DefaultQuery,
		Window:       cfg.Search.Window,
		StoryLimit:   cfg.Search.MaxResults,
	}), nil
}
