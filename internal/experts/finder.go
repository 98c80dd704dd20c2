package experts

import (
	"context"
	"encoding/json"
	"fmt"

	"newsdesk/internal/core"
	"newsdesk/internal/llm"
	"newsdesk/internal/logger"
)

const expectedExpertsPerTopic = 3

// Options configures the expert finder.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// DefaultOptions returns the finder defaults. Expert discovery runs on the
// larger model; the recommendations carry the most caller-visible content.
func DefaultOptions() Options {
	return Options{
		Model:       "gpt-4o",
		Temperature: 0.7,
		MaxTokens:   5000,
	}
}

// Finder recommends academic experts for selected news topics. It never
// returns a bare error: every failure becomes a structurally valid report
// containing a placeholder expert tagged with error=true, so the consuming
// UI always has something displayable.
type Finder struct {
	llm  llm.Completer
	opts Options
}

// NewFinder creates an expert finder backed by the given LLM client.
func NewFinder(client llm.Completer, opts Options) *Finder {
	if opts.Model == "" {
		opts = DefaultOptions()
	}
	return &Finder{llm: client, opts: opts}
}

// FindForTopics recommends experts for every topic in the analysis in one
// model call.
func (f *Finder) FindForTopics(ctx context.Context, analysis core.TopicAnalysis) core.ExpertReport {
	return f.find(ctx, analysis)
}

// FindForTopic recommends experts for a single caller-supplied topic,
// skipping the fetch and selection stages. The returned report contains
// exactly one recommendation whose topic echoes the input headline.
func (f *Finder) FindForTopic(ctx context.Context, topic core.Topic) core.ExpertReport {
	return f.find(ctx, core.TopicAnalysis{SelectedTopics: []core.Topic{topic}})
}

func (f *Finder) find(ctx context.Context, analysis core.TopicAnalysis) core.ExpertReport {
	analysisJSON, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return f.degradedReport(analysis, llm.Classify(err))
	}

	raw, err := f.llm.Complete(ctx, llm.Request{
		Model:        f.opts.Model,
		SystemPrompt: ExpertFinderSystemPrompt,
		UserPrompt:   fmt.Sprintf(ExpertFinderPromptTemplate, string(analysisJSON)),
		Temperature:  f.opts.Temperature,
		MaxTokens:    f.opts.MaxTokens,
	})
	if err != nil {
		return f.degradedReport(analysis, llm.Classify(err))
	}

	var report core.ExpertReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return f.degradedReport(analysis, llm.Classify(err))
	}

	// Structurally broken model output: the expected top-level key is
	// missing. Patch in empty recommendations rather than erroring.
	if report.ExpertRecommendations == nil {
		logger.Warn("model output missing expert_recommendations, substituting empty structure")
		report.ExpertRecommendations = emptyRecommendations(analysis)
		return report
	}

	for _, rec := range report.ExpertRecommendations {
		if len(rec.Experts) != expectedExpertsPerTopic {
			logger.Warn("model returned unexpected expert count",
				"topic_id", rec.TopicID,
				"expected", expectedExpertsPerTopic,
				"got", len(rec.Experts),
			)
		}
	}

	logger.Info("expert recommendations generated", "topics", len(report.ExpertRecommendations))

	return report
}

// emptyRecommendations builds one recommendation with an empty experts list
// per input topic, preserving the response contract.
func emptyRecommendations(analysis core.TopicAnalysis) []core.ExpertRecommendation {
	recs := make([]core.ExpertRecommendation, 0, len(analysis.SelectedTopics))
	for _, topic := range analysis.SelectedTopics {
		recs = append(recs, core.ExpertRecommendation{
			TopicID: topic.TopicID,
			Topic:   topic.Headline,
			Experts: []core.Expert{},
		})
	}
	return recs
}

// degradedReport converts a classified failure into a report carrying one
// placeholder expert per input topic. Shape stays identical to a success
// response so per-topic rendering keeps working.
func (f *Finder) degradedReport(analysis core.TopicAnalysis, cause *llm.Error) core.ExpertReport {
	logger.Error("expert lookup degraded", cause, "kind", string(cause.Kind))

	if len(analysis.SelectedTopics) == 0 {
		return core.ExpertReport{
			ExpertRecommendations: []core.ExpertRecommendation{
				{
					TopicID: 1,
					Experts: []core.Expert{placeholderExpert(cause)},
				},
			},
		}
	}

	recs := make([]core.ExpertRecommendation, 0, len(analysis.SelectedTopics))
	for _, topic := range analysis.SelectedTopics {
		recs = append(recs, core.ExpertRecommendation{
			TopicID: topic.TopicID,
			Topic:   topic.Headline,
			Experts: []core.Expert{placeholderExpert(cause)},
		})
	}
	return core.ExpertReport{ExpertRecommendations: recs}
}

// placeholderExpert builds the degraded entry for one failure kind.
func placeholderExpert(cause *llm.Error) core.Expert {
	switch cause.Kind {
	case llm.KindAuth:
		return core.Expert{
			Name:              "Service Notice: Authentication Failed",
			Institution:       "N/A",
			Expertise:         "The expert lookup service rejected the configured API credentials.",
			NotableWork:       "N/A",
			UniquePerspective: "Verify the OPENAI_API_KEY value and restart the service.",
			ContactMethod:     "N/A",
			ContactInfo:       "N/A",
			Error:             true,
		}
	case llm.KindRateLimit:
		return core.Expert{
			Name:              "Service Notice: Rate Limit Reached",
			Institution:       "N/A",
			Expertise:         "The expert lookup service is temporarily throttled.",
			NotableWork:       "N/A",
			UniquePerspective: "Wait a few minutes and retry the request.",
			ContactMethod:     "N/A",
			ContactInfo:       "N/A",
			Error:             true,
		}
	default:
		return core.Expert{
			Name:              "Service Notice: Expert Lookup Failed",
			Institution:       "N/A",
			Expertise:         fmt.Sprintf("The expert lookup service reported a %s error: %s", cause.Kind, cause.Message),
			NotableWork:       "N/A",
			UniquePerspective: "Retry the request; if the problem persists, check the service logs.",
			ContactMethod:     "N/A",
			ContactInfo:       "N/A",
			Error:             true,
		}
	}
}
