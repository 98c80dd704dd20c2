package pipeline

import (
	"context"
	"time"

	"newsdesk/internal/core"
)

// StoryFetcher retrieves and normalizes news stories from the search provider
type StoryFetcher interface {
	// Fetch retrieves up to limit stories matching query within the window
	Fetch(ctx context.Context, query string, window time.Duration, limit int) ([]core.StoryRecord, error)
}

// TopicSelector ranks stories and picks the topics most in need of expert
// commentary
type TopicSelector interface {
	// SelectTopics asks the model for the top 3 commentary-worthy topics
	SelectTopics(ctx context.Context, stories []core.StoryRecord) (core.TopicAnalysis, error)
}

// ExpertFinder recommends academic experts for selected topics. Both modes
// degrade internally and never return an error.
type ExpertFinder interface {
	// FindForTopics recommends experts for every topic in one model call
	FindForTopics(ctx context.Context, analysis core.TopicAnalysis) core.ExpertReport

	// FindForTopic recommends experts for a single caller-supplied topic
	FindForTopic(ctx context.Context, topic core.Topic) core.ExpertReport
}

// EmailDrafter generates outreach emails. Both modes degrade internally and
// never return an error.
type EmailDrafter interface {
	// Draft generates a personalized commentary-request email
	Draft(ctx context.Context, req core.EmailRequest) core.EmailDraft

	// FormatSimple polishes a free-text email into a structured form
	FormatSimple(ctx context.Context, subject, body, name string) core.FormattedEmailResult
}
