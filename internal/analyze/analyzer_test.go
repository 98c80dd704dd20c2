package analyze

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"newsdesk/internal/core"
	"newsdesk/internal/llm"
)

// mockCompleter implements llm.Completer for testing
type mockCompleter struct {
	resp    json.RawMessage
	err     error
	lastReq llm.Request
}

func (m *mockCompleter) Complete(ctx context.Context, req llm.Request) (json.RawMessage, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func sampleStories() []core.StoryRecord {
	return []core.StoryRecord{
		{Headline: "Headline A", Summary: "Summary A", KeyEntities: []string{"Wire A"}},
		{Headline: "Headline B", Summary: "Summary B", KeyEntities: []string{"Wire B"}},
		{Headline: "Headline C", Summary: "Summary C", KeyEntities: []string{"Wire C"}},
	}
}

const threeTopicsJSON = `{
	"selected_topics": [
		{"topic_id": 1, "headline": "Headline A", "summary": "S1", "need_for_commentary": "N1", "expert_angles": ["Q1", "Q2"]},
		{"topic_id": 2, "headline": "Headline B", "summary": "S2", "need_for_commentary": "N2", "expert_angles": ["Q3"]},
		{"topic_id": 3, "headline": "Headline C", "summary": "S3", "need_for_commentary": "N3", "expert_angles": ["Q4"]}
	]
}`

func TestSelectTopics(t *testing.T) {
	mock := &mockCompleter{resp: json.RawMessage(threeTopicsJSON)}
	analyzer := NewAnalyzer(mock, DefaultOptions())

	analysis, err := analyzer.SelectTopics(context.Background(), sampleStories())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(analysis.SelectedTopics) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(analysis.SelectedTopics))
	}

	for i, topic := range analysis.SelectedTopics {
		if topic.TopicID != i+1 {
			t.Errorf("topic %d: expected topic_id %d, got %d", i, i+1, topic.TopicID)
		}
		if topic.Headline == "" {
			t.Errorf("topic %d: headline must be non-empty", i)
		}
	}

	if analysis.AnalysisTimestamp == "" {
		t.Error("analysis_timestamp must be set")
	}
}

func TestSelectTopicsPromptContainsStories(t *testing.T) {
	mock := &mockCompleter{resp: json.RawMessage(threeTopicsJSON)}
	analyzer := NewAnalyzer(mock, Options{Model: "gpt-4o-mini", Temperature: 0.7, MaxTokens: 5000})

	if _, err := analyzer.SelectTopics(context.Background(), sampleStories()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(mock.lastReq.UserPrompt, "Headline B") {
		t.Error("prompt should embed the story list")
	}
	if mock.lastReq.SystemPrompt != TopicSelectionSystemPrompt {
		t.Error("system prompt mismatch")
	}
	if mock.lastReq.Model != "gpt-4o-mini" {
		t.Errorf("expected model gpt-4o-mini, got %s", mock.lastReq.Model)
	}
}

func TestSelectTopicsEmptyStoryList(t *testing.T) {
	mock := &mockCompleter{resp: json.RawMessage(`{"selected_topics": []}`)}
	analyzer := NewAnalyzer(mock, DefaultOptions())

	analysis, err := analyzer.SelectTopics(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(analysis.SelectedTopics) != 0 {
		t.Errorf("expected 0 topics, got %d", len(analysis.SelectedTopics))
	}
}

func TestSelectTopicsLLMErrorPropagates(t *testing.T) {
	mock := &mockCompleter{err: &llm.Error{Kind: llm.KindRateLimit, Message: "rate limit exceeded"}}
	analyzer := NewAnalyzer(mock, DefaultOptions())

	if _, err := analyzer.SelectTopics(context.Background(), sampleStories()); err == nil {
		t.Error("LLM failure must propagate as an error")
	}
}

func TestSelectTopicsParseErrorPropagates(t *testing.T) {
	mock := &mockCompleter{resp: json.RawMessage(`{"selected_topics": "not a list"}`)}
	analyzer := NewAnalyzer(mock, DefaultOptions())

	if _, err := analyzer.SelectTopics(context.Background(), sampleStories()); err == nil {
		t.Error("unparseable model output must propagate as an error")
	}
}
