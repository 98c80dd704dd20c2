package llm

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/openai/openai-go"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"selected_topics":[]}`,
			want:  `{"selected_topics":[]}`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n{\"selected_topics\":[]}\n```",
			want:  `{"selected_topics":[]}`,
		},
		{
			name:  "strips plain fenced block",
			input: "```\n{\"selected_topics\":[]}\n```",
			want:  `{"selected_topics":[]}`,
		},
		{
			name:  "trims surrounding whitespace",
			input: "  {\"selected_topics\":[]}  ",
			want:  `{"selected_topics":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanJSONResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{
			name: "unauthorized maps to auth",
			err:  &openai.Error{StatusCode: http.StatusUnauthorized},
			want: KindAuth,
		},
		{
			name: "forbidden maps to auth",
			err:  &openai.Error{StatusCode: http.StatusForbidden},
			want: KindAuth,
		},
		{
			name: "too many requests maps to rate limit",
			err:  &openai.Error{StatusCode: http.StatusTooManyRequests},
			want: KindRateLimit,
		},
		{
			name: "server error maps to other",
			err: &openai.Error{
				StatusCode: http.StatusInternalServerError,
				// openai.Error.Error() dereferences Request and Response
				// unconditionally, so the fixture must populate both.
				Request: &http.Request{
					Method: http.MethodPost,
					URL:    &url.URL{Scheme: "https", Host: "api.openai.com", Path: "/v1/chat/completions"},
				},
				Response: &http.Response{StatusCode: http.StatusInternalServerError},
			},
			want: KindOther,
		},
		{
			name: "plain error maps to other",
			err:  errors.New("connection refused"),
			want: KindOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if got.Kind != tt.want {
				t.Errorf("Classify() kind = %q, want %q", got.Kind, tt.want)
			}
			if got.Message == "" {
				t.Error("Classify() produced empty message")
			}
		})
	}
}

func TestClassifyPassthrough(t *testing.T) {
	original := &Error{Kind: KindRateLimit, Message: "rate limit exceeded"}

	got := Classify(original)
	if got != original {
		t.Error("Classify() should return an already-classified error unchanged")
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient("", 0); err == nil {
		t.Error("NewClient() with empty API key should fail")
	}

	client, err := NewClient("test-key", 0)
	if err != nil {
		t.Fatalf("NewClient() unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("NewClient() returned nil client")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := &Error{Kind: KindOther, Message: "wrapper", Err: cause}

	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}
