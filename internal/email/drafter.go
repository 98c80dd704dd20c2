package email

import (
	"context"
	"encoding/json"
	"fmt"

	"newsdesk/internal/core"
	"newsdesk/internal/llm"
	"newsdesk/internal/logger"
)

// Options configures the email drafter.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// DefaultOptions returns the drafter defaults.
func DefaultOptions() Options {
	return Options{
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   3000,
	}
}

// Drafter generates outreach email templates for experts. Like the expert
// finder, it never returns a bare error: on failure the caller receives a
// deterministic fallback template that is still sendable after review.
type Drafter struct {
	llm  llm.Completer
	opts Options
}

// NewDrafter creates an email drafter backed by the given LLM client.
func NewDrafter(client llm.Completer, opts Options) *Drafter {
	if opts.Model == "" {
		opts = DefaultOptions()
	}
	return &Drafter{llm: client, opts: opts}
}

// Draft generates a personalized commentary-request email for the expert.
func (d *Drafter) Draft(ctx context.Context, req core.EmailRequest) core.EmailDraft {
	questionsJSON, err := json.Marshal(req.SuggestedQuestions)
	if err != nil {
		questionsJSON = []byte("[]")
	}

	prompt := fmt.Sprintf(DraftPromptTemplate,
		req.Topic,
		req.Name,
		req.Institution,
		req.Expertise,
		req.NotableWork,
		req.UniquePerspective,
		req.ContactMethod,
		string(questionsJSON),
		req.ContactInfo,
		req.Name,
		req.Topic,
	)

	raw, err := d.llm.Complete(ctx, llm.Request{
		Model:        d.opts.Model,
		SystemPrompt: DraftSystemPrompt,
		UserPrompt:   prompt,
		Temperature:  d.opts.Temperature,
		MaxTokens:    d.opts.MaxTokens,
	})
	if err != nil {
		return fallbackDraft(req, llm.Classify(err))
	}

	var draft core.EmailDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return fallbackDraft(req, llm.Classify(err))
	}
	if len(draft.EmailTemplates) == 0 {
		return fallbackDraft(req, &llm.Error{Kind: llm.KindOther, Message: "model output missing email_templates"})
	}

	logger.Info("email draft generated", "expert", req.Name, "topic", req.Topic)

	return draft
}

// fallbackDraft builds the deterministic degraded template: the subject
// names the topic and the body states the error, so the caller always has
// something sendable after manual editing.
func fallbackDraft(req core.EmailRequest, cause *llm.Error) core.EmailDraft {
	logger.Error("email draft degraded", cause, "kind", string(cause.Kind), "expert", req.Name)

	return core.EmailDraft{
		EmailTemplates: []core.EmailTemplate{
			{
				ExpertName: req.Name,
				Topic:      req.Topic,
				Subject:    fmt.Sprintf("Expert Commentary Request: %s - Response Needed in 6 Hours", req.Topic),
				Greeting:   "Dear Expert,",
				EmailBody:  fmt.Sprintf("We were unable to generate a personalized email at this time (%s). Please compose the request manually or retry shortly.", cause.Message),
				Signature:  "Best regards,\n[Your Name]\n[Your Title]\n[Your Institution]\n[Your Contact Information]",
			},
		},
	}
}

// FormatSimple restructures a free-text email into a polished form plus
// extracted key points. On failure the original text comes back verbatim as
// the formatted body.
func (d *Drafter) FormatSimple(ctx context.Context, subject, body, name string) core.FormattedEmailResult {
	prompt := fmt.Sprintf(FormatSimplePromptTemplate, name, subject, body)

	raw, err := d.llm.Complete(ctx, llm.Request{
		Model:        d.opts.Model,
		SystemPrompt: FormatSimpleSystemPrompt,
		UserPrompt:   prompt,
		Temperature:  d.opts.Temperature,
		MaxTokens:    d.opts.MaxTokens,
	})
	if err != nil {
		return fallbackFormatted(subject, body, name, llm.Classify(err))
	}

	var result core.FormattedEmailResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return fallbackFormatted(subject, body, name, llm.Classify(err))
	}
	if result.FormattedEmail.EmailBody == "" {
		return fallbackFormatted(subject, body, name, &llm.Error{Kind: llm.KindOther, Message: "model output missing formatted_email"})
	}

	logger.Info("simple email formatted", "subject", subject)

	return result
}

func fallbackFormatted(subject, body, name string, cause *llm.Error) core.FormattedEmailResult {
	logger.Error("simple email formatting degraded", cause, "kind", string(cause.Kind))

	return core.FormattedEmailResult{
		FormattedEmail: core.FormattedEmail{
			Subject:   subject,
			Greeting:  "Hello,",
			EmailBody: body,
			Signature: fmt.Sprintf("Best regards,\n%s", name),
			KeyPoints: []string{},
		},
	}
}
