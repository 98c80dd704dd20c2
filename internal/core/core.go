package core

// StoryRecord represents one normalized news story from the search provider.
type StoryRecord struct {
	Headline       string   `json:"headline"`        // Story title as reported by the provider
	Summary        string   `json:"summary"`         // Provider snippet text
	Significance   string   `json:"significance"`    // Why the story matters (boilerplate until enrichment lands)
	KeyEntities    []string `json:"key_entities"`    // Organizations and people mentioned; source outlet first
	CommentaryNote string   `json:"commentary_note"` // Note on the value of expert commentary
}

// Topic represents one news topic selected for expert commentary.
type Topic struct {
	TopicID           int      `json:"topic_id"`            // Positional identifier, 1..3 within a response
	Headline          string   `json:"headline"`            // Topic headline, echoed from the source story
	Summary           string   `json:"summary"`             // 2-3 sentence topic summary
	NeedForCommentary string   `json:"need_for_commentary"` // Why this topic needs expert input
	ExpertAngles      []string `json:"expert_angles"`       // Specific questions an expert could address
}

// TopicAnalysis is the TopicSelector output: the ranked topic list plus
// the wall-clock time the analysis ran.
type TopicAnalysis struct {
	SelectedTopics    []Topic `json:"selected_topics"`
	AnalysisTimestamp string  `json:"analysis_timestamp,omitempty"`
}

// Expert represents one recommended academic expert for a topic.
type Expert struct {
	Name               string   `json:"name"`                // Full name and title
	Institution        string   `json:"institution"`         // Current academic institution
	Expertise          string   `json:"expertise"`           // Area of expertise and relevance to the topic
	NotableWork        string   `json:"notable_work"`        // Relevant publications or appearances
	UniquePerspective  string   `json:"unique_perspective"`  // Angle this expert brings
	ContactMethod      string   `json:"contact_method"`      // Preferred contact method
	SuggestedQuestions []string `json:"suggested_questions"` // Questions tailored to this expert
	ContactInfo        string   `json:"contact_info"`        // Synthesized academic email address
	Error              bool     `json:"error,omitempty"`     // True when this entry is a degraded placeholder
}

// ExpertRecommendation groups the experts recommended for one topic.
// Topic must match the input topic headline byte-for-byte.
type ExpertRecommendation struct {
	TopicID int      `json:"topic_id"`
	Topic   string   `json:"topic"`
	Experts []Expert `json:"experts"`
}

// ExpertReport is the ExpertFinder output envelope payload.
type ExpertReport struct {
	ExpertRecommendations []ExpertRecommendation `json:"expert_recommendations"`
}

// EmailTemplate represents one drafted outreach email.
type EmailTemplate struct {
	ExpertName string `json:"expert_name"`
	Topic      string `json:"topic"`
	Subject    string `json:"subject"`
	Greeting   string `json:"greeting"`
	EmailBody  string `json:"email_body"`
	Signature  string `json:"signature"`
}

// EmailDraft is the EmailDrafter output envelope payload.
type EmailDraft struct {
	EmailTemplates []EmailTemplate `json:"email_templates"`
}

// EmailRequest carries the expert data plus topic needed to draft an
// outreach email.
type EmailRequest struct {
	Topic              string   `json:"topic"`
	Name               string   `json:"name"`
	Institution        string   `json:"institution"`
	Expertise          string   `json:"expertise"`
	NotableWork        string   `json:"notable_work"`
	UniquePerspective  string   `json:"unique_perspective"`
	ContactMethod      string   `json:"contact_method"`
	SuggestedQuestions []string `json:"suggested_questions"`
	ContactInfo        string   `json:"contact_info"`
}

// FormattedEmail is the polished version of a free-text email produced by
// the simple-format mode.
type FormattedEmail struct {
	Subject   string   `json:"subject"`
	Greeting  string   `json:"greeting"`
	EmailBody string   `json:"email_body"`
	Signature string   `json:"signature"`
	KeyPoints []string `json:"key_points"`
}

// FormattedEmailResult is the simple-format mode envelope payload.
type FormattedEmailResult struct {
	FormattedEmail FormattedEmail `json:"formatted_email"`
}

// Envelope statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the uniform wire wrapper around every HTTP response. Callers
// can rely on its shape whether the pipeline succeeded or degraded; only
// Status, StatusCode and Error vary.
type Envelope struct {
	Output     any    `json:"output"`
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
	Error      string `json:"error,omitempty"`
}

// SuccessEnvelope wraps a payload in a success envelope.
func SuccessEnvelope(output any) Envelope {
	return Envelope{
		Output:     output,
		Status:     StatusSuccess,
		StatusCode: 200,
	}
}

// ErrorEnvelope wraps a degraded payload in an error envelope. The payload
// must still be structurally valid so callers always have something to render.
func ErrorEnvelope(output any, err error) Envelope {
	env := Envelope{
		Output:     output,
		Status:     StatusError,
		StatusCode: 200,
	}
	if err != nil {
		env.Error = err.Error()
	}
	return env
}
