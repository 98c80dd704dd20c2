package llm

import "fmt"

// ErrorKind is the closed set of failure classes a completion call can
// produce. Stages switch on the kind to build their placeholder records.
type ErrorKind string

const (
	// KindAuth covers bad or missing credentials
	KindAuth ErrorKind = "auth"

	// KindRateLimit covers throttling and quota exhaustion
	KindRateLimit ErrorKind = "rate_limit"

	// KindOther covers everything else: timeouts, malformed output,
	// unexpected response shapes
	KindOther ErrorKind = "other"
)

// Error is the classified error returned by the completion wrapper.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("llm %s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}
