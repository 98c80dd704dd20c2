package pipeline

import "errors"

// ErrFetchFailed marks a failing fetch stage. Without stories nothing
// downstream is meaningful, so routes surface this as a hard HTTP 500
// while every LLM-stage failure degrades inside a 200 envelope.
var ErrFetchFailed = errors.New("news fetch failed")
