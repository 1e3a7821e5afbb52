package probe

import (
	"context"
	"time"
)

type Outcome string

const (
	// OutcomePassed is a probe that got its expected status and body.
	OutcomePassed Outcome = "passed"
	// OutcomeFailed covers both transport errors and unexpected responses.
	OutcomeFailed Outcome = "failed"
	// OutcomeInfo is an expected non-success, e.g. the engine having no
	// results yet for an iteration.
	OutcomeInfo Outcome = "info"
)

type Probe interface {
	Name() string
	Exec(ctx context.Context) Result
}

type Result struct {
	Name       string        `json:"name"`
	Outcome    Outcome       `json:"outcome"`
	StatusCode int           `json:"statusCode,omitempty"`
	Message    string        `json:"message,omitempty"`
	Duration   time.Duration `json:"duration"`
}

func (r Result) OK() bool {
	return r.Outcome != OutcomeFailed
}
