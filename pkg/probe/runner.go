package probe

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Duong37/dvre-dal-jupyter/internal/config"
	"github.com/Duong37/dvre-dal-jupyter/pkg/client"
	log "github.com/sirupsen/logrus"
)

// Runner drives the fixed probe sequence against one engine. Only the
// health probe is fatal; every other failure is reported and skipped over.
//
// By default the overall verdict mirrors the original harness: it depends
// on the health probe alone. Strict mode aggregates all probe outcomes
// instead.
type Runner struct {
	client *client.Client
	cfg    *config.Smoke
	out    io.Writer
	strict bool
	now    func() time.Time

	results []Result
}

type Option func(*Runner)

func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

func WithStrict(strict bool) Option {
	return func(r *Runner) {
		r.strict = strict
	}
}

func withClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

func NewRunner(c *client.Client, cfg *config.Smoke, opts ...Option) *Runner {
	r := &Runner{
		client: c,
		cfg:    cfg,
		out:    os.Stdout,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

type step struct {
	probe Probe
	fatal bool
}

func (r *Runner) sequence() []step {
	iterationRequest := &client.IterationRequest{
		Iteration: r.cfg.Iteration,
		ProjectID: r.cfg.ProjectID,
		ConfigOverride: client.ConfigOverride{
			NQueries:      r.cfg.Override.NQueries,
			QueryStrategy: r.cfg.Override.QueryStrategy,
			LabelSpace:    r.cfg.Override.LabelSpace,
		},
	}

	submission := &client.LabelSubmission{
		Iteration:      r.cfg.Iteration,
		ProjectID:      r.cfg.ProjectID,
		LabeledSamples: DefaultSamples(r.cfg.Iteration, r.cfg.Override.LabelSpace, r.now().Unix()),
	}

	return []step{
		{&healthProbe{client: r.client, out: r.out}, true},
		{&statusProbe{client: r.client, out: r.out}, false},
		{&configProbe{client: r.client, out: r.out}, false},
		{&iterationProbe{client: r.client, out: r.out, request: iterationRequest}, false},
		{&resultsProbe{client: r.client, out: r.out, iteration: r.cfg.Iteration}, false},
		{&labelsProbe{client: r.client, out: r.out, request: submission}, false},
	}
}

func (r *Runner) Run(ctx context.Context) bool {
	fmt.Fprintln(r.out, "testing AL-Engine HTTP API (local execution)")
	fmt.Fprintf(r.out, "  base URL: %s\n", r.client.Endpoint())

	overall := true

	for i, s := range r.sequence() {
		fmt.Fprintf(r.out, "\n%d. testing %s endpoint...\n", i+1, s.probe.Name())

		res := s.probe.Exec(ctx)
		r.results = append(r.results, res)

		log.WithFields(log.Fields{
			"kind":    "probe",
			"name":    res.Name,
			"outcome": res.Outcome,
			"status":  res.StatusCode,
		}).Debug(res.Message)

		if res.Outcome != OutcomeFailed {
			continue
		}

		if s.fatal {
			fmt.Fprintln(r.out, "make sure the AL-Engine server is running with:")
			fmt.Fprintln(r.out, "  python main.py --project_id test-project --config example_config.json --server")
			return false
		}

		if r.strict {
			overall = false
		}
	}

	fmt.Fprintln(r.out, "\nAL-Engine API test completed (local execution)")
	return overall
}

// Results returns the outcomes collected so far, one per executed probe.
func (r *Runner) Results() []Result {
	return r.results
}
