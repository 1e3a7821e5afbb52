package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Duong37/dvre-dal-jupyter/pkg/client"
)

// resultsProbe tolerates a non-200 answer: before the first iteration has
// completed the engine simply has no result files to serve.
type resultsProbe struct {
	client    *client.Client
	out       io.Writer
	iteration int
}

func (p *resultsProbe) Name() string {
	return "results"
}

func (p *resultsProbe) Exec(ctx context.Context) Result {
	started := time.Now()
	resp := p.client.Results(ctx, p.iteration)
	res := Result{Name: p.Name(), StatusCode: resp.StatusCode, Duration: time.Since(started)}

	if err := resp.Err(); err != nil {
		res.Outcome = OutcomeFailed
		res.Message = err.Error()
		fmt.Fprintf(p.out, "results check error: %s\n", err)
		return res
	}

	if resp.StatusCode != http.StatusOK {
		res.Outcome = OutcomeInfo
		res.Message = fmt.Sprintf("status %d, expected if no results yet", resp.StatusCode)
		fmt.Fprintf(p.out, "results check returned %d (expected if no results yet)\n", resp.StatusCode)
		return res
	}

	fmt.Fprintf(p.out, "results check passed for iteration %d:\n", p.iteration)
	fmt.Fprintf(p.out, "  files: %v\n", resp.Body.Files)

	res.Outcome = OutcomePassed
	res.Message = fmt.Sprintf("%d result files", len(resp.Body.Files))
	return res
}
