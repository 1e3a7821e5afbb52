package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Duong37/dvre-dal-jupyter/pkg/client"
)

type statusProbe struct {
	client *client.Client
	out    io.Writer
}

func (p *statusProbe) Name() string {
	return "status"
}

func (p *statusProbe) Exec(ctx context.Context) Result {
	started := time.Now()
	resp := p.client.Status(ctx)
	res := Result{Name: p.Name(), StatusCode: resp.StatusCode, Duration: time.Since(started)}

	if err := resp.Err(); err != nil {
		res.Outcome = OutcomeFailed
		res.Message = err.Error()
		fmt.Fprintf(p.out, "status check error: %s\n", err)
		return res
	}

	if resp.StatusCode != http.StatusOK {
		res.Outcome = OutcomeFailed
		res.Message = fmt.Sprintf("status check failed with status %d", resp.StatusCode)
		fmt.Fprintf(p.out, "status check failed: %d\n", resp.StatusCode)
		return res
	}

	projectID := resp.Body.ProjectID
	if projectID == "" {
		projectID = "unknown"
	}
	mode := resp.Body.ComputationMode
	if mode == "" {
		mode = "unknown"
	}

	fmt.Fprintf(p.out, "status check passed: %s\n", projectID)
	fmt.Fprintf(p.out, "  computation mode: %s\n", mode)

	res.Outcome = OutcomePassed
	res.Message = fmt.Sprintf("project %s, mode %s", projectID, mode)
	return res
}
