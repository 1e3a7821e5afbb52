package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Duong37/dvre-dal-jupyter/pkg/client"
	log "github.com/sirupsen/logrus"
)

// healthProbe is the only fatal probe: if the engine does not answer here,
// nothing else is worth trying.
type healthProbe struct {
	client *client.Client
	out    io.Writer
}

func (p *healthProbe) Name() string {
	return "health"
}

func (p *healthProbe) Exec(ctx context.Context) Result {
	started := time.Now()
	resp := p.client.Health(ctx)
	res := Result{Name: p.Name(), StatusCode: resp.StatusCode, Duration: time.Since(started)}

	if err := resp.Err(); err != nil {
		res.Outcome = OutcomeFailed
		res.Message = err.Error()
		fmt.Fprintf(p.out, "health check error: %s\n", err)
		return res
	}

	if resp.StatusCode != http.StatusOK || !resp.Decoded {
		res.Outcome = OutcomeFailed
		res.Message = fmt.Sprintf("health check failed with status %d", resp.StatusCode)
		fmt.Fprintf(p.out, "health check failed: %d\n", resp.StatusCode)
		return res
	}

	fmt.Fprintf(p.out, "health check passed: %s\n", resp.RawBody)

	if resp.Body.ComputationMode != "local" {
		res.Message = fmt.Sprintf("expected local computation mode, got %q", resp.Body.ComputationMode)
		fmt.Fprintf(p.out, "warning: %s\n", res.Message)
		log.WithFields(log.Fields{"kind": "probe", "name": p.Name()}).Warn(res.Message)
	}

	res.Outcome = OutcomePassed
	return res
}
