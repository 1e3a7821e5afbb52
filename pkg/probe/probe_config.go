package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Duong37/dvre-dal-jupyter/pkg/client"
)

type configProbe struct {
	client *client.Client
	out    io.Writer
}

func (p *configProbe) Name() string {
	return "config"
}

func (p *configProbe) Exec(ctx context.Context) Result {
	started := time.Now()
	resp := p.client.Config(ctx)
	res := Result{Name: p.Name(), StatusCode: resp.StatusCode, Duration: time.Since(started)}

	if err := resp.Err(); err != nil {
		res.Outcome = OutcomeFailed
		res.Message = err.Error()
		fmt.Fprintf(p.out, "config check error: %s\n", err)
		return res
	}

	if resp.StatusCode != http.StatusOK || !resp.Decoded {
		res.Outcome = OutcomeFailed
		res.Message = fmt.Sprintf("config check failed with status %d", resp.StatusCode)
		fmt.Fprintf(p.out, "config check failed: %d\n", resp.StatusCode)
		return res
	}

	fmt.Fprintf(p.out, "config check passed: %d config items\n", len(resp.Body))

	res.Outcome = OutcomePassed
	res.Message = fmt.Sprintf("%d config items", len(resp.Body))
	return res
}
