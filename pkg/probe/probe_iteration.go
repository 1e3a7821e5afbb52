package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Duong37/dvre-dal-jupyter/pkg/client"
)

type iterationProbe struct {
	client  *client.Client
	out     io.Writer
	request *client.IterationRequest
}

func (p *iterationProbe) Name() string {
	return "start_iteration"
}

func (p *iterationProbe) Exec(ctx context.Context) Result {
	payload, _ := json.MarshalIndent(p.request, "", "  ")
	fmt.Fprintf(p.out, "sending payload: %s\n", payload)

	started := time.Now()
	resp := p.client.StartIteration(ctx, p.request)
	res := Result{Name: p.Name(), StatusCode: resp.StatusCode, Duration: time.Since(started)}

	if err := resp.Err(); err != nil {
		res.Outcome = OutcomeFailed
		res.Message = err.Error()
		fmt.Fprintf(p.out, "start iteration error: %s\n", err)
		return res
	}

	if resp.StatusCode != http.StatusOK {
		res.Outcome = OutcomeFailed
		res.Message = failureDetail(p.out, "start iteration", resp.StatusCode, resp.Decoded, resp.Body.Error, resp.RawBody)
		return res
	}

	fmt.Fprintln(p.out, "start iteration passed:")
	fmt.Fprintf(p.out, "  success: %t\n", resp.Body.Success)
	fmt.Fprintf(p.out, "  iteration: %d\n", resp.Body.Iteration)
	fmt.Fprintf(p.out, "  message: %s\n", messageOrDefault(resp.Body.Message))
	if resp.Body.Result != nil {
		fmt.Fprintf(p.out, "  result: %v\n", resp.Body.Result)
	}

	res.Outcome = OutcomePassed
	res.Message = resp.Body.Message
	return res
}

// failureDetail prints the engine's error field when the body decodes and
// carries one, and falls back to the raw response text otherwise. The
// decode failure itself is never surfaced as an error.
func failureDetail(out io.Writer, name string, statusCode int, decoded bool, errField, rawBody string) string {
	fmt.Fprintf(out, "%s failed: %d\n", name, statusCode)

	if decoded && errField != "" {
		fmt.Fprintf(out, "  error: %s\n", errField)
		return errField
	}

	fmt.Fprintf(out, "  response: %s\n", rawBody)
	return fmt.Sprintf("%s failed with status %d", name, statusCode)
}

func messageOrDefault(msg string) string {
	if msg == "" {
		return "no message"
	}
	return msg
}
