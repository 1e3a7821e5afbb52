package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Duong37/dvre-dal-jupyter/pkg/client"
)

type labelsProbe struct {
	client  *client.Client
	out     io.Writer
	request *client.LabelSubmission
}

func (p *labelsProbe) Name() string {
	return "submit_labels"
}

func (p *labelsProbe) Exec(ctx context.Context) Result {
	fmt.Fprintf(p.out, "sending %d labeled samples\n", len(p.request.LabeledSamples))

	started := time.Now()
	resp := p.client.SubmitLabels(ctx, p.request)
	res := Result{Name: p.Name(), StatusCode: resp.StatusCode, Duration: time.Since(started)}

	if err := resp.Err(); err != nil {
		res.Outcome = OutcomeFailed
		res.Message = err.Error()
		fmt.Fprintf(p.out, "submit labels error: %s\n", err)
		return res
	}

	if resp.StatusCode != http.StatusOK {
		res.Outcome = OutcomeFailed
		res.Message = failureDetail(p.out, "submit labels", resp.StatusCode, resp.Decoded, resp.Body.Error, resp.RawBody)
		return res
	}

	fmt.Fprintln(p.out, "submit labels passed:")
	fmt.Fprintf(p.out, "  success: %t\n", resp.Body.Success)
	fmt.Fprintf(p.out, "  samples processed: %d\n", resp.Body.SamplesProcessed)
	fmt.Fprintf(p.out, "  next iteration ready: %t\n", resp.Body.NextIterationReady)
	fmt.Fprintf(p.out, "  message: %s\n", messageOrDefault(resp.Body.Message))

	res.Outcome = OutcomePassed
	res.Message = fmt.Sprintf("%d samples processed", resp.Body.SamplesProcessed)
	return res
}

// DefaultSamples builds the two synthetic labeled samples the harness
// submits, mimicking what the labeling frontend would send back after an
// iteration. Sample ids carry the iteration, a sequence number and a
// timestamp, like the engine's own naming scheme.
func DefaultSamples(iteration int, labelSpace []string, stamp int64) []client.LabeledSample {
	firstLabel, lastLabel := "positive", "negative"
	if len(labelSpace) > 0 {
		firstLabel = labelSpace[0]
		lastLabel = labelSpace[len(labelSpace)-1]
	}

	return []client.LabeledSample{
		{
			SampleID: fmt.Sprintf("sample_%d_1_%d", iteration, stamp),
			SampleData: client.SampleData{
				Features: []float64{1.2, 3.4, 5.6, 7.8},
				Text:     "Sample text content",
			},
			Label:         firstLabel,
			OriginalIndex: 42,
		},
		{
			SampleID: fmt.Sprintf("sample_%d_2_%d", iteration, stamp),
			SampleData: client.SampleData{
				Features: []float64{2.1, 4.3, 6.5, 8.7},
				Text:     "Another sample text",
			},
			Label:         lastLabel,
			OriginalIndex: 73,
		},
	}
}
