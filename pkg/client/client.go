package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultTimeout        = 5 * time.Second
	StartIterationTimeout = 30 * time.Second
	SubmitLabelsTimeout   = 10 * time.Second
)

// Client talks to a single AL-Engine instance. Every call carries its own
// timeout; start_iteration runs the whole iteration synchronously on the
// engine side and therefore gets a much longer one.
type Client struct {
	endpoint string

	Timeout          time.Duration
	IterationTimeout time.Duration
	SubmitTimeout    time.Duration
}

func New(endpoint string) *Client {
	return &Client{
		endpoint:         strings.TrimRight(endpoint, "/"),
		Timeout:          DefaultTimeout,
		IterationTimeout: StartIterationTimeout,
		SubmitTimeout:    SubmitLabelsTimeout,
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) Health(ctx context.Context) *APIResponse[HealthInfo] {
	return NewAPIResponse[HealthInfo](c.get(ctx, "/health", c.Timeout))
}

func (c *Client) Status(ctx context.Context) *APIResponse[StatusInfo] {
	return NewAPIResponse[StatusInfo](c.get(ctx, "/status", c.Timeout))
}

func (c *Client) Config(ctx context.Context) *APIResponse[EngineConfig] {
	return NewAPIResponse[EngineConfig](c.get(ctx, "/config", c.Timeout))
}

func (c *Client) StartIteration(ctx context.Context, req *IterationRequest) *APIResponse[IterationResponse] {
	return NewAPIResponse[IterationResponse](c.post(ctx, "/start_iteration", req, c.IterationTimeout))
}

func (c *Client) Results(ctx context.Context, iteration int) *APIResponse[ResultsInfo] {
	return NewAPIResponse[ResultsInfo](c.get(ctx, fmt.Sprintf("/results/%d", iteration), c.Timeout))
}

func (c *Client) SubmitLabels(ctx context.Context, req *LabelSubmission) *APIResponse[LabelResponse] {
	return NewAPIResponse[LabelResponse](c.post(ctx, "/submit_labels", req, c.SubmitTimeout))
}

func (c *Client) get(ctx context.Context, path string, timeout time.Duration) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", path)
	}

	httpClient := &http.Client{Timeout: timeout}
	return httpClient.Do(req)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, timeout time.Duration) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal payload for %s", path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", path)
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := &http.Client{Timeout: timeout}
	return httpClient.Do(req)
}
