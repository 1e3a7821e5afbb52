package mock_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Duong37/dvre-dal-jupyter/pkg/client"
	"github.com/Duong37/dvre-dal-jupyter/pkg/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(mock.NewEngine("test-project").Router())
	t.Cleanup(srv.Close)

	return srv
}

func getJSON(t *testing.T, url string, target interface{}) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
	return resp.StatusCode
}

func postJSON(t *testing.T, url string, payload interface{}, target interface{}) int {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
	return resp.StatusCode
}

func TestHealthAnswersLocalMode(t *testing.T) {
	srv := newTestEngine(t)

	var health client.HealthInfo
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/health", &health))

	assert.Equal(t, "local", health.ComputationMode)
	assert.Equal(t, "test-project", health.ProjectID)
}

func TestStatusAndConfigAnswer(t *testing.T) {
	srv := newTestEngine(t)

	var status client.StatusInfo
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/status", &status))
	assert.Equal(t, "test-project", status.ProjectID)
	assert.Equal(t, "local", status.ComputationMode)

	var engineConfig client.EngineConfig
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/config", &engineConfig))
	assert.NotEmpty(t, engineConfig)
}

func TestResultsAre404UntilAnIterationRan(t *testing.T) {
	srv := newTestEngine(t)

	var notFound map[string]string
	require.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/results/1", &notFound))
	assert.Contains(t, notFound["error"], "no results for iteration 1")

	var iterResp client.IterationResponse
	status := postJSON(t, srv.URL+"/start_iteration", client.IterationRequest{
		Iteration: 1,
		ProjectID: "test-project",
	}, &iterResp)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, iterResp.Success)
	assert.Equal(t, 1, iterResp.Iteration)

	var results client.ResultsInfo
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/results/1", &results))
	assert.NotEmpty(t, results.Files)
}

func TestStartIterationRejectsUnknownProject(t *testing.T) {
	srv := newTestEngine(t)

	var iterResp map[string]string
	status := postJSON(t, srv.URL+"/start_iteration", client.IterationRequest{
		Iteration: 1,
		ProjectID: "some-other-project",
	}, &iterResp)

	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, iterResp["error"], "unknown project")
}

func TestSubmitLabelsCountsSamples(t *testing.T) {
	srv := newTestEngine(t)

	var labelResp client.LabelResponse
	status := postJSON(t, srv.URL+"/submit_labels", client.LabelSubmission{
		Iteration: 1,
		ProjectID: "test-project",
		LabeledSamples: []client.LabeledSample{
			{SampleID: "a", Label: "positive"},
			{SampleID: "b", Label: "negative"},
		},
	}, &labelResp)

	require.Equal(t, http.StatusOK, status)
	assert.True(t, labelResp.Success)
	assert.Equal(t, 2, labelResp.SamplesProcessed)
	assert.True(t, labelResp.NextIterationReady)
}

func TestSubmitLabelsRejectsEmptySubmission(t *testing.T) {
	srv := newTestEngine(t)

	var labelResp map[string]string
	status := postJSON(t, srv.URL+"/submit_labels", client.LabelSubmission{
		Iteration: 1,
		ProjectID: "test-project",
	}, &labelResp)

	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, labelResp["error"], "no labeled samples")
}
