package client_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Duong37/dvre-dal-jupyter/pkg/client"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, statusCode int, body string) *http.Response {
	t.Helper()

	rec := httptest.NewRecorder()
	rec.WriteHeader(statusCode)
	_, err := rec.WriteString(body)
	require.NoError(t, err)

	return rec.Result()
}

func TestResponseDecodesJSONBody(t *testing.T) {
	resp := client.NewAPIResponse[client.StatusInfo](respond(t, 200, `{"project_id":"p1","computation_mode":"local"}`), nil)

	require.NoError(t, resp.Err())
	assert.True(t, resp.OK())
	assert.True(t, resp.Decoded)
	assert.Equal(t, "p1", resp.Body.ProjectID)
	assert.Equal(t, "local", resp.Body.ComputationMode)
}

func TestResponseKeepsRawTextWhenBodyIsNotJSON(t *testing.T) {
	resp := client.NewAPIResponse[client.IterationResponse](respond(t, 500, "Internal Server Error"), nil)

	// an undecodable body must never surface as an error of its own
	require.NoError(t, resp.Err())
	assert.False(t, resp.OK())
	assert.False(t, resp.Decoded)
	assert.Equal(t, "Internal Server Error", resp.RawBody)
}

func TestResponseCarriesTransportError(t *testing.T) {
	resp := client.NewAPIResponse[client.HealthInfo](nil, errors.New("connection refused"))

	require.Error(t, resp.Err())
	assert.False(t, resp.OK())
	assert.Zero(t, resp.StatusCode)
}

func TestResponseDecodesErrorBodies(t *testing.T) {
	resp := client.NewAPIResponse[client.IterationResponse](respond(t, 400, `{"error":"model not trained"}`), nil)

	require.NoError(t, resp.Err())
	assert.False(t, resp.OK())
	assert.True(t, resp.Decoded)
	assert.Equal(t, "model not trained", resp.Body.Error)
}
