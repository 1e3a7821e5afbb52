package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Duong37/dvre-dal-jupyter/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsApplyWhenConfigDirIsMissing(t *testing.T) {
	smoke := &config.Smoke{}

	require.NoError(t, smoke.GenerateFromConfigDir(filepath.Join(t.TempDir(), "does-not-exist")))

	assert.Equal(t, "http://localhost:5050", smoke.Endpoint)
	assert.Equal(t, "test-project", smoke.ProjectID)
	assert.Equal(t, 1, smoke.Iteration)
	assert.Equal(t, "5s", smoke.Timeouts.Default)
	assert.Equal(t, "30s", smoke.Timeouts.StartIteration)
	assert.Equal(t, "10s", smoke.Timeouts.SubmitLabels)
	assert.Equal(t, 2, smoke.Override.NQueries)
	assert.Equal(t, "uncertainty_sampling", smoke.Override.QueryStrategy)
	assert.Equal(t, []string{"positive", "negative"}, smoke.Override.LabelSpace)
}

func TestDefaultsApplyWhenConfigDirIsEmpty(t *testing.T) {
	smoke := &config.Smoke{}

	require.NoError(t, smoke.GenerateFromConfigDir(t.TempDir()))

	assert.Equal(t, "http://localhost:5050", smoke.Endpoint)
	assert.Equal(t, "test-project", smoke.ProjectID)
}

func TestConfigFilesOverrideDefaults(t *testing.T) {
	dir := t.TempDir()
	hclContent := `
endpoint = "http://engine.example:8080"
projectId = "demo-project"
iteration = 3

timeouts {
  startIteration = "2m"
}

override {
  nQueries = 5
  queryStrategy = "random_sampling"
  labelSpace = ["spam", "ham"]
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "smoke.hcl"), []byte(hclContent), 0o644))

	smoke := &config.Smoke{}
	require.NoError(t, smoke.GenerateFromConfigDir(dir))

	assert.Equal(t, "http://engine.example:8080", smoke.Endpoint)
	assert.Equal(t, "demo-project", smoke.ProjectID)
	assert.Equal(t, 3, smoke.Iteration)
	assert.Equal(t, "2m", smoke.Timeouts.StartIteration)
	assert.Equal(t, "5s", smoke.Timeouts.Default)
	assert.Equal(t, 5, smoke.Override.NQueries)
	assert.Equal(t, "random_sampling", smoke.Override.QueryStrategy)
	assert.Equal(t, []string{"spam", "ham"}, smoke.Override.LabelSpace)
}

func TestEndpointResolvesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	hclContent := `endpoint = "ENV:ALSMOKE_TEST_ENDPOINT"`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "smoke.hcl"), []byte(hclContent), 0o644))

	t.Setenv("ALSMOKE_TEST_ENDPOINT", "http://from-env:5050")

	smoke := &config.Smoke{}
	require.NoError(t, smoke.GenerateFromConfigDir(dir))

	assert.Equal(t, "http://from-env:5050", smoke.Endpoint)
}
