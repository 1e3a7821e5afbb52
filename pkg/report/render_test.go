package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Duong37/dvre-dal-jupyter/pkg/probe"
	"github.com/Duong37/dvre-dal-jupyter/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []probe.Result {
	return []probe.Result{
		{Name: "health", Outcome: probe.OutcomePassed, StatusCode: 200},
		{Name: "status", Outcome: probe.OutcomeFailed, StatusCode: 500, Message: "status check failed with status 500"},
		{Name: "results", Outcome: probe.OutcomeInfo, StatusCode: 404, Message: "status 404, expected if no results yet"},
	}
}

func TestRenderProducesOneLinePerProbe(t *testing.T) {
	rep := report.New("http://localhost:5050", sampleResults(), true)

	out := &bytes.Buffer{}
	require.NoError(t, rep.Render(out, ""))

	rendered := out.String()
	assert.Contains(t, rendered, rep.RunID)
	assert.Contains(t, rendered, "endpoint: http://localhost:5050")
	assert.Contains(t, rendered, "verdict:  PASS")
	assert.Contains(t, rendered, "health")
	assert.Contains(t, rendered, "PASSED (200)")
	assert.Contains(t, rendered, "FAILED (500)")
	assert.Contains(t, rendered, "INFO (404)")
}

func TestRenderReportsFailedVerdict(t *testing.T) {
	rep := report.New("http://localhost:5050", sampleResults(), false)

	out := &bytes.Buffer{}
	require.NoError(t, rep.Render(out, ""))

	assert.Contains(t, out.String(), "verdict:  FAIL")
}

func TestRenderUsesCustomTemplate(t *testing.T) {
	dir := t.TempDir()
	tplPath := filepath.Join(dir, "report.tpl")
	require.NoError(t, os.WriteFile(tplPath, []byte(`{{ len .Results }} probes, run {{ .RunID }}`), 0o644))

	rep := report.New("http://localhost:5050", sampleResults(), true)

	out := &bytes.Buffer{}
	require.NoError(t, rep.Render(out, tplPath))

	assert.Equal(t, "3 probes, run "+rep.RunID, out.String())
}

func TestWriteFileCreatesParentDirectories(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "dir", "report.txt")

	rep := report.New("http://localhost:5050", sampleResults(), true)
	require.NoError(t, rep.WriteFile(target, ""))

	contents, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(contents), rep.RunID)
}
