package report

import (
	"io"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/Duong37/dvre-dal-jupyter/pkg/probe"
	"github.com/Masterminds/sprig/v3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const defaultTemplate = `AL-Engine smoke report {{ .RunID }}
endpoint: {{ .Endpoint }}
started:  {{ .StartedAt.Format "2006-01-02T15:04:05Z07:00" }}
verdict:  {{ if .Passed }}PASS{{ else }}FAIL{{ end }}

{{ range .Results -}}
{{ printf "%-16s" .Name }} {{ upper (printf "%s" .Outcome) }}{{ if .StatusCode }} ({{ .StatusCode }}){{ end }}{{ if .Message }} - {{ .Message }}{{ end }}
{{ end -}}
`

// RunReport is the renderable summary of one harness run.
type RunReport struct {
	RunID     string
	Endpoint  string
	StartedAt time.Time
	Passed    bool
	Results   []probe.Result
}

func New(endpoint string, results []probe.Result, passed bool) *RunReport {
	return &RunReport{
		RunID:     uuid.New().String(),
		Endpoint:  endpoint,
		StartedAt: time.Now(),
		Passed:    passed,
		Results:   results,
	}
}

// Render writes the report through templateFile, or through the built-in
// template when none is configured.
func (r *RunReport) Render(w io.Writer, templateFile string) error {
	tplText := defaultTemplate

	if templateFile != "" {
		contents, err := os.ReadFile(templateFile)
		if err != nil {
			return errors.Wrapf(err, "failed to read report template %s", templateFile)
		}
		tplText = string(contents)
	}

	tpl, err := template.New("report").Funcs(sprig.TxtFuncMap()).Parse(tplText)
	if err != nil {
		return errors.Wrap(err, "failed to parse report template")
	}

	return tpl.Execute(w, r)
}

// WriteFile renders the report into target, creating parent directories as
// needed.
func (r *RunReport) WriteFile(target, templateFile string) error {
	log.Infof("writing smoke report to %s", target)

	folderPath, err := filepath.Abs(filepath.Dir(target))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(folderPath, os.ModePerm); err != nil {
		return err
	}

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	return r.Render(out, templateFile)
}
