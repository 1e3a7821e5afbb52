package config

// Timeouts are per-request deadlines, expressed as duration strings.
// StartIteration gets a longer default because the engine computes the
// iteration synchronously before answering.
type Timeouts struct {
	Default        string `hcl:"default"`
	StartIteration string `hcl:"startIteration"`
	SubmitLabels   string `hcl:"submitLabels"`
}

// Override is sent to the engine as the config_override block of a
// start_iteration request.
type Override struct {
	NQueries      int      `hcl:"nQueries"`
	QueryStrategy string   `hcl:"queryStrategy"`
	LabelSpace    []string `hcl:"labelSpace"`
}

type Report struct {
	Target   string `hcl:"target"`
	Template string `hcl:"from"`
}

// Smoke is the root configuration of the harness. All fields have working
// defaults; the harness must run against a local engine with no
// configuration files at all.
type Smoke struct {
	Endpoint  string    `hcl:"endpoint"`
	ProjectID string    `hcl:"projectId"`
	Iteration int       `hcl:"iteration"`
	Timeouts  *Timeouts `hcl:"timeouts"`
	Override  *Override `hcl:"override"`
	Report    *Report   `hcl:"report"`
}
