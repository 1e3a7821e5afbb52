package client

// Wire types of the AL-Engine HTTP API. Field names follow the engine's
// JSON contract exactly; the engine is snake_case throughout.

type HealthInfo struct {
	Status          string `json:"status,omitempty"`
	ComputationMode string `json:"computation_mode"`
	ProjectID       string `json:"project_id,omitempty"`
	Timestamp       string `json:"timestamp,omitempty"`
}

type StatusInfo struct {
	ProjectID        string `json:"project_id"`
	ComputationMode  string `json:"computation_mode"`
	CurrentIteration int    `json:"current_iteration,omitempty"`
	Server           string `json:"server,omitempty"`
}

// EngineConfig is deliberately schemaless; the smoke test only counts its
// entries.
type EngineConfig map[string]interface{}

// ConfigOverride is the per-iteration override block of a start_iteration
// request.
type ConfigOverride struct {
	NQueries      int      `json:"n_queries"`
	QueryStrategy string   `json:"query_strategy"`
	LabelSpace    []string `json:"label_space"`
}

type IterationRequest struct {
	Iteration      int            `json:"iteration"`
	ProjectID      string         `json:"project_id"`
	ConfigOverride ConfigOverride `json:"config_override"`
}

type IterationResponse struct {
	Success   bool                   `json:"success"`
	Iteration int                    `json:"iteration"`
	Message   string                 `json:"message"`
	Result    map[string]interface{} `json:"result,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

type ResultsInfo struct {
	Iteration int                    `json:"iteration,omitempty"`
	Files     map[string]interface{} `json:"files"`
	Error     string                 `json:"error,omitempty"`
}

type SampleData struct {
	Features []float64 `json:"features"`
	Text     string    `json:"text"`
}

type LabeledSample struct {
	SampleID      string     `json:"sample_id"`
	SampleData    SampleData `json:"sample_data"`
	Label         string     `json:"label"`
	OriginalIndex int        `json:"original_index"`
}

type LabelSubmission struct {
	Iteration      int             `json:"iteration"`
	ProjectID      string          `json:"project_id"`
	LabeledSamples []LabeledSample `json:"labeled_samples"`
}

type LabelResponse struct {
	Success            bool   `json:"success"`
	SamplesProcessed   int    `json:"samples_processed"`
	NextIterationReady bool   `json:"next_iteration_ready"`
	Message            string `json:"message"`
	Error              string `json:"error,omitempty"`
}
