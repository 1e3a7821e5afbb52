package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/Duong37/dvre-dal-jupyter/pkg/client"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Engine is an in-process stand-in for the AL-Engine server. It answers
// the full smoke-test contract so the harness can be developed and tested
// without the real engine. State is minimal: which iterations have run and
// how many labels were received.
type Engine struct {
	projectID string

	lock          sync.Mutex
	iterationsRun map[int]bool
	labelsByIter  map[int]int
}

func NewEngine(projectID string) *Engine {
	return &Engine{
		projectID:     projectID,
		iterationsRun: make(map[int]bool),
		labelsByIter:  make(map[int]int),
	}
}

func (e *Engine) Router() *mux.Router {
	m := mux.NewRouter()
	m.Path("/health").Methods(http.MethodGet).HandlerFunc(e.handleHealth)
	m.Path("/status").Methods(http.MethodGet).HandlerFunc(e.handleStatus)
	m.Path("/config").Methods(http.MethodGet).HandlerFunc(e.handleConfig)
	m.Path("/start_iteration").Methods(http.MethodPost).HandlerFunc(e.handleStartIteration)
	m.Path("/results/{iteration}").Methods(http.MethodGet).HandlerFunc(e.handleResults)
	m.Path("/submit_labels").Methods(http.MethodPost).HandlerFunc(e.handleSubmitLabels)
	return m
}

// Run serves the stub engine until a SIGINT or SIGTERM arrives.
func Run(engine *Engine, signals chan os.Signal, listenPort int) error {
	server := http.Server{
		Addr:    fmt.Sprintf(":%d", listenPort),
		Handler: engine.Router(),
	}

	go func() {
		for s := range signals {
			if s == syscall.SIGINT || s == syscall.SIGTERM {
				log.WithField("receivedSignal", s.String()).Info("shutting down stub engine")
				_ = server.Shutdown(context.Background())
			}
		}
	}()

	err := server.ListenAndServe()
	if err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (e *Engine) handleHealth(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, client.HealthInfo{
		Status:          "healthy",
		ComputationMode: "local",
		ProjectID:       e.projectID,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	})
}

func (e *Engine) handleStatus(res http.ResponseWriter, req *http.Request) {
	e.lock.Lock()
	current := len(e.iterationsRun)
	e.lock.Unlock()

	writeJSON(res, http.StatusOK, client.StatusInfo{
		ProjectID:        e.projectID,
		ComputationMode:  "local",
		CurrentIteration: current,
		Server:           "al-engine",
	})
}

func (e *Engine) handleConfig(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, client.EngineConfig{
		"project_id":       e.projectID,
		"computation_mode": "local",
		"n_queries":        2,
		"query_strategy":   "uncertainty_sampling",
		"label_space":      []string{"positive", "negative"},
	})
}

func (e *Engine) handleStartIteration(res http.ResponseWriter, req *http.Request) {
	var request client.IterationRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		writeJSON(res, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if request.ProjectID != e.projectID {
		writeJSON(res, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("unknown project %q", request.ProjectID),
		})
		return
	}

	e.lock.Lock()
	e.iterationsRun[request.Iteration] = true
	e.lock.Unlock()

	writeJSON(res, http.StatusOK, client.IterationResponse{
		Success:   true,
		Iteration: request.Iteration,
		Message:   fmt.Sprintf("iteration %d completed", request.Iteration),
		Result: map[string]interface{}{
			"queried_samples": request.ConfigOverride.NQueries,
			"query_strategy":  request.ConfigOverride.QueryStrategy,
		},
	})
}

func (e *Engine) handleResults(res http.ResponseWriter, req *http.Request) {
	iteration, err := strconv.Atoi(mux.Vars(req)["iteration"])
	if err != nil {
		writeJSON(res, http.StatusBadRequest, map[string]string{"error": "iteration must be numeric"})
		return
	}

	e.lock.Lock()
	ran := e.iterationsRun[iteration]
	e.lock.Unlock()

	if !ran {
		writeJSON(res, http.StatusNotFound, map[string]string{
			"error": fmt.Sprintf("no results for iteration %d", iteration),
		})
		return
	}

	writeJSON(res, http.StatusOK, client.ResultsInfo{
		Iteration: iteration,
		Files: map[string]interface{}{
			"query_samples": fmt.Sprintf("query_samples_%d.json", iteration),
			"model_state":   fmt.Sprintf("model_%d.pkl", iteration),
		},
	})
}

func (e *Engine) handleSubmitLabels(res http.ResponseWriter, req *http.Request) {
	var submission client.LabelSubmission
	if err := json.NewDecoder(req.Body).Decode(&submission); err != nil {
		writeJSON(res, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if len(submission.LabeledSamples) == 0 {
		writeJSON(res, http.StatusBadRequest, map[string]string{"error": "no labeled samples submitted"})
		return
	}

	e.lock.Lock()
	e.labelsByIter[submission.Iteration] += len(submission.LabeledSamples)
	e.lock.Unlock()

	writeJSON(res, http.StatusOK, client.LabelResponse{
		Success:            true,
		SamplesProcessed:   len(submission.LabeledSamples),
		NextIterationReady: true,
		Message:            fmt.Sprintf("stored %d labels for iteration %d", len(submission.LabeledSamples), submission.Iteration),
	})
}

func writeJSON(res http.ResponseWriter, statusCode int, body interface{}) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	_ = json.NewEncoder(res).Encode(body)
}
