package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"classbench/app"
	"classbench/domain/core"
	"classbench/internal/report"
	"classbench/models"
)

// experimentRequest is the JSON body for POST /api/experiments. Any
// omitted field falls back to the configured defaults.
type experimentRequest struct {
	Seed         *int64   `json:"seed,omitempty"`
	TrainSize    *int     `json:"train_size,omitempty"`
	TestSize     *int     `json:"test_size,omitempty"`
	NegativeMean *float64 `json:"negative_mean,omitempty"`
	NegativeStd  *float64 `json:"negative_std,omitempty"`
	PositiveMean *float64 `json:"positive_mean,omitempty"`
	PositiveStd  *float64 `json:"positive_std,omitempty"`
	PositiveRate *float64 `json:"positive_rate,omitempty"`
	Trials       *int     `json:"trials,omitempty"`
}

func (a *App) buildRequest(r *http.Request) (app.BenchmarkRequest, int, error) {
	req := a.defaults
	trials := 0

	if r.Body == nil || r.ContentLength == 0 {
		return req, trials, nil
	}

	var body experimentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return req, 0, err
	}

	if body.Seed != nil {
		req.Seed = *body.Seed
	}
	if body.TrainSize != nil {
		req.TrainSize = *body.TrainSize
	}
	if body.TestSize != nil {
		req.TestSize = *body.TestSize
	}
	if body.NegativeMean != nil {
		req.Mixture.NegativeMean = *body.NegativeMean
	}
	if body.NegativeStd != nil {
		req.Mixture.NegativeStd = *body.NegativeStd
	}
	if body.PositiveMean != nil {
		req.Mixture.PositiveMean = *body.PositiveMean
	}
	if body.PositiveStd != nil {
		req.Mixture.PositiveStd = *body.PositiveStd
	}
	if body.PositiveRate != nil {
		req.Mixture.PositiveRate = *body.PositiveRate
	}
	if body.Trials != nil {
		trials = *body.Trials
	}
	return req, trials, nil
}

// handleRunExperiment runs one benchmark and returns the experiment
func (a *App) handleRunExperiment(w http.ResponseWriter, r *http.Request) {
	req, _, err := a.buildRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	experiment, err := a.benchmarks.Run(r.Context(), req)
	if err != nil {
		if core.IsInvalidInputError(err) {
			writeError(w, http.StatusBadRequest, "invalid benchmark parameters", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "benchmark failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, experiment)
}

// handleRunTrials runs repeated seeded benchmarks and returns the summary
func (a *App) handleRunTrials(w http.ResponseWriter, r *http.Request) {
	req, trials, err := a.buildRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if trials <= 0 {
		writeError(w, http.StatusBadRequest, "trials must be a positive integer", nil)
		return
	}

	summary, err := a.benchmarks.RunTrials(r.Context(), req, trials)
	if err != nil {
		if core.IsInvalidInputError(err) {
			writeError(w, http.StatusBadRequest, "invalid benchmark parameters", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "trials failed", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// handleListExperiments returns recent experiments
func (a *App) handleListExperiments(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer", err)
			return
		}
		limit = parsed
	}

	experiments, err := a.repository.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list experiments", err)
		return
	}
	if experiments == nil {
		experiments = []*models.Experiment{}
	}
	writeJSON(w, http.StatusOK, experiments)
}

// handleGetExperiment returns a single experiment by ID
func (a *App) handleGetExperiment(w http.ResponseWriter, r *http.Request) {
	experiment, ok := a.fetchExperiment(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, experiment)
}

// handleExperimentReport renders the experiment report as HTML
func (a *App) handleExperimentReport(w http.ResponseWriter, r *http.Request) {
	experiment, ok := a.fetchExperiment(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(report.HTML(experiment))
}

func (a *App) fetchExperiment(w http.ResponseWriter, r *http.Request) (*models.Experiment, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid experiment id", err)
		return nil, false
	}

	experiment, err := a.repository.Get(r.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			writeError(w, http.StatusNotFound, "experiment not found", err)
			return nil, false
		}
		writeError(w, http.StatusInternalServerError, "failed to load experiment", err)
		return nil, false
	}
	return experiment, true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]string{"error": message}
	if err != nil {
		body["detail"] = err.Error()
	}
	writeJSON(w, status, body)
}
