package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classbench/adapters/memory"
	"classbench/app"
	"classbench/internal/simulate"
	"classbench/models"
)

func newTestApp() *App {
	repo := memory.NewExperimentRepository()
	service := app.NewBenchmarkService(repo)
	defaults := app.BenchmarkRequest{
		Seed:      42,
		TrainSize: 500,
		TestSize:  500,
		Mixture:   simulate.DefaultConfig(),
	}
	return NewApp(service, repo, defaults)
}

func TestHandleHealth(t *testing.T) {
	a := newTestApp()

	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestHandleRunExperiment_Defaults(t *testing.T) {
	a := newTestApp()

	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/experiments", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	var experiment models.Experiment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &experiment))
	assert.Equal(t, int64(42), experiment.Seed)
	assert.Equal(t, 500, experiment.TrainSize)
	assert.Greater(t, experiment.Threshold.TestAccuracy, 0.7)

	// The run is persisted and retrievable.
	rec = httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/experiments/"+experiment.ID.String(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleRunExperiment_Overrides(t *testing.T) {
	a := newTestApp()

	body := strings.NewReader(`{"seed": 7, "train_size": 200, "test_size": 100}`)
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/experiments", body))
	require.Equal(t, http.StatusCreated, rec.Code)

	var experiment models.Experiment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &experiment))
	assert.Equal(t, int64(7), experiment.Seed)
	assert.Equal(t, 200, experiment.TrainSize)
	assert.Equal(t, 100, experiment.TestSize)
}

func TestHandleRunExperiment_InvalidParameters(t *testing.T) {
	a := newTestApp()

	body := strings.NewReader(`{"negative_std": -3}`)
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/experiments", body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/experiments", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRunTrials(t *testing.T) {
	a := newTestApp()

	body := strings.NewReader(`{"trials": 3, "train_size": 200, "test_size": 200}`)
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/trials", body))
	require.Equal(t, http.StatusOK, rec.Code)

	var summary app.TrialSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 3, summary.Trials)

	rec = httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/trials", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListExperiments(t *testing.T) {
	a := newTestApp()

	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/experiments", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/experiments", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/experiments?limit=10", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var experiments []*models.Experiment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &experiments))
	assert.Len(t, experiments, 1)
}

func TestHandleGetExperiment_Errors(t *testing.T) {
	a := newTestApp()

	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/experiments/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/experiments/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleExperimentReport(t *testing.T) {
	a := newTestApp()

	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/experiments", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	var experiment models.Experiment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &experiment))

	rec = httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/experiments/"+experiment.ID.String()+"/report", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Threshold classifier")
}
