package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"classbench/app"
	"classbench/ports"
)

// App represents the HTTP application surface
type App struct {
	router     *chi.Mux
	benchmarks *app.BenchmarkService
	repository ports.ExperimentRepository
	defaults   app.BenchmarkRequest
}

// NewApp creates the HTTP application around the benchmark service.
// The defaults fill request fields the caller leaves unset.
func NewApp(benchmarks *app.BenchmarkService, repository ports.ExperimentRepository, defaults app.BenchmarkRequest) *App {
	a := &App{
		router:     chi.NewRouter(),
		benchmarks: benchmarks,
		repository: repository,
		defaults:   defaults,
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
}

// setupRoutes configures all application routes
func (a *App) setupRoutes() {
	a.router.Get("/health", a.handleHealth)

	a.router.Route("/api/experiments", func(r chi.Router) {
		r.Post("/", a.handleRunExperiment)
		r.Get("/", a.handleListExperiments)
		r.Get("/{id}", a.handleGetExperiment)
		r.Get("/{id}/report", a.handleExperimentReport)
	})
	a.router.Post("/api/trials", a.handleRunTrials)
}

// Router exposes the configured router for serving and for tests.
func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
