package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"classbench/domain/core"
	"classbench/models"
	"classbench/ports"
)

// ExperimentRepository is an in-memory ExperimentRepository used when no
// database is configured and in tests.
type ExperimentRepository struct {
	mu          sync.RWMutex
	experiments map[uuid.UUID]*models.Experiment
}

// NewExperimentRepository creates an empty in-memory repository
func NewExperimentRepository() *ExperimentRepository {
	return &ExperimentRepository{
		experiments: make(map[uuid.UUID]*models.Experiment),
	}
}

// Save stores an experiment, replacing any record with the same ID
func (r *ExperimentRepository) Save(ctx context.Context, experiment *models.Experiment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *experiment
	r.experiments[experiment.ID] = &stored
	return nil
}

// Get retrieves an experiment by ID
func (r *ExperimentRepository) Get(ctx context.Context, id uuid.UUID) (*models.Experiment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	experiment, ok := r.experiments[id]
	if !ok {
		return nil, core.ErrExperimentNotFound
	}
	found := *experiment
	return &found, nil
}

// List returns the most recent experiments, newest first
func (r *ExperimentRepository) List(ctx context.Context, limit int) ([]*models.Experiment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	experiments := make([]*models.Experiment, 0, len(r.experiments))
	for _, experiment := range r.experiments {
		found := *experiment
		experiments = append(experiments, &found)
	}
	sort.Slice(experiments, func(i, j int) bool {
		return experiments[i].CreatedAt.After(experiments[j].CreatedAt)
	})

	if limit > 0 && len(experiments) > limit {
		experiments = experiments[:limit]
	}
	return experiments, nil
}

var _ ports.ExperimentRepository = (*ExperimentRepository)(nil)
