package ports

import (
	"context"

	"github.com/google/uuid"

	"classbench/models"
)

// ExperimentRepository defines the interface for experiment persistence
type ExperimentRepository interface {
	// Save stores an experiment, replacing any record with the same ID
	Save(ctx context.Context, experiment *models.Experiment) error

	// Get retrieves an experiment by ID
	Get(ctx context.Context, id uuid.UUID) (*models.Experiment, error)

	// List returns the most recent experiments, newest first
	List(ctx context.Context, limit int) ([]*models.Experiment, error)
}
