package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classbench/domain/core"
	"classbench/models"
)

func newExperiment(createdAt time.Time) *models.Experiment {
	return &models.Experiment{
		ID:        uuid.New(),
		Seed:      1,
		TrainSize: 10,
		TestSize:  10,
		CreatedAt: createdAt,
	}
}

func TestExperimentRepository_SaveAndGet(t *testing.T) {
	repo := NewExperimentRepository()
	ctx := context.Background()

	experiment := newExperiment(time.Now())
	require.NoError(t, repo.Save(ctx, experiment))

	found, err := repo.Get(ctx, experiment.ID)
	require.NoError(t, err)
	assert.Equal(t, experiment.ID, found.ID)

	// The stored record is a copy; mutating the original must not leak.
	experiment.Seed = 99
	found, err = repo.Get(ctx, experiment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.Seed)
}

func TestExperimentRepository_GetMissing(t *testing.T) {
	repo := NewExperimentRepository()

	_, err := repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, core.ErrExperimentNotFound)
}

func TestExperimentRepository_ListNewestFirst(t *testing.T) {
	repo := NewExperimentRepository()
	ctx := context.Background()

	base := time.Now()
	oldest := newExperiment(base.Add(-2 * time.Hour))
	middle := newExperiment(base.Add(-time.Hour))
	newest := newExperiment(base)

	for _, e := range []*models.Experiment{middle, newest, oldest} {
		require.NoError(t, repo.Save(ctx, e))
	}

	experiments, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, experiments, 2)
	assert.Equal(t, newest.ID, experiments[0].ID)
	assert.Equal(t, middle.ID, experiments[1].ID)
}
