package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"classbench/domain/core"
	"classbench/models"
	"classbench/ports"
)

// ExperimentRepositoryImpl implements ExperimentRepository for PostgreSQL
type ExperimentRepositoryImpl struct {
	db *sqlx.DB
}

// NewExperimentRepository creates a new PostgreSQL experiment repository
func NewExperimentRepository(db *sqlx.DB) ports.ExperimentRepository {
	return &ExperimentRepositoryImpl{db: db}
}

// EnsureSchema creates the experiments table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS experiments (
			id UUID PRIMARY KEY,
			seed BIGINT NOT NULL,
			train_size INT NOT NULL,
			test_size INT NOT NULL,
			mixture JSONB NOT NULL,
			train_fingerprint TEXT NOT NULL DEFAULT '',
			threshold_result JSONB NOT NULL,
			gaussian_result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure experiments schema: %w", err)
	}
	return nil
}

// Save stores an experiment, replacing any record with the same ID
func (r *ExperimentRepositoryImpl) Save(ctx context.Context, experiment *models.Experiment) error {
	mixtureJSON, err := json.Marshal(experiment.Mixture)
	if err != nil {
		return fmt.Errorf("failed to marshal mixture: %w", err)
	}
	thresholdJSON, err := json.Marshal(experiment.Threshold)
	if err != nil {
		return fmt.Errorf("failed to marshal threshold result: %w", err)
	}
	gaussianJSON, err := json.Marshal(experiment.Gaussian)
	if err != nil {
		return fmt.Errorf("failed to marshal gaussian result: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO experiments (
			id, seed, train_size, test_size, mixture, train_fingerprint,
			threshold_result, gaussian_result, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			seed = EXCLUDED.seed,
			train_size = EXCLUDED.train_size,
			test_size = EXCLUDED.test_size,
			mixture = EXCLUDED.mixture,
			train_fingerprint = EXCLUDED.train_fingerprint,
			threshold_result = EXCLUDED.threshold_result,
			gaussian_result = EXCLUDED.gaussian_result`,
		experiment.ID, experiment.Seed, experiment.TrainSize, experiment.TestSize,
		mixtureJSON, experiment.TrainFingerprint, thresholdJSON, gaussianJSON,
		experiment.CreatedAt)

	return err
}

// Get retrieves an experiment by ID
func (r *ExperimentRepositoryImpl) Get(ctx context.Context, id uuid.UUID) (*models.Experiment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, seed, train_size, test_size, mixture, train_fingerprint,
			   threshold_result, gaussian_result, created_at
		FROM experiments
		WHERE id = $1`, id)

	experiment, err := scanExperiment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrExperimentNotFound
	}
	return experiment, err
}

// List returns the most recent experiments, newest first
func (r *ExperimentRepositoryImpl) List(ctx context.Context, limit int) ([]*models.Experiment, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, seed, train_size, test_size, mixture, train_fingerprint,
			   threshold_result, gaussian_result, created_at
		FROM experiments
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var experiments []*models.Experiment
	for rows.Next() {
		experiment, err := scanExperiment(rows)
		if err != nil {
			return nil, err
		}
		experiments = append(experiments, experiment)
	}
	return experiments, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExperiment(row rowScanner) (*models.Experiment, error) {
	var experiment models.Experiment
	var mixtureJSON, thresholdJSON, gaussianJSON []byte

	err := row.Scan(
		&experiment.ID, &experiment.Seed, &experiment.TrainSize, &experiment.TestSize,
		&mixtureJSON, &experiment.TrainFingerprint, &thresholdJSON, &gaussianJSON,
		&experiment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(mixtureJSON, &experiment.Mixture); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mixture: %w", err)
	}
	if err := json.Unmarshal(thresholdJSON, &experiment.Threshold); err != nil {
		return nil, fmt.Errorf("failed to unmarshal threshold result: %w", err)
	}
	if err := json.Unmarshal(gaussianJSON, &experiment.Gaussian); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gaussian result: %w", err)
	}
	return &experiment, nil
}
