package models

import (
	"time"

	"github.com/google/uuid"

	"classbench/domain/classify"
	"classbench/domain/core"
	"classbench/internal/simulate"
)

// ModelResult pairs a fitted model summary with its test-set evaluation.
type ModelResult struct {
	TestAccuracy float64            `json:"test_accuracy"`
	Confusion    classify.Confusion `json:"confusion"`
}

// ThresholdResult captures the fitted discriminative model.
type ThresholdResult struct {
	Model classify.ThresholdModel `json:"model"`
	ModelResult
}

// GaussianResult captures the fitted generative model.
type GaussianResult struct {
	Model classify.GaussianModel `json:"model"`
	ModelResult
}

// Experiment is one complete benchmark run: simulated data, both fitted
// models, and their test-set scores.
type Experiment struct {
	ID        uuid.UUID       `json:"id"`
	Seed      int64           `json:"seed"`
	TrainSize int             `json:"train_size"`
	TestSize  int             `json:"test_size"`
	Mixture   simulate.Config `json:"mixture"`
	// TrainFingerprint hashes the training multiset so a rerun with the
	// same seed and mixture can be verified against the stored record.
	TrainFingerprint core.Hash       `json:"train_fingerprint"`
	Threshold        ThresholdResult `json:"threshold"`
	Gaussian         GaussianResult  `json:"gaussian"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Winner names the model with the higher test accuracy, or "tie".
func (e *Experiment) Winner() string {
	switch {
	case e.Threshold.TestAccuracy > e.Gaussian.TestAccuracy:
		return "threshold"
	case e.Gaussian.TestAccuracy > e.Threshold.TestAccuracy:
		return "gaussian"
	default:
		return "tie"
	}
}
