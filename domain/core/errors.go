package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors
	ErrEmptyTrainingSet   = errors.New("training set is empty")
	ErrEmptyEvaluationSet = errors.New("evaluation set is empty")
	ErrNonFiniteFeature   = errors.New("non-finite feature value")
	ErrInvalidLabel       = errors.New("label must be 0 or 1")

	// Simulation errors
	ErrInvalidSampleCount = errors.New("sample count must be positive")
	ErrInvalidSpread      = errors.New("standard deviation must be positive")
	ErrInvalidClassRate   = errors.New("class rate must be within [0,1]")

	// Persistence errors
	ErrNotFound           = errors.New("resource not found")
	ErrExperimentNotFound = fmt.Errorf("%w: experiment", ErrNotFound)
)

// NewNonFiniteFeatureError reports the offending sample position.
func NewNonFiniteFeatureError(index int, value float64) error {
	return fmt.Errorf("%w: sample %d has value %v", ErrNonFiniteFeature, index, value)
}

// NewValidationError reports a named field failing validation.
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// IsNotFoundError reports whether err is any not-found domain error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInputError reports whether err stems from rejected caller input.
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrEmptyTrainingSet) ||
		errors.Is(err, ErrEmptyEvaluationSet) ||
		errors.Is(err, ErrNonFiniteFeature) ||
		errors.Is(err, ErrInvalidLabel) ||
		errors.Is(err, ErrInvalidSampleCount) ||
		errors.Is(err, ErrInvalidSpread) ||
		errors.Is(err, ErrInvalidClassRate)
}
