package app

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"classbench/domain/classify"
	"classbench/internal/simulate"
	"classbench/models"
	"classbench/ports"
)

// BenchmarkRequest defines the inputs for one benchmark run.
type BenchmarkRequest struct {
	Seed      int64           `json:"seed"`
	TrainSize int             `json:"train_size"`
	TestSize  int             `json:"test_size"`
	Mixture   simulate.Config `json:"mixture"`
}

// TrialSummary aggregates accuracy across repeated independent trials.
type TrialSummary struct {
	Trials            int       `json:"trials"`
	BaseSeed          int64     `json:"base_seed"`
	ThresholdAccuracy Aggregate `json:"threshold_accuracy"`
	GaussianAccuracy  Aggregate `json:"gaussian_accuracy"`
}

// Aggregate holds mean/min/max over trial accuracies.
type Aggregate struct {
	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// BenchmarkService runs the generative-vs-discriminative comparison:
// simulate a train and a test split, fit both models on the train
// split, evaluate both on the test split.
type BenchmarkService struct {
	repository ports.ExperimentRepository
}

// NewBenchmarkService creates a benchmark service. The repository may be
// nil, in which case results are returned without being persisted.
func NewBenchmarkService(repository ports.ExperimentRepository) *BenchmarkService {
	return &BenchmarkService{repository: repository}
}

// Run executes a single benchmark and persists the experiment.
func (s *BenchmarkService) Run(ctx context.Context, req BenchmarkRequest) (*models.Experiment, error) {
	experiment, err := s.runOnce(req)
	if err != nil {
		return nil, err
	}

	if s.repository != nil {
		if err := s.repository.Save(ctx, experiment); err != nil {
			return nil, fmt.Errorf("failed to persist experiment: %w", err)
		}
	}
	return experiment, nil
}

func (s *BenchmarkService) runOnce(req BenchmarkRequest) (*models.Experiment, error) {
	generator, err := simulate.NewGenerator(req.Mixture, req.Seed)
	if err != nil {
		return nil, err
	}

	train, err := generator.Draw(req.TrainSize)
	if err != nil {
		return nil, fmt.Errorf("failed to draw training set: %w", err)
	}
	test, err := generator.Draw(req.TestSize)
	if err != nil {
		return nil, fmt.Errorf("failed to draw test set: %w", err)
	}

	thresholdModel, err := classify.FitThreshold(train)
	if err != nil {
		return nil, fmt.Errorf("threshold fit failed: %w", err)
	}
	gaussianModel, err := classify.FitGaussian(train)
	if err != nil {
		return nil, fmt.Errorf("gaussian fit failed: %w", err)
	}

	thresholdEval, err := classify.Evaluate(thresholdModel, test)
	if err != nil {
		return nil, fmt.Errorf("threshold evaluation failed: %w", err)
	}
	gaussianEval, err := classify.Evaluate(gaussianModel, test)
	if err != nil {
		return nil, fmt.Errorf("gaussian evaluation failed: %w", err)
	}

	return &models.Experiment{
		ID:               uuid.New(),
		Seed:             req.Seed,
		TrainSize:        req.TrainSize,
		TestSize:         req.TestSize,
		Mixture:          req.Mixture,
		TrainFingerprint: train.Fingerprint(),
		Threshold: models.ThresholdResult{
			Model: thresholdModel,
			ModelResult: models.ModelResult{
				TestAccuracy: thresholdEval.Accuracy,
				Confusion:    thresholdEval.Confusion,
			},
		},
		Gaussian: models.GaussianResult{
			Model: gaussianModel,
			ModelResult: models.ModelResult{
				TestAccuracy: gaussianEval.Accuracy,
				Confusion:    gaussianEval.Confusion,
			},
		},
		CreatedAt: time.Now().UTC(),
	}, nil
}

// RunTrials executes independent benchmarks concurrently; trial i uses
// seed req.Seed+i, so the summary is reproducible for a given request.
// Trial experiments are not persisted.
func (s *BenchmarkService) RunTrials(ctx context.Context, req BenchmarkRequest, trials int) (*TrialSummary, error) {
	if trials <= 0 {
		return nil, fmt.Errorf("trial count must be positive, got %d", trials)
	}

	thresholdAccuracies := make([]float64, trials)
	gaussianAccuracies := make([]float64, trials)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i := 0; i < trials; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			trialReq := req
			trialReq.Seed = req.Seed + int64(i)
			experiment, err := s.runOnce(trialReq)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			thresholdAccuracies[i] = experiment.Threshold.TestAccuracy
			gaussianAccuracies[i] = experiment.Gaussian.TestAccuracy
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &TrialSummary{
		Trials:            trials,
		BaseSeed:          req.Seed,
		ThresholdAccuracy: aggregate(thresholdAccuracies),
		GaussianAccuracy:  aggregate(gaussianAccuracies),
	}, nil
}

func aggregate(values []float64) Aggregate {
	agg := Aggregate{Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for _, v := range values {
		sum += v
		agg.Min = math.Min(agg.Min, v)
		agg.Max = math.Max(agg.Max, v)
	}
	agg.Mean = sum / float64(len(values))
	return agg
}
