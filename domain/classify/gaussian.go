package classify

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"classbench/domain/core"
)

// ClassStats holds the fitted Gaussian parameters for one class.
type ClassStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Prior  float64 `json:"prior"`
	Count  int     `json:"count"`
}

// GaussianModel is a generative classifier: each class is modeled as a
// normal distribution and prediction maximizes prior times density.
// StdDev uses the sample convention (divide by N-1). Immutable once
// fitted.
type GaussianModel struct {
	Negative ClassStats `json:"negative"`
	Positive ClassStats `json:"positive"`
}

// FitGaussian estimates per-class mean, sample standard deviation and
// prior frequency in closed form. A class with fewer than two samples
// gets StdDev 0 and degenerates to an exact-match density; a class with
// no samples gets prior 0 and is never predicted.
func FitGaussian(samples SampleSet) (GaussianModel, error) {
	if err := samples.Validate(); err != nil {
		return GaussianModel{}, err
	}

	negatives, positives := samples.SplitByLabel()
	total := float64(len(samples))

	negStats, err := fitClass(negatives, total)
	if err != nil {
		return GaussianModel{}, err
	}
	posStats, err := fitClass(positives, total)
	if err != nil {
		return GaussianModel{}, err
	}

	return GaussianModel{Negative: negStats, Positive: posStats}, nil
}

func fitClass(features []float64, total float64) (ClassStats, error) {
	cs := ClassStats{
		Count: len(features),
		Prior: float64(len(features)) / total,
	}
	if len(features) == 0 {
		return cs, nil
	}

	mean, err := stats.Mean(features)
	if err != nil {
		return ClassStats{}, core.NewValidationError("class features", err.Error())
	}
	cs.Mean = mean

	if len(features) >= 2 {
		stdDev, err := stats.StandardDeviationSample(features)
		if err != nil {
			return ClassStats{}, core.NewValidationError("class features", err.Error())
		}
		cs.StdDev = stdDev
	}
	return cs, nil
}

// Predict returns the class maximizing prior * density at x. Posterior
// ties resolve to the negative class.
func (m GaussianModel) Predict(x float64) Label {
	negScore := m.Negative.Prior * m.Negative.density(x)
	posScore := m.Positive.Prior * m.Positive.density(x)
	if posScore > negScore {
		return LabelPositive
	}
	return LabelNegative
}

// density evaluates the fitted class likelihood at x. A zero StdDev
// collapses the distribution to an exact-match indicator so prediction
// never divides by zero.
func (cs ClassStats) density(x float64) float64 {
	if cs.Count == 0 {
		return 0
	}
	if cs.StdDev == 0 {
		if x == cs.Mean {
			return 1
		}
		return 0
	}
	return distuv.Normal{Mu: cs.Mean, Sigma: cs.StdDev}.Prob(x)
}
