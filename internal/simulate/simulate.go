package simulate

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"classbench/domain/classify"
	"classbench/domain/core"
)

// Config describes the two class-conditional normal distributions and
// the label coin. Defaults model the height-by-gender toy problem.
type Config struct {
	NegativeMean float64 `json:"negative_mean"`
	NegativeStd  float64 `json:"negative_std"`
	PositiveMean float64 `json:"positive_mean"`
	PositiveStd  float64 `json:"positive_std"`
	PositiveRate float64 `json:"positive_rate"`
}

// DefaultConfig returns the canonical benchmark distributions.
func DefaultConfig() Config {
	return Config{
		NegativeMean: 64,
		NegativeStd:  3,
		PositiveMean: 70,
		PositiveStd:  3,
		PositiveRate: 0.5,
	}
}

// Validate rejects degenerate distribution parameters.
func (c Config) Validate() error {
	if c.NegativeStd <= 0 || c.PositiveStd <= 0 {
		return core.ErrInvalidSpread
	}
	if c.PositiveRate < 0 || c.PositiveRate > 1 {
		return core.ErrInvalidClassRate
	}
	return nil
}

// Generator draws labeled samples from a two-class Gaussian mixture.
// All randomness flows through one seeded source, so a given seed
// reproduces the exact sample sequence.
type Generator struct {
	config   Config
	rng      *rand.Rand
	negative distuv.Normal
	positive distuv.Normal
}

// NewGenerator creates a seeded generator for the given mixture.
func NewGenerator(config Config, seed int64) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(uint64(seed)))
	return &Generator{
		config:   config,
		rng:      rng,
		negative: distuv.Normal{Mu: config.NegativeMean, Sigma: config.NegativeStd, Src: rng},
		positive: distuv.Normal{Mu: config.PositiveMean, Sigma: config.PositiveStd, Src: rng},
	}, nil
}

// Draw produces n labeled samples.
func (g *Generator) Draw(n int) (classify.SampleSet, error) {
	if n <= 0 {
		return nil, core.ErrInvalidSampleCount
	}

	samples := make(classify.SampleSet, n)
	for i := range samples {
		if g.rng.Float64() < g.config.PositiveRate {
			samples[i] = classify.Sample{Feature: g.positive.Rand(), Label: classify.LabelPositive}
		} else {
			samples[i] = classify.Sample{Feature: g.negative.Rand(), Label: classify.LabelNegative}
		}
	}
	return samples, nil
}

// Config returns the mixture parameters the generator was built with.
func (g *Generator) Config() Config {
	return g.config
}
