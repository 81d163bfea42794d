package classify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classbench/domain/core"
)

func TestFitGaussian_SampleStdConvention(t *testing.T) {
	samples := SampleSet{
		{Feature: 2, Label: LabelNegative},
		{Feature: 4, Label: LabelNegative},
		{Feature: 10, Label: LabelPositive},
		{Feature: 14, Label: LabelPositive},
	}

	model, err := FitGaussian(samples)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, model.Negative.Mean, 1e-12)
	// Sample convention divides by N-1: ((2-3)^2+(4-3)^2)/1 = 2.
	assert.InDelta(t, math.Sqrt(2), model.Negative.StdDev, 1e-12)
	assert.InDelta(t, 12.0, model.Positive.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(8), model.Positive.StdDev, 1e-12)

	assert.Equal(t, 2, model.Negative.Count)
	assert.Equal(t, 2, model.Positive.Count)
	assert.InDelta(t, 0.5, model.Negative.Prior, 1e-12)
	assert.InDelta(t, 0.5, model.Positive.Prior, 1e-12)
}

func TestFitGaussian_PriorsFollowClassFrequency(t *testing.T) {
	samples := SampleSet{
		{Feature: 1, Label: LabelNegative},
		{Feature: 2, Label: LabelNegative},
		{Feature: 3, Label: LabelNegative},
		{Feature: 9, Label: LabelPositive},
	}

	model, err := FitGaussian(samples)
	require.NoError(t, err)

	assert.InDelta(t, 0.75, model.Negative.Prior, 1e-12)
	assert.InDelta(t, 0.25, model.Positive.Prior, 1e-12)
}

func TestGaussianPredict_SeparatedClasses(t *testing.T) {
	samples := SampleSet{
		{Feature: 62, Label: LabelNegative},
		{Feature: 64, Label: LabelNegative},
		{Feature: 66, Label: LabelNegative},
		{Feature: 68, Label: LabelPositive},
		{Feature: 70, Label: LabelPositive},
		{Feature: 72, Label: LabelPositive},
	}

	model, err := FitGaussian(samples)
	require.NoError(t, err)

	assert.Equal(t, LabelNegative, model.Predict(63))
	assert.Equal(t, LabelPositive, model.Predict(71))
}

func TestGaussianPredict_PosteriorTieGoesToZero(t *testing.T) {
	// Mirror-image classes make both posteriors exactly equal at x=0.
	samples := SampleSet{
		{Feature: -3, Label: LabelNegative},
		{Feature: -1, Label: LabelNegative},
		{Feature: 1, Label: LabelPositive},
		{Feature: 3, Label: LabelPositive},
	}

	model, err := FitGaussian(samples)
	require.NoError(t, err)

	assert.Equal(t, LabelNegative, model.Predict(0))
}

func TestGaussianPredict_DegenerateClass(t *testing.T) {
	// Every negative sample is identical, so the class variance is zero
	// and its density must act as an exact-match indicator.
	samples := SampleSet{
		{Feature: 5, Label: LabelNegative},
		{Feature: 5, Label: LabelNegative},
		{Feature: 1, Label: LabelPositive},
		{Feature: 2, Label: LabelPositive},
		{Feature: 3, Label: LabelPositive},
	}

	model, err := FitGaussian(samples)
	require.NoError(t, err)
	assert.Equal(t, 0.0, model.Negative.StdDev)

	assert.Equal(t, LabelNegative, model.Predict(5))
	assert.Equal(t, LabelPositive, model.Predict(2))
	// Off the spike the negative density vanishes entirely.
	assert.Equal(t, LabelPositive, model.Predict(4.999))
}

func TestGaussianPredict_MissingClassNeverWins(t *testing.T) {
	samples := SampleSet{
		{Feature: 1, Label: LabelNegative},
		{Feature: 2, Label: LabelNegative},
	}

	model, err := FitGaussian(samples)
	require.NoError(t, err)
	assert.Equal(t, 0.0, model.Positive.Prior)

	for _, x := range []float64{-100, 0, 1.5, 100} {
		assert.Equal(t, LabelNegative, model.Predict(x))
	}
}

func TestFitGaussian_InvalidInput(t *testing.T) {
	_, err := FitGaussian(SampleSet{})
	assert.ErrorIs(t, err, core.ErrEmptyTrainingSet)

	_, err = FitGaussian(SampleSet{{Feature: math.NaN(), Label: LabelPositive}})
	assert.ErrorIs(t, err, core.ErrNonFiniteFeature)
}
