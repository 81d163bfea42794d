package classify

import (
	"math"
	"sort"
)

// ThresholdModel is a discriminative classifier predicting the positive
// class exactly when the feature exceeds the fitted threshold. A query
// equal to the threshold itself falls on the negative side. Immutable
// once fitted.
type ThresholdModel struct {
	Threshold      float64
	TrainingErrors int
	TrainingSize   int
}

// Predict classifies a single feature value.
func (m ThresholdModel) Predict(x float64) Label {
	if x > m.Threshold {
		return LabelPositive
	}
	return LabelNegative
}

// FitThreshold finds the threshold minimizing 0/1 training error by
// scanning every split position of the sorted sample sequence. Split k
// classifies the k smallest samples as negative and the rest as
// positive, so its error is the positives in the prefix plus the
// negatives in the suffix; both come from one cumulative pass.
//
// Splits landing inside a run of equal feature values are skipped: no
// threshold can separate such a run, so their counted error would be
// unachievable by the returned model.
//
// Ties between equally good splits resolve toward the smallest split,
// and the degenerate splits (everything positive, everything negative)
// yield -Inf / +Inf thresholds rather than indexing past the slice.
// The result depends only on the multiset of samples, not their order.
func FitThreshold(samples SampleSet) (ThresholdModel, error) {
	if err := samples.Validate(); err != nil {
		return ThresholdModel{}, err
	}

	sorted := make(SampleSet, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Feature < sorted[j].Feature
	})

	n := len(sorted)
	totalNegatives := sorted.CountLabel(LabelNegative)

	// Split 0 classifies everything positive: every negative is wrong.
	bestSplit := 0
	bestErrors := totalNegatives

	prefixPositives := 0
	prefixNegatives := 0
	for k := 1; k <= n; k++ {
		if sorted[k-1].Label == LabelPositive {
			prefixPositives++
		} else {
			prefixNegatives++
		}
		if k < n && sorted[k].Feature == sorted[k-1].Feature {
			continue
		}
		errs := prefixPositives + (totalNegatives - prefixNegatives)
		if errs < bestErrors {
			bestErrors = errs
			bestSplit = k
		}
	}

	model := ThresholdModel{
		TrainingErrors: bestErrors,
		TrainingSize:   n,
	}
	switch bestSplit {
	case 0:
		model.Threshold = math.Inf(-1)
	case n:
		model.Threshold = math.Inf(1)
	default:
		model.Threshold = (sorted[bestSplit-1].Feature + sorted[bestSplit].Feature) / 2
	}
	return model, nil
}
