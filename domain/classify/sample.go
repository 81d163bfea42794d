package classify

import (
	"math"

	"classbench/domain/core"
)

// Label is a binary class label.
type Label int

const (
	LabelNegative Label = 0
	LabelPositive Label = 1
)

// ParseLabel converts a numeric cell value into a Label.
func ParseLabel(v float64) (Label, error) {
	switch v {
	case 0:
		return LabelNegative, nil
	case 1:
		return LabelPositive, nil
	default:
		return 0, core.ErrInvalidLabel
	}
}

// Sample pairs a scalar feature with its observed class.
type Sample struct {
	Feature float64 `json:"feature"`
	Label   Label   `json:"label"`
}

// SampleSet is a finite collection of labeled samples.
type SampleSet []Sample

// Validate rejects empty sets and non-finite feature values so that
// fitted models never compare against NaN or infinity.
func (s SampleSet) Validate() error {
	if len(s) == 0 {
		return core.ErrEmptyTrainingSet
	}
	for i, sample := range s {
		if math.IsNaN(sample.Feature) || math.IsInf(sample.Feature, 0) {
			return core.NewNonFiniteFeatureError(i, sample.Feature)
		}
		if sample.Label != LabelNegative && sample.Label != LabelPositive {
			return core.ErrInvalidLabel
		}
	}
	return nil
}

// SplitByLabel groups feature values per class.
func (s SampleSet) SplitByLabel() (negatives, positives []float64) {
	for _, sample := range s {
		if sample.Label == LabelPositive {
			positives = append(positives, sample.Feature)
		} else {
			negatives = append(negatives, sample.Feature)
		}
	}
	return negatives, positives
}

// CountLabel returns how many samples carry the given label.
func (s SampleSet) CountLabel(label Label) int {
	count := 0
	for _, sample := range s {
		if sample.Label == label {
			count++
		}
	}
	return count
}
