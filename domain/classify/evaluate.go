package classify

import (
	"classbench/domain/core"
)

// Classifier is anything that maps a scalar feature to a class.
type Classifier interface {
	Predict(x float64) Label
}

// Confusion breaks prediction outcomes down by truth and prediction.
type Confusion struct {
	TruePositives  int `json:"true_positives"`
	TrueNegatives  int `json:"true_negatives"`
	FalsePositives int `json:"false_positives"`
	FalseNegatives int `json:"false_negatives"`
}

// Errors returns the total misclassification count.
func (c Confusion) Errors() int {
	return c.FalsePositives + c.FalseNegatives
}

// Evaluation summarizes classifier performance on a labeled set.
type Evaluation struct {
	Accuracy  float64   `json:"accuracy"`
	Confusion Confusion `json:"confusion"`
	Size      int       `json:"size"`
}

// Evaluate scores a classifier against every sample in the set.
func Evaluate(model Classifier, samples SampleSet) (Evaluation, error) {
	if len(samples) == 0 {
		return Evaluation{}, core.ErrEmptyEvaluationSet
	}
	if err := samples.Validate(); err != nil {
		return Evaluation{}, err
	}

	var confusion Confusion
	for _, sample := range samples {
		predicted := model.Predict(sample.Feature)
		switch {
		case predicted == LabelPositive && sample.Label == LabelPositive:
			confusion.TruePositives++
		case predicted == LabelNegative && sample.Label == LabelNegative:
			confusion.TrueNegatives++
		case predicted == LabelPositive && sample.Label == LabelNegative:
			confusion.FalsePositives++
		default:
			confusion.FalseNegatives++
		}
	}

	correct := confusion.TruePositives + confusion.TrueNegatives
	return Evaluation{
		Accuracy:  float64(correct) / float64(len(samples)),
		Confusion: confusion,
		Size:      len(samples),
	}, nil
}
