package classify

import (
	"encoding/json"
	"fmt"
	"math"
)

// Degenerate fits carry infinite thresholds, which encoding/json cannot
// represent as numbers. Infinities round-trip as the strings "-Inf" and
// "+Inf"; finite thresholds stay plain numbers.

type thresholdModelJSON struct {
	Threshold      json.RawMessage `json:"threshold"`
	TrainingErrors int             `json:"training_errors"`
	TrainingSize   int             `json:"training_size"`
}

func (m ThresholdModel) MarshalJSON() ([]byte, error) {
	var threshold json.RawMessage
	switch {
	case math.IsInf(m.Threshold, -1):
		threshold = json.RawMessage(`"-Inf"`)
	case math.IsInf(m.Threshold, 1):
		threshold = json.RawMessage(`"+Inf"`)
	default:
		encoded, err := json.Marshal(m.Threshold)
		if err != nil {
			return nil, err
		}
		threshold = encoded
	}
	return json.Marshal(thresholdModelJSON{
		Threshold:      threshold,
		TrainingErrors: m.TrainingErrors,
		TrainingSize:   m.TrainingSize,
	})
}

func (m *ThresholdModel) UnmarshalJSON(data []byte) error {
	var raw thresholdModelJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	m.TrainingErrors = raw.TrainingErrors
	m.TrainingSize = raw.TrainingSize

	switch string(raw.Threshold) {
	case `"-Inf"`:
		m.Threshold = math.Inf(-1)
		return nil
	case `"+Inf"`:
		m.Threshold = math.Inf(1)
		return nil
	}

	if err := json.Unmarshal(raw.Threshold, &m.Threshold); err != nil {
		return fmt.Errorf("invalid threshold value %s: %w", raw.Threshold, err)
	}
	return nil
}
