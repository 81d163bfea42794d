package excel

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"classbench/models"
)

// ReportWriter exports experiment results as an Excel workbook with one
// summary row per experiment.
type ReportWriter struct{}

// NewReportWriter creates a new report writer
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

var reportHeaders = []string{
	"experiment_id", "created_at", "seed", "train_size", "test_size",
	"threshold", "threshold_train_errors", "threshold_test_accuracy",
	"gaussian_neg_mean", "gaussian_neg_std", "gaussian_pos_mean", "gaussian_pos_std",
	"gaussian_test_accuracy", "winner",
}

// Write produces the workbook at path.
func (w *ReportWriter) Write(path string, experiments []*models.Experiment) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for rowIdx, experiment := range experiments {
		values := []interface{}{
			experiment.ID.String(),
			experiment.CreatedAt.Format("2006-01-02 15:04:05"),
			experiment.Seed,
			experiment.TrainSize,
			experiment.TestSize,
			formatThreshold(experiment.Threshold.Model.Threshold),
			experiment.Threshold.Model.TrainingErrors,
			experiment.Threshold.TestAccuracy,
			experiment.Gaussian.Model.Negative.Mean,
			experiment.Gaussian.Model.Negative.StdDev,
			experiment.Gaussian.Model.Positive.Mean,
			experiment.Gaussian.Model.Positive.StdDev,
			experiment.Gaussian.TestAccuracy,
			experiment.Winner(),
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report workbook: %w", err)
	}
	return nil
}

// formatThreshold keeps infinite thresholds readable in the sheet;
// excelize cannot store ±Inf as a number.
func formatThreshold(threshold float64) interface{} {
	if math.IsInf(threshold, -1) {
		return "-Inf"
	}
	if math.IsInf(threshold, 1) {
		return "+Inf"
	}
	return threshold
}
