package excel

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"classbench/domain/classify"
	"classbench/internal/simulate"
	"classbench/models"
)

func TestReportWriter_Write(t *testing.T) {
	experiment := &models.Experiment{
		ID:        uuid.New(),
		Seed:      42,
		TrainSize: 1000,
		TestSize:  1000,
		Mixture:   simulate.DefaultConfig(),
		Threshold: models.ThresholdResult{
			Model:       classify.ThresholdModel{Threshold: 67.1, TrainingErrors: 150, TrainingSize: 1000},
			ModelResult: models.ModelResult{TestAccuracy: 0.85},
		},
		Gaussian: models.GaussianResult{
			Model: classify.GaussianModel{
				Negative: classify.ClassStats{Mean: 64.0, StdDev: 3.0, Prior: 0.5, Count: 500},
				Positive: classify.ClassStats{Mean: 70.0, StdDev: 3.0, Prior: 0.5, Count: 500},
			},
			ModelResult: models.ModelResult{TestAccuracy: 0.87},
		},
		CreatedAt: time.Now(),
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, NewReportWriter().Write(path, []*models.Experiment{experiment}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "experiment_id", rows[0][0])
	assert.Equal(t, experiment.ID.String(), rows[1][0])
	assert.Equal(t, "gaussian", rows[1][len(reportHeaders)-1])
}

func TestReportWriter_InfiniteThreshold(t *testing.T) {
	experiment := &models.Experiment{
		ID:      uuid.New(),
		Mixture: simulate.DefaultConfig(),
		Threshold: models.ThresholdResult{
			Model: classify.ThresholdModel{Threshold: math.Inf(1), TrainingSize: 10},
		},
		CreatedAt: time.Now(),
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, NewReportWriter().Write(path, []*models.Experiment{experiment}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(f.GetSheetName(0), "F2")
	require.NoError(t, err)
	assert.Equal(t, "+Inf", value)
}
