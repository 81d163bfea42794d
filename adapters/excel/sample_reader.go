package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"classbench/domain/classify"
)

// SampleReader loads labeled samples from spreadsheet files. The first
// column is the feature value and the second the 0/1 label; an optional
// header row is skipped when its cells are not numeric.
type SampleReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewSampleReader creates a reader that handles both Excel and CSV files
func NewSampleReader(filePath string) *SampleReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &SampleReader{filePath: filePath, fileType: fileType}
}

// Read parses the file into a validated sample set.
func (r *SampleReader) Read() (classify.SampleSet, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, err
	}

	samples, err := parseSampleRows(rows)
	if err != nil {
		return nil, err
	}
	if err := samples.Validate(); err != nil {
		return nil, fmt.Errorf("invalid samples in %s: %w", r.filePath, err)
	}
	return samples, nil
}

func (r *SampleReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return rows, nil
}

func (r *SampleReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func parseSampleRows(rows [][]string) (classify.SampleSet, error) {
	samples := make(classify.SampleSet, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("row %d: expected feature and label columns, got %d cells", i+1, len(row))
		}

		feature, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			if i == 0 {
				// Header row
				continue
			}
			return nil, fmt.Errorf("row %d: invalid feature value %q", i+1, row[0])
		}

		labelValue, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid label value %q", i+1, row[1])
		}
		label, err := classify.ParseLabel(labelValue)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		samples = append(samples, classify.Sample{Feature: feature, Label: label})
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("file contains no data rows")
	}
	return samples, nil
}
