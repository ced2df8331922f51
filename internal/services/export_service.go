package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/SAP-F-2025/surveyor-service/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	resultsSheet = "Results"
	answersSheet = "Answers"
)

// ExportService renders administration results in downloadable formats
type ExportService interface {
	Export(ctx context.Context, format models.ExportFormat, results *models.ResultsTable, answers *models.AnswerSheet) ([]byte, error)
	ResultsToCSV(results *models.ResultsTable) ([]byte, error)
	ResultsToJSON(results *models.ResultsTable) ([]byte, error)
	ResultsToExcel(results *models.ResultsTable, answers *models.AnswerSheet) ([]byte, error)
}

type exportService struct {
	logger *slog.Logger
}

func NewExportService(logger *slog.Logger) ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &exportService{logger: logger}
}

// ContentType returns the MIME type of an export format
func ContentType(format models.ExportFormat) string {
	switch format {
	case models.ExportCSV:
		return "text/csv; charset=utf-8"
	case models.ExportJSON:
		return "application/json"
	case models.ExportXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

func (s *exportService) Export(ctx context.Context, format models.ExportFormat, results *models.ResultsTable, answers *models.AnswerSheet) ([]byte, error) {
	if results == nil {
		results = models.NewResultsTable(nil)
	}

	s.logger.DebugContext(ctx, "Exporting results", "format", format, "rows", results.Len())

	switch format {
	case models.ExportCSV:
		return s.ResultsToCSV(results)
	case models.ExportJSON:
		return s.ResultsToJSON(results)
	case models.ExportXLSX:
		return s.ResultsToExcel(results, answers)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func (s *exportService) ResultsToCSV(results *models.ResultsTable) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteResultsCSV(&buf, results); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *exportService) ResultsToJSON(results *models.ResultsTable) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteResultsJSON(&buf, results); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ResultsToExcel writes a Results sheet and, when answers are given, an
// Answers sheet with one row per recorded answer.
func (s *exportService) ResultsToExcel(results *models.ResultsTable, answers *models.AnswerSheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet rather than leaving an empty "Sheet1"
	if err := f.SetSheetName(f.GetSheetName(0), resultsSheet); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	headers := append([]string{models.RespondentColumn}, results.Columns...)
	if err := writeRow(f, resultsSheet, 1, toCells(headers)); err != nil {
		return nil, err
	}

	for i, r := range results.Rows {
		row := []interface{}{r.Respondent}
		for _, column := range results.Columns {
			row = append(row, excelScore(r.Value(column)))
		}
		if err := writeRow(f, resultsSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if answers != nil {
		if _, err := f.NewSheet(answersSheet); err != nil {
			return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
		}
		header := []interface{}{"respondent", "question_id", "dimension", "raw_text", "value", "ascending"}
		if err := writeRow(f, answersSheet, 1, header); err != nil {
			return nil, err
		}

		rowIndex := 2
		for respondent := answers.Oldest(); respondent != nil; respondent = respondent.Next() {
			if respondent.Value == nil {
				continue
			}
			for item := respondent.Value.Oldest(); item != nil; item = item.Next() {
				var value interface{} = ""
				if item.Value.Value != nil {
					value = *item.Value.Value
				}
				row := []interface{}{
					respondent.Key,
					item.Key,
					item.Value.Dimension,
					item.Value.RawText,
					value,
					item.Value.Ascending,
				}
				if err := writeRow(f, answersSheet, rowIndex, row); err != nil {
					return nil, err
				}
				rowIndex++
			}
		}
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

func excelScore(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NaNText
	}
	return v
}
