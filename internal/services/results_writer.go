package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/SAP-F-2025/surveyor-service/internal/models"
)

// NaNText is how a NaN cell is written to CSV and spreadsheets
const NaNText = "NaN"

// WriteAnswersJSON writes the answer sheet as indented UTF-8 JSON, keeping
// roster and observation order. Non-ASCII text is written unescaped.
func WriteAnswersJSON(w io.Writer, sheet *models.AnswerSheet) error {
	if sheet == nil {
		sheet = models.NewAnswerSheet()
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(sheet); err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}
	return nil
}

// ReadAnswersJSON is the inverse of WriteAnswersJSON
func ReadAnswersJSON(r io.Reader) (*models.AnswerSheet, error) {
	sheet := models.NewAnswerSheet()
	if err := json.NewDecoder(r).Decode(sheet); err != nil {
		return nil, fmt.Errorf("failed to decode answers: %w", err)
	}
	return sheet, nil
}

// WriteResultsCSV writes a header row and one row per respondent
func WriteResultsCSV(w io.Writer, table *models.ResultsTable) error {
	writer := csv.NewWriter(w)

	header := append([]string{models.RespondentColumn}, table.Columns...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range table.Rows {
		row := make([]string, 0, len(header))
		row = append(row, r.Respondent)
		for _, column := range table.Columns {
			row = append(row, formatScore(r.Value(column)))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("CSV writer error: %w", err)
	}
	return nil
}

// WriteResultsJSON writes the table with its column schema
func WriteResultsJSON(w io.Writer, table *models.ResultsTable) error {
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return fmt.Errorf("failed to indent results: %w", err)
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(w)
	return err
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeFile creates path and runs write against it. The file is closed on
// every path; a close error is reported when write succeeded.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return write(f)
}
