package services

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/SAP-F-2025/surveyor-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleResults() (*models.ResultsTable, *models.AnswerSheet) {
	table := models.NewResultsTable([]string{"GSE_Total_Sum", "GSE_Total_Mean"})
	table.AddRow("Alice", map[string]float64{"GSE_Total_Sum": 30, "GSE_Total_Mean": 3})
	table.AddRow("Bob", map[string]float64{"GSE_Total_Sum": models.NaN(), "GSE_Total_Mean": models.NaN()})

	three := 3.0
	alice := models.NewQuestionAnswers()
	alice.Set("GSE:0", models.RespondentAnswer{Dimension: "self_efficacy", RawText: "Moderately true", Value: &three, Ascending: true})
	bob := models.NewQuestionAnswers()
	bob.Set("GSE:0", models.RespondentAnswer{Dimension: "self_efficacy", RawText: "no idea", Ascending: true})

	sheet := models.NewAnswerSheet()
	sheet.Set("Alice", alice)
	sheet.Set("Bob", bob)
	return table, sheet
}

func TestExportService_CSV(t *testing.T) {
	table, sheet := sampleResults()
	data, err := NewExportService(testLogger()).Export(context.Background(), models.ExportCSV, table, sheet)
	require.NoError(t, err)
	assert.Equal(t, "respondent,GSE_Total_Sum,GSE_Total_Mean\nAlice,30,3\nBob,NaN,NaN\n", string(data))
}

func TestExportService_JSON(t *testing.T) {
	table, _ := sampleResults()
	data, err := NewExportService(testLogger()).Export(context.Background(), models.ExportJSON, table, nil)
	require.NoError(t, err)

	var doc struct {
		Schema models.TableSchema       `json:"schema"`
		Data   []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, []string{"respondent"}, doc.Schema.PrimaryKey)
	require.Len(t, doc.Data, 2)
	assert.Equal(t, "Bob", doc.Data[1]["respondent"])
	assert.Nil(t, doc.Data[1]["GSE_Total_Sum"])
	assert.Equal(t, 30.0, doc.Data[0]["GSE_Total_Sum"])
}

func TestExportService_Excel(t *testing.T) {
	table, sheet := sampleResults()
	data, err := NewExportService(testLogger()).Export(context.Background(), models.ExportXLSX, table, sheet)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{resultsSheet, answersSheet}, f.GetSheetList())

	rows, err := f.GetRows(resultsSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"respondent", "GSE_Total_Sum", "GSE_Total_Mean"},
		{"Alice", "30", "3"},
		{"Bob", "NaN", "NaN"},
	}, rows)

	answerRows, err := f.GetRows(answersSheet)
	require.NoError(t, err)
	require.Len(t, answerRows, 3)
	assert.Equal(t, "Moderately true", answerRows[1][3])
	assert.Equal(t, "no idea", answerRows[2][3])
}

func TestExportService_UnsupportedFormat(t *testing.T) {
	_, err := NewExportService(testLogger()).Export(context.Background(), "pdf", nil, nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.True(t, IsValidation(err))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv; charset=utf-8", ContentType(models.ExportCSV))
	assert.Equal(t, "application/octet-stream", ContentType("pdf"))
}
