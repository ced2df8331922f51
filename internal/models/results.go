package models

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// RespondentColumn names the index column of a results table
const RespondentColumn = "respondent"

// NaN is the sentinel stored for statistics that have no parseable inputs
func NaN() float64 {
	return math.NaN()
}

// ResultsRow holds the statistics of a single respondent
type ResultsRow struct {
	Respondent string
	Scores     map[string]float64
}

// Value returns the cell for column, NaN when absent
func (r ResultsRow) Value(column string) float64 {
	if v, ok := r.Scores[column]; ok {
		return v
	}
	return NaN()
}

// ResultsTable has one row per respondent and one column per statistic.
// Missing cells read as NaN.
type ResultsTable struct {
	Columns []string
	Rows    []ResultsRow
}

func NewResultsTable(columns []string) *ResultsTable {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &ResultsTable{Columns: cols}
}

// AddRow appends a row. Scores for unknown columns are added as new columns.
func (t *ResultsTable) AddRow(respondent string, scores map[string]float64) {
	row := ResultsRow{Respondent: respondent, Scores: make(map[string]float64, len(scores))}
	for name, value := range scores {
		row.Scores[name] = value
	}
	var added []string
	for name := range scores {
		if !t.hasColumn(name) {
			added = append(added, name)
		}
	}
	sort.Strings(added)
	t.Columns = append(t.Columns, added...)
	t.Rows = append(t.Rows, row)
}

// Value returns the cell for respondent and column, NaN when absent
func (t *ResultsTable) Value(respondent, column string) float64 {
	for _, row := range t.Rows {
		if row.Respondent == respondent {
			return row.Value(column)
		}
	}
	return NaN()
}

// Respondents returns the row index in order
func (t *ResultsTable) Respondents() []string {
	names := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		names = append(names, row.Respondent)
	}
	return names
}

func (t *ResultsTable) Len() int {
	return len(t.Rows)
}

func (t *ResultsTable) hasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ===== TABLE SCHEMA JSON =====

type SchemaField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type TableSchema struct {
	Fields     []SchemaField `json:"fields"`
	PrimaryKey []string      `json:"primaryKey"`
}

type tableDocument struct {
	Schema TableSchema                                      `json:"schema"`
	Data   []*orderedmap.OrderedMap[string, json.RawMessage] `json:"data"`
}

// Schema describes the columns of the table
func (t *ResultsTable) Schema() TableSchema {
	fields := []SchemaField{{Name: RespondentColumn, Type: "string"}}
	for _, c := range t.Columns {
		fields = append(fields, SchemaField{Name: c, Type: "number"})
	}
	return TableSchema{Fields: fields, PrimaryKey: []string{RespondentColumn}}
}

// MarshalJSON writes the table as a schema plus rows. NaN cells become null.
func (t *ResultsTable) MarshalJSON() ([]byte, error) {
	doc := tableDocument{
		Schema: t.Schema(),
		Data:   make([]*orderedmap.OrderedMap[string, json.RawMessage], 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		record := orderedmap.New[string, json.RawMessage]()
		name, err := json.Marshal(row.Respondent)
		if err != nil {
			return nil, err
		}
		record.Set(RespondentColumn, name)
		for _, column := range t.Columns {
			record.Set(column, encodeCell(row.Value(column)))
		}
		doc.Data = append(doc.Data, record)
	}
	return json.Marshal(doc)
}

func (t *ResultsTable) UnmarshalJSON(data []byte) error {
	var doc tableDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	columns := make([]string, 0, len(doc.Schema.Fields))
	for _, field := range doc.Schema.Fields {
		if field.Name == RespondentColumn {
			continue
		}
		columns = append(columns, field.Name)
	}

	t.Columns = columns
	t.Rows = nil
	for i, record := range doc.Data {
		raw, ok := record.Get(RespondentColumn)
		if !ok {
			return fmt.Errorf("results row %d has no %s", i, RespondentColumn)
		}
		var respondent string
		if err := json.Unmarshal(raw, &respondent); err != nil {
			return fmt.Errorf("results row %d: %w", i, err)
		}
		scores := make(map[string]float64, len(columns))
		for _, column := range columns {
			cell, ok := record.Get(column)
			if !ok {
				scores[column] = NaN()
				continue
			}
			var v *float64
			if err := json.Unmarshal(cell, &v); err != nil {
				return fmt.Errorf("results row %d column %s: %w", i, column, err)
			}
			if v == nil {
				scores[column] = NaN()
			} else {
				scores[column] = *v
			}
		}
		t.Rows = append(t.Rows, ResultsRow{Respondent: respondent, Scores: scores})
	}
	return nil
}

func encodeCell(v float64) json.RawMessage {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.RawMessage("null")
	}
	b, _ := json.Marshal(v)
	return b
}
