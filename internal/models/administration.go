package models

import (
	"time"

	"gorm.io/datatypes"
)

type AdministrationStatus string

const (
	AdministrationCompleted AdministrationStatus = "completed"
	AdministrationPartial   AdministrationStatus = "partial"
)

type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportJSON ExportFormat = "json"
	ExportXLSX ExportFormat = "xlsx"
)

// AdministrationRecord is a stored run of the surveyor
type AdministrationRecord struct {
	ID          string               `json:"id" gorm:"primaryKey;size:36"`
	Label       string               `json:"label" gorm:"not null;size:200;index"`
	Scenario    string               `json:"scenario" gorm:"size:100;index"`
	Instruments datatypes.JSON       `json:"instruments" gorm:"type:jsonb"` // []string
	Roster      datatypes.JSON       `json:"roster" gorm:"type:jsonb"`      // []string
	Answers     datatypes.JSON       `json:"answers" gorm:"type:json"`      // AnswerSheet, key order kept
	Results     datatypes.JSON       `json:"results" gorm:"type:json"`      // ResultsTable
	Status      AdministrationStatus `json:"status" gorm:"not null;default:completed;index"`

	ItemCount     int `json:"item_count"`
	AnsweredCount int `json:"answered_count"`
	ParsedCount   int `json:"parsed_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AdministrationRecord) TableName() string {
	return "administrations"
}
