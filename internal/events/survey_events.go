package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType represents different types of survey lifecycle events
type EventType string

const (
	EventAdministrationCompleted EventType = "survey.administration_completed"
	EventResultsSaved            EventType = "survey.results_saved"
)

const (
	eventSource  = "surveyor-service"
	eventVersion = "1.0"
)

// SurveyEvent is the envelope of every published event
type SurveyEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type AdministrationCompletedEvent struct {
	AdministrationID string    `json:"administration_id"`
	Label            string    `json:"label"`
	Scenario         string    `json:"scenario,omitempty"`
	Instruments      []string  `json:"instruments"`
	Respondents      int       `json:"respondents"`
	ItemCount        int       `json:"item_count"`
	ParsedCount      int       `json:"parsed_count"`
	CompletedAt      time.Time `json:"completed_at"`
}

type ResultsSavedEvent struct {
	Label     string   `json:"label"`
	Directory string   `json:"directory"`
	Files     []string `json:"files"`
}

// Event factory functions

func NewAdministrationCompletedEvent(data AdministrationCompletedEvent) *SurveyEvent {
	return newEvent(EventAdministrationCompleted, data)
}

func NewResultsSavedEvent(label, directory string, files []string) *SurveyEvent {
	return newEvent(EventResultsSaved, ResultsSavedEvent{
		Label:     label,
		Directory: directory,
		Files:     files,
	})
}

func newEvent(eventType EventType, data interface{}) *SurveyEvent {
	return &SurveyEvent{
		ID:        GenerateEventID(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}

// GenerateEventID returns a random event identifier
func GenerateEventID() string {
	return uuid.NewString()
}

// ErrUnexpectedEventType is returned when a payload carries another event type
var ErrUnexpectedEventType = errors.New("unexpected event type")

// DecodeAdministrationCompleted reads the payload of a published
// administration_completed event
func DecodeAdministrationCompleted(payload []byte) (AdministrationCompletedEvent, error) {
	var envelope struct {
		Type EventType                    `json:"type"`
		Data AdministrationCompletedEvent `json:"data"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return AdministrationCompletedEvent{}, fmt.Errorf("failed to decode survey event: %w", err)
	}
	if envelope.Type != EventAdministrationCompleted {
		return AdministrationCompletedEvent{}, fmt.Errorf("%w: %s", ErrUnexpectedEventType, envelope.Type)
	}
	return envelope.Data, nil
}
