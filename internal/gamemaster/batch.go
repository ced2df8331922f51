package gamemaster

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// PutativeEventTag prefixes every observation fed back to the driver
const PutativeEventTag = "[putative_event]"

var (
	ErrMalformedObservation = errors.New("malformed observation")
	ErrUnknownRespondent    = errors.New("unknown respondent")
	ErrUnknownQuestion      = errors.New("unknown question")
	ErrAlreadyObserved      = errors.New("item already observed")
)

// ActionSpec asks the driver for the pending items of the named respondents
type ActionSpec struct {
	CallToAction string   `json:"call_to_action"`
	Roster       []string `json:"roster"`
}

// BatchItem is one pending (respondent, question) pair
type BatchItem struct {
	RespondentName string `json:"respondent_name"`
	QuestionID     string `json:"question_id"`
	ActionSpecStr  string `json:"action_spec_str"`
}

// BatchDescriptor enumerates the pending items of an administration
type BatchDescriptor struct {
	Items []BatchItem `json:"items"`
}

// ParseBatchDescriptor decodes the payload produced by Driver.ActionSpec
func ParseBatchDescriptor(payload []byte) (*BatchDescriptor, error) {
	var batch BatchDescriptor
	if err := json.Unmarshal(payload, &batch); err != nil {
		return nil, fmt.Errorf("failed to decode batch descriptor: %w", err)
	}
	return &batch, nil
}

// Observation is a respondent's answer to one item
type Observation struct {
	Respondent string
	QuestionID string
	Answer     string
}

// String renders the observation in the wire form accepted by Driver.Observe
func (o Observation) String() string {
	return fmt.Sprintf("%s %s: %s: %s", PutativeEventTag, o.Respondent, o.QuestionID, o.Answer)
}

// FormatObservation is shorthand for Observation{...}.String()
func FormatObservation(respondent, questionID, answer string) string {
	return Observation{Respondent: respondent, QuestionID: questionID, Answer: answer}.String()
}

// ParseObservation splits "[putative_event] respondent: question_id: answer".
// The answer keeps everything after the second separator.
func ParseObservation(observation string) (Observation, error) {
	rest, ok := strings.CutPrefix(observation, PutativeEventTag)
	if !ok {
		return Observation{}, fmt.Errorf("%w: missing %s tag", ErrMalformedObservation, PutativeEventTag)
	}
	rest = strings.TrimPrefix(rest, " ")

	parts := strings.SplitN(rest, ": ", 3)
	if len(parts) != 3 {
		return Observation{}, fmt.Errorf("%w: expected respondent, question and answer", ErrMalformedObservation)
	}
	if parts[0] == "" || parts[1] == "" {
		return Observation{}, fmt.Errorf("%w: empty respondent or question", ErrMalformedObservation)
	}
	return Observation{Respondent: parts[0], QuestionID: parts[1], Answer: parts[2]}, nil
}
