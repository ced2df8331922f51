package models

import (
	"fmt"
	"strconv"
	"strings"
)

type InstrumentKind string

const (
	KindMultipleChoice InstrumentKind = "multiple_choice"
)

// Question is a single item of an instrument
type Question struct {
	Statement string      `json:"statement" validate:"required"`
	Dimension string      `json:"dimension" validate:"required"`
	Preprompt string      `json:"preprompt,omitempty"`
	Choices   ChoiceScale `json:"choices" validate:"required,min=1,unique,dive,required"`
	Ascending bool        `json:"ascending"`
}

// InstrumentInfo is the static description of a questionnaire
type InstrumentInfo struct {
	Name                 string         `json:"name" validate:"required,max=100,no_separator"`
	Description          string         `json:"description"`
	Kind                 InstrumentKind `json:"kind" validate:"required,instrument_kind"`
	ObservationPreprompt string         `json:"observation_preprompt,omitempty"`
	Preprompt            string         `json:"preprompt,omitempty"`
	Questions            []Question     `json:"questions" validate:"required,min=1,dive"`
	Dimensions           []string       `json:"dimensions" validate:"required,min=1,unique,dive,required"`
	Statistics           []string       `json:"statistics"`
}

// HasDimension reports whether dimension is declared by the instrument
func (i InstrumentInfo) HasDimension(dimension string) bool {
	for _, d := range i.Dimensions {
		if d == dimension {
			return true
		}
	}
	return false
}

// QuestionID composes the identifier of the index-th question of an instrument
func QuestionID(instrument string, index int) string {
	return fmt.Sprintf("%s:%d", instrument, index)
}

// ParseQuestionID splits an identifier produced by QuestionID
func ParseQuestionID(id string) (string, int, error) {
	sep := strings.LastIndex(id, ":")
	if sep <= 0 || sep == len(id)-1 {
		return "", 0, fmt.Errorf("malformed question id %q", id)
	}
	index, err := strconv.Atoi(id[sep+1:])
	if err != nil || index < 0 {
		return "", 0, fmt.Errorf("malformed question index in %q", id)
	}
	return id[:sep], index, nil
}
