package models

// SurveyDefinition is the configuration a Surveyor is built from
type SurveyDefinition struct {
	Label       string           `json:"label" validate:"required,max=200"`
	Instruments []InstrumentInfo `json:"instruments" validate:"required,min=1,dive"`
	Roster      []string         `json:"roster" validate:"required,min=1,unique,dive,required,no_separator"`
}

// AdministrationRequest asks for a scripted administration. Answers are
// consumed per respondent in item order; FallbackAnswer is used once a
// respondent's script runs out.
type AdministrationRequest struct {
	Label          string              `json:"label" validate:"required,max=200"`
	Instruments    []string            `json:"instruments" validate:"required,min=1,unique,dive,required"`
	Roster         []string            `json:"roster" validate:"omitempty,unique,dive,required,no_separator"`
	Scenario       string              `json:"scenario,omitempty" validate:"omitempty,max=100"`
	Answers        map[string][]string `json:"answers,omitempty"`
	FallbackAnswer string              `json:"fallback_answer,omitempty"`
}

// ScoreRequest carries one answer per question, in question order
type ScoreRequest struct {
	Answers []string `json:"answers" validate:"required,min=1"`
}

type ScoredItem struct {
	QuestionID string   `json:"question_id"`
	Answer     string   `json:"answer"`
	Dimension  string   `json:"dimension"`
	Value      *float64 `json:"value"`
}

type ScoreResponse struct {
	Instrument string              `json:"instrument"`
	Items      []ScoredItem        `json:"items"`
	Statistics map[string]*float64 `json:"statistics"`
}

type ExportRequest struct {
	AdministrationID string `json:"administration_id" validate:"required,uuid"`
	Format           string `json:"format" validate:"required,export_format"`
}
