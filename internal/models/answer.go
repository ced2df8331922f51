package models

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// RespondentAnswer is one observed answer. Value is nil when the raw text
// could not be mapped onto the question's choices.
type RespondentAnswer struct {
	Dimension string   `json:"dimension"`
	RawText   string   `json:"raw_text"`
	Value     *float64 `json:"value"`
	Ascending bool     `json:"ascending"`
}

func (a RespondentAnswer) HasValue() bool {
	return a.Value != nil
}

// QuestionAnswers maps question id to answer in observation order
type QuestionAnswers = orderedmap.OrderedMap[string, RespondentAnswer]

// AnswerSheet maps respondent name to that respondent's answers in roster order
type AnswerSheet = orderedmap.OrderedMap[string, *QuestionAnswers]

func NewAnswerSheet() *AnswerSheet {
	return orderedmap.New[string, *QuestionAnswers]()
}

func NewQuestionAnswers() *QuestionAnswers {
	return orderedmap.New[string, RespondentAnswer]()
}

// CountAnswers returns the number of recorded answers and how many of them
// carry a value.
func CountAnswers(sheet *AnswerSheet) (answered, parsed int) {
	if sheet == nil {
		return 0, 0
	}
	for pair := sheet.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			continue
		}
		for answer := pair.Value.Oldest(); answer != nil; answer = answer.Next() {
			answered++
			if answer.Value.HasValue() {
				parsed++
			}
		}
	}
	return answered, parsed
}
