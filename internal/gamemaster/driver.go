package gamemaster

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SAP-F-2025/surveyor-service/internal/instruments"
	"github.com/SAP-F-2025/surveyor-service/internal/models"
)

const answerInstruction = "Answer with exactly one of the options above."

// Driver owns the administration state of a set of questionnaires over a
// roster. State is append-only until Reset.
type Driver struct {
	label          string
	questionnaires []instruments.Questionnaire
	byName         map[string]int
	roster         []string
	known          map[string]bool
	answers        *models.AnswerSheet
	logger         *slog.Logger
}

func NewDriver(label string, questionnaires []instruments.Questionnaire, roster []string, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Driver{
		label:          label,
		questionnaires: append([]instruments.Questionnaire(nil), questionnaires...),
		byName:         make(map[string]int, len(questionnaires)),
		roster:         append([]string(nil), roster...),
		known:          make(map[string]bool, len(roster)),
		logger:         logger.With("component", "gamemaster", "label", label),
	}
	for i, q := range d.questionnaires {
		d.byName[q.Name()] = i
	}
	for _, name := range d.roster {
		d.known[name] = true
	}
	d.Reset()
	return d
}

// Reset discards every observation
func (d *Driver) Reset() {
	d.answers = models.NewAnswerSheet()
	for _, name := range d.roster {
		d.answers.Set(name, models.NewQuestionAnswers())
	}
}

// ActionSpec returns the batch descriptor of every unobserved item for the
// respondents named in spec, ordered by instrument, then question, then
// respondent.
func (d *Driver) ActionSpec(spec ActionSpec) ([]byte, error) {
	respondents := d.roster
	if len(spec.Roster) > 0 {
		respondents = make([]string, 0, len(spec.Roster))
		for _, name := range spec.Roster {
			if d.known[name] {
				respondents = append(respondents, name)
			}
		}
	}

	batch := BatchDescriptor{Items: []BatchItem{}}
	for _, q := range d.questionnaires {
		info := q.Info()
		for i, question := range info.Questions {
			id := models.QuestionID(q.Name(), i)
			prompt := FormatPrompt(info, question)
			for _, name := range respondents {
				if d.isObserved(name, id) {
					continue
				}
				batch.Items = append(batch.Items, BatchItem{
					RespondentName: name,
					QuestionID:     id,
					ActionSpecStr:  prompt,
				})
			}
		}
	}

	payload, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode batch descriptor: %w", err)
	}
	return payload, nil
}

// Observe records an observation of the form produced by FormatObservation
func (d *Driver) Observe(observation string) error {
	obs, err := ParseObservation(observation)
	if err != nil {
		return err
	}
	if !d.known[obs.Respondent] {
		return fmt.Errorf("%w: %s", ErrUnknownRespondent, obs.Respondent)
	}

	q, question, err := d.lookup(obs.QuestionID)
	if err != nil {
		return err
	}
	if d.isObserved(obs.Respondent, obs.QuestionID) {
		return fmt.Errorf("%w: %s %s", ErrAlreadyObserved, obs.Respondent, obs.QuestionID)
	}

	dimension, value := q.ProcessAnswer(obs.Respondent, obs.Answer, question)
	if value == nil {
		d.logger.Debug("Answer did not match any choice",
			"respondent", obs.Respondent,
			"question_id", obs.QuestionID,
			"raw_text", obs.Answer)
	}

	sheet, _ := d.answers.Get(obs.Respondent)
	sheet.Set(obs.QuestionID, models.RespondentAnswer{
		Dimension: dimension,
		RawText:   obs.Answer,
		Value:     value,
		Ascending: question.Ascending,
	})
	return nil
}

// Answers exposes the per-respondent answers. Callers must not modify it.
func (d *Driver) Answers() *models.AnswerSheet {
	return d.answers
}

// Results aggregates the current answers. Columns are the statistics of every
// questionnaire in order; rows follow the roster.
func (d *Driver) Results() *models.ResultsTable {
	var columns []string
	for _, q := range d.questionnaires {
		columns = append(columns, q.Statistics()...)
	}

	table := models.NewResultsTable(columns)
	for _, name := range d.roster {
		sheet, _ := d.answers.Get(name)
		scores := make(map[string]float64, len(columns))
		for _, q := range d.questionnaires {
			var answers []models.RespondentAnswer
			for i := range q.Questions() {
				if answer, ok := sheet.Get(models.QuestionID(q.Name(), i)); ok {
					answers = append(answers, answer)
				}
			}
			for stat, value := range q.AggregateResults(answers) {
				scores[stat] = value
			}
		}
		table.AddRow(name, scores)
	}
	return table
}

// ItemCount is the number of (respondent, question) pairs of a full run
func (d *Driver) ItemCount() int {
	total := 0
	for _, q := range d.questionnaires {
		total += len(q.Questions())
	}
	return total * len(d.roster)
}

func (d *Driver) lookup(questionID string) (instruments.Questionnaire, models.Question, error) {
	name, index, err := models.ParseQuestionID(questionID)
	if err != nil {
		return nil, models.Question{}, fmt.Errorf("%w: %v", ErrUnknownQuestion, err)
	}
	pos, ok := d.byName[name]
	if !ok {
		return nil, models.Question{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	q := d.questionnaires[pos]
	questions := q.Questions()
	if index >= len(questions) {
		return nil, models.Question{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	return q, questions[index], nil
}

func (d *Driver) isObserved(respondent, questionID string) bool {
	sheet, ok := d.answers.Get(respondent)
	if !ok {
		return false
	}
	_, observed := sheet.Get(questionID)
	return observed
}

// FormatPrompt renders the item text shown to a respondent
func FormatPrompt(info models.InstrumentInfo, question models.Question) string {
	var lines []string
	if p := strings.TrimSpace(info.Preprompt); p != "" {
		lines = append(lines, p)
	}
	if p := strings.TrimSpace(question.Preprompt); p != "" {
		lines = append(lines, p)
	}
	lines = append(lines, "Statement: "+question.Statement, "Options:")
	for i, label := range question.Choices {
		lines = append(lines, fmt.Sprintf("(%d) %s", i+1, label))
	}
	lines = append(lines, answerInstruction)
	return strings.Join(lines, "\n")
}
