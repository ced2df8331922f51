package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/SAP-F-2025/surveyor-service/internal/gamemaster"
	"github.com/SAP-F-2025/surveyor-service/internal/instruments"
	"github.com/SAP-F-2025/surveyor-service/internal/models"
	"github.com/SAP-F-2025/surveyor-service/internal/responders"
	"github.com/SAP-F-2025/surveyor-service/internal/validator"
)

const callToAction = "Answer the following questionnaire item."

type outputFile struct {
	name  string
	write func(io.Writer) error
}

// Driver is the administration state the Surveyor drives. gamemaster.Driver
// is the standard implementation.
type Driver interface {
	ActionSpec(spec gamemaster.ActionSpec) ([]byte, error)
	Observe(observation string) error
	Answers() *models.AnswerSheet
	Results() *models.ResultsTable
	Reset()
}

type SurveyorConfig struct {
	Label          string
	Questionnaires []instruments.Questionnaire
	Roster         []string
	Validator      *validator.Validator
	Logger         *slog.Logger
}

// Surveyor administers a fixed set of questionnaires to a fixed roster. It is
// not safe for concurrent use.
type Surveyor struct {
	label          string
	questionnaires []instruments.Questionnaire
	roster         []string
	driver         Driver
	logger         *slog.Logger
}

// NewSurveyor validates the configuration and builds a surveyor over a fresh
// gamemaster.Driver. Configuration errors wrap ErrInvalidConfiguration.
func NewSurveyor(cfg SurveyorConfig) (*Surveyor, error) {
	if err := validateSurvey(cfg); err != nil {
		return nil, invalidConfiguration(err)
	}
	logger := surveyorLogger(cfg)
	driver := gamemaster.NewDriver(cfg.Label, cfg.Questionnaires, cfg.Roster, logger)
	return newSurveyor(cfg, driver, logger), nil
}

// NewSurveyorWithDriver is NewSurveyor with a caller-supplied driver
func NewSurveyorWithDriver(cfg SurveyorConfig, driver Driver) (*Surveyor, error) {
	if driver == nil {
		return nil, invalidConfiguration(errors.New("driver is required"))
	}
	if err := validateSurvey(cfg); err != nil {
		return nil, invalidConfiguration(err)
	}
	return newSurveyor(cfg, driver, surveyorLogger(cfg)), nil
}

func newSurveyor(cfg SurveyorConfig, driver Driver, logger *slog.Logger) *Surveyor {
	return &Surveyor{
		label:          cfg.Label,
		questionnaires: append([]instruments.Questionnaire(nil), cfg.Questionnaires...),
		roster:         append([]string(nil), cfg.Roster...),
		driver:         driver,
		logger:         logger,
	}
}

func surveyorLogger(cfg SurveyorConfig) *slog.Logger {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", "surveyor", "label", cfg.Label)
}

func validateSurvey(cfg SurveyorConfig) error {
	def := models.SurveyDefinition{
		Label:  cfg.Label,
		Roster: cfg.Roster,
	}
	for i, q := range cfg.Questionnaires {
		if q == nil {
			return fmt.Errorf("questionnaire %d is nil", i)
		}
		def.Instruments = append(def.Instruments, q.Info())
	}

	v := cfg.Validator
	if v == nil {
		v = validator.New()
	}
	return v.Validate(def)
}

func (s *Surveyor) Label() string {
	return s.label
}

func (s *Surveyor) Roster() []string {
	return append([]string(nil), s.roster...)
}

// InstrumentNames lists the questionnaire names in administration order
func (s *Surveyor) InstrumentNames() []string {
	names := make([]string, len(s.questionnaires))
	for i, q := range s.questionnaires {
		names[i] = q.Name()
	}
	return names
}

// RunOnce asks responder for every pending item in driver order and returns
// the aggregated results. A malformed batch descriptor is treated as an empty
// batch. Responder and context errors are returned unchanged; items observed
// before the error stay recorded, so a later call resumes where this stopped.
func (s *Surveyor) RunOnce(ctx context.Context, responder responders.Responder) (*models.ResultsTable, error) {
	payload, err := s.driver.ActionSpec(gamemaster.ActionSpec{
		CallToAction: callToAction,
		Roster:       s.roster,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "Driver returned no batch descriptor", "error", err)
		return s.driver.Results(), nil
	}

	batch, err := gamemaster.ParseBatchDescriptor(payload)
	if err != nil {
		s.logger.WarnContext(ctx, "Malformed batch descriptor, treating batch as empty", "error", err)
		return s.driver.Results(), nil
	}

	s.logger.InfoContext(ctx, "Starting administration",
		"items", len(batch.Items),
		"respondents", len(s.roster),
		"instruments", len(s.questionnaires))

	for _, item := range batch.Items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if item.RespondentName == "" || item.QuestionID == "" {
			continue
		}

		answer, err := responder.Respond(ctx, item.RespondentName, item.ActionSpecStr)
		if err != nil {
			return nil, err
		}

		observation := gamemaster.FormatObservation(item.RespondentName, item.QuestionID, answer)
		if err := s.driver.Observe(observation); err != nil {
			s.logger.WarnContext(ctx, "Observation rejected",
				"respondent", item.RespondentName,
				"question_id", item.QuestionID,
				"error", err)
		}
	}

	results := s.driver.Results()
	s.logger.InfoContext(ctx, "Administration complete",
		"rows", results.Len(),
		"columns", len(results.Columns))
	return results, nil
}

// Reset discards every observation
func (s *Surveyor) Reset() {
	s.driver.Reset()
}

// Results aggregates whatever has been observed so far
func (s *Surveyor) Results() *models.ResultsTable {
	return s.driver.Results()
}

// ItemCount is the number of items a complete run answers
func (s *Surveyor) ItemCount() int {
	return s.driver.ItemCount()
}

// Answers exposes the raw answers recorded so far
func (s *Surveyor) Answers() *models.AnswerSheet {
	return s.driver.Answers()
}

// SaveResults writes {prefix}_answers.json and, when results is non-nil,
// {prefix}_results.csv and {prefix}_results.json into dir, creating dir if
// needed. It returns the paths written. Files already written are left in
// place when a later one fails.
func (s *Surveyor) SaveResults(results *models.ResultsTable, dir, prefix string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	answers := s.driver.Answers()
	files := []outputFile{
		{prefix + "_answers.json", func(w io.Writer) error { return WriteAnswersJSON(w, answers) }},
	}
	if results != nil {
		files = append(files,
			outputFile{prefix + "_results.csv", func(w io.Writer) error { return WriteResultsCSV(w, results) }},
			outputFile{prefix + "_results.json", func(w io.Writer) error { return WriteResultsJSON(w, results) }},
		)
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeFile(path, f.write); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}

	s.logger.Info("Saved results", "dir", dir, "files", len(written))
	return written, nil
}
