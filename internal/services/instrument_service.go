package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/SAP-F-2025/surveyor-service/internal/instruments"
	"github.com/SAP-F-2025/surveyor-service/internal/models"
	"github.com/SAP-F-2025/surveyor-service/internal/validator"
)

type InstrumentService interface {
	List(ctx context.Context) []models.InstrumentInfo
	Get(ctx context.Context, name string) (*models.InstrumentInfo, error)
	Score(ctx context.Context, name string, req *models.ScoreRequest) (*models.ScoreResponse, error)
	Resolve(names []string) ([]instruments.Questionnaire, error)
}

type instrumentService struct {
	registry  *instruments.Registry
	validator *validator.Validator
	logger    *slog.Logger
}

func NewInstrumentService(registry *instruments.Registry, v *validator.Validator, logger *slog.Logger) InstrumentService {
	if registry == nil {
		registry = instruments.DefaultRegistry()
	}
	if v == nil {
		v = validator.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &instrumentService{
		registry:  registry,
		validator: v,
		logger:    logger,
	}
}

func (s *instrumentService) List(ctx context.Context) []models.InstrumentInfo {
	list := s.registry.List()
	infos := make([]models.InstrumentInfo, len(list))
	for i, q := range list {
		infos[i] = q.Info()
	}
	return infos
}

func (s *instrumentService) Get(ctx context.Context, name string) (*models.InstrumentInfo, error) {
	q, ok := s.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", instruments.ErrUnknownInstrument, name)
	}
	info := q.Info()
	return &info, nil
}

// Score maps one answer per question onto the instrument's scales and
// aggregates them. Statistics with no parseable answers are returned as null.
func (s *instrumentService) Score(ctx context.Context, name string, req *models.ScoreRequest) (*models.ScoreResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	q, ok := s.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", instruments.ErrUnknownInstrument, name)
	}

	questions := q.Questions()
	if len(req.Answers) != len(questions) {
		return nil, fmt.Errorf("%w: %s has %d questions, got %d answers",
			ErrAnswerCountMismatch, q.Name(), len(questions), len(req.Answers))
	}

	resp := &models.ScoreResponse{
		Instrument: q.Name(),
		Items:      make([]models.ScoredItem, len(questions)),
		Statistics: make(map[string]*float64),
	}
	answers := make([]models.RespondentAnswer, len(questions))
	for i, question := range questions {
		dimension, value := q.ProcessAnswer("", req.Answers[i], question)
		answers[i] = models.RespondentAnswer{
			Dimension: dimension,
			RawText:   req.Answers[i],
			Value:     value,
			Ascending: question.Ascending,
		}
		resp.Items[i] = models.ScoredItem{
			QuestionID: models.QuestionID(q.Name(), i),
			Answer:     req.Answers[i],
			Dimension:  dimension,
			Value:      value,
		}
	}

	for stat, value := range q.AggregateResults(answers) {
		if math.IsNaN(value) {
			resp.Statistics[stat] = nil
			continue
		}
		v := value
		resp.Statistics[stat] = &v
	}

	s.logger.DebugContext(ctx, "Scored instrument", "instrument", q.Name(), "answers", len(answers))
	return resp, nil
}

func (s *instrumentService) Resolve(names []string) ([]instruments.Questionnaire, error) {
	return s.registry.Resolve(names)
}
