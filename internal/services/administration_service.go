package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/surveyor-service/internal/cache"
	"github.com/SAP-F-2025/surveyor-service/internal/events"
	"github.com/SAP-F-2025/surveyor-service/internal/models"
	"github.com/SAP-F-2025/surveyor-service/internal/repositories"
	"github.com/SAP-F-2025/surveyor-service/internal/responders"
	"github.com/SAP-F-2025/surveyor-service/internal/scenarios"
	"github.com/SAP-F-2025/surveyor-service/internal/validator"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AdministrationService runs surveys against a responder and stores the outcome
type AdministrationService interface {
	Run(ctx context.Context, req *models.AdministrationRequest, responder responders.Responder) (*models.AdministrationRecord, error)
	RunScripted(ctx context.Context, req *models.AdministrationRequest) (*models.AdministrationRecord, error)
	Get(ctx context.Context, id string) (*models.AdministrationRecord, error)
	List(ctx context.Context, filters repositories.AdministrationFilters) ([]*models.AdministrationRecord, int64, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, id string, format models.ExportFormat) ([]byte, string, error)
}

type administrationService struct {
	repo        repositories.AdministrationRepository
	cache       cache.CacheService
	publisher   events.EventPublisher
	instruments InstrumentService
	scenarios   ScenarioService
	exporter    ExportService
	validator   *validator.Validator
	cacheTTL    time.Duration
	logger      *ServiceLogger
}

type AdministrationServiceConfig struct {
	Repo        repositories.AdministrationRepository
	Cache       cache.CacheService // optional
	Publisher   events.EventPublisher
	Instruments InstrumentService
	Scenarios   ScenarioService
	Exporter    ExportService
	Validator   *validator.Validator
	CacheTTL    time.Duration
	Logger      *slog.Logger
}

func NewAdministrationService(cfg AdministrationServiceConfig) AdministrationService {
	if cfg.Validator == nil {
		cfg.Validator = validator.New()
	}
	if cfg.Publisher == nil {
		cfg.Publisher = events.NewMockEventPublisher(cfg.Logger)
	}
	if cfg.Exporter == nil {
		cfg.Exporter = NewExportService(cfg.Logger)
	}
	if cfg.Instruments == nil {
		cfg.Instruments = NewInstrumentService(nil, cfg.Validator, cfg.Logger)
	}
	if cfg.Repo == nil {
		cfg.Repo = repositories.NewMemoryAdministrationRepository()
	}
	return &administrationService{
		repo:        cfg.Repo,
		cache:       cfg.Cache,
		publisher:   cfg.Publisher,
		instruments: cfg.Instruments,
		scenarios:   cfg.Scenarios,
		exporter:    cfg.Exporter,
		validator:   cfg.Validator,
		cacheTTL:    cfg.CacheTTL,
		logger:      NewServiceLogger(cfg.Logger, "administration"),
	}
}

// Run administers every requested instrument to the roster once and stores
// the outcome. A roster may come from a scenario when none is given.
func (s *administrationService) Run(ctx context.Context, req *models.AdministrationRequest, responder responders.Responder) (_ *models.AdministrationRecord, err error) {
	start := time.Now()
	recordID := ""
	defer func() {
		s.logger.LogOperation(ctx, "run_administration", recordID, time.Since(start), err)
	}()

	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrBadRequest)
	}
	if responder == nil {
		return nil, fmt.Errorf("%w: responder is required", ErrBadRequest)
	}
	if err := s.validator.Validate(req); err != nil {
		var ve ValidationErrors
		if errors.As(err, &ve) {
			s.logger.LogValidationError(ctx, "run_administration", ve)
		}
		return nil, err
	}

	questionnaires, err := s.instruments.Resolve(req.Instruments)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	roster, err := s.roster(ctx, req)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
		return nil, err
	}

	surveyor, err := NewSurveyor(SurveyorConfig{
		Label:          req.Label,
		Questionnaires: questionnaires,
		Roster:         roster,
		Validator:      s.validator,
		Logger:         s.logger.Logger(),
	})
	if err != nil {
		return nil, err
	}

	results, err := surveyor.RunOnce(ctx, responder)
	if errors.Is(err, responders.ErrScriptExhausted) {
		s.logger.Logger().WarnContext(ctx, "Script ran out, storing partial administration", "label", req.Label, "error", err)
		results, err = surveyor.Results(), nil
	}
	if err != nil {
		return nil, err
	}

	record, err := buildRecord(req, surveyor, results)
	if err != nil {
		return nil, err
	}
	recordID = record.ID

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store administration: %w", err)
	}
	s.cacheRecord(ctx, record)
	s.publishCompleted(ctx, record, surveyor.InstrumentNames())

	return record, nil
}

// RunScripted runs req against the answers it carries
func (s *administrationService) RunScripted(ctx context.Context, req *models.AdministrationRequest) (*models.AdministrationRecord, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrBadRequest)
	}
	responder := responders.NewScripted(req.Answers)
	if req.FallbackAnswer != "" {
		responder = responder.WithFallback(req.FallbackAnswer)
	}
	return s.Run(ctx, req, responder)
}

func (s *administrationService) roster(ctx context.Context, req *models.AdministrationRequest) ([]string, error) {
	if len(req.Roster) > 0 {
		return req.Roster, nil
	}
	if s.scenarios == nil {
		return nil, fmt.Errorf("%w: %s", scenarios.ErrUnknownScenario, req.Scenario)
	}
	scenario, err := s.scenarios.Get(ctx, req.Scenario)
	if err != nil {
		return nil, err
	}
	return scenario.Roster(), nil
}

func buildRecord(req *models.AdministrationRequest, surveyor *Surveyor, results *models.ResultsTable) (*models.AdministrationRecord, error) {
	roster := surveyor.Roster()
	itemCount := surveyor.ItemCount()
	answered, parsed := models.CountAnswers(surveyor.Answers())

	status := models.AdministrationCompleted
	if answered < itemCount {
		status = models.AdministrationPartial
	}

	var answers bytes.Buffer
	if err := WriteAnswersJSON(&answers, surveyor.Answers()); err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}
	if results == nil {
		results = models.NewResultsTable(nil)
	}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("failed to encode results: %w", err)
	}
	instrumentsJSON, err := json.Marshal(surveyor.InstrumentNames())
	if err != nil {
		return nil, err
	}
	rosterJSON, err := json.Marshal(roster)
	if err != nil {
		return nil, err
	}

	return &models.AdministrationRecord{
		ID:            uuid.NewString(),
		Label:         req.Label,
		Scenario:      req.Scenario,
		Instruments:   datatypes.JSON(instrumentsJSON),
		Roster:        datatypes.JSON(rosterJSON),
		Answers:       datatypes.JSON(answers.Bytes()),
		Results:       datatypes.JSON(resultsJSON),
		Status:        status,
		ItemCount:     itemCount,
		AnsweredCount: answered,
		ParsedCount:   parsed,
	}, nil
}

func (s *administrationService) cacheRecord(ctx context.Context, record *models.AdministrationRecord) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, cache.AdministrationKey(record.ID), record, s.cacheTTL); err != nil {
		s.logger.Logger().WarnContext(ctx, "Failed to cache administration", "id", record.ID, "error", err)
	}
}

func (s *administrationService) publishCompleted(ctx context.Context, record *models.AdministrationRecord, instrumentNames []string) {
	var roster []string
	_ = json.Unmarshal(record.Roster, &roster)

	event := events.NewAdministrationCompletedEvent(events.AdministrationCompletedEvent{
		AdministrationID: record.ID,
		Label:            record.Label,
		Scenario:         record.Scenario,
		Instruments:      instrumentNames,
		Respondents:      len(roster),
		ItemCount:        record.ItemCount,
		ParsedCount:      record.ParsedCount,
		CompletedAt:      time.Now().UTC(),
	})
	if err := s.publisher.PublishSurveyEvent(ctx, event); err != nil {
		s.logger.Logger().ErrorContext(ctx, "Failed to publish administration event", "id", record.ID, "error", err)
	}
}

func (s *administrationService) Get(ctx context.Context, id string) (*models.AdministrationRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAdministrationNotFound, id)
	}

	if s.cache != nil {
		var cached models.AdministrationRecord
		if err := s.cache.Get(ctx, cache.AdministrationKey(id), &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Logger().WarnContext(ctx, "Cache lookup failed", "id", id, "error", err)
		}
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", ErrAdministrationNotFound, id)
		}
		return nil, fmt.Errorf("failed to get administration: %w", err)
	}
	s.cacheRecord(ctx, record)
	return record, nil
}

func (s *administrationService) List(ctx context.Context, filters repositories.AdministrationFilters) ([]*models.AdministrationRecord, int64, error) {
	if filters.Limit <= 0 {
		filters.Limit = repositories.DefaultLimit
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}
	return s.repo.List(ctx, filters)
}

func (s *administrationService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() {
		s.logger.LogOperation(ctx, "delete_administration", id, time.Since(start), err)
	}()

	if err := s.repo.Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return fmt.Errorf("%w: %s", ErrAdministrationNotFound, id)
		}
		return fmt.Errorf("failed to delete administration: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, cache.AdministrationKey(id)); err != nil {
			s.logger.Logger().WarnContext(ctx, "Failed to evict administration", "id", id, "error", err)
		}
	}
	return nil
}

// Export renders a stored administration in the requested format and
// returns the payload with its content type.
func (s *administrationService) Export(ctx context.Context, id string, format models.ExportFormat) ([]byte, string, error) {
	if err := s.validator.ValidateStruct(models.ExportRequest{AdministrationID: id, Format: string(format)}); err != nil {
		return nil, "", err
	}

	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var results models.ResultsTable
	if len(record.Results) > 0 {
		if err := json.Unmarshal(record.Results, &results); err != nil {
			return nil, "", fmt.Errorf("failed to decode results: %w", err)
		}
	}
	answers, err := ReadAnswersJSON(bytes.NewReader(record.Answers))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode answers: %w", err)
	}

	data, err := s.exporter.Export(ctx, format, &results, answers)
	if err != nil {
		return nil, "", err
	}
	return data, ContentType(format), nil
}
