package services

import (
	"log/slog"
	"time"

	"github.com/SAP-F-2025/surveyor-service/internal/cache"
	"github.com/SAP-F-2025/surveyor-service/internal/events"
	"github.com/SAP-F-2025/surveyor-service/internal/instruments"
	"github.com/SAP-F-2025/surveyor-service/internal/repositories"
	"github.com/SAP-F-2025/surveyor-service/internal/scenarios"
	"github.com/SAP-F-2025/surveyor-service/internal/validator"
)

// ServiceManager exposes every service the HTTP layer depends on
type ServiceManager interface {
	Instrument() InstrumentService
	Scenario() ScenarioService
	Administration() AdministrationService
	Export() ExportService
}

// Dependencies are the infrastructure pieces services are built over. Cache
// may be nil; missing registry, catalog, publisher and validator fall back to
// the built-in defaults.
type Dependencies struct {
	Repo      repositories.AdministrationRepository
	Cache     cache.CacheService
	Publisher events.EventPublisher
	Registry  *instruments.Registry
	Scenarios *scenarios.Catalog
	Validator *validator.Validator
	Logger    *slog.Logger
	CacheTTL  time.Duration
}

type serviceManager struct {
	instrument     InstrumentService
	scenario       ScenarioService
	administration AdministrationService
	export         ExportService
}

func NewServiceManager(deps Dependencies) (ServiceManager, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Validator == nil {
		deps.Validator = validator.New()
	}
	if deps.Repo == nil {
		deps.Repo = repositories.NewMemoryAdministrationRepository()
	}
	if deps.Scenarios == nil {
		catalog, err := scenarios.Builtin()
		if err != nil {
			return nil, err
		}
		deps.Scenarios = catalog
	}

	instrumentService := NewInstrumentService(deps.Registry, deps.Validator, deps.Logger)
	scenarioService := NewScenarioService(deps.Scenarios)
	exportService := NewExportService(deps.Logger)

	administrationService := NewAdministrationService(AdministrationServiceConfig{
		Repo:        deps.Repo,
		Cache:       deps.Cache,
		Publisher:   deps.Publisher,
		Instruments: instrumentService,
		Scenarios:   scenarioService,
		Exporter:    exportService,
		Validator:   deps.Validator,
		CacheTTL:    deps.CacheTTL,
		Logger:      deps.Logger,
	})

	return &serviceManager{
		instrument:     instrumentService,
		scenario:       scenarioService,
		administration: administrationService,
		export:         exportService,
	}, nil
}

func (m *serviceManager) Instrument() InstrumentService         { return m.instrument }
func (m *serviceManager) Scenario() ScenarioService             { return m.scenario }
func (m *serviceManager) Administration() AdministrationService { return m.administration }
func (m *serviceManager) Export() ExportService                 { return m.export }
