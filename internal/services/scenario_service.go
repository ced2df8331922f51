package services

import (
	"context"

	"github.com/SAP-F-2025/surveyor-service/internal/scenarios"
)

type ScenarioService interface {
	List(ctx context.Context) []scenarios.Scenario
	Get(ctx context.Context, name string) (*scenarios.Scenario, error)
}

type scenarioService struct {
	catalog *scenarios.Catalog
}

func NewScenarioService(catalog *scenarios.Catalog) ScenarioService {
	return &scenarioService{catalog: catalog}
}

func (s *scenarioService) List(ctx context.Context) []scenarios.Scenario {
	return s.catalog.List()
}

func (s *scenarioService) Get(ctx context.Context, name string) (*scenarios.Scenario, error) {
	scenario, err := s.catalog.Get(name)
	if err != nil {
		return nil, err
	}
	return &scenario, nil
}
