package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SAP-F-2025/surveyor-service/internal/models"
)

// MemoryAdministrationRepository keeps records in process memory. It is used
// when no database is configured.
type MemoryAdministrationRepository struct {
	mu      sync.RWMutex
	records map[string]models.AdministrationRecord
}

func NewMemoryAdministrationRepository() *MemoryAdministrationRepository {
	return &MemoryAdministrationRepository{records: make(map[string]models.AdministrationRecord)}
}

func (m *MemoryAdministrationRepository) Create(ctx context.Context, record *models.AdministrationRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[record.ID]; exists {
		return fmt.Errorf("administration %s already exists", record.ID)
	}
	now := time.Now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = now
	}
	m.records[record.ID] = *record
	return nil
}

func (m *MemoryAdministrationRepository) GetByID(ctx context.Context, id string) (*models.AdministrationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("administration %s: %w", id, ErrNotFound)
	}
	return &record, nil
}

func (m *MemoryAdministrationRepository) List(ctx context.Context, filters AdministrationFilters) ([]*models.AdministrationRecord, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	m.mu.RLock()
	var matched []*models.AdministrationRecord
	for _, record := range m.records {
		if !matches(record, filters) {
			continue
		}
		r := record
		matched = append(matched, &r)
	}
	m.mu.RUnlock()

	sortBy, sortOrder := NormalizeSort(filters.SortBy, filters.SortOrder)
	less := func(a, b *models.AdministrationRecord) bool {
		if sortBy == "label" {
			return a.Label < b.Label
		}
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID < b.ID
		}
		return a.CreatedAt.Before(b.CreatedAt)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if sortOrder == "asc" {
			return less(matched[i], matched[j])
		}
		return less(matched[j], matched[i])
	})

	total := int64(len(matched))
	limit := filters.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	start := filters.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *MemoryAdministrationRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return fmt.Errorf("administration %s: %w", id, ErrNotFound)
	}
	delete(m.records, id)
	return nil
}

func matches(record models.AdministrationRecord, filters AdministrationFilters) bool {
	if filters.Label != "" && !strings.Contains(strings.ToLower(record.Label), strings.ToLower(filters.Label)) {
		return false
	}
	if filters.Scenario != "" && record.Scenario != filters.Scenario {
		return false
	}
	if filters.Status != nil && record.Status != *filters.Status {
		return false
	}
	if filters.DateFrom != nil && record.CreatedAt.Before(*filters.DateFrom) {
		return false
	}
	if filters.DateTo != nil && record.CreatedAt.After(*filters.DateTo) {
		return false
	}
	return true
}
