package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/SAP-F-2025/surveyor-service/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned by in-memory repositories; gorm repositories
// surface gorm.ErrRecordNotFound.
var ErrNotFound = errors.New("record not found")

// ===== SHARED FILTER STRUCTS =====

type AdministrationFilters struct {
	Label     string                       `json:"label"`
	Scenario  string                       `json:"scenario"`
	Status    *models.AdministrationStatus `json:"status"`
	DateFrom  *time.Time                   `json:"date_from"`
	DateTo    *time.Time                   `json:"date_to"`
	Limit     int                          `json:"limit"`
	Offset    int                          `json:"offset"`
	SortBy    string                       `json:"sort_by"`    // "created_at", "label"
	SortOrder string                       `json:"sort_order"` // "asc", "desc"
}

// AdministrationRepository stores completed survey administrations
type AdministrationRepository interface {
	Create(ctx context.Context, record *models.AdministrationRecord) error
	GetByID(ctx context.Context, id string) (*models.AdministrationRecord, error)
	List(ctx context.Context, filters AdministrationFilters) ([]*models.AdministrationRecord, int64, error)
	Delete(ctx context.Context, id string) error
}

// IsNotFoundError reports whether err means the record does not exist
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrNotFound)
}

// DefaultLimit caps list queries that do not set a limit
const DefaultLimit = 50

// NormalizeSort maps request sort options onto known columns
func NormalizeSort(sortBy, sortOrder string) (string, string) {
	switch sortBy {
	case "label", "created_at":
	default:
		sortBy = "created_at"
	}
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	return sortBy, sortOrder
}
