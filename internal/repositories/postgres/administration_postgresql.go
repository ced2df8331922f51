package postgres

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/surveyor-service/internal/models"
	"github.com/SAP-F-2025/surveyor-service/internal/repositories"
	"gorm.io/gorm"
)

type AdministrationPostgreSQL struct {
	db *gorm.DB
}

func NewAdministrationPostgreSQL(db *gorm.DB) repositories.AdministrationRepository {
	return &AdministrationPostgreSQL{db: db}
}

// AutoMigrate creates or updates the administrations table
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.AdministrationRecord{}); err != nil {
		return fmt.Errorf("failed to migrate administrations: %w", err)
	}
	return nil
}

// Create inserts a new administration record
func (a *AdministrationPostgreSQL) Create(ctx context.Context, record *models.AdministrationRecord) error {
	if err := a.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create administration: %w", err)
	}
	return nil
}

// GetByID retrieves an administration by ID
func (a *AdministrationPostgreSQL) GetByID(ctx context.Context, id string) (*models.AdministrationRecord, error) {
	var record models.AdministrationRecord
	err := a.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error

	if err != nil {
		return nil, err
	}

	return &record, nil
}

// List retrieves administrations with filters and pagination
func (a *AdministrationPostgreSQL) List(ctx context.Context, filters repositories.AdministrationFilters) ([]*models.AdministrationRecord, int64, error) {
	query := a.db.WithContext(ctx).Model(&models.AdministrationRecord{})

	// Apply filters
	query = applyFilters(query, filters)

	// Count total
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply pagination and ordering
	query = applyPaginationAndSort(query, filters)

	var records []*models.AdministrationRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Delete removes an administration
func (a *AdministrationPostgreSQL) Delete(ctx context.Context, id string) error {
	result := a.db.WithContext(ctx).Where("id = ?", id).Delete(&models.AdministrationRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete administration: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ===== HELPER METHODS =====

func applyFilters(query *gorm.DB, filters repositories.AdministrationFilters) *gorm.DB {
	if filters.Label != "" {
		query = query.Where("label ILIKE ?", "%"+filters.Label+"%")
	}
	if filters.Scenario != "" {
		query = query.Where("scenario = ?", filters.Scenario)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}
	return query
}

func applyPaginationAndSort(query *gorm.DB, filters repositories.AdministrationFilters) *gorm.DB {
	sortBy, sortOrder := repositories.NormalizeSort(filters.SortBy, filters.SortOrder)
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	limit := filters.Limit
	if limit <= 0 {
		limit = repositories.DefaultLimit
	}
	return query.Limit(limit).Offset(filters.Offset)
}
