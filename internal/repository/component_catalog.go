package repository

import (
	"context"
	"fmt"

	"moto-catalog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentCatalogRepository handles database operations for catalog components
type ComponentCatalogRepository struct {
	db *gorm.DB
}

// NewComponentCatalogRepository creates a new component catalog repository
func NewComponentCatalogRepository(db *gorm.DB) *ComponentCatalogRepository {
	return &ComponentCatalogRepository{db: db}
}

// Create creates a new component
func (r *ComponentCatalogRepository) Create(ctx context.Context, component *models.Component) error {
	return r.db.WithContext(ctx).Create(component).Error
}

// GetByID retrieves a component of the given type by ID
func (r *ComponentCatalogRepository) GetByID(ctx context.Context, componentType models.ComponentType, id uuid.UUID) (*models.Component, error) {
	var component models.Component
	err := r.db.WithContext(ctx).First(&component, "id = ? AND component_type = ?", id, componentType).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// ListByType retrieves components of one type with pagination
func (r *ComponentCatalogRepository) ListByType(ctx context.Context, componentType models.ComponentType, limit, offset int) ([]models.Component, int64, error) {
	var components []models.Component
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Component{}).Where("component_type = ?", componentType)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("name").Limit(limit).Offset(offset).Find(&components).Error; err != nil {
		return nil, 0, err
	}

	return components, total, nil
}

// Delete deletes a component. It returns gorm.ErrRecordNotFound when no row matched.
func (r *ComponentCatalogRepository) Delete(ctx context.Context, componentType models.ComponentType, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Component{}, "id = ? AND component_type = ?", id, componentType)
	if result.Error != nil {
		return fmt.Errorf("delete component: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
