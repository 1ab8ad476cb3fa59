package repository

import (
	"context"
	"fmt"
	"time"

	"moto-catalog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConfigurationRepository handles database operations for configurations (trims)
type ConfigurationRepository struct {
	db *gorm.DB
}

// NewConfigurationRepository creates a new configuration repository
func NewConfigurationRepository(db *gorm.DB) *ConfigurationRepository {
	return &ConfigurationRepository{db: db}
}

// Create creates a new configuration
func (r *ConfigurationRepository) Create(ctx context.Context, configuration *models.Configuration) error {
	return r.db.WithContext(ctx).Create(configuration).Error
}

// GetByID retrieves a configuration with its model year
func (r *ConfigurationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Configuration, error) {
	var configuration models.Configuration
	err := r.db.WithContext(ctx).Preload("ModelYear").First(&configuration, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &configuration, nil
}

// ListByModelYearIDs retrieves every configuration of the given years with their model year
func (r *ConfigurationRepository) ListByModelYearIDs(ctx context.Context, yearIDs []uuid.UUID) ([]models.Configuration, error) {
	var configurations []models.Configuration
	if len(yearIDs) == 0 {
		return configurations, nil
	}
	err := r.db.WithContext(ctx).
		Preload("ModelYear").
		Where("model_year_id IN ?", yearIDs).
		Order("name").
		Find(&configurations).Error
	if err != nil {
		return nil, err
	}
	return configurations, nil
}

// SetComponent writes the component id and override flag for one component
// type in a single UPDATE. A nil componentID clears both. It returns
// gorm.ErrRecordNotFound when the configuration does not exist.
func (r *ConfigurationRepository) SetComponent(ctx context.Context, id uuid.UUID, componentType models.ComponentType, componentID *uuid.UUID) error {
	if !componentType.IsValid() {
		return fmt.Errorf("invalid component type %q", componentType)
	}

	var value interface{}
	if componentID != nil {
		value = *componentID
	}

	result := r.db.WithContext(ctx).Model(&models.Configuration{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			componentType.IDColumn():       value,
			componentType.OverrideColumn(): componentID != nil,
			"updated_at":                   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListReferencing returns every configuration whose stored component id for
// componentType equals componentID, joined to its model and year
func (r *ConfigurationRepository) ListReferencing(ctx context.Context, componentType models.ComponentType, componentID uuid.UUID) ([]TrimReference, error) {
	if !componentType.IsValid() {
		return nil, fmt.Errorf("invalid component type %q", componentType)
	}

	var refs []TrimReference
	err := r.db.WithContext(ctx).
		Table("configurations AS c").
		Select("c.id AS configuration_id, c.name AS configuration_name, m.id AS model_id, m.name AS model_name, my.year AS year, c."+componentType.OverrideColumn()+" AS override").
		Joins("JOIN model_years AS my ON my.id = c.model_year_id").
		Joins("JOIN models AS m ON m.id = my.model_id").
		Where("c."+componentType.IDColumn()+" = ?", componentID).
		Order("m.name, my.year, c.name").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}
