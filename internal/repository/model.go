package repository

import (
	"context"

	"moto-catalog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModelRepository handles database operations for motorcycle models
type ModelRepository struct {
	db *gorm.DB
}

// NewModelRepository creates a new model repository
func NewModelRepository(db *gorm.DB) *ModelRepository {
	return &ModelRepository{db: db}
}

// Create creates a new model
func (r *ModelRepository) Create(ctx context.Context, model *models.Model) error {
	return r.db.WithContext(ctx).Create(model).Error
}

// GetByID retrieves a model by ID
func (r *ModelRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Model, error) {
	var model models.Model
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// GetByName retrieves a model by manufacturer and name
func (r *ModelRepository) GetByName(ctx context.Context, manufacturer, name string) (*models.Model, error) {
	var model models.Model
	err := r.db.WithContext(ctx).First(&model, "manufacturer = ? AND name = ?", manufacturer, name).Error
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// ModelYearRepository handles database operations for model years
type ModelYearRepository struct {
	db *gorm.DB
}

// NewModelYearRepository creates a new model year repository
func NewModelYearRepository(db *gorm.DB) *ModelYearRepository {
	return &ModelYearRepository{db: db}
}

// Create creates a new model year
func (r *ModelYearRepository) Create(ctx context.Context, year *models.ModelYear) error {
	return r.db.WithContext(ctx).Create(year).Error
}

// GetByID retrieves a model year by ID
func (r *ModelYearRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ModelYear, error) {
	var year models.ModelYear
	err := r.db.WithContext(ctx).First(&year, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &year, nil
}

// GetByModelAndYear retrieves the model year for a model and production year
func (r *ModelYearRepository) GetByModelAndYear(ctx context.Context, modelID uuid.UUID, year int) (*models.ModelYear, error) {
	var my models.ModelYear
	err := r.db.WithContext(ctx).First(&my, "model_id = ? AND year = ?", modelID, year).Error
	if err != nil {
		return nil, err
	}
	return &my, nil
}

// ListIDsByModelIDs returns the ids of every year of the given models
func (r *ModelYearRepository) ListIDsByModelIDs(ctx context.Context, modelIDs []uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if len(modelIDs) == 0 {
		return ids, nil
	}
	err := r.db.WithContext(ctx).Model(&models.ModelYear{}).
		Where("model_id IN ?", modelIDs).
		Order("year").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
