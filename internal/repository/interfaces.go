package repository

import (
	"context"

	"moto-catalog-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ComponentCatalogRepositoryInterface defines the interface for component catalog operations
type ComponentCatalogRepositoryInterface interface {
	Create(ctx context.Context, component *models.Component) error
	GetByID(ctx context.Context, componentType models.ComponentType, id uuid.UUID) (*models.Component, error)
	ListByType(ctx context.Context, componentType models.ComponentType, limit, offset int) ([]models.Component, int64, error)
	Delete(ctx context.Context, componentType models.ComponentType, id uuid.UUID) error
}

// ModelRepositoryInterface defines the interface for model repository operations
type ModelRepositoryInterface interface {
	Create(ctx context.Context, model *models.Model) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Model, error)
	GetByName(ctx context.Context, manufacturer, name string) (*models.Model, error)
}

// ModelYearRepositoryInterface defines the interface for model year repository operations
type ModelYearRepositoryInterface interface {
	Create(ctx context.Context, year *models.ModelYear) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ModelYear, error)
	GetByModelAndYear(ctx context.Context, modelID uuid.UUID, year int) (*models.ModelYear, error)
	ListIDsByModelIDs(ctx context.Context, modelIDs []uuid.UUID) ([]uuid.UUID, error)
}

// ConfigurationRepositoryInterface defines the interface for configuration (trim) repository operations
type ConfigurationRepositoryInterface interface {
	Create(ctx context.Context, configuration *models.Configuration) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Configuration, error)
	ListByModelYearIDs(ctx context.Context, yearIDs []uuid.UUID) ([]models.Configuration, error)
	SetComponent(ctx context.Context, id uuid.UUID, componentType models.ComponentType, componentID *uuid.UUID) error
	ListReferencing(ctx context.Context, componentType models.ComponentType, componentID uuid.UUID) ([]TrimReference, error)
}

// AssignmentRepositoryInterface defines the interface for model component assignment operations
type AssignmentRepositoryInterface interface {
	Upsert(ctx context.Context, assignment *models.ModelComponentAssignment) error
	Delete(ctx context.Context, modelID uuid.UUID, componentType models.ComponentType) (int64, error)
	GetByModelAndType(ctx context.Context, modelID uuid.UUID, componentType models.ComponentType) (*models.ModelComponentAssignment, error)
	ListByModelIDs(ctx context.Context, modelIDs []uuid.UUID) ([]models.ModelComponentAssignment, error)
	ListReferencing(ctx context.Context, componentType models.ComponentType, componentID uuid.UUID) ([]ModelReference, error)
}

// ModelReference is a model assignment that points at a component
type ModelReference struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	ModelID      uuid.UUID `json:"model_id"`
	ModelName    string    `json:"model_name"`
}

// TrimReference is a configuration that stores a component id, whether or not
// its override flag is set
type TrimReference struct {
	ConfigurationID   uuid.UUID `json:"configuration_id"`
	ConfigurationName string    `json:"configuration_name"`
	ModelID           uuid.UUID `json:"model_id"`
	ModelName         string    `json:"model_name"`
	Year              int       `json:"year"`
	Override          bool      `json:"override"`
}
