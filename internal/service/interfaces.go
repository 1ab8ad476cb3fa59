package service

import (
	"context"

	"moto-catalog-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ResolutionServiceInterface defines the interface for effective component resolution
type ResolutionServiceInterface interface {
	Resolve(ctx context.Context, configurationID uuid.UUID, componentType models.ComponentType) (*Resolution, error)
	ResolveAll(ctx context.Context, configurationID uuid.UUID) (*ConfigurationResolution, error)
	ResolveYear(ctx context.Context, yearID uuid.UUID) ([]ConfigurationResolution, error)
	ResolveYears(ctx context.Context, yearIDs []uuid.UUID) (map[uuid.UUID][]ConfigurationResolution, error)
}

// UsageServiceInterface defines the interface for component usage accounting
type UsageServiceInterface interface {
	CanDelete(ctx context.Context, componentType models.ComponentType, componentID uuid.UUID) (*UsageReport, error)
	UsageStats(ctx context.Context, componentType models.ComponentType, componentID uuid.UUID) (*ComponentUsageStats, error)
	DeleteComponent(ctx context.Context, componentType models.ComponentType, componentID uuid.UUID) error
}

// AssignmentServiceInterface defines the interface for model and trim assignment mutations
type AssignmentServiceInterface interface {
	Assign(ctx context.Context, req *AssignRequest) (*BulkAssignResult, error)
	Remove(ctx context.Context, modelID uuid.UUID, componentType models.ComponentType) error
	SetTrimOverride(ctx context.Context, configurationID uuid.UUID, componentType models.ComponentType, componentID *uuid.UUID) error
	ListModelAssignments(ctx context.Context, modelID uuid.UUID) ([]models.ModelComponentAssignment, error)
}

// CatalogServiceInterface defines the interface for component catalog maintenance
type CatalogServiceInterface interface {
	CreateComponent(ctx context.Context, req *CreateComponentRequest) (*models.Component, error)
	GetComponent(ctx context.Context, componentType models.ComponentType, id uuid.UUID) (*models.Component, error)
	ListComponents(ctx context.Context, componentType models.ComponentType, page, pageSize int) (*ComponentListResponse, error)
}

// Invalidator marks cached read-views stale after a mutation
type Invalidator interface {
	InvalidateAfterMutation(ctx context.Context, yearIDs []uuid.UUID)
}
