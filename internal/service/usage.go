package service

import (
	"context"
	"fmt"

	"moto-catalog-backend/internal/database/models"
	apperrors "moto-catalog-backend/internal/errors"
	"moto-catalog-backend/internal/logger"
	"moto-catalog-backend/internal/metrics"
	"moto-catalog-backend/internal/repository"

	"github.com/google/uuid"
)

// UsageReport tells whether a component can be deleted and who still uses it
type UsageReport struct {
	ComponentType  models.ComponentType `json:"component_type"`
	ComponentID    uuid.UUID            `json:"component_id"`
	CanDelete      bool                 `json:"can_delete"`
	UsageCount     int                  `json:"usage_count"`
	ModelCount     int                  `json:"model_count"`
	TrimCount      int                  `json:"trim_count"`
	AffectedModels []string             `json:"affected_models"`
	AffectedTrims  []string             `json:"affected_trims"`
}

// ComponentUsageStats are derived reference counts for a component
type ComponentUsageStats struct {
	ComponentID   uuid.UUID            `json:"component_id"`
	ComponentType models.ComponentType `json:"component_type"`
	UsageCount    int                  `json:"usage_count"`
	ModelCount    int                  `json:"model_count"`
	TrimCount     int                  `json:"trim_count"`
}

// UsageService counts references to catalog components and gates their deletion
type UsageService struct {
	catalogRepo    repository.ComponentCatalogRepositoryInterface
	assignmentRepo repository.AssignmentRepositoryInterface
	configRepo     repository.ConfigurationRepositoryInterface
}

// NewUsageService creates a new usage service
func NewUsageService(
	catalogRepo repository.ComponentCatalogRepositoryInterface,
	assignmentRepo repository.AssignmentRepositoryInterface,
	configRepo repository.ConfigurationRepositoryInterface,
) *UsageService {
	return &UsageService{
		catalogRepo:    catalogRepo,
		assignmentRepo: assignmentRepo,
		configRepo:     configRepo,
	}
}

// CanDelete reports every model assignment and every configuration that
// stores the component id. A stored trim id counts even when its override
// flag is off.
func (s *UsageService) CanDelete(ctx context.Context, componentType models.ComponentType, componentID uuid.UUID) (*UsageReport, error) {
	if !componentType.IsValid() {
		return nil, apperrors.ErrInvalidComponentType
	}

	if _, err := s.catalogRepo.GetByID(ctx, componentType, componentID); err != nil {
		return nil, translateStoreError("get component", "component", componentID.String(), err, apperrors.ErrComponentNotFound)
	}

	return s.report(ctx, componentType, componentID)
}

// UsageStats returns the reference counts of a component
func (s *UsageService) UsageStats(ctx context.Context, componentType models.ComponentType, componentID uuid.UUID) (*ComponentUsageStats, error) {
	report, err := s.CanDelete(ctx, componentType, componentID)
	if err != nil {
		return nil, err
	}
	return &ComponentUsageStats{
		ComponentID:   report.ComponentID,
		ComponentType: report.ComponentType,
		UsageCount:    report.UsageCount,
		ModelCount:    report.ModelCount,
		TrimCount:     report.TrimCount,
	}, nil
}

// DeleteComponent removes a component from the catalog. It refuses with a
// UsageBlockedError while anything references the component.
func (s *UsageService) DeleteComponent(ctx context.Context, componentType models.ComponentType, componentID uuid.UUID) error {
	report, err := s.CanDelete(ctx, componentType, componentID)
	if err != nil {
		return err
	}

	if !report.CanDelete {
		metrics.DeletionsBlocked.WithLabelValues(string(componentType)).Inc()
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"component_type": componentType,
			"component_id":   componentID,
			"usage_count":    report.UsageCount,
		}).Info("Component deletion blocked by usage")
		return &apperrors.UsageBlockedError{
			ComponentType:  string(componentType),
			ComponentID:    componentID.String(),
			UsageCount:     report.UsageCount,
			AffectedModels: report.AffectedModels,
			AffectedTrims:  report.AffectedTrims,
		}
	}

	if err := s.catalogRepo.Delete(ctx, componentType, componentID); err != nil {
		return translateStoreError("delete component", "component", componentID.String(), err, apperrors.ErrComponentNotFound)
	}
	return nil
}

func (s *UsageService) report(ctx context.Context, componentType models.ComponentType, componentID uuid.UUID) (*UsageReport, error) {
	modelRefs, err := s.assignmentRepo.ListReferencing(ctx, componentType, componentID)
	if err != nil {
		return nil, translateStoreError("list referencing assignments", "model component assignment", componentID.String(), err, nil)
	}

	trimRefs, err := s.configRepo.ListReferencing(ctx, componentType, componentID)
	if err != nil {
		return nil, translateStoreError("list referencing configurations", "configuration", componentID.String(), err, nil)
	}

	report := &UsageReport{
		ComponentType:  componentType,
		ComponentID:    componentID,
		ModelCount:     len(modelRefs),
		TrimCount:      len(trimRefs),
		AffectedModels: make([]string, 0, len(modelRefs)),
		AffectedTrims:  make([]string, 0, len(trimRefs)),
	}
	for _, ref := range modelRefs {
		report.AffectedModels = append(report.AffectedModels, ref.ModelName)
	}
	for _, ref := range trimRefs {
		report.AffectedTrims = append(report.AffectedTrims, trimLabel(ref))
	}
	report.UsageCount = report.ModelCount + report.TrimCount
	report.CanDelete = report.UsageCount == 0
	return report, nil
}

// trimLabel renders a trim reference as "Model Year Trim"
func trimLabel(ref repository.TrimReference) string {
	return fmt.Sprintf("%s %d %s", ref.ModelName, ref.Year, ref.ConfigurationName)
}
