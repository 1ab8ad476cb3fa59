package service

import (
	"context"
	"fmt"
	"time"

	"moto-catalog-backend/internal/database/models"
	apperrors "moto-catalog-backend/internal/errors"
	"moto-catalog-backend/internal/logger"
	"moto-catalog-backend/internal/metrics"
	"moto-catalog-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// AssignRequest applies one component as the default of many models
type AssignRequest struct {
	ComponentType     models.ComponentType `json:"-"`
	ComponentID       uuid.UUID            `json:"component_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ModelIDs          []uuid.UUID          `json:"model_ids"`
	EffectiveFromYear *int                 `json:"effective_from_year,omitempty" validate:"omitempty,min=1885,max=2100" example:"2021"`
	EffectiveToYear   *int                 `json:"effective_to_year,omitempty" validate:"omitempty,min=1885,max=2100" example:"2024"`
	Notes             string               `json:"notes,omitempty" validate:"max=2000"`
}

// TargetStatus is the outcome of one bulk target
type TargetStatus string

const (
	TargetOK    TargetStatus = "ok"
	TargetError TargetStatus = "error"
)

// TargetResult is the outcome of assigning to one model
type TargetResult struct {
	ModelID    uuid.UUID                        `json:"model_id"`
	Status     TargetStatus                     `json:"status"`
	Error      string                           `json:"error,omitempty"`
	Err        error                            `json:"-"`
	Assignment *models.ModelComponentAssignment `json:"assignment,omitempty"`
}

// BulkAssignResult holds one result per requested target, in request order
type BulkAssignResult struct {
	ComponentType models.ComponentType `json:"component_type"`
	ComponentID   uuid.UUID            `json:"component_id"`
	Results       []TargetResult       `json:"results"`
	Total         int                  `json:"total"`
	Succeeded     int                  `json:"succeeded"`
	Failed        int                  `json:"failed"`
}

// PartialFailure summarizes the failed targets, or returns nil when every
// target succeeded
func (r *BulkAssignResult) PartialFailure() *apperrors.PartialBulkFailure {
	if r.Failed == 0 {
		return nil
	}
	errs := make(map[string]error, r.Failed)
	for _, res := range r.Results {
		if res.Status == TargetError {
			errs[res.ModelID.String()] = res.Err
		}
	}
	return &apperrors.PartialBulkFailure{
		Total:     r.Total,
		Succeeded: r.Succeeded,
		Failed:    r.Failed,
		Errors:    errs,
	}
}

// AssignmentService applies model defaults and trim overrides
type AssignmentService struct {
	catalogRepo    repository.ComponentCatalogRepositoryInterface
	modelRepo      repository.ModelRepositoryInterface
	yearRepo       repository.ModelYearRepositoryInterface
	configRepo     repository.ConfigurationRepositoryInterface
	assignmentRepo repository.AssignmentRepositoryInterface
	invalidator    Invalidator
	validator      *validator.Validate
	concurrency    int
}

// NewAssignmentService creates a new assignment service. concurrency bounds
// how many bulk targets are written at once.
func NewAssignmentService(
	catalogRepo repository.ComponentCatalogRepositoryInterface,
	modelRepo repository.ModelRepositoryInterface,
	yearRepo repository.ModelYearRepositoryInterface,
	configRepo repository.ConfigurationRepositoryInterface,
	assignmentRepo repository.AssignmentRepositoryInterface,
	invalidator Invalidator,
	validator *validator.Validate,
	concurrency int,
) *AssignmentService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &AssignmentService{
		catalogRepo:    catalogRepo,
		modelRepo:      modelRepo,
		yearRepo:       yearRepo,
		configRepo:     configRepo,
		assignmentRepo: assignmentRepo,
		invalidator:    invalidator,
		validator:      validator,
		concurrency:    concurrency,
	}
}

// Assign upserts the component as the default of every target model. Targets
// are independent: a failing target is reported in its result and does not
// stop the others. Request-level problems fail the call before any write.
func (s *AssignmentService) Assign(ctx context.Context, req *AssignRequest) (*BulkAssignResult, error) {
	if err := s.validateAssignRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.catalogRepo.GetByID(ctx, req.ComponentType, req.ComponentID); err != nil {
		return nil, translateStoreError("get component", "component", req.ComponentID.String(), err, apperrors.ErrComponentNotFound)
	}

	start := time.Now()
	results := make([]TargetResult, len(req.ModelIDs))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, modelID := range req.ModelIDs {
		g.Go(func() error {
			assignment, err := s.assignOne(ctx, modelID, req)
			if err != nil {
				results[i] = TargetResult{ModelID: modelID, Status: TargetError, Error: err.Error(), Err: err}
				return nil
			}
			results[i] = TargetResult{ModelID: modelID, Status: TargetOK, Assignment: assignment}
			return nil
		})
	}
	// workers never return an error; failures live in results
	_ = g.Wait()

	out := &BulkAssignResult{
		ComponentType: req.ComponentType,
		ComponentID:   req.ComponentID,
		Results:       results,
		Total:         len(results),
	}
	var changed []uuid.UUID
	for _, r := range results {
		if r.Status == TargetOK {
			out.Succeeded++
			changed = append(changed, r.ModelID)
		} else {
			out.Failed++
		}
	}

	metrics.BulkAssignTargets.WithLabelValues(string(req.ComponentType), metrics.StatusOK).Add(float64(out.Succeeded))
	metrics.BulkAssignTargets.WithLabelValues(string(req.ComponentType), metrics.StatusError).Add(float64(out.Failed))
	metrics.BulkAssignDuration.WithLabelValues(string(req.ComponentType)).Observe(time.Since(start).Seconds())

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"component_type": req.ComponentType,
		"component_id":   req.ComponentID,
		"total":          out.Total,
		"succeeded":      out.Succeeded,
		"failed":         out.Failed,
	})
	if out.Failed > 0 {
		log.Warn("Bulk assignment finished with failures")
	} else {
		log.Info("Bulk assignment finished")
	}

	if len(changed) > 0 {
		s.invalidateModels(ctx, changed)
	}
	return out, nil
}

func (s *AssignmentService) validateAssignRequest(req *AssignRequest) error {
	if req == nil {
		return apperrors.NewValidationError("", "request is required")
	}
	if !req.ComponentType.IsValid() {
		return apperrors.ErrInvalidComponentType
	}
	if req.ComponentID == uuid.Nil {
		return apperrors.NewValidationError("component_id", "is required")
	}
	if len(req.ModelIDs) == 0 {
		return apperrors.ErrNoTargets
	}
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}
	if req.EffectiveFromYear != nil && req.EffectiveToYear != nil && *req.EffectiveFromYear > *req.EffectiveToYear {
		return apperrors.ErrInvalidYearWindow
	}
	return nil
}

// assignOne upserts a single (model, component type) default
func (s *AssignmentService) assignOne(ctx context.Context, modelID uuid.UUID, req *AssignRequest) (*models.ModelComponentAssignment, error) {
	if modelID == uuid.Nil {
		return nil, apperrors.ErrModelNotFound
	}
	if _, err := s.modelRepo.GetByID(ctx, modelID); err != nil {
		return nil, translateStoreError("get model", "model", modelID.String(), err, apperrors.ErrModelNotFound)
	}

	assignment := &models.ModelComponentAssignment{
		ModelID:           modelID,
		ComponentType:     req.ComponentType,
		ComponentID:       req.ComponentID,
		IsDefault:         true,
		EffectiveFromYear: req.EffectiveFromYear,
		EffectiveToYear:   req.EffectiveToYear,
		Notes:             req.Notes,
	}
	key := fmt.Sprintf("%s/%s", modelID, req.ComponentType)
	if err := s.assignmentRepo.Upsert(ctx, assignment); err != nil {
		return nil, translateStoreError("upsert assignment", "model component assignment", key, err, nil)
	}
	return assignment, nil
}

// Remove deletes the default of one type from a model. Removing a missing
// assignment is not an error.
func (s *AssignmentService) Remove(ctx context.Context, modelID uuid.UUID, componentType models.ComponentType) error {
	if !componentType.IsValid() {
		return apperrors.ErrInvalidComponentType
	}

	key := fmt.Sprintf("%s/%s", modelID, componentType)
	removed, err := s.assignmentRepo.Delete(ctx, modelID, componentType)
	if err != nil {
		return translateStoreError("delete assignment", "model component assignment", key, err, nil)
	}
	if removed == 0 {
		return nil
	}

	logger.WithContext(ctx).WithField("assignment", key).Info("Model assignment removed")
	s.invalidateModels(ctx, []uuid.UUID{modelID})
	return nil
}

// SetTrimOverride sets or clears a configuration's override for one type in a
// single update. A nil componentID clears the override.
func (s *AssignmentService) SetTrimOverride(ctx context.Context, configurationID uuid.UUID, componentType models.ComponentType, componentID *uuid.UUID) error {
	if !componentType.IsValid() {
		return apperrors.ErrInvalidComponentType
	}

	if componentID != nil {
		if _, err := s.catalogRepo.GetByID(ctx, componentType, *componentID); err != nil {
			return translateStoreError("get component", "component", componentID.String(), err, apperrors.ErrComponentNotFound)
		}
	}

	cfg, err := s.configRepo.GetByID(ctx, configurationID)
	if err != nil {
		return translateStoreError("get configuration", "configuration", configurationID.String(), err, apperrors.ErrConfigurationNotFound)
	}

	key := fmt.Sprintf("%s/%s", configurationID, componentType)
	if err := s.configRepo.SetComponent(ctx, configurationID, componentType, componentID); err != nil {
		return translateStoreError("set trim override", "configuration", key, err, apperrors.ErrConfigurationNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"configuration_id": configurationID,
		"component_type":   componentType,
		"override":         componentID != nil,
	}).Info("Trim override updated")
	s.invalidator.InvalidateAfterMutation(ctx, []uuid.UUID{cfg.ModelYearID})
	return nil
}

// ListModelAssignments returns every default assigned to a model
func (s *AssignmentService) ListModelAssignments(ctx context.Context, modelID uuid.UUID) ([]models.ModelComponentAssignment, error) {
	if _, err := s.modelRepo.GetByID(ctx, modelID); err != nil {
		return nil, translateStoreError("get model", "model", modelID.String(), err, apperrors.ErrModelNotFound)
	}

	assignments, err := s.assignmentRepo.ListByModelIDs(ctx, []uuid.UUID{modelID})
	if err != nil {
		return nil, translateStoreError("list assignments", "model component assignment", modelID.String(), err, nil)
	}
	return assignments, nil
}

// invalidateModels invalidates the views of every year of the given models.
// If the years cannot be listed the broad invalidation still runs.
func (s *AssignmentService) invalidateModels(ctx context.Context, modelIDs []uuid.UUID) {
	yearIDs, err := s.yearRepo.ListIDsByModelIDs(ctx, modelIDs)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to list model years for invalidation")
		yearIDs = nil
	}
	s.invalidator.InvalidateAfterMutation(ctx, yearIDs)
}
