package service

import (
	"bytes"
	"context"
	"encoding/json"

	"moto-catalog-backend/internal/database/models"
	apperrors "moto-catalog-backend/internal/errors"
	"moto-catalog-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateComponentRequest represents the request to add a component to the catalog
type CreateComponentRequest struct {
	ComponentType models.ComponentType `json:"component_type" validate:"required" example:"engine"`
	Name          string               `json:"name" validate:"required,min=1,max=200" example:"Triple 765"`
	Manufacturer  string               `json:"manufacturer" validate:"max=100" example:"Triumph"`
	Specs         json.RawMessage      `json:"specs" validate:"required" swaggertype:"object"`
}

// ComponentListResponse represents a paginated list of components
type ComponentListResponse struct {
	Components []models.Component `json:"components"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}

// CatalogService handles business logic for catalog components
type CatalogService struct {
	repo      repository.ComponentCatalogRepositoryInterface
	validator *validator.Validate
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.ComponentCatalogRepositoryInterface, validator *validator.Validate) *CatalogService {
	return &CatalogService{
		repo:      repo,
		validator: validator,
	}
}

// CreateComponent validates the type-specific specs and stores the component
func (s *CatalogService) CreateComponent(ctx context.Context, req *CreateComponentRequest) (*models.Component, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.ComponentType.IsValid() {
		return nil, apperrors.ErrInvalidComponentType
	}

	specs := models.NewSpecs(req.ComponentType)
	dec := json.NewDecoder(bytes.NewReader(req.Specs))
	dec.DisallowUnknownFields()
	if err := dec.Decode(specs); err != nil {
		return nil, apperrors.NewValidationError("specs", err.Error())
	}
	if err := s.validator.Struct(specs); err != nil {
		return nil, apperrors.NewValidationError("specs", err.Error())
	}

	// store the normalized form
	normalized, err := json.Marshal(specs)
	if err != nil {
		return nil, apperrors.NewValidationError("specs", err.Error())
	}

	component := &models.Component{
		ComponentType: req.ComponentType,
		Name:          req.Name,
		Manufacturer:  req.Manufacturer,
		Specs:         normalized,
	}
	if err := s.repo.Create(ctx, component); err != nil {
		return nil, translateStoreError("create component", "component", req.Name, err, nil)
	}
	return component, nil
}

// GetComponent retrieves a component of the given type
func (s *CatalogService) GetComponent(ctx context.Context, componentType models.ComponentType, id uuid.UUID) (*models.Component, error) {
	if !componentType.IsValid() {
		return nil, apperrors.ErrInvalidComponentType
	}
	component, err := s.repo.GetByID(ctx, componentType, id)
	if err != nil {
		return nil, translateStoreError("get component", "component", id.String(), err, apperrors.ErrComponentNotFound)
	}
	return component, nil
}

// ListComponents lists components of one type. page starts at 1; pageSize is
// clamped to [1, 100] with a default of 20.
func (s *CatalogService) ListComponents(ctx context.Context, componentType models.ComponentType, page, pageSize int) (*ComponentListResponse, error) {
	if !componentType.IsValid() {
		return nil, apperrors.ErrInvalidComponentType
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	components, total, err := s.repo.ListByType(ctx, componentType, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, translateStoreError("list components", "component", string(componentType), err, nil)
	}
	return &ComponentListResponse{
		Components: components,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}
