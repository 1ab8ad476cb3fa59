package service

import (
	"context"
	"fmt"
	"time"

	"moto-catalog-backend/internal/cache"
	"moto-catalog-backend/internal/database/models"
	apperrors "moto-catalog-backend/internal/errors"
	"moto-catalog-backend/internal/logger"
	"moto-catalog-backend/internal/metrics"
	"moto-catalog-backend/internal/repository"

	"github.com/google/uuid"
)

// Resolution is the effective component of one type for a configuration
type Resolution struct {
	ComponentType models.ComponentType    `json:"component_type"`
	ComponentID   *uuid.UUID              `json:"component_id"`
	Source        models.ResolutionSource `json:"source"`
}

// ConfigurationResolution holds the effective components of every type for one configuration
type ConfigurationResolution struct {
	ConfigurationID   uuid.UUID                           `json:"configuration_id"`
	ConfigurationName string                              `json:"configuration_name"`
	ModelYearID       uuid.UUID                           `json:"model_year_id"`
	Year              int                                 `json:"year"`
	Components        map[models.ComponentType]Resolution `json:"components"`
}

// ResolveComponent applies the precedence rule for one component type:
// a trim override with a stored id wins, then a model assignment whose window
// contains year, then nothing. assignment may be nil or belong to another type.
func ResolveComponent(cfg *models.Configuration, year int, assignment *models.ModelComponentAssignment, componentType models.ComponentType) Resolution {
	if cfg != nil && cfg.Override(componentType) {
		if id := cfg.ComponentID(componentType); id != nil {
			trimID := *id
			return Resolution{ComponentType: componentType, ComponentID: &trimID, Source: models.SourceTrim}
		}
	}
	if assignment != nil && assignment.ComponentType == componentType && assignment.AppliesToYear(year) {
		modelID := assignment.ComponentID
		return Resolution{ComponentType: componentType, ComponentID: &modelID, Source: models.SourceModel}
	}
	return Resolution{ComponentType: componentType, Source: models.SourceNone}
}

// resolveConfiguration resolves every component type of cfg against the
// model's assignments, indexed by type
func resolveConfiguration(cfg *models.Configuration, year int, assignments map[models.ComponentType]*models.ModelComponentAssignment) ConfigurationResolution {
	out := ConfigurationResolution{
		ConfigurationID:   cfg.ID,
		ConfigurationName: cfg.Name,
		ModelYearID:       cfg.ModelYearID,
		Year:              year,
		Components:        make(map[models.ComponentType]Resolution, len(models.AllComponentTypes)),
	}
	for _, t := range models.AllComponentTypes {
		r := ResolveComponent(cfg, year, assignments[t], t)
		metrics.Resolutions.WithLabelValues(string(r.Source)).Inc()
		out.Components[t] = r
	}
	return out
}

// ResolutionService computes effective components for configurations
type ResolutionService struct {
	configRepo     repository.ConfigurationRepositoryInterface
	yearRepo       repository.ModelYearRepositoryInterface
	assignmentRepo repository.AssignmentRepositoryInterface
	cache          cache.QueryCache
	cacheTTL       time.Duration
}

// NewResolutionService creates a new resolution service. The cache is only a
// read-through accelerator; pass cache.NoopCache{} to disable it. A
// non-positive cacheTTL also disables it, since a view stored without expiry
// could outlive the invalidation that should have dropped it.
func NewResolutionService(
	configRepo repository.ConfigurationRepositoryInterface,
	yearRepo repository.ModelYearRepositoryInterface,
	assignmentRepo repository.AssignmentRepositoryInterface,
	queryCache cache.QueryCache,
	cacheTTL time.Duration,
) *ResolutionService {
	if queryCache == nil || cacheTTL <= 0 {
		queryCache = cache.NoopCache{}
	}
	return &ResolutionService{
		configRepo:     configRepo,
		yearRepo:       yearRepo,
		assignmentRepo: assignmentRepo,
		cache:          queryCache,
		cacheTTL:       cacheTTL,
	}
}

// Resolve returns the effective component of one type for a configuration.
// It always reads the store.
func (s *ResolutionService) Resolve(ctx context.Context, configurationID uuid.UUID, componentType models.ComponentType) (*Resolution, error) {
	if !componentType.IsValid() {
		return nil, apperrors.ErrInvalidComponentType
	}

	cfg, year, err := s.loadConfiguration(ctx, configurationID)
	if err != nil {
		return nil, err
	}

	// the trim override wins without looking at the model
	if r := ResolveComponent(cfg, year.Year, nil, componentType); r.Source == models.SourceTrim {
		metrics.Resolutions.WithLabelValues(string(r.Source)).Inc()
		return &r, nil
	}

	assignment, err := s.assignmentRepo.GetByModelAndType(ctx, year.ModelID, componentType)
	if err != nil {
		err = translateStoreError("get assignment", "model component assignment", fmt.Sprintf("%s/%s", year.ModelID, componentType), err, apperrors.ErrAssignmentNotFound)
		if !apperrors.IsNotFound(err) {
			return nil, err
		}
		assignment = nil
	}

	r := ResolveComponent(cfg, year.Year, assignment, componentType)
	metrics.Resolutions.WithLabelValues(string(r.Source)).Inc()
	return &r, nil
}

// ResolveAll returns the effective component of every type for a configuration.
// Results are cached per configuration.
func (s *ResolutionService) ResolveAll(ctx context.Context, configurationID uuid.UUID) (*ConfigurationResolution, error) {
	key := cache.ConfigurationKey(configurationID)
	var cached ConfigurationResolution
	if s.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	cfg, year, err := s.loadConfiguration(ctx, configurationID)
	if err != nil {
		return nil, err
	}

	byModel, err := s.assignmentsByModel(ctx, []uuid.UUID{year.ModelID})
	if err != nil {
		return nil, err
	}

	result := resolveConfiguration(cfg, year.Year, byModel[year.ModelID])
	s.store(ctx, key, result)
	return &result, nil
}

// ResolveYear resolves every configuration of a model year. Results are
// cached under the year's key.
func (s *ResolutionService) ResolveYear(ctx context.Context, yearID uuid.UUID) ([]ConfigurationResolution, error) {
	key := cache.YearKey(yearID)
	var cached []ConfigurationResolution
	if s.lookup(ctx, key, &cached) {
		return cached, nil
	}

	year, err := s.yearRepo.GetByID(ctx, yearID)
	if err != nil {
		return nil, translateStoreError("get model year", "model year", yearID.String(), err, apperrors.ErrModelYearNotFound)
	}

	configs, err := s.configRepo.ListByModelYearIDs(ctx, []uuid.UUID{yearID})
	if err != nil {
		return nil, translateStoreError("list configurations", "configuration", yearID.String(), err, nil)
	}

	byModel, err := s.assignmentsByModel(ctx, []uuid.UUID{year.ModelID})
	if err != nil {
		return nil, err
	}

	result := make([]ConfigurationResolution, 0, len(configs))
	for i := range configs {
		result = append(result, resolveConfiguration(&configs[i], year.Year, byModel[year.ModelID]))
	}
	s.store(ctx, key, result)
	return result, nil
}

// ResolveYears resolves every configuration of several model years at once,
// grouped by year id. Every requested id is present in the result; unknown
// ids map to an empty list. Results are cached under the multi-year key.
func (s *ResolutionService) ResolveYears(ctx context.Context, yearIDs []uuid.UUID) (map[uuid.UUID][]ConfigurationResolution, error) {
	if len(yearIDs) == 0 {
		return nil, apperrors.NewValidationError("ids", "at least one model year id is required")
	}

	key := cache.MultiYearKey(yearIDs)
	var cached map[uuid.UUID][]ConfigurationResolution
	if s.lookup(ctx, key, &cached) {
		return cached, nil
	}

	configs, err := s.configRepo.ListByModelYearIDs(ctx, yearIDs)
	if err != nil {
		return nil, translateStoreError("list configurations", "configuration", key.String(), err, nil)
	}

	var modelIDs []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	for _, c := range configs {
		if c.ModelYear == nil {
			return nil, apperrors.NewStoreError("list configurations", c.ID.String(), fmt.Errorf("model year not loaded"))
		}
		if !seen[c.ModelYear.ModelID] {
			seen[c.ModelYear.ModelID] = true
			modelIDs = append(modelIDs, c.ModelYear.ModelID)
		}
	}

	byModel, err := s.assignmentsByModel(ctx, modelIDs)
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID][]ConfigurationResolution, len(yearIDs))
	for _, id := range yearIDs {
		result[id] = []ConfigurationResolution{}
	}
	for i := range configs {
		c := &configs[i]
		result[c.ModelYearID] = append(result[c.ModelYearID], resolveConfiguration(c, c.ModelYear.Year, byModel[c.ModelYear.ModelID]))
	}
	s.store(ctx, key, result)
	return result, nil
}

// loadConfiguration fetches a configuration together with its model year
func (s *ResolutionService) loadConfiguration(ctx context.Context, configurationID uuid.UUID) (*models.Configuration, *models.ModelYear, error) {
	cfg, err := s.configRepo.GetByID(ctx, configurationID)
	if err != nil {
		return nil, nil, translateStoreError("get configuration", "configuration", configurationID.String(), err, apperrors.ErrConfigurationNotFound)
	}

	year := cfg.ModelYear
	if year == nil {
		year, err = s.yearRepo.GetByID(ctx, cfg.ModelYearID)
		if err != nil {
			return nil, nil, translateStoreError("get model year", "model year", cfg.ModelYearID.String(), err, apperrors.ErrModelYearNotFound)
		}
	}
	return cfg, year, nil
}

// assignmentsByModel loads the assignments of the given models indexed by model and type
func (s *ResolutionService) assignmentsByModel(ctx context.Context, modelIDs []uuid.UUID) (map[uuid.UUID]map[models.ComponentType]*models.ModelComponentAssignment, error) {
	assignments, err := s.assignmentRepo.ListByModelIDs(ctx, modelIDs)
	if err != nil {
		return nil, translateStoreError("list assignments", "model component assignment", "", err, nil)
	}

	out := make(map[uuid.UUID]map[models.ComponentType]*models.ModelComponentAssignment, len(modelIDs))
	for i := range assignments {
		a := &assignments[i]
		if out[a.ModelID] == nil {
			out[a.ModelID] = make(map[models.ComponentType]*models.ModelComponentAssignment)
		}
		out[a.ModelID][a.ComponentType] = a
	}
	return out, nil
}

// lookup reads a cached view. Cache failures are logged and treated as a miss.
func (s *ResolutionService) lookup(ctx context.Context, key cache.Key, dest interface{}) bool {
	ns := key.Namespace().String()
	ok, err := cache.GetJSON(ctx, s.cache, key, dest)
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("cache_key", key.String()).Warn("Cache read failed, reading store")
		metrics.CacheLookups.WithLabelValues(ns, "error").Inc()
		return false
	}
	if !ok {
		metrics.CacheLookups.WithLabelValues(ns, "miss").Inc()
		return false
	}
	metrics.CacheLookups.WithLabelValues(ns, "hit").Inc()
	return true
}

func (s *ResolutionService) store(ctx context.Context, key cache.Key, value interface{}) {
	if err := cache.SetJSON(ctx, s.cache, key, value, s.cacheTTL); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("cache_key", key.String()).Warn("Cache write failed")
	}
}
