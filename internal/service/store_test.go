package service_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"moto-catalog-backend/internal/database/models"
	"moto-catalog-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type assignmentKey struct {
	modelID       uuid.UUID
	componentType models.ComponentType
}

// memStore is an in-memory relational store backing every repository
// interface, so services can be exercised end to end without Postgres
type memStore struct {
	mu          sync.Mutex
	components  map[uuid.UUID]models.Component
	models      map[uuid.UUID]models.Model
	years       map[uuid.UUID]models.ModelYear
	configs     map[uuid.UUID]models.Configuration
	assignments map[assignmentKey]models.ModelComponentAssignment

	// upsertErr fails upserts for the given model
	upsertErr map[uuid.UUID]error

	// afterList runs once, after the next assignment listing has read its rows
	afterList func()
}

func newMemStore() *memStore {
	return &memStore{
		components:  make(map[uuid.UUID]models.Component),
		models:      make(map[uuid.UUID]models.Model),
		years:       make(map[uuid.UUID]models.ModelYear),
		configs:     make(map[uuid.UUID]models.Configuration),
		assignments: make(map[assignmentKey]models.ModelComponentAssignment),
		upsertErr:   make(map[uuid.UUID]error),
	}
}

func (s *memStore) catalog() *memCatalog        { return &memCatalog{s} }
func (s *memStore) modelRepo() *memModels       { return &memModels{s} }
func (s *memStore) yearRepo() *memYears         { return &memYears{s} }
func (s *memStore) configRepo() *memConfigs     { return &memConfigs{s} }
func (s *memStore) assignmentRepo() *memAssigns { return &memAssigns{s} }

func ensureID(b *models.BaseModel) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

func (s *memStore) addComponent(t models.ComponentType, name string) uuid.UUID {
	c := models.Component{ComponentType: t, Name: name}
	_ = s.catalog().Create(context.Background(), &c)
	return c.ID
}

func (s *memStore) addModel(name string) uuid.UUID {
	m := models.Model{Name: name, Manufacturer: "Test Motors"}
	_ = s.modelRepo().Create(context.Background(), &m)
	return m.ID
}

func (s *memStore) addYear(modelID uuid.UUID, year int) uuid.UUID {
	y := models.ModelYear{ModelID: modelID, Year: year}
	_ = s.yearRepo().Create(context.Background(), &y)
	return y.ID
}

func (s *memStore) addTrim(yearID uuid.UUID, name string) uuid.UUID {
	c := models.Configuration{ModelYearID: yearID, Name: name}
	_ = s.configRepo().Create(context.Background(), &c)
	return c.ID
}

func (s *memStore) assignmentCount(modelID uuid.UUID, t models.ComponentType) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.assignments {
		if k.modelID == modelID && k.componentType == t {
			n++
		}
	}
	return n
}

type memCatalog struct{ s *memStore }

func (r *memCatalog) Create(_ context.Context, c *models.Component) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ensureID(&c.BaseModel)
	r.s.components[c.ID] = *c
	return nil
}

func (r *memCatalog) GetByID(_ context.Context, t models.ComponentType, id uuid.UUID) (*models.Component, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.components[id]
	if !ok || c.ComponentType != t {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *memCatalog) ListByType(_ context.Context, t models.ComponentType, limit, offset int) ([]models.Component, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []models.Component
	for _, c := range r.s.components {
		if c.ComponentType == t {
			all = append(all, c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := int64(len(all))
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *memCatalog) Delete(_ context.Context, t models.ComponentType, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.components[id]
	if !ok || c.ComponentType != t {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.components, id)
	return nil
}

type memModels struct{ s *memStore }

func (r *memModels) Create(_ context.Context, m *models.Model) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ensureID(&m.BaseModel)
	r.s.models[m.ID] = *m
	return nil
}

func (r *memModels) GetByID(_ context.Context, id uuid.UUID) (*models.Model, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.models[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (r *memModels) GetByName(_ context.Context, manufacturer, name string) (*models.Model, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.models {
		if m.Manufacturer == manufacturer && m.Name == name {
			return &m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type memYears struct{ s *memStore }

func (r *memYears) Create(_ context.Context, y *models.ModelYear) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ensureID(&y.BaseModel)
	r.s.years[y.ID] = *y
	return nil
}

func (r *memYears) GetByID(_ context.Context, id uuid.UUID) (*models.ModelYear, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	y, ok := r.s.years[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &y, nil
}

func (r *memYears) GetByModelAndYear(_ context.Context, modelID uuid.UUID, year int) (*models.ModelYear, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, y := range r.s.years {
		if y.ModelID == modelID && y.Year == year {
			return &y, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memYears) ListIDsByModelIDs(_ context.Context, modelIDs []uuid.UUID) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wanted := make(map[uuid.UUID]bool, len(modelIDs))
	for _, id := range modelIDs {
		wanted[id] = true
	}
	var ids []uuid.UUID
	for _, y := range r.s.years {
		if wanted[y.ModelID] {
			ids = append(ids, y.ID)
		}
	}
	return ids, nil
}

type memConfigs struct{ s *memStore }

func (r *memConfigs) Create(_ context.Context, c *models.Configuration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ensureID(&c.BaseModel)
	r.s.configs[c.ID] = *c
	return nil
}

// withYear returns a copy of c with its model year attached; callers hold the lock
func (r *memConfigs) withYear(c models.Configuration) models.Configuration {
	if y, ok := r.s.years[c.ModelYearID]; ok {
		c.ModelYear = &y
	}
	return c
}

func (r *memConfigs) GetByID(_ context.Context, id uuid.UUID) (*models.Configuration, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.configs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c = r.withYear(c)
	return &c, nil
}

func (r *memConfigs) ListByModelYearIDs(_ context.Context, yearIDs []uuid.UUID) ([]models.Configuration, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wanted := make(map[uuid.UUID]bool, len(yearIDs))
	for _, id := range yearIDs {
		wanted[id] = true
	}
	var out []models.Configuration
	for _, c := range r.s.configs {
		if wanted[c.ModelYearID] {
			out = append(out, r.withYear(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memConfigs) SetComponent(_ context.Context, id uuid.UUID, t models.ComponentType, componentID *uuid.UUID) error {
	if !t.IsValid() {
		return fmt.Errorf("invalid component type %q", t)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.configs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.SetComponent(t, componentID)
	r.s.configs[id] = c
	return nil
}

// setLatent stores a component id with the override flag off
func (r *memConfigs) setLatent(id uuid.UUID, t models.ComponentType, componentID uuid.UUID) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := r.s.configs[id]
	c.SetComponent(t, &componentID)
	switch t {
	case models.ComponentTypeEngine:
		c.EngineOverride = false
	case models.ComponentTypeBrakeSystem:
		c.BrakeSystemOverride = false
	case models.ComponentTypeFrame:
		c.FrameOverride = false
	case models.ComponentTypeSuspension:
		c.SuspensionOverride = false
	case models.ComponentTypeWheel:
		c.WheelOverride = false
	}
	r.s.configs[id] = c
}

func (r *memConfigs) ListReferencing(_ context.Context, t models.ComponentType, componentID uuid.UUID) ([]repository.TrimReference, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var refs []repository.TrimReference
	for _, c := range r.s.configs {
		id := c.ComponentID(t)
		if id == nil || *id != componentID {
			continue
		}
		y := r.s.years[c.ModelYearID]
		m := r.s.models[y.ModelID]
		refs = append(refs, repository.TrimReference{
			ConfigurationID:   c.ID,
			ConfigurationName: c.Name,
			ModelID:           m.ID,
			ModelName:         m.Name,
			Year:              y.Year,
			Override:          c.Override(t),
		})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].ConfigurationName < refs[j].ConfigurationName })
	return refs, nil
}

type memAssigns struct{ s *memStore }

func (r *memAssigns) Upsert(_ context.Context, a *models.ModelComponentAssignment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.upsertErr[a.ModelID]; err != nil {
		return err
	}
	key := assignmentKey{a.ModelID, a.ComponentType}
	if existing, ok := r.s.assignments[key]; ok {
		a.BaseModel = existing.BaseModel
	}
	ensureID(&a.BaseModel)
	r.s.assignments[key] = *a
	return nil
}

func (r *memAssigns) Delete(_ context.Context, modelID uuid.UUID, t models.ComponentType) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := assignmentKey{modelID, t}
	if _, ok := r.s.assignments[key]; !ok {
		return 0, nil
	}
	delete(r.s.assignments, key)
	return 1, nil
}

func (r *memAssigns) GetByModelAndType(_ context.Context, modelID uuid.UUID, t models.ComponentType) (*models.ModelComponentAssignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.assignments[assignmentKey{modelID, t}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (r *memAssigns) ListByModelIDs(_ context.Context, modelIDs []uuid.UUID) ([]models.ModelComponentAssignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wanted := make(map[uuid.UUID]bool, len(modelIDs))
	for _, id := range modelIDs {
		wanted[id] = true
	}
	var out []models.ModelComponentAssignment
	for k, a := range r.s.assignments {
		if wanted[k.modelID] {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ComponentType < out[j].ComponentType })
	hook := r.s.afterList
	r.s.afterList = nil
	if hook != nil {
		r.s.mu.Unlock()
		hook()
		r.s.mu.Lock()
	}
	return out, nil
}

func (r *memAssigns) ListReferencing(_ context.Context, t models.ComponentType, componentID uuid.UUID) ([]repository.ModelReference, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var refs []repository.ModelReference
	for k, a := range r.s.assignments {
		if k.componentType == t && a.ComponentID == componentID {
			refs = append(refs, repository.ModelReference{
				AssignmentID: a.ID,
				ModelID:      a.ModelID,
				ModelName:    r.s.models[a.ModelID].Name,
			})
		}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].ModelName < refs[j].ModelName })
	return refs, nil
}
