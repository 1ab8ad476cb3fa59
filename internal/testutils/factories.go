package testutils

import (
	"encoding/json"
	"fmt"
	"time"

	"moto-catalog-backend/internal/database/models"

	"github.com/google/uuid"
)

func baseModel() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// ComponentFactory provides methods to create test Component data
type ComponentFactory struct{}

// NewComponentFactory creates a new ComponentFactory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{}
}

// Create creates a test engine with default values
func (f *ComponentFactory) Create() *models.Component {
	return f.WithType(models.ComponentTypeEngine)
}

// WithType creates a test component of the given type with valid specs
func (f *ComponentFactory) WithType(componentType models.ComponentType) *models.Component {
	var specs interface{}
	switch componentType {
	case models.ComponentTypeEngine:
		specs = models.EngineSpecs{DisplacementCC: 765, Cylinders: 3, Layout: "inline", PowerHP: 128, Cooling: "liquid"}
	case models.ComponentTypeBrakeSystem:
		specs = models.BrakeSystemSpecs{FrontType: "dual disc", RearType: "single disc", ABS: true}
	case models.ComponentTypeFrame:
		specs = models.FrameSpecs{Type: "twin spar", Material: "aluminium", RakeDeg: 23.8}
	case models.ComponentTypeSuspension:
		specs = models.SuspensionSpecs{FrontType: "USD fork", RearType: "monoshock", Adjustable: true}
	case models.ComponentTypeWheel:
		specs = models.WheelSpecs{FrontSizeIn: 17, RearSizeIn: 17, Material: "cast aluminium", Tubeless: true}
	}
	raw, _ := json.Marshal(specs)
	return &models.Component{
		BaseModel:     baseModel(),
		ComponentType: componentType,
		Name:          fmt.Sprintf("Test %s", componentType),
		Manufacturer:  "Test Works",
		Specs:         raw,
	}
}

// ModelFactory provides methods to create test Model data
type ModelFactory struct{}

// NewModelFactory creates a new ModelFactory
func NewModelFactory() *ModelFactory {
	return &ModelFactory{}
}

// Create creates a test Model with a unique name
func (f *ModelFactory) Create() *models.Model {
	m := &models.Model{BaseModel: baseModel(), Manufacturer: "Test Motors"}
	m.Name = "Model " + m.ID.String()[:8]
	return m
}

// WithName sets a custom name for the model
func (f *ModelFactory) WithName(name string) *models.Model {
	m := f.Create()
	m.Name = name
	return m
}

// ModelYearFactory provides methods to create test ModelYear data
type ModelYearFactory struct{}

// NewModelYearFactory creates a new ModelYearFactory
func NewModelYearFactory() *ModelYearFactory {
	return &ModelYearFactory{}
}

// Create creates a test ModelYear for a model
func (f *ModelYearFactory) Create(modelID uuid.UUID, year int) *models.ModelYear {
	return &models.ModelYear{BaseModel: baseModel(), ModelID: modelID, Year: year}
}

// ConfigurationFactory provides methods to create test Configuration data
type ConfigurationFactory struct{}

// NewConfigurationFactory creates a new ConfigurationFactory
func NewConfigurationFactory() *ConfigurationFactory {
	return &ConfigurationFactory{}
}

// Create creates a test Configuration with no component ids
func (f *ConfigurationFactory) Create(modelYearID uuid.UUID, name string) *models.Configuration {
	return &models.Configuration{BaseModel: baseModel(), ModelYearID: modelYearID, Name: name}
}

// AssignmentFactory provides methods to create test ModelComponentAssignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates an unbounded default assignment
func (f *AssignmentFactory) Create(modelID uuid.UUID, componentType models.ComponentType, componentID uuid.UUID) *models.ModelComponentAssignment {
	return &models.ModelComponentAssignment{
		BaseModel:     baseModel(),
		ModelID:       modelID,
		ComponentType: componentType,
		ComponentID:   componentID,
		IsDefault:     true,
	}
}

// WithWindow creates a default assignment bounded to [from, to]
func (f *AssignmentFactory) WithWindow(modelID uuid.UUID, componentType models.ComponentType, componentID uuid.UUID, from, to int) *models.ModelComponentAssignment {
	a := f.Create(modelID, componentType, componentID)
	a.EffectiveFromYear = &from
	a.EffectiveToYear = &to
	return a
}

// FactorySet groups every factory
type FactorySet struct {
	Component     *ComponentFactory
	Model         *ModelFactory
	ModelYear     *ModelYearFactory
	Configuration *ConfigurationFactory
	Assignment    *AssignmentFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Component:     NewComponentFactory(),
		Model:         NewModelFactory(),
		ModelYear:     NewModelYearFactory(),
		Configuration: NewConfigurationFactory(),
		Assignment:    NewAssignmentFactory(),
	}
}
