package models

// ComponentType identifies a kind of shared mechanical component
type ComponentType string

const (
	ComponentTypeEngine      ComponentType = "engine"
	ComponentTypeBrakeSystem ComponentType = "brake_system"
	ComponentTypeFrame       ComponentType = "frame"
	ComponentTypeSuspension  ComponentType = "suspension"
	ComponentTypeWheel       ComponentType = "wheel"
)

// AllComponentTypes lists every component type in a stable order
var AllComponentTypes = []ComponentType{
	ComponentTypeEngine,
	ComponentTypeBrakeSystem,
	ComponentTypeFrame,
	ComponentTypeSuspension,
	ComponentTypeWheel,
}

// IsValid checks if the ComponentType is valid
func (t ComponentType) IsValid() bool {
	switch t {
	case ComponentTypeEngine, ComponentTypeBrakeSystem, ComponentTypeFrame, ComponentTypeSuspension, ComponentTypeWheel:
		return true
	}
	return false
}

// IDColumn is the configurations column holding the trim's component id for t
func (t ComponentType) IDColumn() string {
	return string(t) + "_id"
}

// OverrideColumn is the configurations column holding the trim's override flag for t
func (t ComponentType) OverrideColumn() string {
	return string(t) + "_override"
}

// ResolutionSource tells where an effective component came from
type ResolutionSource string

const (
	SourceTrim  ResolutionSource = "trim"
	SourceModel ResolutionSource = "model"
	SourceNone  ResolutionSource = "none"
)
