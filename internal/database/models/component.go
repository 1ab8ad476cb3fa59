package models

import (
	"encoding/json"
)

// Component is a catalog record for a shared mechanical component. Specs holds
// the type-specific schema (EngineSpecs, BrakeSystemSpecs, ...) as JSON.
type Component struct {
	BaseModel
	ComponentType ComponentType   `json:"component_type" gorm:"type:varchar(30);not null;index" validate:"required"`
	Name          string          `json:"name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Manufacturer  string          `json:"manufacturer" gorm:"size:100" validate:"max=100"`
	Specs         json.RawMessage `json:"specs" gorm:"type:jsonb" swaggertype:"object"`
}

// TableName returns the table name for Component
func (Component) TableName() string {
	return "components"
}

// EngineSpecs is the spec schema for engines
type EngineSpecs struct {
	DisplacementCC int     `json:"displacement_cc" validate:"required,min=1"`
	Cylinders      int     `json:"cylinders" validate:"required,min=1,max=8"`
	Layout         string  `json:"layout" validate:"omitempty,max=50"`
	PowerHP        float64 `json:"power_hp" validate:"omitempty,min=0"`
	TorqueNM       float64 `json:"torque_nm" validate:"omitempty,min=0"`
	Cooling        string  `json:"cooling" validate:"omitempty,oneof=air liquid oil"`
}

// BrakeSystemSpecs is the spec schema for brake systems
type BrakeSystemSpecs struct {
	FrontType    string `json:"front_type" validate:"required,max=100"`
	RearType     string `json:"rear_type" validate:"required,max=100"`
	FrontDiscMM  int    `json:"front_disc_mm" validate:"omitempty,min=0"`
	RearDiscMM   int    `json:"rear_disc_mm" validate:"omitempty,min=0"`
	ABS          bool   `json:"abs"`
	CorneringABS bool   `json:"cornering_abs"`
}

// FrameSpecs is the spec schema for frames
type FrameSpecs struct {
	Type     string  `json:"type" validate:"required,max=100"`
	Material string  `json:"material" validate:"required,max=100"`
	RakeDeg  float64 `json:"rake_deg" validate:"omitempty,min=0,max=90"`
	TrailMM  float64 `json:"trail_mm" validate:"omitempty,min=0"`
}

// SuspensionSpecs is the spec schema for suspension setups
type SuspensionSpecs struct {
	FrontType     string `json:"front_type" validate:"required,max=100"`
	RearType      string `json:"rear_type" validate:"required,max=100"`
	FrontTravelMM int    `json:"front_travel_mm" validate:"omitempty,min=0"`
	RearTravelMM  int    `json:"rear_travel_mm" validate:"omitempty,min=0"`
	Adjustable    bool   `json:"adjustable"`
}

// WheelSpecs is the spec schema for wheel sets
type WheelSpecs struct {
	FrontSizeIn float64 `json:"front_size_in" validate:"required,min=1"`
	RearSizeIn  float64 `json:"rear_size_in" validate:"required,min=1"`
	Material    string  `json:"material" validate:"omitempty,max=100"`
	Spoked      bool    `json:"spoked"`
	Tubeless    bool    `json:"tubeless"`
}

// NewSpecs returns an empty spec value for t, ready to unmarshal into
func NewSpecs(t ComponentType) interface{} {
	switch t {
	case ComponentTypeEngine:
		return &EngineSpecs{}
	case ComponentTypeBrakeSystem:
		return &BrakeSystemSpecs{}
	case ComponentTypeFrame:
		return &FrameSpecs{}
	case ComponentTypeSuspension:
		return &SuspensionSpecs{}
	case ComponentTypeWheel:
		return &WheelSpecs{}
	}
	return nil
}
