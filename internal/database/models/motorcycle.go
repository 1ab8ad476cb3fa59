package models

import (
	"github.com/google/uuid"
)

// Model is a motorcycle model family, the unit at which default components are assigned
type Model struct {
	BaseModel
	Name         string `json:"name" gorm:"size:200;not null;uniqueIndex:idx_model_manufacturer_name,priority:2" validate:"required,min=1,max=200"`
	Manufacturer string `json:"manufacturer" gorm:"size:100;not null;uniqueIndex:idx_model_manufacturer_name,priority:1" validate:"required,max=100"`

	// Relationships
	Years       []ModelYear                `json:"years,omitempty" gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE"`
	Assignments []ModelComponentAssignment `json:"assignments,omitempty" gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Model
func (Model) TableName() string {
	return "models"
}

// ModelYear is a model instance for one production year
type ModelYear struct {
	BaseModel
	ModelID uuid.UUID `json:"model_id" gorm:"type:uuid;not null;uniqueIndex:idx_model_year,priority:1" validate:"required"`
	Year    int       `json:"year" gorm:"not null;uniqueIndex:idx_model_year,priority:2" validate:"required,min=1885,max=2100"`

	// Relationships
	Model          *Model          `json:"model,omitempty" gorm:"foreignKey:ModelID"`
	Configurations []Configuration `json:"configurations,omitempty" gorm:"foreignKey:ModelYearID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ModelYear
func (ModelYear) TableName() string {
	return "model_years"
}

// Configuration is a trim: a purchasable variant under a model year. For each
// component type it stores an optional component id and an override flag.
type Configuration struct {
	BaseModel
	ModelYearID uuid.UUID `json:"model_year_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"size:200;not null" validate:"required,min=1,max=200"`

	EngineID            *uuid.UUID `json:"engine_id" gorm:"type:uuid;index"`
	EngineOverride      bool       `json:"engine_override" gorm:"not null;default:false"`
	BrakeSystemID       *uuid.UUID `json:"brake_system_id" gorm:"type:uuid;index"`
	BrakeSystemOverride bool       `json:"brake_system_override" gorm:"not null;default:false"`
	FrameID             *uuid.UUID `json:"frame_id" gorm:"type:uuid;index"`
	FrameOverride       bool       `json:"frame_override" gorm:"not null;default:false"`
	SuspensionID        *uuid.UUID `json:"suspension_id" gorm:"type:uuid;index"`
	SuspensionOverride  bool       `json:"suspension_override" gorm:"not null;default:false"`
	WheelID             *uuid.UUID `json:"wheel_id" gorm:"type:uuid;index"`
	WheelOverride       bool       `json:"wheel_override" gorm:"not null;default:false"`

	// Relationships
	ModelYear *ModelYear `json:"model_year,omitempty" gorm:"foreignKey:ModelYearID"`
}

// TableName returns the table name for Configuration
func (Configuration) TableName() string {
	return "configurations"
}

// ComponentID returns the stored component id for t, whatever the override flag says
func (c *Configuration) ComponentID(t ComponentType) *uuid.UUID {
	switch t {
	case ComponentTypeEngine:
		return c.EngineID
	case ComponentTypeBrakeSystem:
		return c.BrakeSystemID
	case ComponentTypeFrame:
		return c.FrameID
	case ComponentTypeSuspension:
		return c.SuspensionID
	case ComponentTypeWheel:
		return c.WheelID
	}
	return nil
}

// Override returns the override flag for t
func (c *Configuration) Override(t ComponentType) bool {
	switch t {
	case ComponentTypeEngine:
		return c.EngineOverride
	case ComponentTypeBrakeSystem:
		return c.BrakeSystemOverride
	case ComponentTypeFrame:
		return c.FrameOverride
	case ComponentTypeSuspension:
		return c.SuspensionOverride
	case ComponentTypeWheel:
		return c.WheelOverride
	}
	return false
}

// SetComponent sets the id and override flag for t in memory. The flag is true
// exactly when id is non-nil.
func (c *Configuration) SetComponent(t ComponentType, id *uuid.UUID) {
	override := id != nil
	switch t {
	case ComponentTypeEngine:
		c.EngineID, c.EngineOverride = id, override
	case ComponentTypeBrakeSystem:
		c.BrakeSystemID, c.BrakeSystemOverride = id, override
	case ComponentTypeFrame:
		c.FrameID, c.FrameOverride = id, override
	case ComponentTypeSuspension:
		c.SuspensionID, c.SuspensionOverride = id, override
	case ComponentTypeWheel:
		c.WheelID, c.WheelOverride = id, override
	}
}
