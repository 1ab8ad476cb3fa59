package models

import (
	"github.com/google/uuid"
)

// ModelComponentAssignment is the default component of one type for a model.
// At most one row exists per (model_id, component_type).
type ModelComponentAssignment struct {
	BaseModel
	ModelID           uuid.UUID     `json:"model_id" gorm:"type:uuid;not null;uniqueIndex:idx_model_component_type,priority:1" validate:"required"`
	ComponentType     ComponentType `json:"component_type" gorm:"type:varchar(30);not null;uniqueIndex:idx_model_component_type,priority:2" validate:"required"`
	ComponentID       uuid.UUID     `json:"component_id" gorm:"type:uuid;not null;index" validate:"required"`
	IsDefault         bool          `json:"is_default" gorm:"not null;default:true"`
	EffectiveFromYear *int          `json:"effective_from_year,omitempty"`
	EffectiveToYear   *int          `json:"effective_to_year,omitempty"`
	Notes             string        `json:"notes" gorm:"type:text"`

	// Relationships
	Model *Model `json:"model,omitempty" gorm:"foreignKey:ModelID"`
}

// TableName returns the table name for ModelComponentAssignment
func (ModelComponentAssignment) TableName() string {
	return "model_component_assignments"
}

// AppliesToYear reports whether year lies inside the effective window.
// A missing bound is open on that side.
func (a *ModelComponentAssignment) AppliesToYear(year int) bool {
	if a.EffectiveFromYear != nil && year < *a.EffectiveFromYear {
		return false
	}
	if a.EffectiveToYear != nil && year > *a.EffectiveToYear {
		return false
	}
	return true
}
