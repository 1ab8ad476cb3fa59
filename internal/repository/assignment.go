package repository

import (
	"context"

	"moto-catalog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssignmentRepository handles database operations for model component assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Upsert inserts the assignment or, when one already exists for
// (model_id, component_type), overwrites it. The stored row is read back into
// assignment so its ID reflects the surviving row.
func (r *AssignmentRepository) Upsert(ctx context.Context, assignment *models.ModelComponentAssignment) error {
	db := r.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "model_id"}, {Name: "component_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"component_id", "is_default", "effective_from_year", "effective_to_year", "notes", "updated_at"}),
	}).Create(assignment).Error
	if err != nil {
		return err
	}

	var stored models.ModelComponentAssignment
	if err := db.First(&stored, "model_id = ? AND component_type = ?", assignment.ModelID, assignment.ComponentType).Error; err != nil {
		return err
	}
	*assignment = stored
	return nil
}

// Delete removes the assignment for (model_id, component_type) and reports how many rows went away
func (r *AssignmentRepository) Delete(ctx context.Context, modelID uuid.UUID, componentType models.ComponentType) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.ModelComponentAssignment{}, "model_id = ? AND component_type = ?", modelID, componentType)
	return result.RowsAffected, result.Error
}

// GetByModelAndType retrieves the assignment for (model_id, component_type)
func (r *AssignmentRepository) GetByModelAndType(ctx context.Context, modelID uuid.UUID, componentType models.ComponentType) (*models.ModelComponentAssignment, error) {
	var assignment models.ModelComponentAssignment
	err := r.db.WithContext(ctx).First(&assignment, "model_id = ? AND component_type = ?", modelID, componentType).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListByModelIDs retrieves all assignments of the given models
func (r *AssignmentRepository) ListByModelIDs(ctx context.Context, modelIDs []uuid.UUID) ([]models.ModelComponentAssignment, error) {
	var assignments []models.ModelComponentAssignment
	if len(modelIDs) == 0 {
		return assignments, nil
	}
	err := r.db.WithContext(ctx).
		Where("model_id IN ?", modelIDs).
		Order("component_type").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListReferencing returns the assignments pointing at a component, with model names
func (r *AssignmentRepository) ListReferencing(ctx context.Context, componentType models.ComponentType, componentID uuid.UUID) ([]ModelReference, error) {
	var refs []ModelReference
	err := r.db.WithContext(ctx).
		Table("model_component_assignments AS a").
		Select("a.id AS assignment_id, m.id AS model_id, m.name AS model_name").
		Joins("JOIN models AS m ON m.id = a.model_id").
		Where("a.component_type = ? AND a.component_id = ?", componentType, componentID).
		Order("m.name").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}
