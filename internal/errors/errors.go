package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents an unexpected constraint violation in the store
type ConflictError struct {
	Entity string
	Key    string
	Err    error
}

func (e *ConflictError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s conflict on %s: %v", e.Entity, e.Key, e.Err)
	}
	return fmt.Sprintf("%s conflict: %v", e.Entity, e.Err)
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// UsageBlockedError is returned when a component cannot be deleted because
// models or trims still reference it. It carries everything a caller needs to
// render the refusal without another query.
type UsageBlockedError struct {
	ComponentType  string
	ComponentID    string
	UsageCount     int
	AffectedModels []string
	AffectedTrims  []string
}

func (e *UsageBlockedError) Error() string {
	var parts []string
	if len(e.AffectedModels) > 0 {
		parts = append(parts, "models: "+strings.Join(e.AffectedModels, ", "))
	}
	if len(e.AffectedTrims) > 0 {
		parts = append(parts, "trims: "+strings.Join(e.AffectedTrims, ", "))
	}
	return fmt.Sprintf("%s %s is in use (%d references; %s)", e.ComponentType, e.ComponentID, e.UsageCount, strings.Join(parts, "; "))
}

// PartialBulkFailure summarizes a bulk operation in which some targets failed.
// Bulk operations return it as a value for presentation; it is never raised
// from the operation itself.
type PartialBulkFailure struct {
	Total     int
	Succeeded int
	Failed    int
	Errors    map[string]error
}

func (e *PartialBulkFailure) Error() string {
	return fmt.Sprintf("%d of %d targets succeeded, %d failed", e.Succeeded, e.Total, e.Failed)
}

// StoreError wraps a store-layer failure with the operation and key it happened on
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrComponentNotFound     = &NotFoundError{Entity: "component"}
	ErrModelNotFound         = &NotFoundError{Entity: "model"}
	ErrModelYearNotFound     = &NotFoundError{Entity: "model year"}
	ErrConfigurationNotFound = &NotFoundError{Entity: "configuration"}
	ErrAssignmentNotFound    = &NotFoundError{Entity: "model component assignment"}
)

// Business Logic Errors
var (
	ErrInvalidComponentType = &ValidationError{Field: "component_type", Message: "must be one of engine, brake_system, frame, suspension, wheel"}
	ErrNoTargets            = &ValidationError{Field: "model_ids", Message: "at least one target model is required"}
	ErrInvalidYearWindow    = &ValidationError{Field: "effective_from_year", Message: "must not be after effective_to_year"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// AsUsageBlocked returns the UsageBlockedError in err's chain, if any
func AsUsageBlocked(err error) (*UsageBlockedError, bool) {
	var blocked *UsageBlockedError
	if errors.As(err, &blocked) {
		return blocked, true
	}
	return nil, false
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, key string, err error) error {
	return &ConflictError{Entity: entity, Key: key, Err: err}
}

// NewStoreError wraps err with operation context
func NewStoreError(op, key string, err error) error {
	return &StoreError{Op: op, Key: key, Err: err}
}
