package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "configuration"}
		assert.Equal(t, "configuration not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "model"}
		err2 := &NotFoundError{Entity: "model"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrModelNotFound, ErrComponentNotFound))
	})

	t.Run("IsNotFound sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("resolve: %w", ErrConfigurationNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.True(t, errors.Is(wrapped, ErrConfigurationNotFound))
		assert.False(t, IsNotFound(ErrNoTargets))
	})
}

func TestConflictError(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := NewConflictError("model component assignment", "model=1 type=engine", cause)

	assert.Equal(t, "model component assignment conflict on model=1 type=engine: duplicate key value violates unique constraint", err.Error())
	assert.True(t, IsConflict(err))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, IsConflict(cause))
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "component_type", Message: "unknown"}
		assert.Equal(t, "validation error: component_type - unknown", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid"}
		assert.Equal(t, "validation error: invalid", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrInvalidYearWindow))
		assert.False(t, IsValidation(ErrModelNotFound))
	})
}

func TestUsageBlockedError(t *testing.T) {
	err := &UsageBlockedError{
		ComponentType:  "engine",
		ComponentID:    "e1",
		UsageCount:     2,
		AffectedModels: []string{"Street Triple"},
		AffectedTrims:  []string{"Street Triple 2021 RS"},
	}

	assert.Equal(t, "engine e1 is in use (2 references; models: Street Triple; trims: Street Triple 2021 RS)", err.Error())

	blocked, ok := AsUsageBlocked(fmt.Errorf("delete: %w", err))
	assert.True(t, ok)
	assert.Equal(t, 2, blocked.UsageCount)

	_, ok = AsUsageBlocked(ErrComponentNotFound)
	assert.False(t, ok)
}

func TestPartialBulkFailure(t *testing.T) {
	err := &PartialBulkFailure{Total: 3, Succeeded: 2, Failed: 1}
	assert.Equal(t, "2 of 3 targets succeeded, 1 failed", err.Error())
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")

	t.Run("with key", func(t *testing.T) {
		err := NewStoreError("upsert assignment", "model=1 type=engine", cause)
		assert.Equal(t, "upsert assignment model=1 type=engine: connection reset", err.Error())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("without key", func(t *testing.T) {
		err := NewStoreError("list assignments", "", cause)
		assert.Equal(t, "list assignments: connection reset", err.Error())
	})
}
