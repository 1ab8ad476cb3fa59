package handlers

import (
	"net/http"

	"moto-catalog-backend/internal/database/models"
	apperrors "moto-catalog-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// UsageBlockedResponse is returned when a component cannot be deleted
type UsageBlockedResponse struct {
	Error          string   `json:"error" example:"component is in use"`
	ComponentType  string   `json:"component_type" example:"engine"`
	ComponentID    string   `json:"component_id"`
	UsageCount     int      `json:"usage_count" example:"2"`
	AffectedModels []string `json:"affected_models"`
	AffectedTrims  []string `json:"affected_trims"`
}

// respondError maps the application error taxonomy onto HTTP statuses
func respondError(c *gin.Context, err error, message string) {
	if blocked, ok := apperrors.AsUsageBlocked(err); ok {
		c.JSON(http.StatusConflict, UsageBlockedResponse{
			Error:          blocked.Error(),
			ComponentType:  blocked.ComponentType,
			ComponentID:    blocked.ComponentID,
			UsageCount:     blocked.UsageCount,
			AffectedModels: blocked.AffectedModels,
			AffectedTrims:  blocked.AffectedTrims,
		})
		return
	}

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message, Details: err.Error()})
	}
}

// parseUUIDParam reads a UUID path parameter, answering 400 when malformed
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + label + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// parseTypeParam reads the component type path parameter
func parseTypeParam(c *gin.Context) (models.ComponentType, bool) {
	t := models.ComponentType(c.Param("type"))
	if !t.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.ErrInvalidComponentType.Error()})
		return "", false
	}
	return t, true
}
