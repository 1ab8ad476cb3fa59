package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"moto-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ResolutionHandler handles HTTP requests for effective components of configurations
type ResolutionHandler struct {
	resolution  service.ResolutionServiceInterface
	assignments service.AssignmentServiceInterface
}

// NewResolutionHandler creates a new resolution handler
func NewResolutionHandler(resolution service.ResolutionServiceInterface, assignments service.AssignmentServiceInterface) *ResolutionHandler {
	return &ResolutionHandler{
		resolution:  resolution,
		assignments: assignments,
	}
}

// SetOverrideRequest sets or clears a trim override. component_id must be
// present; an explicit null clears the override.
type SetOverrideRequest struct {
	ComponentID *uuid.UUID `json:"component_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

var errMissingComponentID = errors.New("component_id is required, send null to clear the override")

// UnmarshalJSON tells an absent component_id apart from an explicit null
func (r *SetOverrideRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	raw, ok := fields["component_id"]
	if !ok {
		return errMissingComponentID
	}

	r.ComponentID = nil
	if string(raw) == "null" {
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(raw, &id); err != nil {
		return fmt.Errorf("component_id: %w", err)
	}
	r.ComponentID = &id
	return nil
}

// GetConfigurationComponents handles GET /configurations/:id/components
// @Summary Resolve every component of a configuration
// @Description Get the effective component of each type for a configuration, with its source (trim, model or none)
// @Tags configurations
// @Produce json
// @Param id path string true "Configuration ID (UUID)"
// @Success 200 {object} service.ConfigurationResolution "Resolved components"
// @Failure 400 {object} ErrorResponse "Invalid configuration ID"
// @Failure 404 {object} ErrorResponse "Configuration not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /configurations/{id}/components [get]
func (h *ResolutionHandler) GetConfigurationComponents(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "configuration")
	if !ok {
		return
	}

	result, err := h.resolution.ResolveAll(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to resolve components")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetConfigurationComponent handles GET /configurations/:id/components/:type
// @Summary Resolve one component of a configuration
// @Tags configurations
// @Produce json
// @Param id path string true "Configuration ID (UUID)"
// @Param type path string true "Component type" Enums(engine, brake_system, frame, suspension, wheel)
// @Success 200 {object} service.Resolution "Resolved component"
// @Failure 400 {object} ErrorResponse "Invalid configuration ID or component type"
// @Failure 404 {object} ErrorResponse "Configuration not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /configurations/{id}/components/{type} [get]
func (h *ResolutionHandler) GetConfigurationComponent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "configuration")
	if !ok {
		return
	}
	componentType, ok := parseTypeParam(c)
	if !ok {
		return
	}

	result, err := h.resolution.Resolve(c.Request.Context(), id, componentType)
	if err != nil {
		respondError(c, err, "Failed to resolve component")
		return
	}

	c.JSON(http.StatusOK, result)
}

// SetConfigurationComponent handles PUT /configurations/:id/components/:type
// @Summary Set or clear a trim override
// @Description Override the model default for one component type on a configuration. A null component_id removes the override; omitting it is rejected.
// @Tags configurations
// @Accept json
// @Produce json
// @Param id path string true "Configuration ID (UUID)"
// @Param type path string true "Component type" Enums(engine, brake_system, frame, suspension, wheel)
// @Param override body SetOverrideRequest true "Override"
// @Success 200 {object} service.Resolution "Component resolved after the change"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Configuration or component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /configurations/{id}/components/{type} [put]
func (h *ResolutionHandler) SetConfigurationComponent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "configuration")
	if !ok {
		return
	}
	componentType, ok := parseTypeParam(c)
	if !ok {
		return
	}

	var req SetOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.assignments.SetTrimOverride(ctx, id, componentType, req.ComponentID); err != nil {
		respondError(c, err, "Failed to set override")
		return
	}

	result, err := h.resolution.Resolve(ctx, id, componentType)
	if err != nil {
		respondError(c, err, "Failed to resolve component")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetModelYearConfigurations handles GET /model-years/:id/configurations
// @Summary Resolve every configuration of a model year
// @Tags model-years
// @Produce json
// @Param id path string true "Model year ID (UUID)"
// @Success 200 {array} service.ConfigurationResolution "Resolved configurations"
// @Failure 400 {object} ErrorResponse "Invalid model year ID"
// @Failure 404 {object} ErrorResponse "Model year not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /model-years/{id}/configurations [get]
func (h *ResolutionHandler) GetModelYearConfigurations(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "model year")
	if !ok {
		return
	}

	result, err := h.resolution.ResolveYear(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to resolve model year")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetModelYearsConfigurations handles GET /model-years/configurations?ids=a,b
// @Summary Resolve the configurations of several model years
// @Tags model-years
// @Produce json
// @Param ids query string true "Comma separated model year IDs"
// @Success 200 {object} map[string][]service.ConfigurationResolution "Resolved configurations by model year"
// @Failure 400 {object} ErrorResponse "Invalid model year IDs"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /model-years/configurations [get]
func (h *ResolutionHandler) GetModelYearsConfigurations(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("ids"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "ids query parameter is required"})
		return
	}

	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid model year ID: " + part})
			return
		}
		ids = append(ids, id)
	}

	result, err := h.resolution.ResolveYears(c.Request.Context(), ids)
	if err != nil {
		respondError(c, err, "Failed to resolve model years")
		return
	}

	c.JSON(http.StatusOK, result)
}
