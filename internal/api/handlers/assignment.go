package handlers

import (
	"net/http"

	"moto-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for model component assignments
type AssignmentHandler struct {
	assignments service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignments service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// AssignComponent handles POST /assignments/:type
// @Summary Assign a component to many models
// @Description Make the component the default of its type for every target model. Each target succeeds or fails on its own.
// @Tags assignments
// @Accept json
// @Produce json
// @Param type path string true "Component type" Enums(engine, brake_system, frame, suspension, wheel)
// @Param assignment body service.AssignRequest true "Assignment"
// @Success 200 {object} service.BulkAssignResult "Every target succeeded"
// @Success 207 {object} service.BulkAssignResult "Some targets failed"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 422 {object} service.BulkAssignResult "Every target failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignments/{type} [post]
func (h *AssignmentHandler) AssignComponent(c *gin.Context) {
	componentType, ok := parseTypeParam(c)
	if !ok {
		return
	}

	var req service.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	req.ComponentType = componentType

	result, err := h.assignments.Assign(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to assign component")
		return
	}

	status := http.StatusOK
	switch {
	case result.Failed > 0 && result.Succeeded == 0:
		status = http.StatusUnprocessableEntity
	case result.Failed > 0:
		status = http.StatusMultiStatus
	}
	c.JSON(status, result)
}

// ListModelAssignments handles GET /models/:id/assignments
// @Summary List the default components of a model
// @Tags assignments
// @Produce json
// @Param id path string true "Model ID (UUID)"
// @Success 200 {array} models.ModelComponentAssignment "Assignments"
// @Failure 400 {object} ErrorResponse "Invalid model ID"
// @Failure 404 {object} ErrorResponse "Model not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /models/{id}/assignments [get]
func (h *AssignmentHandler) ListModelAssignments(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "model")
	if !ok {
		return
	}

	assignments, err := h.assignments.ListModelAssignments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to list assignments")
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// RemoveModelAssignment handles DELETE /models/:id/assignments/:type
// @Summary Remove a model default
// @Description Remove the default of one component type from a model. Removing a missing assignment succeeds.
// @Tags assignments
// @Param id path string true "Model ID (UUID)"
// @Param type path string true "Component type" Enums(engine, brake_system, frame, suspension, wheel)
// @Success 204 "Removed"
// @Failure 400 {object} ErrorResponse "Invalid model ID or component type"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /models/{id}/assignments/{type} [delete]
func (h *AssignmentHandler) RemoveModelAssignment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "model")
	if !ok {
		return
	}
	componentType, ok := parseTypeParam(c)
	if !ok {
		return
	}

	if err := h.assignments.Remove(c.Request.Context(), id, componentType); err != nil {
		respondError(c, err, "Failed to remove assignment")
		return
	}

	c.Status(http.StatusNoContent)
}
