package handlers

import (
	"net/http"
	"strconv"

	"moto-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ComponentHandler handles HTTP requests for catalog components and their usage
type ComponentHandler struct {
	catalog service.CatalogServiceInterface
	usage   service.UsageServiceInterface
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(catalog service.CatalogServiceInterface, usage service.UsageServiceInterface) *ComponentHandler {
	return &ComponentHandler{
		catalog: catalog,
		usage:   usage,
	}
}

// CreateComponent handles POST /components
// @Summary Add a component to the catalog
// @Description Specs are validated against the schema of the component type
// @Tags components
// @Accept json
// @Produce json
// @Param component body service.CreateComponentRequest true "Component data"
// @Success 201 {object} models.Component "Created component"
// @Failure 400 {object} ErrorResponse "Invalid request body or specs"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /components [post]
func (h *ComponentHandler) CreateComponent(c *gin.Context) {
	var req service.CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	component, err := h.catalog.CreateComponent(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create component")
		return
	}

	c.JSON(http.StatusCreated, component)
}

// ListComponents handles GET /components/:type
// @Summary List components of one type
// @Tags components
// @Produce json
// @Param type path string true "Component type" Enums(engine, brake_system, frame, suspension, wheel)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ComponentListResponse "Components"
// @Failure 400 {object} ErrorResponse "Invalid component type"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /components/{type} [get]
func (h *ComponentHandler) ListComponents(c *gin.Context) {
	componentType, ok := parseTypeParam(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.catalog.ListComponents(c.Request.Context(), componentType, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list components")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetComponent handles GET /components/:type/:id
// @Summary Get a component
// @Tags components
// @Produce json
// @Param type path string true "Component type" Enums(engine, brake_system, frame, suspension, wheel)
// @Param id path string true "Component ID (UUID)"
// @Success 200 {object} models.Component "Component"
// @Failure 400 {object} ErrorResponse "Invalid component ID or type"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /components/{type}/{id} [get]
func (h *ComponentHandler) GetComponent(c *gin.Context) {
	componentType, ok := parseTypeParam(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "component")
	if !ok {
		return
	}

	component, err := h.catalog.GetComponent(c.Request.Context(), componentType, id)
	if err != nil {
		respondError(c, err, "Failed to get component")
		return
	}

	c.JSON(http.StatusOK, component)
}

// GetComponentUsage handles GET /components/:type/:id/usage
// @Summary Check whether a component can be deleted
// @Description Lists the models and trims that still reference the component. A trim counts even when its override is off.
// @Tags components
// @Produce json
// @Param type path string true "Component type" Enums(engine, brake_system, frame, suspension, wheel)
// @Param id path string true "Component ID (UUID)"
// @Success 200 {object} service.UsageReport "Usage report"
// @Failure 400 {object} ErrorResponse "Invalid component ID or type"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /components/{type}/{id}/usage [get]
func (h *ComponentHandler) GetComponentUsage(c *gin.Context) {
	componentType, ok := parseTypeParam(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "component")
	if !ok {
		return
	}

	report, err := h.usage.CanDelete(c.Request.Context(), componentType, id)
	if err != nil {
		respondError(c, err, "Failed to compute usage")
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetComponentStats handles GET /components/:type/:id/stats
// @Summary Get reference counts of a component
// @Tags components
// @Produce json
// @Param type path string true "Component type" Enums(engine, brake_system, frame, suspension, wheel)
// @Param id path string true "Component ID (UUID)"
// @Success 200 {object} service.ComponentUsageStats "Usage counts"
// @Failure 400 {object} ErrorResponse "Invalid component ID or type"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /components/{type}/{id}/stats [get]
func (h *ComponentHandler) GetComponentStats(c *gin.Context) {
	componentType, ok := parseTypeParam(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "component")
	if !ok {
		return
	}

	stats, err := h.usage.UsageStats(c.Request.Context(), componentType, id)
	if err != nil {
		respondError(c, err, "Failed to compute usage stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// DeleteComponent handles DELETE /components/:type/:id
// @Summary Delete an unused component
// @Tags components
// @Produce json
// @Param type path string true "Component type" Enums(engine, brake_system, frame, suspension, wheel)
// @Param id path string true "Component ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid component ID or type"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 409 {object} UsageBlockedResponse "Component is still in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /components/{type}/{id} [delete]
func (h *ComponentHandler) DeleteComponent(c *gin.Context) {
	componentType, ok := parseTypeParam(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "component")
	if !ok {
		return
	}

	if err := h.usage.DeleteComponent(c.Request.Context(), componentType, id); err != nil {
		respondError(c, err, "Failed to delete component")
		return
	}

	c.Status(http.StatusNoContent)
}
