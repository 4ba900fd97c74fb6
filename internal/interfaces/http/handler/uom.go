package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	mdapp "github.com/procure/backend/internal/application/masterdata"
)

// UOMHandler handles unit of measure master data endpoints
type UOMHandler struct {
	BaseHandler
	uomService *mdapp.UOMService
}

// NewUOMHandler creates a new UOMHandler
func NewUOMHandler(uomService *mdapp.UOMService) *UOMHandler {
	return &UOMHandler{uomService: uomService}
}

// Create creates a new unit of measure
func (h *UOMHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	var req mdapp.CreateUOMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	uom, err := h.uomService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, uom)
}

// GetByID retrieves a unit of measure
func (h *UOMHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	uomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid UOM ID format")
		return
	}

	uom, err := h.uomService.GetByID(c.Request.Context(), tenantID, uomID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, uom)
}

// List returns a paginated list of units of measure
func (h *UOMHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	var req mdapp.ListFilter
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.uomService.List(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Delete removes a unit of measure
func (h *UOMHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	uomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid UOM ID format")
		return
	}

	if err := h.uomService.Delete(c.Request.Context(), tenantID, uomID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateConversion registers a conversion factor between two units of measure
func (h *UOMHandler) CreateConversion(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	var req mdapp.CreateUOMConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	conversion, err := h.uomService.CreateConversion(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, conversion)
}

// GetConversion retrieves the conversion registered for a (from, to) pair
func (h *UOMHandler) GetConversion(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	fromUOMID, err := uuid.Parse(c.Param("from_id"))
	if err != nil {
		h.BadRequest(c, "Invalid source UOM ID format")
		return
	}
	toUOMID, err := uuid.Parse(c.Param("to_id"))
	if err != nil {
		h.BadRequest(c, "Invalid target UOM ID format")
		return
	}

	conversion, err := h.uomService.GetConversion(c.Request.Context(), tenantID, fromUOMID, toUOMID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, conversion)
}

// ListConversions returns the conversions a unit of measure participates in
func (h *UOMHandler) ListConversions(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	uomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid UOM ID format")
		return
	}

	conversions, err := h.uomService.ListConversionsForUOM(c.Request.Context(), tenantID, uomID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, conversions)
}

// DeleteConversion removes a conversion
func (h *UOMHandler) DeleteConversion(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	conversionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid conversion ID format")
		return
	}

	if err := h.uomService.DeleteConversion(c.Request.Context(), tenantID, conversionID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
