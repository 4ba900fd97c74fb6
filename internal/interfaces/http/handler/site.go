package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	mdapp "github.com/procure/backend/internal/application/masterdata"
)

// SiteHandler handles site master data endpoints
type SiteHandler struct {
	BaseHandler
	siteService *mdapp.SiteService
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(siteService *mdapp.SiteService) *SiteHandler {
	return &SiteHandler{siteService: siteService}
}

// Create creates a new site under a company
func (h *SiteHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	var req mdapp.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	site, err := h.siteService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, site)
}

// GetByID retrieves a site
func (h *SiteHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	siteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid site ID format")
		return
	}

	site, err := h.siteService.GetByID(c.Request.Context(), tenantID, siteID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, site)
}

// List returns a paginated list of sites
func (h *SiteHandler) List(c *gin.Context) {
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

	result, err := h.siteService.List(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Deactivate marks a site inactive without removing it
func (h *SiteHandler) Deactivate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	siteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid site ID format")
		return
	}

	site, err := h.siteService.Deactivate(c.Request.Context(), tenantID, siteID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, site)
}

// Delete removes a site
func (h *SiteHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	siteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid site ID format")
		return
	}

	if err := h.siteService.Delete(c.Request.Context(), tenantID, siteID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
