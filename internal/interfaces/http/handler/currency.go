package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	mdapp "github.com/procure/backend/internal/application/masterdata"
)

// CurrencyHandler handles currency master data endpoints
type CurrencyHandler struct {
	BaseHandler
	currencyService *mdapp.CurrencyService
}

// NewCurrencyHandler creates a new CurrencyHandler
func NewCurrencyHandler(currencyService *mdapp.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencyService: currencyService}
}

// Create registers a new currency
func (h *CurrencyHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	var req mdapp.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	currency, err := h.currencyService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, currency)
}

// GetByID retrieves a currency
func (h *CurrencyHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	currencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid currency ID format")
		return
	}

	currency, err := h.currencyService.GetByID(c.Request.Context(), tenantID, currencyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, currency)
}

// List returns a paginated list of currencies
func (h *CurrencyHandler) List(c *gin.Context) {
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

	result, err := h.currencyService.List(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Delete removes a currency
func (h *CurrencyHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	currencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid currency ID format")
		return
	}

	if err := h.currencyService.Delete(c.Request.Context(), tenantID, currencyID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateExchangeRate registers an exchange rate between two currencies
func (h *CurrencyHandler) CreateExchangeRate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	var req mdapp.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rate, err := h.currencyService.CreateExchangeRate(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, rate)
}

// GetLatestExchangeRate retrieves the most recently effective rate for a
// (base, target) currency pair
func (h *CurrencyHandler) GetLatestExchangeRate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	baseCurrencyID, err := uuid.Parse(c.Param("base_id"))
	if err != nil {
		h.BadRequest(c, "Invalid base currency ID format")
		return
	}
	targetCurrencyID, err := uuid.Parse(c.Param("target_id"))
	if err != nil {
		h.BadRequest(c, "Invalid target currency ID format")
		return
	}

	rate, err := h.currencyService.GetLatestExchangeRate(c.Request.Context(), tenantID, baseCurrencyID, targetCurrencyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rate)
}

// ListExchangeRates returns the rates a currency participates in
func (h *CurrencyHandler) ListExchangeRates(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Tenant identification required")
		return
	}

	currencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid currency ID format")
		return
	}

	rates, err := h.currencyService.ListExchangeRatesForCurrency(c.Request.Context(), tenantID, currencyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rates)
}
