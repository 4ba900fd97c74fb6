package masterdata

import (
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/masterdata"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Company DTOs
// =============================================================================

// CreateCompanyRequest represents a request to create a new company
type CreateCompanyRequest struct {
	Code string `json:"code" binding:"required,min=1,max=50"`
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// UpdateCompanyRequest represents a request to update a company
type UpdateCompanyRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	IsActive *bool   `json:"is_active"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCompanyResponse converts a domain company to a response DTO
func ToCompanyResponse(c *masterdata.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		TenantID:  c.TenantID,
		Code:      c.Code,
		Name:      c.Name,
		IsActive:  c.IsActive,
		Version:   c.Version,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// =============================================================================
// Vendor DTOs
// =============================================================================

// CreateVendorRequest represents a request to create a new vendor
type CreateVendorRequest struct {
	CompanyID  uuid.UUID  `json:"company_id" binding:"required"`
	Code       string     `json:"code" binding:"required,min=1,max=50"`
	Name       string     `json:"name" binding:"required,min=1,max=200"`
	CurrencyID *uuid.UUID `json:"currency_id"`
	Email      string     `json:"email" binding:"omitempty,email,max=200"`
	Phone      string     `json:"phone" binding:"max=50"`
	Address    string     `json:"address" binding:"max=500"`
}

// UpdateVendorRequest represents a request to update a vendor
type UpdateVendorRequest struct {
	CurrencyID *uuid.UUID `json:"currency_id"`
	Email      *string    `json:"email" binding:"omitempty,email,max=200"`
	Phone      *string    `json:"phone" binding:"omitempty,max=50"`
	Address    *string    `json:"address" binding:"omitempty,max=500"`
	Status     *string    `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE BLOCKED"`
}

// VendorResponse represents a vendor in API responses
type VendorResponse struct {
	ID         uuid.UUID  `json:"id"`
	TenantID   uuid.UUID  `json:"tenant_id"`
	CompanyID  uuid.UUID  `json:"company_id"`
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	Status     string     `json:"status"`
	CurrencyID *uuid.UUID `json:"currency_id,omitempty"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Address    string     `json:"address"`
	Version    int        `json:"version"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ToVendorResponse converts a domain vendor to a response DTO
func ToVendorResponse(v *masterdata.Vendor) VendorResponse {
	return VendorResponse{
		ID:         v.ID,
		TenantID:   v.TenantID,
		CompanyID:  v.CompanyID,
		Code:       v.Code,
		Name:       v.Name,
		Status:     string(v.Status),
		CurrencyID: v.CurrencyID,
		Email:      v.Email,
		Phone:      v.Phone,
		Address:    v.Address,
		Version:    v.Version,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

// =============================================================================
// Item DTOs
// =============================================================================

// CreateItemRequest represents a request to create a new item
type CreateItemRequest struct {
	Code          string           `json:"code" binding:"required,min=1,max=50"`
	Name          string           `json:"name" binding:"required,min=1,max=200"`
	Description   string           `json:"description" binding:"max=500"`
	UOMID         *uuid.UUID       `json:"uom_id"`
	StandardPrice *decimal.Decimal `json:"standard_price"`
}

// UpdateItemRequest represents a request to update an item
type UpdateItemRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" binding:"omitempty,max=500"`
	UOMID         *uuid.UUID       `json:"uom_id"`
	StandardPrice *decimal.Decimal `json:"standard_price"`
	IsActive      *bool            `json:"is_active"`
}

// ItemResponse represents an item in API responses
type ItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	TenantID      uuid.UUID       `json:"tenant_id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	UOMID         *uuid.UUID      `json:"uom_id,omitempty"`
	StandardPrice decimal.Decimal `json:"standard_price"`
	IsActive      bool            `json:"is_active"`
	Version       int             `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToItemResponse converts a domain item to a response DTO
func ToItemResponse(i *masterdata.Item) ItemResponse {
	return ItemResponse{
		ID:            i.ID,
		TenantID:      i.TenantID,
		Code:          i.Code,
		Name:          i.Name,
		Description:   i.Description,
		UOMID:         i.UOMID,
		StandardPrice: i.StandardPrice,
		IsActive:      i.IsActive,
		Version:       i.Version,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

// =============================================================================
// UOM DTOs
// =============================================================================

// CreateUOMRequest represents a request to create a new unit of measure
type CreateUOMRequest struct {
	Code string `json:"code" binding:"required,min=1,max=20"`
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UOMResponse represents a unit of measure in API responses
type UOMResponse struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUOMResponse converts a domain UOM to a response DTO
func ToUOMResponse(u *masterdata.UOM) UOMResponse {
	return UOMResponse{
		ID:        u.ID,
		TenantID:  u.TenantID,
		Code:      u.Code,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// CreateUOMConversionRequest represents a request to register a conversion
// factor between two units of measure
type CreateUOMConversionRequest struct {
	FromUOMID uuid.UUID       `json:"from_uom_id" binding:"required"`
	ToUOMID   uuid.UUID       `json:"to_uom_id" binding:"required"`
	Factor    decimal.Decimal `json:"factor" binding:"required"`
}

// UOMConversionResponse represents a UOM conversion in API responses
type UOMConversionResponse struct {
	ID        uuid.UUID       `json:"id"`
	TenantID  uuid.UUID       `json:"tenant_id"`
	FromUOMID uuid.UUID       `json:"from_uom_id"`
	ToUOMID   uuid.UUID       `json:"to_uom_id"`
	Factor    decimal.Decimal `json:"factor"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToUOMConversionResponse converts a domain conversion to a response DTO
func ToUOMConversionResponse(c *masterdata.UOMConversion) UOMConversionResponse {
	return UOMConversionResponse{
		ID:        c.ID,
		TenantID:  c.TenantID,
		FromUOMID: c.FromUOMID,
		ToUOMID:   c.ToUOMID,
		Factor:    c.Factor,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// =============================================================================
// Currency DTOs
// =============================================================================

// CreateCurrencyRequest represents a request to create a new currency
type CreateCurrencyRequest struct {
	Code          string `json:"code" binding:"required,len=3"`
	Name          string `json:"name" binding:"required,min=1,max=100"`
	Symbol        string `json:"symbol" binding:"max=10"`
	DecimalPlaces int    `json:"decimal_places" binding:"min=0,max=6"`
}

// CurrencyResponse represents a currency in API responses
type CurrencyResponse struct {
	ID            uuid.UUID `json:"id"`
	TenantID      uuid.UUID `json:"tenant_id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Symbol        string    `json:"symbol"`
	DecimalPlaces int       `json:"decimal_places"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToCurrencyResponse converts a domain currency to a response DTO
func ToCurrencyResponse(c *masterdata.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:            c.ID,
		TenantID:      c.TenantID,
		Code:          c.Code,
		Name:          c.Name,
		Symbol:        c.Symbol,
		DecimalPlaces: c.DecimalPlaces,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// CreateExchangeRateRequest represents a request to register an exchange rate
// between two currencies. An omitted effective date means the rate applies
// from now.
type CreateExchangeRateRequest struct {
	BaseCurrencyID   uuid.UUID       `json:"base_currency_id" binding:"required"`
	TargetCurrencyID uuid.UUID       `json:"target_currency_id" binding:"required"`
	Rate             decimal.Decimal `json:"rate" binding:"required"`
	EffectiveDate    *time.Time      `json:"effective_date"`
}

// ExchangeRateResponse represents an exchange rate in API responses
type ExchangeRateResponse struct {
	ID               uuid.UUID       `json:"id"`
	TenantID         uuid.UUID       `json:"tenant_id"`
	BaseCurrencyID   uuid.UUID       `json:"base_currency_id"`
	TargetCurrencyID uuid.UUID       `json:"target_currency_id"`
	Rate             decimal.Decimal `json:"rate"`
	EffectiveDate    time.Time       `json:"effective_date"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToExchangeRateResponse converts a domain exchange rate to a response DTO
func ToExchangeRateResponse(r *masterdata.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:               r.ID,
		TenantID:         r.TenantID,
		BaseCurrencyID:   r.BaseCurrencyID,
		TargetCurrencyID: r.TargetCurrencyID,
		Rate:             r.Rate,
		EffectiveDate:    r.EffectiveDate,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// =============================================================================
// Site DTOs
// =============================================================================

// CreateSiteRequest represents a request to create a new site
type CreateSiteRequest struct {
	CompanyID uuid.UUID `json:"company_id" binding:"required"`
	Code      string    `json:"code" binding:"required,min=1,max=50"`
	Name      string    `json:"name" binding:"required,min=1,max=200"`
	Address   string    `json:"address" binding:"max=500"`
}

// SiteResponse represents a site in API responses
type SiteResponse struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	CompanyID uuid.UUID `json:"company_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSiteResponse converts a domain site to a response DTO
func ToSiteResponse(s *masterdata.Site) SiteResponse {
	return SiteResponse{
		ID:        s.ID,
		TenantID:  s.TenantID,
		CompanyID: s.CompanyID,
		Code:      s.Code,
		Name:      s.Name,
		Address:   s.Address,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// =============================================================================
// List filters
// =============================================================================

// ListFilter carries common list query parameters for master data
type ListFilter struct {
	Page      int        `form:"page"`
	PageSize  int        `form:"page_size"`
	Search    string     `form:"search"`
	CompanyID *uuid.UUID `form:"company_id"`
	Status    *string    `form:"status"`
}
