package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/masterdata"
	"github.com/shopspring/decimal"
)

// CompanyModel is the persistence model for the Company aggregate root.
type CompanyModel struct {
	TenantAggregateModel
	Code     string `gorm:"type:varchar(50);not null;uniqueIndex:idx_company_tenant_code,priority:2"`
	Name     string `gorm:"type:varchar(200);not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company entity.
func (m *CompanyModel) ToDomain() *masterdata.Company {
	return &masterdata.Company{
		TenantAggregateRoot: m.tenantAggregateRoot(),
		Code:                m.Code,
		Name:                m.Name,
		IsActive:            m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Company entity.
func (m *CompanyModel) FromDomain(c *masterdata.Company) {
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	m.Code = c.Code
	m.Name = c.Name
	m.IsActive = c.IsActive
}

// CompanyModelFromDomain creates a new persistence model from a domain Company entity.
func CompanyModelFromDomain(c *masterdata.Company) *CompanyModel {
	m := &CompanyModel{}
	m.FromDomain(c)
	return m
}

// VendorModel is the persistence model for the Vendor aggregate root.
type VendorModel struct {
	TenantAggregateModel
	CompanyID  uuid.UUID               `gorm:"type:uuid;not null;index"`
	Code       string                  `gorm:"type:varchar(50);not null;uniqueIndex:idx_vendor_tenant_code,priority:2"`
	Name       string                  `gorm:"type:varchar(200);not null"`
	Status     masterdata.VendorStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	CurrencyID *uuid.UUID              `gorm:"type:uuid"`
	Email      string                  `gorm:"type:varchar(200)"`
	Phone      string                  `gorm:"type:varchar(50)"`
	Address    string                  `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (VendorModel) TableName() string {
	return "vendors"
}

// ToDomain converts the persistence model to a domain Vendor entity.
func (m *VendorModel) ToDomain() *masterdata.Vendor {
	return &masterdata.Vendor{
		TenantAggregateRoot: m.tenantAggregateRoot(),
		CompanyID:           m.CompanyID,
		Code:                m.Code,
		Name:                m.Name,
		Status:              m.Status,
		CurrencyID:          m.CurrencyID,
		Email:               m.Email,
		Phone:               m.Phone,
		Address:             m.Address,
	}
}

// FromDomain populates the persistence model from a domain Vendor entity.
func (m *VendorModel) FromDomain(v *masterdata.Vendor) {
	m.FromDomainTenantAggregateRoot(v.TenantAggregateRoot)
	m.CompanyID = v.CompanyID
	m.Code = v.Code
	m.Name = v.Name
	m.Status = v.Status
	m.CurrencyID = v.CurrencyID
	m.Email = v.Email
	m.Phone = v.Phone
	m.Address = v.Address
}

// VendorModelFromDomain creates a new persistence model from a domain Vendor entity.
func VendorModelFromDomain(v *masterdata.Vendor) *VendorModel {
	m := &VendorModel{}
	m.FromDomain(v)
	return m
}

// ItemModel is the persistence model for the Item aggregate root.
type ItemModel struct {
	TenantAggregateModel
	Code          string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_item_tenant_code,priority:2"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	UOMID         *uuid.UUID      `gorm:"type:uuid"`
	StandardPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	IsActive      bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ItemModel) TableName() string {
	return "items"
}

// ToDomain converts the persistence model to a domain Item entity.
func (m *ItemModel) ToDomain() *masterdata.Item {
	return &masterdata.Item{
		TenantAggregateRoot: m.tenantAggregateRoot(),
		Code:                m.Code,
		Name:                m.Name,
		Description:         m.Description,
		UOMID:               m.UOMID,
		StandardPrice:       m.StandardPrice,
		IsActive:            m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Item entity.
func (m *ItemModel) FromDomain(i *masterdata.Item) {
	m.FromDomainTenantAggregateRoot(i.TenantAggregateRoot)
	m.Code = i.Code
	m.Name = i.Name
	m.Description = i.Description
	m.UOMID = i.UOMID
	m.StandardPrice = i.StandardPrice
	m.IsActive = i.IsActive
}

// ItemModelFromDomain creates a new persistence model from a domain Item entity.
func ItemModelFromDomain(i *masterdata.Item) *ItemModel {
	m := &ItemModel{}
	m.FromDomain(i)
	return m
}

// UOMModel is the persistence model for the UOM aggregate root.
type UOMModel struct {
	TenantAggregateModel
	Code string `gorm:"type:varchar(20);not null;uniqueIndex:idx_uom_tenant_code,priority:2"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (UOMModel) TableName() string {
	return "uoms"
}

// ToDomain converts the persistence model to a domain UOM entity.
func (m *UOMModel) ToDomain() *masterdata.UOM {
	return &masterdata.UOM{
		TenantAggregateRoot: m.tenantAggregateRoot(),
		Code:                m.Code,
		Name:                m.Name,
	}
}

// FromDomain populates the persistence model from a domain UOM entity.
func (m *UOMModel) FromDomain(u *masterdata.UOM) {
	m.FromDomainTenantAggregateRoot(u.TenantAggregateRoot)
	m.Code = u.Code
	m.Name = u.Name
}

// UOMModelFromDomain creates a new persistence model from a domain UOM entity.
func UOMModelFromDomain(u *masterdata.UOM) *UOMModel {
	m := &UOMModel{}
	m.FromDomain(u)
	return m
}

// CurrencyModel is the persistence model for the Currency aggregate root.
type CurrencyModel struct {
	TenantAggregateModel
	Code          string `gorm:"type:varchar(3);not null;uniqueIndex:idx_currency_tenant_code,priority:2"`
	Name          string `gorm:"type:varchar(100);not null"`
	Symbol        string `gorm:"type:varchar(10)"`
	DecimalPlaces int    `gorm:"not null;default:2"`
}

// TableName returns the table name for GORM
func (CurrencyModel) TableName() string {
	return "currencies"
}

// ToDomain converts the persistence model to a domain Currency entity.
func (m *CurrencyModel) ToDomain() *masterdata.Currency {
	return &masterdata.Currency{
		TenantAggregateRoot: m.tenantAggregateRoot(),
		Code:                m.Code,
		Name:                m.Name,
		Symbol:              m.Symbol,
		DecimalPlaces:       m.DecimalPlaces,
	}
}

// FromDomain populates the persistence model from a domain Currency entity.
func (m *CurrencyModel) FromDomain(c *masterdata.Currency) {
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	m.Code = c.Code
	m.Name = c.Name
	m.Symbol = c.Symbol
	m.DecimalPlaces = c.DecimalPlaces
}

// CurrencyModelFromDomain creates a new persistence model from a domain Currency entity.
func CurrencyModelFromDomain(c *masterdata.Currency) *CurrencyModel {
	m := &CurrencyModel{}
	m.FromDomain(c)
	return m
}

// SiteModel is the persistence model for the Site aggregate root.
type SiteModel struct {
	TenantAggregateModel
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Code      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_site_tenant_code,priority:2"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Address   string    `gorm:"type:varchar(500)"`
	IsActive  bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (SiteModel) TableName() string {
	return "sites"
}

// ToDomain converts the persistence model to a domain Site entity.
func (m *SiteModel) ToDomain() *masterdata.Site {
	return &masterdata.Site{
		TenantAggregateRoot: m.tenantAggregateRoot(),
		CompanyID:           m.CompanyID,
		Code:                m.Code,
		Name:                m.Name,
		Address:             m.Address,
		IsActive:            m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Site entity.
func (m *SiteModel) FromDomain(s *masterdata.Site) {
	m.FromDomainTenantAggregateRoot(s.TenantAggregateRoot)
	m.CompanyID = s.CompanyID
	m.Code = s.Code
	m.Name = s.Name
	m.Address = s.Address
	m.IsActive = s.IsActive
}

// SiteModelFromDomain creates a new persistence model from a domain Site entity.
func SiteModelFromDomain(s *masterdata.Site) *SiteModel {
	m := &SiteModel{}
	m.FromDomain(s)
	return m
}

// UOMConversionModel is the persistence model for the UOMConversion aggregate root.
type UOMConversionModel struct {
	TenantAggregateModel
	FromUOMID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_uom_conversion_pair,priority:2;index"`
	ToUOMID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_uom_conversion_pair,priority:3;index"`
	Factor    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (UOMConversionModel) TableName() string {
	return "uom_conversions"
}

// ToDomain converts the persistence model to a domain UOMConversion entity.
func (m *UOMConversionModel) ToDomain() *masterdata.UOMConversion {
	return &masterdata.UOMConversion{
		TenantAggregateRoot: m.tenantAggregateRoot(),
		FromUOMID:           m.FromUOMID,
		ToUOMID:             m.ToUOMID,
		Factor:              m.Factor,
	}
}

// FromDomain populates the persistence model from a domain UOMConversion entity.
func (m *UOMConversionModel) FromDomain(c *masterdata.UOMConversion) {
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	m.FromUOMID = c.FromUOMID
	m.ToUOMID = c.ToUOMID
	m.Factor = c.Factor
}

// UOMConversionModelFromDomain creates a new persistence model from a domain UOMConversion entity.
func UOMConversionModelFromDomain(c *masterdata.UOMConversion) *UOMConversionModel {
	m := &UOMConversionModel{}
	m.FromDomain(c)
	return m
}

// ExchangeRateModel is the persistence model for the ExchangeRate aggregate root.
type ExchangeRateModel struct {
	TenantAggregateModel
	BaseCurrencyID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_exchange_rate_pair,priority:1"`
	TargetCurrencyID uuid.UUID       `gorm:"type:uuid;not null;index:idx_exchange_rate_pair,priority:2"`
	Rate             decimal.Decimal `gorm:"type:decimal(18,8);not null"`
	EffectiveDate    time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ExchangeRateModel) TableName() string {
	return "exchange_rates"
}

// ToDomain converts the persistence model to a domain ExchangeRate entity.
func (m *ExchangeRateModel) ToDomain() *masterdata.ExchangeRate {
	return &masterdata.ExchangeRate{
		TenantAggregateRoot: m.tenantAggregateRoot(),
		BaseCurrencyID:      m.BaseCurrencyID,
		TargetCurrencyID:    m.TargetCurrencyID,
		Rate:                m.Rate,
		EffectiveDate:       m.EffectiveDate,
	}
}

// FromDomain populates the persistence model from a domain ExchangeRate entity.
func (m *ExchangeRateModel) FromDomain(r *masterdata.ExchangeRate) {
	m.FromDomainTenantAggregateRoot(r.TenantAggregateRoot)
	m.BaseCurrencyID = r.BaseCurrencyID
	m.TargetCurrencyID = r.TargetCurrencyID
	m.Rate = r.Rate
	m.EffectiveDate = r.EffectiveDate
}

// ExchangeRateModelFromDomain creates a new persistence model from a domain ExchangeRate entity.
func ExchangeRateModelFromDomain(r *masterdata.ExchangeRate) *ExchangeRateModel {
	m := &ExchangeRateModel{}
	m.FromDomain(r)
	return m
}
