package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// CompanyRepository defines persistence operations for companies
type CompanyRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Company, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Company, int64, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Company, error)
	Save(ctx context.Context, company *Company) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// VendorRepository defines persistence operations for vendors
type VendorRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Vendor, error)
	// FindActiveForCompany returns the vendor only if it is active and
	// belongs to the given company. Returns shared.ErrNotFound otherwise.
	FindActiveForCompany(ctx context.Context, tenantID, companyID, id uuid.UUID) (*Vendor, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Vendor, int64, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Vendor, error)
	Save(ctx context.Context, vendor *Vendor) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// ItemRepository defines persistence operations for items
type ItemRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Item, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Item, int64, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Item, error)
	Save(ctx context.Context, item *Item) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// UOMRepository defines persistence operations for units of measure
type UOMRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*UOM, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]UOM, int64, error)
	Save(ctx context.Context, uom *UOM) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// UOMConversionRepository defines persistence operations for UOM conversions
type UOMConversionRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*UOMConversion, error)
	// FindBetween returns the conversion registered for the exact
	// (from, to) pair. Returns shared.ErrNotFound when no such pair exists.
	FindBetween(ctx context.Context, tenantID, fromUOMID, toUOMID uuid.UUID) (*UOMConversion, error)
	// FindAllForUOM returns every conversion the unit participates in,
	// on either side of the pair.
	FindAllForUOM(ctx context.Context, tenantID, uomID uuid.UUID) ([]UOMConversion, error)
	Save(ctx context.Context, conversion *UOMConversion) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// CurrencyRepository defines persistence operations for currencies
type CurrencyRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Currency, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Currency, int64, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Currency, error)
	Save(ctx context.Context, currency *Currency) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// ExchangeRateRepository defines persistence operations for exchange rates
type ExchangeRateRepository interface {
	// FindLatest returns the rate with the most recent effective date for
	// the (base, target) pair. Returns shared.ErrNotFound when the pair
	// has no rate at all.
	FindLatest(ctx context.Context, tenantID, baseCurrencyID, targetCurrencyID uuid.UUID) (*ExchangeRate, error)
	// FindAllForCurrency returns every rate the currency participates in,
	// as base or as target, newest effective date first.
	FindAllForCurrency(ctx context.Context, tenantID, currencyID uuid.UUID) ([]ExchangeRate, error)
	Save(ctx context.Context, rate *ExchangeRate) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// SiteRepository defines persistence operations for sites
type SiteRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Site, error)
	FindActiveForCompany(ctx context.Context, tenantID, companyID, id uuid.UUID) (*Site, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Site, int64, error)
	Save(ctx context.Context, site *Site) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
