package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderSpec carries everything needed to create a purchase order.
// CurrencyID may be nil, in which case the vendor's default currency is
// used.
type CreateOrderSpec struct {
	TenantID       uuid.UUID
	CompanyID      uuid.UUID
	VendorID       uuid.UUID
	CreatedBy      uuid.UUID
	SiteID         *uuid.UUID
	CurrencyID     *uuid.UUID
	ExchangeRateID *uuid.UUID
	OrderDate      *time.Time
	Remarks        string
	Lines          []LineSpec
}

// OrderFilter narrows purchase order listings. CompanyID is mandatory,
// everything else is optional.
type OrderFilter struct {
	CompanyID uuid.UUID
	VendorID  *uuid.UUID
	SiteID    *uuid.UUID
	Status    *POStatus
	Search    string
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      int
	PageSize  int
}

// Normalize applies pagination defaults
func (f *OrderFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 200 {
		f.PageSize = 20
	}
}

// VendorStatistics summarizes a vendor's order volume for a company
type VendorStatistics struct {
	TotalOrders     int64              `json:"total_orders"`
	TotalSpending   decimal.Decimal    `json:"total_spending"`
	StatusBreakdown map[POStatus]int64 `json:"status_breakdown"`
}

// PurchaseOrderRepository defines persistence operations for purchase
// orders. Create performs the full creation sequence atomically:
// company and vendor validation, number allocation, line amount
// computation and the insert of the order with its lines. A failure at
// any step rolls back all of it, including the allocated number.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, spec CreateOrderSpec) (*PurchaseOrder, error)

	// FindByIDForTenant loads the order with its lines, scoped to the
	// tenant. Returns shared.ErrNotFound if absent or owned elsewhere.
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*PurchaseOrder, error)

	// FindAllForTenant lists orders newest first
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter OrderFilter) ([]PurchaseOrder, int64, error)

	// Save persists header changes and the full line set atomically,
	// with an optimistic version check
	Save(ctx context.Context, order *PurchaseOrder) error

	// GetVendorStatistics aggregates order counts and spending for a
	// vendor within a company
	GetVendorStatistics(ctx context.Context, tenantID, companyID, vendorID uuid.UUID) (*VendorStatistics, error)
}

// NumberingRuleRepository defines persistence operations for numbering
// rules
type NumberingRuleRepository interface {
	// FindForCompany returns the rule for a company and document type,
	// or shared.ErrNotFound when no rule exists yet
	FindForCompany(ctx context.Context, tenantID, companyID uuid.UUID, documentType string) (*NumberingRule, error)

	Save(ctx context.Context, rule *NumberingRule) error
}
