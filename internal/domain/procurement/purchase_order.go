package procurement

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseOrder is the aggregate root for a purchase order and its lines
type PurchaseOrder struct {
	shared.TenantAggregateRoot
	OrderNumber    string
	CompanyID      uuid.UUID
	VendorID       uuid.UUID
	SiteID         *uuid.UUID
	CurrencyID     *uuid.UUID
	ExchangeRateID *uuid.UUID
	OrderDate      time.Time
	Status         POStatus
	Remarks        string
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
	Lines          []PurchaseOrderLine
}

// PurchaseOrderLine is a single line of a purchase order. Lines are
// owned by the aggregate and are always replaced as a whole set.
type PurchaseOrderLine struct {
	shared.BaseEntity
	PurchaseOrderID uuid.UUID
	LineNo          int
	ItemID          *uuid.UUID
	Description     string
	UOMID           *uuid.UUID
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	TaxRate         decimal.Decimal
	Subtotal        decimal.Decimal
	TaxAmount       decimal.Decimal
	Total           decimal.Decimal
}

// LineSpec describes a requested order line before amounts are computed
type LineSpec struct {
	ItemID      *uuid.UUID
	Description string
	UOMID       *uuid.UUID
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
}

func validateLineSpecs(specs []LineSpec) error {
	if len(specs) == 0 {
		return shared.NewDomainError("INVALID_INPUT", "Purchase order must have at least one line")
	}
	for i, spec := range specs {
		if strings.TrimSpace(spec.Description) == "" {
			return shared.NewDomainErrorf("INVALID_INPUT", "Line %d: description is required", i+1)
		}
		if !spec.Quantity.IsPositive() {
			return shared.NewDomainErrorf("INVALID_INPUT", "Line %d: quantity must be positive", i+1)
		}
		if spec.UnitPrice.IsNegative() {
			return shared.NewDomainErrorf("INVALID_INPUT", "Line %d: unit price cannot be negative", i+1)
		}
		if spec.TaxRate.IsNegative() {
			return shared.NewDomainErrorf("INVALID_INPUT", "Line %d: tax rate cannot be negative", i+1)
		}
	}
	return nil
}

// NewPurchaseOrder creates a purchase order in DRAFT status with the
// given allocated order number and computed line amounts
func NewPurchaseOrder(
	tenantID, companyID, vendorID, createdBy uuid.UUID,
	orderNumber string,
	orderDate time.Time,
	specs []LineSpec,
) (*PurchaseOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order number is required")
	}
	if err := validateLineSpecs(specs); err != nil {
		return nil, err
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	po := &PurchaseOrder{
		TenantAggregateRoot: shared.NewTenantAggregateRootWithCreator(tenantID, createdBy),
		OrderNumber:         orderNumber,
		CompanyID:           companyID,
		VendorID:            vendorID,
		OrderDate:           orderDate,
		Status:              POStatusDraft,
	}
	po.rebuildLines(specs)

	po.AddDomainEvent(NewPurchaseOrderCreatedEvent(po))
	return po, nil
}

// rebuildLines replaces the line set, assigning line numbers by position
// and recomputing line amounts and order totals
func (po *PurchaseOrder) rebuildLines(specs []LineSpec) {
	inputs := make([]LineInput, len(specs))
	for i, spec := range specs {
		inputs[i] = LineInput{
			Quantity:  spec.Quantity,
			UnitPrice: spec.UnitPrice,
			TaxRate:   spec.TaxRate,
		}
	}
	amounts, totals := CalculateTotals(inputs)

	lines := make([]PurchaseOrderLine, len(specs))
	for i, spec := range specs {
		lines[i] = PurchaseOrderLine{
			BaseEntity:      shared.NewBaseEntity(),
			PurchaseOrderID: po.ID,
			LineNo:          i + 1,
			ItemID:          spec.ItemID,
			Description:     strings.TrimSpace(spec.Description),
			UOMID:           spec.UOMID,
			Quantity:        spec.Quantity,
			UnitPrice:       spec.UnitPrice,
			TaxRate:         spec.TaxRate,
			Subtotal:        amounts[i].Subtotal,
			TaxAmount:       amounts[i].TaxAmount,
			Total:           amounts[i].Total,
		}
	}

	po.Lines = lines
	po.Subtotal = totals.Subtotal
	po.TaxAmount = totals.TaxAmount
	po.Total = totals.Total
}

// IsDraft reports whether the order is still editable
func (po *PurchaseOrder) IsDraft() bool {
	return po.Status == POStatusDraft
}

// ReplaceLines replaces all lines with a new set. Only DRAFT orders may
// be modified.
func (po *PurchaseOrder) ReplaceLines(specs []LineSpec) error {
	if !po.IsDraft() {
		return shared.NewDomainErrorf("FORBIDDEN",
			"Only DRAFT purchase orders can be modified, current status is %s", po.Status)
	}
	if err := validateLineSpecs(specs); err != nil {
		return err
	}
	po.rebuildLines(specs)
	po.AddDomainEvent(NewPurchaseOrderUpdatedEvent(po))
	return nil
}

// HeaderPatch carries optional header level changes. Nil fields are
// left untouched.
type HeaderPatch struct {
	VendorID       *uuid.UUID
	SiteID         *uuid.UUID
	CurrencyID     *uuid.UUID
	ExchangeRateID *uuid.UUID
	OrderDate      *time.Time
	Remarks        *string
}

// UpdateHeader applies a partial update to the order header. Only DRAFT
// orders may be modified.
func (po *PurchaseOrder) UpdateHeader(patch HeaderPatch) error {
	if !po.IsDraft() {
		return shared.NewDomainErrorf("FORBIDDEN",
			"Only DRAFT purchase orders can be modified, current status is %s", po.Status)
	}

	if patch.VendorID != nil {
		po.VendorID = *patch.VendorID
	}
	if patch.SiteID != nil {
		po.SiteID = patch.SiteID
	}
	if patch.CurrencyID != nil {
		po.CurrencyID = patch.CurrencyID
	}
	if patch.ExchangeRateID != nil {
		po.ExchangeRateID = patch.ExchangeRateID
	}
	if patch.OrderDate != nil {
		po.OrderDate = *patch.OrderDate
	}
	if patch.Remarks != nil {
		po.Remarks = *patch.Remarks
	}

	po.AddDomainEvent(NewPurchaseOrderUpdatedEvent(po))
	return nil
}

// SetSite assigns the delivery site
func (po *PurchaseOrder) SetSite(siteID uuid.UUID) {
	po.SiteID = &siteID
}

// SetCurrency assigns the order currency
func (po *PurchaseOrder) SetCurrency(currencyID uuid.UUID) {
	po.CurrencyID = &currencyID
}

// ChangeStatus transitions the order to the target status after
// evaluating the transition guard against the current status
func (po *PurchaseOrder) ChangeStatus(target POStatus) error {
	if err := po.Status.CanTransitionTo(target); err != nil {
		return err
	}

	from := po.Status
	po.Status = target
	po.AddDomainEvent(NewPurchaseOrderStatusChangedEvent(po, from, target))
	return nil
}

// Apply performs the named action by translating it to its target status
func (po *PurchaseOrder) Apply(action POAction) error {
	target, err := action.TargetStatus()
	if err != nil {
		return err
	}
	return po.ChangeStatus(target)
}
