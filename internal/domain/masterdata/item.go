package masterdata

import (
	"strings"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Item represents a purchasable product or service
type Item struct {
	shared.TenantAggregateRoot
	Code        string
	Name        string
	Description string
	UOMID       *uuid.UUID
	// StandardPrice is the reference purchase price, used as a default
	// when order lines omit an explicit unit price.
	StandardPrice decimal.Decimal
	IsActive      bool
}

// NewItem creates a new active item
func NewItem(tenantID uuid.UUID, code, name string) (*Item, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item code is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item name is required")
	}

	return &Item{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		Name:                name,
		StandardPrice:       decimal.Zero,
		IsActive:            true,
	}, nil
}

// SetUOM assigns the default unit of measure
func (i *Item) SetUOM(uomID uuid.UUID) {
	i.UOMID = &uomID
	i.IncrementVersion()
}

// SetStandardPrice sets the reference purchase price
func (i *Item) SetStandardPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_ITEM", "Standard price cannot be negative")
	}
	i.StandardPrice = price
	i.IncrementVersion()
	return nil
}

// Deactivate marks the item as inactive
func (i *Item) Deactivate() {
	i.IsActive = false
	i.IncrementVersion()
}

// Activate marks the item as active
func (i *Item) Activate() {
	i.IsActive = true
	i.IncrementVersion()
}
