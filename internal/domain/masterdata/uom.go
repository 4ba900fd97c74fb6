package masterdata

import (
	"strings"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// UOM represents a unit of measure such as "EA" or "KG"
type UOM struct {
	shared.TenantAggregateRoot
	Code string
	Name string
}

// NewUOM creates a new unit of measure
func NewUOM(tenantID uuid.UUID, code, name string) (*UOM, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_UOM", "UOM code is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_UOM", "UOM name is required")
	}

	return &UOM{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		Name:                name,
	}, nil
}

// minConversionFactor is the smallest factor a conversion may carry,
// matching the 4 decimal places stored for quantities.
var minConversionFactor = decimal.New(1, -4)

// UOMConversion defines the factor used to convert a quantity expressed in
// one unit of measure into another
type UOMConversion struct {
	shared.TenantAggregateRoot
	FromUOMID uuid.UUID
	ToUOMID   uuid.UUID
	Factor    decimal.Decimal
}

// NewUOMConversion creates a conversion between two units of measure
func NewUOMConversion(tenantID, fromUOMID, toUOMID uuid.UUID, factor decimal.Decimal) (*UOMConversion, error) {
	if fromUOMID == uuid.Nil || toUOMID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UOM_CONVERSION", "Both units of measure are required")
	}
	if fromUOMID == toUOMID {
		return nil, shared.NewDomainError("INVALID_UOM_CONVERSION", "Cannot define a conversion from a unit to itself")
	}
	if factor.LessThan(minConversionFactor) {
		return nil, shared.NewDomainError("INVALID_UOM_CONVERSION", "Conversion factor must be at least 0.0001")
	}

	return &UOMConversion{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		FromUOMID:           fromUOMID,
		ToUOMID:             toUOMID,
		Factor:              factor,
	}, nil
}

// Convert applies the conversion factor to a quantity
func (c *UOMConversion) Convert(quantity decimal.Decimal) decimal.Decimal {
	return quantity.Mul(c.Factor)
}
