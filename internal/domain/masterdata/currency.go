package masterdata

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Currency represents a currency referenced by vendors and purchase orders
type Currency struct {
	shared.TenantAggregateRoot
	Code          string // ISO 4217 code such as "USD"
	Name          string
	Symbol        string
	DecimalPlaces int
}

// NewCurrency creates a new currency
func NewCurrency(tenantID uuid.UUID, code, name string, decimalPlaces int) (*Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	name = strings.TrimSpace(name)
	if len(code) != 3 {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Currency code must be a 3-letter ISO code")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Currency name is required")
	}
	if decimalPlaces < 0 || decimalPlaces > 6 {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Decimal places must be between 0 and 6")
	}

	return &Currency{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		Name:                name,
		DecimalPlaces:       decimalPlaces,
	}, nil
}

// ExchangeRate records how many units of the target currency one unit of the
// base currency buys, effective from a given date. Rates never change in
// place, a new effective date supersedes older ones.
type ExchangeRate struct {
	shared.TenantAggregateRoot
	BaseCurrencyID   uuid.UUID
	TargetCurrencyID uuid.UUID
	Rate             decimal.Decimal
	EffectiveDate    time.Time
}

// NewExchangeRate creates an exchange rate between two currencies. A zero
// effective date means the rate applies from now.
func NewExchangeRate(tenantID, baseCurrencyID, targetCurrencyID uuid.UUID, rate decimal.Decimal, effectiveDate time.Time) (*ExchangeRate, error) {
	if baseCurrencyID == uuid.Nil || targetCurrencyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EXCHANGE_RATE", "Both currencies are required")
	}
	if baseCurrencyID == targetCurrencyID {
		return nil, shared.NewDomainError("INVALID_EXCHANGE_RATE", "Base and target currency must differ")
	}
	if !rate.IsPositive() {
		return nil, shared.NewDomainError("INVALID_EXCHANGE_RATE", "Exchange rate must be positive")
	}
	if effectiveDate.IsZero() {
		effectiveDate = time.Now().UTC()
	}

	return &ExchangeRate{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		BaseCurrencyID:      baseCurrencyID,
		TargetCurrencyID:    targetCurrencyID,
		Rate:                rate,
		EffectiveDate:       effectiveDate,
	}, nil
}

// Convert converts an amount in the base currency to the target currency
func (r *ExchangeRate) Convert(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(r.Rate)
}
