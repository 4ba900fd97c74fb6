package procurement

import (
	"github.com/shopspring/decimal"
)

// LineInput is the raw numeric input for a single order line before
// amounts are computed. Quantity, price and tax rate are exact decimals
// so no precision is lost before calculation.
type LineInput struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	TaxRate   decimal.Decimal // percentage, e.g. 10 for 10%
}

// LineAmounts holds the computed monetary amounts for a single line
type LineAmounts struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// OrderTotals holds the computed monetary amounts for a whole order
type OrderTotals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// CalculateLine computes the amounts for one line.
// Subtotal is quantity times unit price, tax is the subtotal scaled by
// the percentage rate, total is their sum. All arithmetic is exact
// decimal arithmetic with no intermediate rounding.
func CalculateLine(qty, price, taxRate decimal.Decimal) LineAmounts {
	subtotal := qty.Mul(price)

	tax := decimal.Zero
	if taxRate.IsPositive() {
		// divide by 100 exactly by shifting the decimal point
		tax = subtotal.Mul(taxRate).Shift(-2)
	}

	return LineAmounts{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal.Add(tax),
	}
}

// CalculateTotals computes per-line amounts and the order level totals
// for a set of line inputs. The returned slice is index aligned with
// the inputs.
func CalculateTotals(lines []LineInput) ([]LineAmounts, OrderTotals) {
	amounts := make([]LineAmounts, len(lines))
	totals := OrderTotals{
		Subtotal:  decimal.Zero,
		TaxAmount: decimal.Zero,
		Total:     decimal.Zero,
	}

	for i, line := range lines {
		amounts[i] = CalculateLine(line.Quantity, line.UnitPrice, line.TaxRate)
		totals.Subtotal = totals.Subtotal.Add(amounts[i].Subtotal)
		totals.TaxAmount = totals.TaxAmount.Add(amounts[i].TaxAmount)
		totals.Total = totals.Total.Add(amounts[i].Total)
	}

	return amounts, totals
}
