package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/shopspring/decimal"
)

// PurchaseOrderLineRequest is a single requested order line. Quantity,
// unit price and tax rate bind from JSON strings or numbers without
// passing through binary floats.
type PurchaseOrderLineRequest struct {
	ItemID      *uuid.UUID      `json:"item_id"`
	Description string          `json:"description" binding:"required"`
	UOMID       *uuid.UUID      `json:"uom_id"`
	Quantity    decimal.Decimal `json:"qty" binding:"required"`
	UnitPrice   decimal.Decimal `json:"price" binding:"required"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// ToLineSpec converts the request line to a domain line spec
func (r PurchaseOrderLineRequest) ToLineSpec() procurement.LineSpec {
	return procurement.LineSpec{
		ItemID:      r.ItemID,
		Description: r.Description,
		UOMID:       r.UOMID,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		TaxRate:     r.TaxRate,
	}
}

// CreatePurchaseOrderRequest is the request to create a purchase order
type CreatePurchaseOrderRequest struct {
	CompanyID      uuid.UUID                  `json:"company_id" binding:"required"`
	VendorID       uuid.UUID                  `json:"vendor_id" binding:"required"`
	SiteID         *uuid.UUID                 `json:"site_id"`
	CurrencyID     *uuid.UUID                 `json:"currency_id"`
	ExchangeRateID *uuid.UUID                 `json:"exchange_rate_id"`
	OrderDate      *time.Time                 `json:"order_date"`
	Remarks        string                     `json:"remarks"`
	Lines          []PurchaseOrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdatePurchaseOrderRequest is a partial update. Nil fields are left
// untouched; a non-empty Lines replaces the whole line set.
type UpdatePurchaseOrderRequest struct {
	VendorID       *uuid.UUID                  `json:"vendor_id"`
	SiteID         *uuid.UUID                  `json:"site_id"`
	CurrencyID     *uuid.UUID                  `json:"currency_id"`
	ExchangeRateID *uuid.UUID                  `json:"exchange_rate_id"`
	OrderDate      *time.Time                  `json:"order_date"`
	Remarks        *string                     `json:"remarks"`
	Lines          *[]PurchaseOrderLineRequest `json:"lines"`
}

// ChangeStatusRequest carries a status changing action
type ChangeStatusRequest struct {
	Action  string `json:"action" binding:"required,oneof=SUBMIT APPROVE REJECT CANCEL ISSUE"`
	Comment string `json:"comment"`
}

// ListPurchaseOrdersRequest narrows the order listing
type ListPurchaseOrdersRequest struct {
	CompanyID uuid.UUID  `form:"company_id" binding:"required"`
	VendorID  *uuid.UUID `form:"vendor_id"`
	SiteID    *uuid.UUID `form:"site_id"`
	Status    *string    `form:"status"`
	Search    string     `form:"search"`
	DateFrom  *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo    *time.Time `form:"date_to" time_format:"2006-01-02"`
	Page      int        `form:"page"`
	PageSize  int        `form:"page_size"`
}

// PurchaseOrderLineResponse is the API representation of an order line
type PurchaseOrderLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	LineNo      int             `json:"line_no"`
	ItemID      *uuid.UUID      `json:"item_id,omitempty"`
	Description string          `json:"description"`
	UOMID       *uuid.UUID      `json:"uom_id,omitempty"`
	Quantity    decimal.Decimal `json:"qty"`
	UnitPrice   decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Total       decimal.Decimal `json:"total"`
}

// PurchaseOrderResponse is the API representation of a purchase order
type PurchaseOrderResponse struct {
	ID             uuid.UUID                   `json:"id"`
	OrderNumber    string                      `json:"order_number"`
	CompanyID      uuid.UUID                   `json:"company_id"`
	VendorID       uuid.UUID                   `json:"vendor_id"`
	SiteID         *uuid.UUID                  `json:"site_id,omitempty"`
	CurrencyID     *uuid.UUID                  `json:"currency_id,omitempty"`
	ExchangeRateID *uuid.UUID                  `json:"exchange_rate_id,omitempty"`
	OrderDate      time.Time                   `json:"order_date"`
	Status         string                      `json:"status"`
	Remarks        string                      `json:"remarks,omitempty"`
	Subtotal       decimal.Decimal             `json:"subtotal"`
	TaxAmount      decimal.Decimal             `json:"tax_amount"`
	Total          decimal.Decimal             `json:"total"`
	Lines          []PurchaseOrderLineResponse `json:"lines"`
	Version        int                         `json:"version"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

// ToPurchaseOrderResponse converts a domain purchase order to its API representation
func ToPurchaseOrderResponse(order *procurement.PurchaseOrder) PurchaseOrderResponse {
	lines := make([]PurchaseOrderLineResponse, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = PurchaseOrderLineResponse{
			ID:          line.ID,
			LineNo:      line.LineNo,
			ItemID:      line.ItemID,
			Description: line.Description,
			UOMID:       line.UOMID,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TaxRate:     line.TaxRate,
			Subtotal:    line.Subtotal,
			TaxAmount:   line.TaxAmount,
			Total:       line.Total,
		}
	}

	return PurchaseOrderResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		CompanyID:      order.CompanyID,
		VendorID:       order.VendorID,
		SiteID:         order.SiteID,
		CurrencyID:     order.CurrencyID,
		ExchangeRateID: order.ExchangeRateID,
		OrderDate:      order.OrderDate,
		Status:         string(order.Status),
		Remarks:        order.Remarks,
		Subtotal:       order.Subtotal,
		TaxAmount:      order.TaxAmount,
		Total:          order.Total,
		Lines:          lines,
		Version:        order.Version,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
}

// VendorStatisticsResponse is the API representation of vendor order statistics
type VendorStatisticsResponse struct {
	TotalOrders     int64            `json:"total_orders"`
	TotalSpending   decimal.Decimal  `json:"total_spending"`
	StatusBreakdown map[string]int64 `json:"status_breakdown"`
}

// ToVendorStatisticsResponse converts domain statistics to the API representation
func ToVendorStatisticsResponse(stats *procurement.VendorStatistics) VendorStatisticsResponse {
	breakdown := make(map[string]int64, len(stats.StatusBreakdown))
	for status, count := range stats.StatusBreakdown {
		breakdown[string(status)] = count
	}
	return VendorStatisticsResponse{
		TotalOrders:     stats.TotalOrders,
		TotalSpending:   stats.TotalSpending,
		StatusBreakdown: breakdown,
	}
}
