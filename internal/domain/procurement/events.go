package procurement

import (
	"github.com/procure/backend/internal/domain/shared"
)

// Event types emitted by the purchase order aggregate
const (
	EventTypePurchaseOrderCreated       = "procurement.purchase_order.created"
	EventTypePurchaseOrderUpdated       = "procurement.purchase_order.updated"
	EventTypePurchaseOrderStatusChanged = "procurement.purchase_order.status_changed"
)

const aggregateTypePurchaseOrder = "PurchaseOrder"

// PurchaseOrderCreatedEvent is emitted when a purchase order is created
type PurchaseOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string `json:"order_number"`
	CompanyID   string `json:"company_id"`
	VendorID    string `json:"vendor_id"`
	Total       string `json:"total"`
}

// NewPurchaseOrderCreatedEvent creates a created event from the aggregate
func NewPurchaseOrderCreatedEvent(po *PurchaseOrder) *PurchaseOrderCreatedEvent {
	return &PurchaseOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypePurchaseOrderCreated, aggregateTypePurchaseOrder, po.ID, po.TenantID),
		OrderNumber: po.OrderNumber,
		CompanyID:   po.CompanyID.String(),
		VendorID:    po.VendorID.String(),
		Total:       po.Total.String(),
	}
}

// PurchaseOrderUpdatedEvent is emitted when a draft order is modified
type PurchaseOrderUpdatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string `json:"order_number"`
	Total       string `json:"total"`
}

// NewPurchaseOrderUpdatedEvent creates an updated event from the aggregate
func NewPurchaseOrderUpdatedEvent(po *PurchaseOrder) *PurchaseOrderUpdatedEvent {
	return &PurchaseOrderUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypePurchaseOrderUpdated, aggregateTypePurchaseOrder, po.ID, po.TenantID),
		OrderNumber: po.OrderNumber,
		Total:       po.Total.String(),
	}
}

// PurchaseOrderStatusChangedEvent is emitted on every status transition
type PurchaseOrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string `json:"order_number"`
	FromStatus  string `json:"from_status"`
	ToStatus    string `json:"to_status"`
}

// NewPurchaseOrderStatusChangedEvent creates a status change event
func NewPurchaseOrderStatusChangedEvent(po *PurchaseOrder, from, to POStatus) *PurchaseOrderStatusChangedEvent {
	return &PurchaseOrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypePurchaseOrderStatusChanged, aggregateTypePurchaseOrder, po.ID, po.TenantID),
		OrderNumber: po.OrderNumber,
		FromStatus:  string(from),
		ToStatus:    string(to),
	}
}
