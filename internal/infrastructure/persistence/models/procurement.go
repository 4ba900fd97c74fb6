package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseOrderModel is the persistence model for the PurchaseOrder aggregate root.
type PurchaseOrderModel struct {
	TenantAggregateModel
	OrderNumber    string                   `gorm:"type:varchar(50);not null;uniqueIndex:idx_po_company_number,priority:2"`
	CompanyID      uuid.UUID                `gorm:"type:uuid;not null;uniqueIndex:idx_po_company_number,priority:1"`
	VendorID       uuid.UUID                `gorm:"type:uuid;not null;index"`
	SiteID         *uuid.UUID               `gorm:"type:uuid;index"`
	CurrencyID     *uuid.UUID               `gorm:"type:uuid"`
	ExchangeRateID *uuid.UUID               `gorm:"type:uuid"`
	OrderDate      time.Time                `gorm:"not null;index"`
	Status         procurement.POStatus     `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	Remarks        string                   `gorm:"type:text"`
	Subtotal       decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	TaxAmount      decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	Total          decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	Lines          []PurchaseOrderLineModel `gorm:"foreignKey:PurchaseOrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// ToDomain converts the persistence model to a domain PurchaseOrder entity.
func (m *PurchaseOrderModel) ToDomain() *procurement.PurchaseOrder {
	order := &procurement.PurchaseOrder{
		TenantAggregateRoot: m.tenantAggregateRoot(),
		OrderNumber:         m.OrderNumber,
		CompanyID:           m.CompanyID,
		VendorID:            m.VendorID,
		SiteID:              m.SiteID,
		CurrencyID:          m.CurrencyID,
		ExchangeRateID:      m.ExchangeRateID,
		OrderDate:           m.OrderDate,
		Status:              m.Status,
		Remarks:             m.Remarks,
		Subtotal:            m.Subtotal,
		TaxAmount:           m.TaxAmount,
		Total:               m.Total,
		Lines:               make([]procurement.PurchaseOrderLine, len(m.Lines)),
	}
	for i, line := range m.Lines {
		order.Lines[i] = *line.ToDomain()
	}
	return order
}

// FromDomain populates the persistence model from a domain PurchaseOrder entity.
func (m *PurchaseOrderModel) FromDomain(o *procurement.PurchaseOrder) {
	m.FromDomainTenantAggregateRoot(o.TenantAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.CompanyID = o.CompanyID
	m.VendorID = o.VendorID
	m.SiteID = o.SiteID
	m.CurrencyID = o.CurrencyID
	m.ExchangeRateID = o.ExchangeRateID
	m.OrderDate = o.OrderDate
	m.Status = o.Status
	m.Remarks = o.Remarks
	m.Subtotal = o.Subtotal
	m.TaxAmount = o.TaxAmount
	m.Total = o.Total
	m.Lines = make([]PurchaseOrderLineModel, len(o.Lines))
	for i, line := range o.Lines {
		m.Lines[i] = *PurchaseOrderLineModelFromDomain(&line)
	}
}

// PurchaseOrderModelFromDomain creates a new persistence model from a domain PurchaseOrder entity.
func PurchaseOrderModelFromDomain(o *procurement.PurchaseOrder) *PurchaseOrderModel {
	m := &PurchaseOrderModel{}
	m.FromDomain(o)
	return m
}

// PurchaseOrderLineModel is the persistence model for the PurchaseOrderLine entity.
type PurchaseOrderLineModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key"`
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	LineNo          int             `gorm:"not null"`
	ItemID          *uuid.UUID      `gorm:"type:uuid;index"`
	Description     string          `gorm:"type:varchar(500);not null"`
	UOMID           *uuid.UUID      `gorm:"type:uuid"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TaxRate         decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TaxAmount       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Total           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderLineModel) TableName() string {
	return "purchase_order_lines"
}

// ToDomain converts the persistence model to a domain PurchaseOrderLine entity.
func (m *PurchaseOrderLineModel) ToDomain() *procurement.PurchaseOrderLine {
	return &procurement.PurchaseOrderLine{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		PurchaseOrderID: m.PurchaseOrderID,
		LineNo:          m.LineNo,
		ItemID:          m.ItemID,
		Description:     m.Description,
		UOMID:           m.UOMID,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		TaxRate:         m.TaxRate,
		Subtotal:        m.Subtotal,
		TaxAmount:       m.TaxAmount,
		Total:           m.Total,
	}
}

// PurchaseOrderLineModelFromDomain creates a new persistence model from a domain PurchaseOrderLine entity.
func PurchaseOrderLineModelFromDomain(l *procurement.PurchaseOrderLine) *PurchaseOrderLineModel {
	return &PurchaseOrderLineModel{
		ID:              l.ID,
		PurchaseOrderID: l.PurchaseOrderID,
		LineNo:          l.LineNo,
		ItemID:          l.ItemID,
		Description:     l.Description,
		UOMID:           l.UOMID,
		Quantity:        l.Quantity,
		UnitPrice:       l.UnitPrice,
		TaxRate:         l.TaxRate,
		Subtotal:        l.Subtotal,
		TaxAmount:       l.TaxAmount,
		Total:           l.Total,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

// NumberingRuleModel is the persistence model for the NumberingRule aggregate root.
type NumberingRuleModel struct {
	TenantAggregateModel
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_numbering_company_doc,priority:1"`
	DocumentType string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_numbering_company_doc,priority:2"`
	Prefix       string    `gorm:"type:varchar(20);not null"`
	Suffix       string    `gorm:"type:varchar(20);not null;default:''"`
	Padding      int       `gorm:"not null;default:5"`
	NextNumber   int64     `gorm:"not null;default:1"`
	IsActive     bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (NumberingRuleModel) TableName() string {
	return "numbering_rules"
}

// ToDomain converts the persistence model to a domain NumberingRule entity.
func (m *NumberingRuleModel) ToDomain() *procurement.NumberingRule {
	return &procurement.NumberingRule{
		TenantAggregateRoot: m.tenantAggregateRoot(),
		CompanyID:           m.CompanyID,
		DocumentType:        m.DocumentType,
		Prefix:              m.Prefix,
		Suffix:              m.Suffix,
		Padding:             m.Padding,
		NextNumber:          m.NextNumber,
		IsActive:            m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain NumberingRule entity.
func (m *NumberingRuleModel) FromDomain(r *procurement.NumberingRule) {
	m.FromDomainTenantAggregateRoot(r.TenantAggregateRoot)
	m.CompanyID = r.CompanyID
	m.DocumentType = r.DocumentType
	m.Prefix = r.Prefix
	m.Suffix = r.Suffix
	m.Padding = r.Padding
	m.NextNumber = r.NextNumber
	m.IsActive = r.IsActive
}

// NumberingRuleModelFromDomain creates a new persistence model from a domain NumberingRule entity.
func NumberingRuleModelFromDomain(r *procurement.NumberingRule) *NumberingRuleModel {
	m := &NumberingRuleModel{}
	m.FromDomain(r)
	return m
}
