package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/masterdata"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPurchaseOrderRepository implements procurement.PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new purchase order repository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// Create performs the full creation sequence in one transaction:
// tenant ownership check on the company, vendor validation, number
// allocation and the insert of the order with its lines. Any failure
// rolls everything back, including the consumed number.
func (r *GormPurchaseOrderRepository) Create(ctx context.Context, spec procurement.CreateOrderSpec) (*procurement.PurchaseOrder, error) {
	var created *procurement.PurchaseOrder

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The company must belong to the caller's tenant
		var company models.CompanyModel
		if err := tx.Where("id = ? AND tenant_id = ?", spec.CompanyID, spec.TenantID).
			First(&company).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.NewDomainError("FORBIDDEN", "Company does not belong to your tenant")
			}
			return err
		}

		// The vendor must exist, be active and belong to the company
		var vendor models.VendorModel
		if err := tx.Where("id = ? AND tenant_id = ? AND company_id = ? AND status = ?",
			spec.VendorID, spec.TenantID, spec.CompanyID, masterdata.VendorStatusActive).
			First(&vendor).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.NewDomainError("NOT_FOUND", "Vendor not found, inactive, or not registered with this company")
			}
			return err
		}

		orderNumber, err := allocateDocumentNumber(tx, spec.TenantID, spec.CompanyID, procurement.DocumentTypePurchaseOrder)
		if err != nil {
			return err
		}

		var orderDate time.Time
		if spec.OrderDate != nil {
			orderDate = *spec.OrderDate
		}

		order, err := procurement.NewPurchaseOrder(
			spec.TenantID, spec.CompanyID, spec.VendorID, spec.CreatedBy,
			orderNumber, orderDate, spec.Lines,
		)
		if err != nil {
			return err
		}

		order.SiteID = spec.SiteID
		order.ExchangeRateID = spec.ExchangeRateID
		order.Remarks = spec.Remarks

		// fall back to the vendor's default currency
		if spec.CurrencyID != nil {
			order.CurrencyID = spec.CurrencyID
		} else {
			order.CurrencyID = vendor.CurrencyID
		}

		model := models.PurchaseOrderModelFromDomain(order)
		if err := tx.Omit("Lines").Create(model).Error; err != nil {
			return err
		}
		for i := range order.Lines {
			order.Lines[i].PurchaseOrderID = order.ID
			lineModel := models.PurchaseOrderLineModelFromDomain(&order.Lines[i])
			if err := tx.Create(lineModel).Error; err != nil {
				return err
			}
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// FindByIDForTenant finds a purchase order with its lines, scoped to the tenant
func (r *GormPurchaseOrderRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*procurement.PurchaseOrder, error) {
	var model models.PurchaseOrderModel
	if err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_no ASC")
		}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists purchase orders for a company, newest first
func (r *GormPurchaseOrderRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter procurement.OrderFilter) ([]procurement.PurchaseOrder, int64, error) {
	filter.Normalize()

	// the target company must belong to the caller's tenant
	var companyCount int64
	if err := r.db.WithContext(ctx).Model(&models.CompanyModel{}).
		Where("id = ? AND tenant_id = ?", filter.CompanyID, tenantID).
		Count(&companyCount).Error; err != nil {
		return nil, 0, err
	}
	if companyCount == 0 {
		return nil, 0, shared.NewDomainError("FORBIDDEN", "Company does not belong to your tenant")
	}

	query := r.db.WithContext(ctx).Model(&models.PurchaseOrderModel{}).
		Where("tenant_id = ? AND company_id = ?", tenantID, filter.CompanyID)
	query = applyOrderFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orderModels []models.PurchaseOrderModel
	if err := query.
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_no ASC")
		}).
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&orderModels).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]procurement.PurchaseOrder, len(orderModels))
	for i, m := range orderModels {
		orders[i] = *m.ToDomain()
	}
	return orders, total, nil
}

// applyOrderFilter applies the optional listing filters
func applyOrderFilter(query *gorm.DB, filter procurement.OrderFilter) *gorm.DB {
	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.SiteID != nil {
		query = query.Where("site_id = ?", *filter.SiteID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("order_number ILIKE ? OR remarks ILIKE ?", pattern, pattern)
	}
	if filter.DateFrom != nil {
		query = query.Where("order_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("order_date <= ?", *filter.DateTo)
	}
	return query
}

// Save persists header changes and replaces the full line set in one
// transaction, with an optimistic version check
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, order *procurement.PurchaseOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// version check against the stored row
		var current struct {
			Version  int
			VendorID uuid.UUID
		}
		if err := tx.Model(&models.PurchaseOrderModel{}).
			Where("id = ? AND tenant_id = ?", order.ID, order.TenantID).
			Select("version, vendor_id").
			Scan(&current).Error; err != nil {
			return err
		}
		if current.Version == 0 {
			return shared.ErrNotFound
		}
		if current.Version != order.Version {
			return shared.ErrConcurrencyConflict
		}

		// a reassigned vendor must be active and registered with the company
		if current.VendorID != order.VendorID {
			var vendor models.VendorModel
			if err := tx.Where("id = ? AND tenant_id = ? AND company_id = ? AND status = ?",
				order.VendorID, order.TenantID, order.CompanyID, masterdata.VendorStatusActive).
				First(&vendor).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return shared.NewDomainError("NOT_FOUND", "Vendor not found, inactive, or not registered with this company")
				}
				return err
			}
		}

		order.Version++
		order.UpdatedAt = time.Now()

		result := tx.Model(&models.PurchaseOrderModel{}).
			Where("id = ? AND version = ?", order.ID, current.Version).
			Updates(map[string]interface{}{
				"vendor_id":        order.VendorID,
				"site_id":          order.SiteID,
				"currency_id":      order.CurrencyID,
				"exchange_rate_id": order.ExchangeRateID,
				"order_date":       order.OrderDate,
				"status":           order.Status,
				"remarks":          order.Remarks,
				"subtotal":         order.Subtotal,
				"tax_amount":       order.TaxAmount,
				"total":            order.Total,
				"version":          order.Version,
				"updated_at":       order.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}

		// full line replacement: delete everything, recreate from the aggregate
		if err := tx.Where("purchase_order_id = ?", order.ID).
			Delete(&models.PurchaseOrderLineModel{}).Error; err != nil {
			return err
		}
		for i := range order.Lines {
			order.Lines[i].PurchaseOrderID = order.ID
			lineModel := models.PurchaseOrderLineModelFromDomain(&order.Lines[i])
			if err := tx.Create(lineModel).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// GetVendorStatistics aggregates order counts and spending for a vendor
func (r *GormPurchaseOrderRepository) GetVendorStatistics(ctx context.Context, tenantID, companyID, vendorID uuid.UUID) (*procurement.VendorStatistics, error) {
	var summary struct {
		TotalOrders   int64
		TotalSpending decimal.Decimal
	}
	if err := r.db.WithContext(ctx).Model(&models.PurchaseOrderModel{}).
		Select("COUNT(*) as total_orders, COALESCE(SUM(total), 0) as total_spending").
		Where("tenant_id = ? AND company_id = ? AND vendor_id = ?", tenantID, companyID, vendorID).
		Scan(&summary).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		Status procurement.POStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).Model(&models.PurchaseOrderModel{}).
		Select("status, COUNT(*) as count").
		Where("tenant_id = ? AND company_id = ? AND vendor_id = ?", tenantID, companyID, vendorID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	breakdown := make(map[procurement.POStatus]int64, len(rows))
	for _, row := range rows {
		breakdown[row.Status] = row.Count
	}

	return &procurement.VendorStatistics{
		TotalOrders:     summary.TotalOrders,
		TotalSpending:   summary.TotalSpending,
		StatusBreakdown: breakdown,
	}, nil
}

// Ensure GormPurchaseOrderRepository implements the repository interface
var _ procurement.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
