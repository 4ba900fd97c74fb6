package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/masterdata"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormVendorRepository implements masterdata.VendorRepository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new vendor repository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// FindByIDForTenant finds a vendor by ID, scoped to the tenant
func (r *GormVendorRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Vendor, error) {
	var model models.VendorModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveForCompany returns the vendor only if it is active and belongs
// to the given company
func (r *GormVendorRepository) FindActiveForCompany(ctx context.Context, tenantID, companyID, id uuid.UUID) (*masterdata.Vendor, error) {
	var model models.VendorModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ? AND company_id = ? AND status = ?",
			id, tenantID, companyID, masterdata.VendorStatusActive).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists vendors for a tenant
func (r *GormVendorRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Vendor, int64, error) {
	normalizeFilter(&filter)

	query := r.db.WithContext(ctx).Model(&models.VendorModel{}).
		Where("tenant_id = ?", tenantID)
	if companyID, ok := filter.Filters["company_id"]; ok {
		query = query.Where("company_id = ?", companyID)
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	query = applySearch(query, filter.Search, "code", "name")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vendorModels []models.VendorModel
	if err := applyPagination(query, filter).Find(&vendorModels).Error; err != nil {
		return nil, 0, err
	}

	vendors := make([]masterdata.Vendor, len(vendorModels))
	for i, m := range vendorModels {
		vendors[i] = *m.ToDomain()
	}
	return vendors, total, nil
}

// FindByCode finds a vendor by its code within a tenant
func (r *GormVendorRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*masterdata.Vendor, error) {
	var model models.VendorModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND code = ?", tenantID, code).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists a vendor
func (r *GormVendorRepository) Save(ctx context.Context, vendor *masterdata.Vendor) error {
	model := models.VendorModelFromDomain(vendor)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a vendor, scoped to the tenant
func (r *GormVendorRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&models.VendorModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormVendorRepository implements the repository interface
var _ masterdata.VendorRepository = (*GormVendorRepository)(nil)
