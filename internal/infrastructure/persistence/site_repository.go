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

// GormSiteRepository implements masterdata.SiteRepository using GORM
type GormSiteRepository struct {
	db *gorm.DB
}

// NewGormSiteRepository creates a new site repository
func NewGormSiteRepository(db *gorm.DB) *GormSiteRepository {
	return &GormSiteRepository{db: db}
}

// FindByIDForTenant finds a site by ID, scoped to the tenant
func (r *GormSiteRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Site, error) {
	var model models.SiteModel
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

// FindActiveForCompany returns the site only if it is active and belongs
// to the given company
func (r *GormSiteRepository) FindActiveForCompany(ctx context.Context, tenantID, companyID, id uuid.UUID) (*masterdata.Site, error) {
	var model models.SiteModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ? AND company_id = ? AND is_active = ?",
			id, tenantID, companyID, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists sites for a tenant
func (r *GormSiteRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Site, int64, error) {
	normalizeFilter(&filter)

	query := r.db.WithContext(ctx).Model(&models.SiteModel{}).
		Where("tenant_id = ?", tenantID)
	if companyID, ok := filter.Filters["company_id"]; ok {
		query = query.Where("company_id = ?", companyID)
	}
	query = applySearch(query, filter.Search, "code", "name")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var siteModels []models.SiteModel
	if err := applyPagination(query, filter).Find(&siteModels).Error; err != nil {
		return nil, 0, err
	}

	sites := make([]masterdata.Site, len(siteModels))
	for i, m := range siteModels {
		sites[i] = *m.ToDomain()
	}
	return sites, total, nil
}

// Save persists a site
func (r *GormSiteRepository) Save(ctx context.Context, site *masterdata.Site) error {
	model := models.SiteModelFromDomain(site)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a site, scoped to the tenant
func (r *GormSiteRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&models.SiteModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormSiteRepository implements the repository interface
var _ masterdata.SiteRepository = (*GormSiteRepository)(nil)
