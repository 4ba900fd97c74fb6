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

// GormCompanyRepository implements masterdata.CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new company repository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByIDForTenant finds a company by ID, scoped to the tenant
func (r *GormCompanyRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Company, error) {
	var model models.CompanyModel
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

// FindAllForTenant lists companies for a tenant
func (r *GormCompanyRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Company, int64, error) {
	normalizeFilter(&filter)

	query := r.db.WithContext(ctx).Model(&models.CompanyModel{}).
		Where("tenant_id = ?", tenantID)
	query = applySearch(query, filter.Search, "code", "name")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var companyModels []models.CompanyModel
	if err := applyPagination(query, filter).Find(&companyModels).Error; err != nil {
		return nil, 0, err
	}

	companies := make([]masterdata.Company, len(companyModels))
	for i, m := range companyModels {
		companies[i] = *m.ToDomain()
	}
	return companies, total, nil
}

// FindByCode finds a company by its code within a tenant
func (r *GormCompanyRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*masterdata.Company, error) {
	var model models.CompanyModel
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

// Save persists a company
func (r *GormCompanyRepository) Save(ctx context.Context, company *masterdata.Company) error {
	model := models.CompanyModelFromDomain(company)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a company, scoped to the tenant
func (r *GormCompanyRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&models.CompanyModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCompanyRepository implements the repository interface
var _ masterdata.CompanyRepository = (*GormCompanyRepository)(nil)
