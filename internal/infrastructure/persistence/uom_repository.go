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

// GormUOMRepository implements masterdata.UOMRepository using GORM
type GormUOMRepository struct {
	db *gorm.DB
}

// NewGormUOMRepository creates a new UOM repository
func NewGormUOMRepository(db *gorm.DB) *GormUOMRepository {
	return &GormUOMRepository{db: db}
}

// FindByIDForTenant finds a UOM by ID, scoped to the tenant
func (r *GormUOMRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.UOM, error) {
	var model models.UOMModel
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

// FindAllForTenant lists UOMs for a tenant
func (r *GormUOMRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.UOM, int64, error) {
	normalizeFilter(&filter)

	query := r.db.WithContext(ctx).Model(&models.UOMModel{}).
		Where("tenant_id = ?", tenantID)
	query = applySearch(query, filter.Search, "code", "name")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var uomModels []models.UOMModel
	if err := applyPagination(query, filter).Find(&uomModels).Error; err != nil {
		return nil, 0, err
	}

	uoms := make([]masterdata.UOM, len(uomModels))
	for i, m := range uomModels {
		uoms[i] = *m.ToDomain()
	}
	return uoms, total, nil
}

// Save persists a UOM
func (r *GormUOMRepository) Save(ctx context.Context, uom *masterdata.UOM) error {
	model := models.UOMModelFromDomain(uom)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a UOM, scoped to the tenant
func (r *GormUOMRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&models.UOMModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormUOMRepository implements the repository interface
var _ masterdata.UOMRepository = (*GormUOMRepository)(nil)
