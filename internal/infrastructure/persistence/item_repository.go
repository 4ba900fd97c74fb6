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

// GormItemRepository implements masterdata.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new item repository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByIDForTenant finds an item by ID, scoped to the tenant
func (r *GormItemRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Item, error) {
	var model models.ItemModel
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

// FindAllForTenant lists items for a tenant
func (r *GormItemRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Item, int64, error) {
	normalizeFilter(&filter)

	query := r.db.WithContext(ctx).Model(&models.ItemModel{}).
		Where("tenant_id = ?", tenantID)
	query = applySearch(query, filter.Search, "code", "name", "description")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var itemModels []models.ItemModel
	if err := applyPagination(query, filter).Find(&itemModels).Error; err != nil {
		return nil, 0, err
	}

	items := make([]masterdata.Item, len(itemModels))
	for i, m := range itemModels {
		items[i] = *m.ToDomain()
	}
	return items, total, nil
}

// FindByCode finds an item by its code within a tenant
func (r *GormItemRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*masterdata.Item, error) {
	var model models.ItemModel
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

// Save persists an item
func (r *GormItemRepository) Save(ctx context.Context, item *masterdata.Item) error {
	model := models.ItemModelFromDomain(item)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an item, scoped to the tenant
func (r *GormItemRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&models.ItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormItemRepository implements the repository interface
var _ masterdata.ItemRepository = (*GormItemRepository)(nil)
