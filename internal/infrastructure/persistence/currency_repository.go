package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/masterdata"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCurrencyRepository implements masterdata.CurrencyRepository using GORM
type GormCurrencyRepository struct {
	db *gorm.DB
}

// NewGormCurrencyRepository creates a new currency repository
func NewGormCurrencyRepository(db *gorm.DB) *GormCurrencyRepository {
	return &GormCurrencyRepository{db: db}
}

// FindByIDForTenant finds a currency by ID, scoped to the tenant
func (r *GormCurrencyRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Currency, error) {
	var model models.CurrencyModel
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

// FindAllForTenant lists currencies for a tenant
func (r *GormCurrencyRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Currency, int64, error) {
	normalizeFilter(&filter)

	query := r.db.WithContext(ctx).Model(&models.CurrencyModel{}).
		Where("tenant_id = ?", tenantID)
	query = applySearch(query, filter.Search, "code", "name")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var currencyModels []models.CurrencyModel
	if err := applyPagination(query, filter).Find(&currencyModels).Error; err != nil {
		return nil, 0, err
	}

	currencies := make([]masterdata.Currency, len(currencyModels))
	for i, m := range currencyModels {
		currencies[i] = *m.ToDomain()
	}
	return currencies, total, nil
}

// FindByCode finds a currency by its ISO code within a tenant
func (r *GormCurrencyRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*masterdata.Currency, error) {
	var model models.CurrencyModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND code = ?", tenantID, strings.ToUpper(code)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists a currency
func (r *GormCurrencyRepository) Save(ctx context.Context, currency *masterdata.Currency) error {
	model := models.CurrencyModelFromDomain(currency)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a currency, scoped to the tenant
func (r *GormCurrencyRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&models.CurrencyModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCurrencyRepository implements the repository interface
var _ masterdata.CurrencyRepository = (*GormCurrencyRepository)(nil)
