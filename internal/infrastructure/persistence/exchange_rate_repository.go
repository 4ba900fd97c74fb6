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

// GormExchangeRateRepository implements masterdata.ExchangeRateRepository using GORM
type GormExchangeRateRepository struct {
	db *gorm.DB
}

// NewGormExchangeRateRepository creates a new exchange rate repository
func NewGormExchangeRateRepository(db *gorm.DB) *GormExchangeRateRepository {
	return &GormExchangeRateRepository{db: db}
}

// FindLatest finds the most recently effective rate for the (base, target) pair
func (r *GormExchangeRateRepository) FindLatest(ctx context.Context, tenantID, baseCurrencyID, targetCurrencyID uuid.UUID) (*masterdata.ExchangeRate, error) {
	var model models.ExchangeRateModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND base_currency_id = ? AND target_currency_id = ?", tenantID, baseCurrencyID, targetCurrencyID).
		Order("effective_date DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForCurrency lists the rates a currency participates in, newest first
func (r *GormExchangeRateRepository) FindAllForCurrency(ctx context.Context, tenantID, currencyID uuid.UUID) ([]masterdata.ExchangeRate, error) {
	var rateModels []models.ExchangeRateModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND (base_currency_id = ? OR target_currency_id = ?)", tenantID, currencyID, currencyID).
		Order("effective_date DESC").
		Find(&rateModels).Error; err != nil {
		return nil, err
	}

	rates := make([]masterdata.ExchangeRate, len(rateModels))
	for i, m := range rateModels {
		rates[i] = *m.ToDomain()
	}
	return rates, nil
}

// Save persists an exchange rate
func (r *GormExchangeRateRepository) Save(ctx context.Context, rate *masterdata.ExchangeRate) error {
	model := models.ExchangeRateModelFromDomain(rate)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an exchange rate, scoped to the tenant
func (r *GormExchangeRateRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&models.ExchangeRateModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormExchangeRateRepository implements the repository interface
var _ masterdata.ExchangeRateRepository = (*GormExchangeRateRepository)(nil)
