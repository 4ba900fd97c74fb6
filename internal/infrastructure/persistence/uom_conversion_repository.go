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

// GormUOMConversionRepository implements masterdata.UOMConversionRepository using GORM
type GormUOMConversionRepository struct {
	db *gorm.DB
}

// NewGormUOMConversionRepository creates a new UOM conversion repository
func NewGormUOMConversionRepository(db *gorm.DB) *GormUOMConversionRepository {
	return &GormUOMConversionRepository{db: db}
}

// FindByIDForTenant finds a conversion by ID, scoped to the tenant
func (r *GormUOMConversionRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.UOMConversion, error) {
	var model models.UOMConversionModel
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

// FindBetween finds the conversion registered for the exact (from, to) pair
func (r *GormUOMConversionRepository) FindBetween(ctx context.Context, tenantID, fromUOMID, toUOMID uuid.UUID) (*masterdata.UOMConversion, error) {
	var model models.UOMConversionModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND from_uom_id = ? AND to_uom_id = ?", tenantID, fromUOMID, toUOMID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForUOM lists the conversions a unit participates in, on either side
func (r *GormUOMConversionRepository) FindAllForUOM(ctx context.Context, tenantID, uomID uuid.UUID) ([]masterdata.UOMConversion, error) {
	var conversionModels []models.UOMConversionModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND (from_uom_id = ? OR to_uom_id = ?)", tenantID, uomID, uomID).
		Order("created_at").
		Find(&conversionModels).Error; err != nil {
		return nil, err
	}

	conversions := make([]masterdata.UOMConversion, len(conversionModels))
	for i, m := range conversionModels {
		conversions[i] = *m.ToDomain()
	}
	return conversions, nil
}

// Save persists a conversion
func (r *GormUOMConversionRepository) Save(ctx context.Context, conversion *masterdata.UOMConversion) error {
	model := models.UOMConversionModelFromDomain(conversion)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a conversion, scoped to the tenant
func (r *GormUOMConversionRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&models.UOMConversionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormUOMConversionRepository implements the repository interface
var _ masterdata.UOMConversionRepository = (*GormUOMConversionRepository)(nil)
