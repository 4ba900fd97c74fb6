package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormNumberingRuleRepository implements procurement.NumberingRuleRepository using GORM
type GormNumberingRuleRepository struct {
	db *gorm.DB
}

// NewGormNumberingRuleRepository creates a new numbering rule repository
func NewGormNumberingRuleRepository(db *gorm.DB) *GormNumberingRuleRepository {
	return &GormNumberingRuleRepository{db: db}
}

// FindForCompany finds the rule for a company and document type
func (r *GormNumberingRuleRepository) FindForCompany(ctx context.Context, tenantID, companyID uuid.UUID, documentType string) (*procurement.NumberingRule, error) {
	var model models.NumberingRuleModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND company_id = ? AND document_type = ?", tenantID, companyID, documentType).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists a numbering rule
func (r *GormNumberingRuleRepository) Save(ctx context.Context, rule *procurement.NumberingRule) error {
	model := models.NumberingRuleModelFromDomain(rule)
	return r.db.WithContext(ctx).Save(model).Error
}

// allocateDocumentNumber reads the rule under a row lock, hands out the
// next formatted number and advances the counter, creating the rule
// with defaults when the company has none. It must run inside the same
// transaction that persists the document: if the transaction rolls
// back, the counter advance rolls back with it and the number is never
// observed outside the transaction.
func allocateDocumentNumber(tx *gorm.DB, tenantID, companyID uuid.UUID, documentType string) (string, error) {
	for attempt := 0; attempt < 2; attempt++ {
		var model models.NumberingRuleModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("tenant_id = ? AND company_id = ? AND document_type = ?", tenantID, companyID, documentType).
			First(&model).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			rule := procurement.NewNumberingRule(tenantID, companyID, documentType)
			number := rule.Allocate()
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(models.NumberingRuleModelFromDomain(rule))
			if result.Error != nil {
				return "", result.Error
			}
			if result.RowsAffected == 0 {
				// another transaction seeded the rule first, re-read it under lock
				continue
			}
			return number, nil
		}
		if err != nil {
			return "", err
		}

		rule := model.ToDomain()
		number := rule.Allocate()

		result := tx.Model(&models.NumberingRuleModel{}).
			Where("id = ?", rule.ID).
			Updates(map[string]interface{}{
				"next_number": rule.NextNumber,
				"updated_at":  time.Now(),
			})
		if result.Error != nil {
			return "", result.Error
		}
		if result.RowsAffected == 0 {
			return "", shared.ErrConcurrencyConflict
		}
		return number, nil
	}
	return "", shared.ErrConcurrencyConflict
}

// Ensure GormNumberingRuleRepository implements the repository interface
var _ procurement.NumberingRuleRepository = (*GormNumberingRuleRepository)(nil)
