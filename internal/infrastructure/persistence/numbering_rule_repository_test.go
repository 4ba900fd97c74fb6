package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockNumberingRuleRepository creates a GormNumberingRuleRepository with a mocked SQL connection
func newMockNumberingRuleRepository(t *testing.T) (*GormNumberingRuleRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormNumberingRuleRepository(gormDB), mock, mockDB
}

func TestGormNumberingRuleRepository_FindForCompany(t *testing.T) {
	t.Run("finds rule for company and document type", func(t *testing.T) {
		repo, mock, mockDB := newMockNumberingRuleRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		companyID := uuid.New()
		ruleID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "tenant_id", "company_id", "document_type", "prefix", "suffix", "padding", "next_number", "is_active"}).
			AddRow(ruleID, tenantID, companyID, "PO", "PO-", "", 5, 42, true)

		mock.ExpectQuery(`SELECT \* FROM "numbering_rules" WHERE tenant_id = \$1 AND company_id = \$2 AND document_type = \$3 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, companyID, procurement.DocumentTypePurchaseOrder, 1).
			WillReturnRows(rows)

		rule, err := repo.FindForCompany(context.Background(), tenantID, companyID, procurement.DocumentTypePurchaseOrder)

		assert.NoError(t, err)
		require.NotNil(t, rule)
		assert.Equal(t, companyID, rule.CompanyID)
		assert.Equal(t, int64(42), rule.NextNumber)
		assert.Equal(t, "PO-00042", rule.Format(rule.NextNumber))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when company has no rule", func(t *testing.T) {
		repo, mock, mockDB := newMockNumberingRuleRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		companyID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "numbering_rules" WHERE tenant_id = \$1 AND company_id = \$2 AND document_type = \$3 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, companyID, procurement.DocumentTypePurchaseOrder, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		rule, err := repo.FindForCompany(context.Background(), tenantID, companyID, procurement.DocumentTypePurchaseOrder)

		assert.Nil(t, rule)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormNumberingRuleRepository_Save(t *testing.T) {
	t.Run("saves rule", func(t *testing.T) {
		repo, mock, mockDB := newMockNumberingRuleRepository(t)
		defer mockDB.Close()

		rule := procurement.NewNumberingRule(uuid.New(), uuid.New(), procurement.DocumentTypePurchaseOrder)
		rule.Allocate()

		mock.ExpectExec(`UPDATE "numbering_rules" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Save(context.Background(), rule)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormNumberingRuleRepository_InterfaceCompliance(t *testing.T) {
	t.Run("implements NumberingRuleRepository interface", func(t *testing.T) {
		repo, _, mockDB := newMockNumberingRuleRepository(t)
		defer mockDB.Close()

		var _ procurement.NumberingRuleRepository = repo
	})
}
