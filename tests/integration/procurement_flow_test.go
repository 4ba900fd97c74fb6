package integration

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	mdapp "github.com/procure/backend/internal/application/masterdata"
	poapp "github.com/procure/backend/internal/application/procurement"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProcurementFlow_Integration walks the full purchase order lifecycle
// against a real PostgreSQL database: master data setup, order creation
// with sequential numbering, draft editing, the approval chain,
// optimistic locking and vendor statistics.
func TestProcurementFlow_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)
	ctx := context.Background()

	companyRepo := persistence.NewGormCompanyRepository(testDB.DB)
	vendorRepo := persistence.NewGormVendorRepository(testDB.DB)
	orderRepo := persistence.NewGormPurchaseOrderRepository(testDB.DB)

	companySvc := mdapp.NewCompanyService(companyRepo)
	vendorSvc := mdapp.NewVendorService(vendorRepo, companyRepo)
	orderSvc := poapp.NewPurchaseOrderService(orderRepo)

	tenantID := uuid.New()
	userID := uuid.New()

	company, err := companySvc.Create(ctx, tenantID, mdapp.CreateCompanyRequest{
		Code: "ACME",
		Name: "Acme Industries",
	})
	require.NoError(t, err)

	vendor, err := vendorSvc.Create(ctx, tenantID, mdapp.CreateVendorRequest{
		CompanyID: company.ID,
		Code:      "VEND-001",
		Name:      "Nuts And Bolts Ltd",
	})
	require.NoError(t, err)

	var firstOrderID, secondOrderID uuid.UUID

	t.Run("allocates sequential order numbers", func(t *testing.T) {
		first, err := orderSvc.Create(ctx, tenantID, userID, poapp.CreatePurchaseOrderRequest{
			CompanyID: company.ID,
			VendorID:  vendor.ID,
			Lines: []poapp.PurchaseOrderLineRequest{
				{
					Description: "Hex bolts M8",
					Quantity:    decimal.NewFromInt(10),
					UnitPrice:   decimal.NewFromFloat(2.5),
					TaxRate:     decimal.NewFromInt(10),
				},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "PO-00001", first.OrderNumber)
		assert.Equal(t, "DRAFT", first.Status)
		assert.True(t, first.Total.Equal(decimal.NewFromFloat(27.5)))
		firstOrderID = first.ID

		second, err := orderSvc.Create(ctx, tenantID, userID, poapp.CreatePurchaseOrderRequest{
			CompanyID: company.ID,
			VendorID:  vendor.ID,
			Lines: []poapp.PurchaseOrderLineRequest{
				{
					Description: "Sheet metal 2mm",
					Quantity:    decimal.NewFromInt(4),
					UnitPrice:   decimal.NewFromInt(25),
				},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "PO-00002", second.OrderNumber)
		assert.True(t, second.Total.Equal(decimal.NewFromInt(100)))
		secondOrderID = second.ID
	})

	t.Run("fetches order with lines in order", func(t *testing.T) {
		order, err := orderSvc.GetByID(ctx, tenantID, firstOrderID)
		require.NoError(t, err)
		require.Len(t, order.Lines, 1)
		assert.Equal(t, 1, order.Lines[0].LineNo)
		assert.Equal(t, "Hex bolts M8", order.Lines[0].Description)
	})

	t.Run("updates draft order and recomputes totals", func(t *testing.T) {
		remarks := "Rush order"
		lines := []poapp.PurchaseOrderLineRequest{
			{
				Description: "Hex bolts M10",
				Quantity:    decimal.NewFromInt(8),
				UnitPrice:   decimal.NewFromFloat(2.5),
			},
		}
		order, err := orderSvc.Update(ctx, tenantID, firstOrderID, poapp.UpdatePurchaseOrderRequest{
			Remarks: &remarks,
			Lines:   &lines,
		})
		require.NoError(t, err)
		assert.Equal(t, "Rush order", order.Remarks)
		assert.True(t, order.Total.Equal(decimal.NewFromInt(20)))
		assert.Equal(t, 2, order.Version)
	})

	t.Run("walks the approval chain to ISSUED", func(t *testing.T) {
		order, err := orderSvc.Act(ctx, tenantID, secondOrderID, poapp.ChangeStatusRequest{Action: "SUBMIT"})
		require.NoError(t, err)
		assert.Equal(t, "SUBMITTED", order.Status)

		order, err = orderSvc.Act(ctx, tenantID, secondOrderID, poapp.ChangeStatusRequest{Action: "APPROVE"})
		require.NoError(t, err)
		assert.Equal(t, "APPROVED", order.Status)

		order, err = orderSvc.Act(ctx, tenantID, secondOrderID, poapp.ChangeStatusRequest{Action: "ISSUE"})
		require.NoError(t, err)
		assert.Equal(t, "ISSUED", order.Status)
	})

	t.Run("rejects edits once the order left DRAFT", func(t *testing.T) {
		remarks := "too late"
		_, err := orderSvc.Update(ctx, tenantID, secondOrderID, poapp.UpdatePurchaseOrderRequest{
			Remarks: &remarks,
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
	})

	t.Run("detects concurrent modification", func(t *testing.T) {
		stale, err := orderRepo.FindByIDForTenant(ctx, tenantID, firstOrderID)
		require.NoError(t, err)
		fresh, err := orderRepo.FindByIDForTenant(ctx, tenantID, firstOrderID)
		require.NoError(t, err)

		fresh.Remarks = "first writer wins"
		require.NoError(t, orderRepo.Save(ctx, fresh))

		stale.Remarks = "second writer loses"
		err = orderRepo.Save(ctx, stale)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	})

	t.Run("lists orders newest first with totals", func(t *testing.T) {
		page, err := orderSvc.List(ctx, tenantID, poapp.ListPurchaseOrdersRequest{
			CompanyID: company.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		assert.Len(t, page.Items, 2)
	})

	t.Run("aggregates vendor statistics", func(t *testing.T) {
		stats, err := orderSvc.GetVendorStatistics(ctx, tenantID, company.ID, vendor.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.TotalOrders)
		assert.True(t, stats.TotalSpending.Equal(decimal.NewFromInt(120)),
			"expected 120, got %s", stats.TotalSpending)
		assert.Equal(t, int64(1), stats.StatusBreakdown["DRAFT"])
		assert.Equal(t, int64(1), stats.StatusBreakdown["ISSUED"])
	})

	t.Run("isolates tenants", func(t *testing.T) {
		otherTenant := uuid.New()

		_, err := orderSvc.GetByID(ctx, otherTenant, firstOrderID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = orderSvc.List(ctx, otherTenant, poapp.ListPurchaseOrdersRequest{
			CompanyID: company.ID,
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)

		_, err = orderSvc.Create(ctx, otherTenant, userID, poapp.CreatePurchaseOrderRequest{
			CompanyID: company.ID,
			VendorID:  vendor.ID,
			Lines: []poapp.PurchaseOrderLineRequest{
				{Description: "Smuggled line", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)},
			},
		})
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
	})

	t.Run("rejects duplicate vendor code within tenant", func(t *testing.T) {
		_, err := vendorSvc.Create(ctx, tenantID, mdapp.CreateVendorRequest{
			CompanyID: company.ID,
			Code:      "VEND-001",
			Name:      "Impostor Supplies",
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}

// TestOrderNumbering_Integration exercises the number allocator where it
// can actually fail: per-company scoping, concurrent creates racing for
// the counter and the rollback of a consumed number on a failed create.
func TestOrderNumbering_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)
	ctx := context.Background()

	companyRepo := persistence.NewGormCompanyRepository(testDB.DB)
	vendorRepo := persistence.NewGormVendorRepository(testDB.DB)
	orderRepo := persistence.NewGormPurchaseOrderRepository(testDB.DB)

	companySvc := mdapp.NewCompanyService(companyRepo)
	vendorSvc := mdapp.NewVendorService(vendorRepo, companyRepo)
	orderSvc := poapp.NewPurchaseOrderService(orderRepo)

	tenantID := uuid.New()
	userID := uuid.New()

	setupCompany := func(t *testing.T, code string) (uuid.UUID, uuid.UUID) {
		t.Helper()
		company, err := companySvc.Create(ctx, tenantID, mdapp.CreateCompanyRequest{
			Code: code,
			Name: code + " Industries",
		})
		require.NoError(t, err)
		vendor, err := vendorSvc.Create(ctx, tenantID, mdapp.CreateVendorRequest{
			CompanyID: company.ID,
			Code:      "VEND-" + code,
			Name:      code + " Supplies",
		})
		require.NoError(t, err)
		return company.ID, vendor.ID
	}

	createOrder := func(companyID, vendorID uuid.UUID, description string) (*poapp.PurchaseOrderResponse, error) {
		return orderSvc.Create(ctx, tenantID, userID, poapp.CreatePurchaseOrderRequest{
			CompanyID: companyID,
			VendorID:  vendorID,
			Lines: []poapp.PurchaseOrderLineRequest{
				{Description: description, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(5)},
			},
		})
	}

	t.Run("scopes numbering per company", func(t *testing.T) {
		companyA, vendorA := setupCompany(t, "NUMA")
		companyB, vendorB := setupCompany(t, "NUMB")

		first, err := createOrder(companyA, vendorA, "Pallet wrap")
		require.NoError(t, err)
		assert.Equal(t, "PO-00001", first.OrderNumber)

		// sibling company in the same tenant starts its own sequence
		other, err := createOrder(companyB, vendorB, "Pallet wrap")
		require.NoError(t, err)
		assert.Equal(t, "PO-00001", other.OrderNumber)

		second, err := createOrder(companyA, vendorA, "Stretch film")
		require.NoError(t, err)
		assert.Equal(t, "PO-00002", second.OrderNumber)
	})

	t.Run("hands out unique numbers under concurrent creates", func(t *testing.T) {
		companyID, vendorID := setupCompany(t, "NUMC")

		const workers = 8
		numbers := make(chan string, workers)
		errs := make(chan error, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				order, err := createOrder(companyID, vendorID, "Banding strap")
				if err != nil {
					errs <- err
					return
				}
				numbers <- order.OrderNumber
			}()
		}
		wg.Wait()
		close(numbers)
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}

		seen := make(map[string]bool, workers)
		for number := range numbers {
			assert.False(t, seen[number], "order number %s handed out twice", number)
			seen[number] = true
		}
		assert.Len(t, seen, workers)
	})

	t.Run("reuses the number of a rolled back create", func(t *testing.T) {
		companyID, vendorID := setupCompany(t, "NUMD")

		first, err := createOrder(companyID, vendorID, "Corner guards")
		require.NoError(t, err)
		assert.Equal(t, "PO-00001", first.OrderNumber)

		// the line insert fails after the number was allocated, the
		// transaction rolls back and the counter advance with it
		_, err = createOrder(companyID, vendorID, strings.Repeat("x", 600))
		require.Error(t, err)

		next, err := createOrder(companyID, vendorID, "Edge protectors")
		require.NoError(t, err)
		assert.Equal(t, "PO-00002", next.OrderNumber)
	})
}

// TestNumberingRuleRepository_Integration verifies rule persistence and
// the formatted numbers a customized rule hands out.
func TestNumberingRuleRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)
	ctx := context.Background()

	repo := persistence.NewGormNumberingRuleRepository(testDB.DB)
	tenantID := uuid.New()
	companyID := uuid.New()

	_, err := repo.FindForCompany(ctx, tenantID, companyID, procurement.DocumentTypePurchaseOrder)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	rule := procurement.NewNumberingRule(tenantID, companyID, procurement.DocumentTypePurchaseOrder)
	rule.Prefix = "ACME-PO-"
	rule.Padding = 6
	require.NoError(t, repo.Save(ctx, rule))

	found, err := repo.FindForCompany(ctx, tenantID, companyID, procurement.DocumentTypePurchaseOrder)
	require.NoError(t, err)
	assert.Equal(t, "ACME-PO-", found.Prefix)
	assert.Equal(t, "ACME-PO-000001", found.Format(found.NextNumber))

	found.NextNumber = 500
	require.NoError(t, repo.Save(ctx, found))

	reloaded, err := repo.FindForCompany(ctx, tenantID, companyID, procurement.DocumentTypePurchaseOrder)
	require.NoError(t, err)
	assert.Equal(t, int64(500), reloaded.NextNumber)
}
