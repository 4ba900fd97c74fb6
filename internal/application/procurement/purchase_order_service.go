package procurement

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
)

// PurchaseOrderService orchestrates purchase order operations. It is a
// thin layer: all business rules live in the domain and the repository
// transaction.
type PurchaseOrderService struct {
	orderRepo procurement.PurchaseOrderRepository
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(orderRepo procurement.PurchaseOrderRepository) *PurchaseOrderService {
	return &PurchaseOrderService{orderRepo: orderRepo}
}

// Create creates a new purchase order for the caller's tenant
func (s *PurchaseOrderService) Create(ctx context.Context, tenantID, userID uuid.UUID, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	lines := make([]procurement.LineSpec, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = line.ToLineSpec()
	}

	order, err := s.orderRepo.Create(ctx, procurement.CreateOrderSpec{
		TenantID:       tenantID,
		CompanyID:      req.CompanyID,
		VendorID:       req.VendorID,
		CreatedBy:      userID,
		SiteID:         req.SiteID,
		CurrencyID:     req.CurrencyID,
		ExchangeRateID: req.ExchangeRateID,
		OrderDate:      req.OrderDate,
		Remarks:        req.Remarks,
		Lines:          lines,
	})
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a purchase order scoped to the caller's tenant
func (s *PurchaseOrderService) GetByID(ctx context.Context, tenantID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List returns the purchase orders of a company, newest first
func (s *PurchaseOrderService) List(ctx context.Context, tenantID uuid.UUID, req ListPurchaseOrdersRequest) (*shared.Paginated[PurchaseOrderResponse], error) {
	filter := procurement.OrderFilter{
		CompanyID: req.CompanyID,
		VendorID:  req.VendorID,
		SiteID:    req.SiteID,
		Search:    req.Search,
		DateFrom:  req.DateFrom,
		DateTo:    req.DateTo,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}
	if req.Status != nil {
		status := procurement.POStatus(*req.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_INPUT", "Unknown status filter: "+*req.Status)
		}
		filter.Status = &status
	}
	filter.Normalize()

	orders, total, err := s.orderRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToPurchaseOrderResponse(&orders[i])
	}
	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies a partial update to a DRAFT purchase order. A provided
// line set replaces all existing lines and recomputes the totals.
func (s *PurchaseOrderService) Update(ctx context.Context, tenantID, orderID uuid.UUID, req UpdatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}

	// an empty provided line set carries no replacement
	if req.Lines != nil && len(*req.Lines) > 0 {
		lines := make([]procurement.LineSpec, len(*req.Lines))
		for i, line := range *req.Lines {
			lines[i] = line.ToLineSpec()
		}
		if err := order.ReplaceLines(lines); err != nil {
			return nil, err
		}
	}

	if err := order.UpdateHeader(procurement.HeaderPatch{
		VendorID:       req.VendorID,
		SiteID:         req.SiteID,
		CurrencyID:     req.CurrencyID,
		ExchangeRateID: req.ExchangeRateID,
		OrderDate:      req.OrderDate,
		Remarks:        req.Remarks,
	}); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Act performs a status changing action, reading the current status
// fresh from storage before evaluating the transition guard
func (s *PurchaseOrderService) Act(ctx context.Context, tenantID, orderID uuid.UUID, req ChangeStatusRequest) (*PurchaseOrderResponse, error) {
	action := procurement.POAction(req.Action)
	if !action.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown action: "+req.Action)
	}

	order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Apply(action); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetVendorStatistics aggregates order counts and spending for a vendor
func (s *PurchaseOrderService) GetVendorStatistics(ctx context.Context, tenantID, companyID, vendorID uuid.UUID) (*VendorStatisticsResponse, error) {
	stats, err := s.orderRepo.GetVendorStatistics(ctx, tenantID, companyID, vendorID)
	if err != nil {
		return nil, err
	}
	response := ToVendorStatisticsResponse(stats)
	return &response, nil
}
