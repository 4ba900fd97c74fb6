package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/masterdata"
	"github.com/procure/backend/internal/domain/shared"
)

// UOMService handles unit of measure operations, including the conversion
// factors registered between units
type UOMService struct {
	uomRepo        masterdata.UOMRepository
	conversionRepo masterdata.UOMConversionRepository
}

// NewUOMService creates a new UOMService
func NewUOMService(uomRepo masterdata.UOMRepository, conversionRepo masterdata.UOMConversionRepository) *UOMService {
	return &UOMService{uomRepo: uomRepo, conversionRepo: conversionRepo}
}

// Create creates a new unit of measure
func (s *UOMService) Create(ctx context.Context, tenantID uuid.UUID, req CreateUOMRequest) (*UOMResponse, error) {
	uom, err := masterdata.NewUOM(tenantID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.uomRepo.Save(ctx, uom); err != nil {
		return nil, err
	}

	response := ToUOMResponse(uom)
	return &response, nil
}

// GetByID retrieves a unit of measure scoped to the caller's tenant
func (s *UOMService) GetByID(ctx context.Context, tenantID, uomID uuid.UUID) (*UOMResponse, error) {
	uom, err := s.uomRepo.FindByIDForTenant(ctx, tenantID, uomID)
	if err != nil {
		return nil, err
	}
	response := ToUOMResponse(uom)
	return &response, nil
}

// List returns the units of measure of a tenant
func (s *UOMService) List(ctx context.Context, tenantID uuid.UUID, req ListFilter) (*shared.Paginated[UOMResponse], error) {
	filter := buildFilter(req)
	uoms, total, err := s.uomRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]UOMResponse, len(uoms))
	for i := range uoms {
		responses[i] = ToUOMResponse(&uoms[i])
	}
	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Delete removes a unit of measure
func (s *UOMService) Delete(ctx context.Context, tenantID, uomID uuid.UUID) error {
	return s.uomRepo.Delete(ctx, tenantID, uomID)
}

// CreateConversion registers a conversion factor between two units of measure.
// Both units must exist for the tenant and a pair can only be registered once.
func (s *UOMService) CreateConversion(ctx context.Context, tenantID uuid.UUID, req CreateUOMConversionRequest) (*UOMConversionResponse, error) {
	if _, err := s.uomRepo.FindByIDForTenant(ctx, tenantID, req.FromUOMID); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("NOT_FOUND", "Source unit of measure not found")
		}
		return nil, err
	}
	if _, err := s.uomRepo.FindByIDForTenant(ctx, tenantID, req.ToUOMID); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("NOT_FOUND", "Target unit of measure not found")
		}
		return nil, err
	}

	existing, err := s.conversionRepo.FindBetween(ctx, tenantID, req.FromUOMID, req.ToUOMID)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A conversion between these units already exists")
	}

	conversion, err := masterdata.NewUOMConversion(tenantID, req.FromUOMID, req.ToUOMID, req.Factor)
	if err != nil {
		return nil, err
	}

	if err := s.conversionRepo.Save(ctx, conversion); err != nil {
		return nil, err
	}

	response := ToUOMConversionResponse(conversion)
	return &response, nil
}

// GetConversion retrieves the conversion registered for a (from, to) pair
func (s *UOMService) GetConversion(ctx context.Context, tenantID, fromUOMID, toUOMID uuid.UUID) (*UOMConversionResponse, error) {
	conversion, err := s.conversionRepo.FindBetween(ctx, tenantID, fromUOMID, toUOMID)
	if err != nil {
		return nil, err
	}
	response := ToUOMConversionResponse(conversion)
	return &response, nil
}

// ListConversionsForUOM returns the conversions a unit participates in
func (s *UOMService) ListConversionsForUOM(ctx context.Context, tenantID, uomID uuid.UUID) ([]UOMConversionResponse, error) {
	if _, err := s.uomRepo.FindByIDForTenant(ctx, tenantID, uomID); err != nil {
		return nil, err
	}

	conversions, err := s.conversionRepo.FindAllForUOM(ctx, tenantID, uomID)
	if err != nil {
		return nil, err
	}

	responses := make([]UOMConversionResponse, len(conversions))
	for i := range conversions {
		responses[i] = ToUOMConversionResponse(&conversions[i])
	}
	return responses, nil
}

// DeleteConversion removes a conversion
func (s *UOMService) DeleteConversion(ctx context.Context, tenantID, conversionID uuid.UUID) error {
	return s.conversionRepo.Delete(ctx, tenantID, conversionID)
}
