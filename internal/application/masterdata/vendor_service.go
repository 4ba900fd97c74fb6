package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/masterdata"
	"github.com/procure/backend/internal/domain/shared"
)

// VendorService handles vendor-related business operations
type VendorService struct {
	vendorRepo  masterdata.VendorRepository
	companyRepo masterdata.CompanyRepository
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo masterdata.VendorRepository, companyRepo masterdata.CompanyRepository) *VendorService {
	return &VendorService{
		vendorRepo:  vendorRepo,
		companyRepo: companyRepo,
	}
}

// Create creates a new vendor under a company of the caller's tenant
func (s *VendorService) Create(ctx context.Context, tenantID uuid.UUID, req CreateVendorRequest) (*VendorResponse, error) {
	company, err := s.companyRepo.FindByIDForTenant(ctx, tenantID, req.CompanyID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("FORBIDDEN", "Company does not belong to your tenant")
		}
		return nil, err
	}

	existing, err := s.vendorRepo.FindByCode(ctx, tenantID, req.Code)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Vendor with this code already exists")
	}

	vendor, err := masterdata.NewVendor(tenantID, company.ID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if req.CurrencyID != nil {
		vendor.SetDefaultCurrency(*req.CurrencyID)
	}
	if req.Email != "" || req.Phone != "" || req.Address != "" {
		vendor.UpdateContact(req.Email, req.Phone, req.Address)
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// GetByID retrieves a vendor scoped to the caller's tenant
func (s *VendorService) GetByID(ctx context.Context, tenantID, vendorID uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByIDForTenant(ctx, tenantID, vendorID)
	if err != nil {
		return nil, err
	}
	response := ToVendorResponse(vendor)
	return &response, nil
}

// List returns the vendors of a tenant, optionally filtered by company
// and status
func (s *VendorService) List(ctx context.Context, tenantID uuid.UUID, req ListFilter) (*shared.Paginated[VendorResponse], error) {
	if req.Status != nil && !masterdata.VendorStatus(*req.Status).IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown vendor status: "+*req.Status)
	}

	filter := buildFilter(req)
	vendors, total, err := s.vendorRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]VendorResponse, len(vendors))
	for i := range vendors {
		responses[i] = ToVendorResponse(&vendors[i])
	}
	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update updates vendor contact details, default currency and status
func (s *VendorService) Update(ctx context.Context, tenantID, vendorID uuid.UUID, req UpdateVendorRequest) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByIDForTenant(ctx, tenantID, vendorID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil || req.Phone != nil || req.Address != nil {
		email := vendor.Email
		phone := vendor.Phone
		address := vendor.Address
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Address != nil {
			address = *req.Address
		}
		vendor.UpdateContact(email, phone, address)
	}
	if req.CurrencyID != nil {
		vendor.SetDefaultCurrency(*req.CurrencyID)
	}
	if req.Status != nil {
		if err := s.applyStatus(vendor, masterdata.VendorStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

func (s *VendorService) applyStatus(vendor *masterdata.Vendor, status masterdata.VendorStatus) error {
	if vendor.Status == status {
		return nil
	}
	switch status {
	case masterdata.VendorStatusActive:
		vendor.Activate()
		return nil
	case masterdata.VendorStatusInactive:
		return vendor.Deactivate()
	case masterdata.VendorStatusBlocked:
		return vendor.Block()
	}
	return shared.NewDomainError("INVALID_INPUT", "Unknown vendor status: "+string(status))
}

// Delete removes a vendor
func (s *VendorService) Delete(ctx context.Context, tenantID, vendorID uuid.UUID) error {
	return s.vendorRepo.Delete(ctx, tenantID, vendorID)
}
