package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/masterdata"
	"github.com/procure/backend/internal/domain/shared"
)

// CompanyService handles company-related business operations
type CompanyService struct {
	companyRepo masterdata.CompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo masterdata.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// Create creates a new company
func (s *CompanyService) Create(ctx context.Context, tenantID uuid.UUID, req CreateCompanyRequest) (*CompanyResponse, error) {
	existing, err := s.companyRepo.FindByCode(ctx, tenantID, req.Code)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Company with this code already exists")
	}

	company, err := masterdata.NewCompany(tenantID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// GetByID retrieves a company scoped to the caller's tenant
func (s *CompanyService) GetByID(ctx context.Context, tenantID, companyID uuid.UUID) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByIDForTenant(ctx, tenantID, companyID)
	if err != nil {
		return nil, err
	}
	response := ToCompanyResponse(company)
	return &response, nil
}

// List returns the companies of a tenant
func (s *CompanyService) List(ctx context.Context, tenantID uuid.UUID, req ListFilter) (*shared.Paginated[CompanyResponse], error) {
	filter := buildFilter(req)
	companies, total, err := s.companyRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = ToCompanyResponse(&companies[i])
	}
	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update updates a company
func (s *CompanyService) Update(ctx context.Context, tenantID, companyID uuid.UUID, req UpdateCompanyRequest) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByIDForTenant(ctx, tenantID, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := company.Update(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil {
		if *req.IsActive {
			company.Activate()
		} else {
			company.Deactivate()
		}
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// Delete removes a company
func (s *CompanyService) Delete(ctx context.Context, tenantID, companyID uuid.UUID) error {
	return s.companyRepo.Delete(ctx, tenantID, companyID)
}

// buildFilter converts list query parameters into a repository filter
func buildFilter(req ListFilter) shared.Filter {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 && req.PageSize <= 200 {
		filter.PageSize = req.PageSize
	}
	filter.Search = req.Search
	if req.CompanyID != nil {
		filter.Filters["company_id"] = *req.CompanyID
	}
	if req.Status != nil {
		filter.Filters["status"] = *req.Status
	}
	return filter
}
