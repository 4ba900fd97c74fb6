package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/masterdata"
	"github.com/procure/backend/internal/domain/shared"
)

// SiteService handles site operations
type SiteService struct {
	siteRepo    masterdata.SiteRepository
	companyRepo masterdata.CompanyRepository
}

// NewSiteService creates a new SiteService
func NewSiteService(siteRepo masterdata.SiteRepository, companyRepo masterdata.CompanyRepository) *SiteService {
	return &SiteService{
		siteRepo:    siteRepo,
		companyRepo: companyRepo,
	}
}

// Create creates a new site under a company of the caller's tenant
func (s *SiteService) Create(ctx context.Context, tenantID uuid.UUID, req CreateSiteRequest) (*SiteResponse, error) {
	company, err := s.companyRepo.FindByIDForTenant(ctx, tenantID, req.CompanyID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("FORBIDDEN", "Company does not belong to your tenant")
		}
		return nil, err
	}

	site, err := masterdata.NewSite(tenantID, company.ID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	site.Address = req.Address

	if err := s.siteRepo.Save(ctx, site); err != nil {
		return nil, err
	}

	response := ToSiteResponse(site)
	return &response, nil
}

// GetByID retrieves a site scoped to the caller's tenant
func (s *SiteService) GetByID(ctx context.Context, tenantID, siteID uuid.UUID) (*SiteResponse, error) {
	site, err := s.siteRepo.FindByIDForTenant(ctx, tenantID, siteID)
	if err != nil {
		return nil, err
	}
	response := ToSiteResponse(site)
	return &response, nil
}

// List returns the sites of a tenant, optionally filtered by company
func (s *SiteService) List(ctx context.Context, tenantID uuid.UUID, req ListFilter) (*shared.Paginated[SiteResponse], error) {
	filter := buildFilter(req)
	sites, total, err := s.siteRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]SiteResponse, len(sites))
	for i := range sites {
		responses[i] = ToSiteResponse(&sites[i])
	}
	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Deactivate marks a site as no longer usable for deliveries
func (s *SiteService) Deactivate(ctx context.Context, tenantID, siteID uuid.UUID) (*SiteResponse, error) {
	site, err := s.siteRepo.FindByIDForTenant(ctx, tenantID, siteID)
	if err != nil {
		return nil, err
	}
	site.Deactivate()
	if err := s.siteRepo.Save(ctx, site); err != nil {
		return nil, err
	}
	response := ToSiteResponse(site)
	return &response, nil
}

// Delete removes a site
func (s *SiteService) Delete(ctx context.Context, tenantID, siteID uuid.UUID) error {
	return s.siteRepo.Delete(ctx, tenantID, siteID)
}
