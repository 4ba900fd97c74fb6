package masterdata

import (
	"strings"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// Site represents a delivery location belonging to a company
type Site struct {
	shared.TenantAggregateRoot
	CompanyID uuid.UUID
	Code      string
	Name      string
	Address   string
	IsActive  bool
}

// NewSite creates a new active site under a company
func NewSite(tenantID, companyID uuid.UUID, code, name string) (*Site, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_SITE", "Site code is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SITE", "Site name is required")
	}
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SITE", "Company ID is required")
	}

	return &Site{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CompanyID:           companyID,
		Code:                code,
		Name:                name,
		IsActive:            true,
	}, nil
}

// BelongsToCompany reports whether the site belongs to the given company
func (s *Site) BelongsToCompany(companyID uuid.UUID) bool {
	return s.CompanyID == companyID
}

// Deactivate marks the site as inactive
func (s *Site) Deactivate() {
	s.IsActive = false
	s.IncrementVersion()
}
