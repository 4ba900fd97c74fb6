package masterdata

import (
	"strings"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// Company represents a legal entity within a tenant.
// Purchase orders are always raised on behalf of a company.
type Company struct {
	shared.TenantAggregateRoot
	Code     string
	Name     string
	IsActive bool
}

// NewCompany creates a new company for a tenant
func NewCompany(tenantID uuid.UUID, code, name string) (*Company, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company code is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company name is required")
	}

	return &Company{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		Name:                name,
		IsActive:            true,
	}, nil
}

// BelongsToTenant reports whether the company belongs to the given tenant
func (c *Company) BelongsToTenant(tenantID uuid.UUID) bool {
	return c.TenantID == tenantID
}

// Deactivate marks the company as inactive
func (c *Company) Deactivate() {
	c.IsActive = false
	c.IncrementVersion()
}

// Activate marks the company as active
func (c *Company) Activate() {
	c.IsActive = true
	c.IncrementVersion()
}

// Update updates the mutable company fields
func (c *Company) Update(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_COMPANY", "Company name is required")
	}
	c.Name = name
	c.IncrementVersion()
	return nil
}
