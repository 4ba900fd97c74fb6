package masterdata

import (
	"strings"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// VendorStatus represents the lifecycle status of a vendor
type VendorStatus string

const (
	VendorStatusActive   VendorStatus = "ACTIVE"
	VendorStatusInactive VendorStatus = "INACTIVE"
	VendorStatusBlocked  VendorStatus = "BLOCKED"
)

// IsValid checks if the vendor status is valid
func (s VendorStatus) IsValid() bool {
	switch s {
	case VendorStatusActive, VendorStatusInactive, VendorStatusBlocked:
		return true
	}
	return false
}

// Vendor represents a supplier that purchase orders can be placed with.
// A vendor is owned by a company and may carry a default currency.
type Vendor struct {
	shared.TenantAggregateRoot
	CompanyID  uuid.UUID
	Code       string
	Name       string
	Status     VendorStatus
	CurrencyID *uuid.UUID
	Email      string
	Phone      string
	Address    string
}

// NewVendor creates a new active vendor under a company
func NewVendor(tenantID, companyID uuid.UUID, code, name string) (*Vendor, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor code is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor name is required")
	}
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Company ID is required")
	}

	return &Vendor{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CompanyID:           companyID,
		Code:                code,
		Name:                name,
		Status:              VendorStatusActive,
	}, nil
}

// IsActive reports whether the vendor can be used on new purchase orders
func (v *Vendor) IsActive() bool {
	return v.Status == VendorStatusActive
}

// BelongsToCompany reports whether the vendor belongs to the given company
func (v *Vendor) BelongsToCompany(companyID uuid.UUID) bool {
	return v.CompanyID == companyID
}

// SetDefaultCurrency sets the default currency used when orders omit one
func (v *Vendor) SetDefaultCurrency(currencyID uuid.UUID) {
	v.CurrencyID = &currencyID
	v.IncrementVersion()
}

// Block blocks the vendor from being used on new orders
func (v *Vendor) Block() error {
	if v.Status == VendorStatusBlocked {
		return shared.ErrInvalidState
	}
	v.Status = VendorStatusBlocked
	v.IncrementVersion()
	return nil
}

// Deactivate marks the vendor as inactive
func (v *Vendor) Deactivate() error {
	if v.Status != VendorStatusActive {
		return shared.ErrInvalidState
	}
	v.Status = VendorStatusInactive
	v.IncrementVersion()
	return nil
}

// Activate reinstates the vendor
func (v *Vendor) Activate() {
	v.Status = VendorStatusActive
	v.IncrementVersion()
}

// UpdateContact updates vendor contact details
func (v *Vendor) UpdateContact(email, phone, address string) {
	v.Email = strings.TrimSpace(email)
	v.Phone = strings.TrimSpace(phone)
	v.Address = strings.TrimSpace(address)
	v.IncrementVersion()
}
