package procurement

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// Document types that numbering rules can be registered for
const (
	DocumentTypePurchaseOrder = "PO"
)

// Default numbering settings applied when a company has no rule yet
const (
	DefaultNumberPrefix  = "PO-"
	DefaultNumberPadding = 5
)

// NumberingRule issues sequential document numbers for a company and
// document type. The next number is a counter that must only ever be
// read and advanced inside the same transaction that persists the
// document, so concurrent allocations serialize at the storage layer.
type NumberingRule struct {
	shared.TenantAggregateRoot
	CompanyID    uuid.UUID
	DocumentType string
	Prefix       string
	Suffix       string
	Padding      int
	NextNumber   int64
	IsActive     bool
}

// NewNumberingRule creates a rule with the default purchase order settings
func NewNumberingRule(tenantID, companyID uuid.UUID, documentType string) *NumberingRule {
	return &NumberingRule{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CompanyID:           companyID,
		DocumentType:        documentType,
		Prefix:              DefaultNumberPrefix,
		Suffix:              "",
		Padding:             DefaultNumberPadding,
		NextNumber:          1,
		IsActive:            true,
	}
}

// Format renders a sequence value using this rule's prefix, zero padding
// and suffix, e.g. 17 with prefix "PO-" and padding 5 becomes "PO-00017".
func (r *NumberingRule) Format(n int64) string {
	return fmt.Sprintf("%s%0*d%s", r.Prefix, r.Padding, n, r.Suffix)
}

// Allocate returns the formatted number for the current counter value
// and advances the counter. The caller is responsible for persisting the
// rule in the same transaction as the document that consumes the number.
func (r *NumberingRule) Allocate() string {
	number := r.Format(r.NextNumber)
	r.NextNumber++
	return number
}
