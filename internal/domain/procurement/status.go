package procurement

import (
	"strings"

	"github.com/procure/backend/internal/domain/shared"
)

// POStatus represents the lifecycle status of a purchase order
type POStatus string

const (
	POStatusDraft         POStatus = "DRAFT"
	POStatusSubmitted     POStatus = "SUBMITTED"
	POStatusUnderApproval POStatus = "UNDER_APPROVAL"
	POStatusApproved      POStatus = "APPROVED"
	POStatusRejected      POStatus = "REJECTED"
	POStatusIssued        POStatus = "ISSUED"
	POStatusCancelled     POStatus = "CANCELLED"
)

// IsValid checks if the status is valid
func (s POStatus) IsValid() bool {
	switch s {
	case POStatusDraft, POStatusSubmitted, POStatusUnderApproval,
		POStatusApproved, POStatusRejected, POStatusIssued, POStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation
func (s POStatus) String() string {
	return string(s)
}

// POAction is the externally exposed action vocabulary for status changes.
// Each action maps to exactly one target status.
type POAction string

const (
	POActionSubmit  POAction = "SUBMIT"
	POActionApprove POAction = "APPROVE"
	POActionReject  POAction = "REJECT"
	POActionCancel  POAction = "CANCEL"
	POActionIssue   POAction = "ISSUE"
)

// IsValid checks if the action is valid
func (a POAction) IsValid() bool {
	switch a {
	case POActionSubmit, POActionApprove, POActionReject, POActionCancel, POActionIssue:
		return true
	}
	return false
}

// TargetStatus returns the status this action transitions to
func (a POAction) TargetStatus() (POStatus, error) {
	switch a {
	case POActionSubmit:
		return POStatusSubmitted, nil
	case POActionApprove:
		return POStatusApproved, nil
	case POActionReject:
		return POStatusRejected, nil
	case POActionCancel:
		return POStatusCancelled, nil
	case POActionIssue:
		return POStatusIssued, nil
	default:
		return "", shared.NewDomainErrorf("INVALID_INPUT", "Unknown action: %s", a)
	}
}

// allowedSources maps a guarded target status to the set of statuses it
// may be reached from. REJECTED and CANCELLED are deliberately absent:
// rejecting or cancelling is permitted from any status past DRAFT.
var allowedSources = map[POStatus][]POStatus{
	POStatusSubmitted: {POStatusDraft},
	POStatusApproved:  {POStatusSubmitted, POStatusUnderApproval},
	POStatusIssued:    {POStatusApproved},
}

// draftTargets is the full set of statuses reachable from DRAFT. A draft
// has never entered the approval flow, so it can only be submitted or
// cancelled.
var draftTargets = map[POStatus]bool{
	POStatusSubmitted: true,
	POStatusCancelled: true,
}

// CanTransitionTo evaluates the transition guard against the current status.
// It returns nil when the transition is legal, or a forbidden-transition
// error naming the allowed source statuses.
func (s POStatus) CanTransitionTo(target POStatus) error {
	if !target.IsValid() {
		return shared.NewDomainErrorf("INVALID_INPUT", "Unknown status: %s", target)
	}

	if s == POStatusDraft && !draftTargets[target] {
		return shared.NewDomainErrorf("FORBIDDEN",
			"Cannot transition from %s to %s: a draft can only be submitted or cancelled", s, target)
	}

	sources, guarded := allowedSources[target]
	if !guarded {
		// REJECTED and CANCELLED can be reached from any non-draft status
		return nil
	}

	for _, src := range sources {
		if s == src {
			return nil
		}
	}

	names := make([]string, len(sources))
	for i, src := range sources {
		names[i] = string(src)
	}
	return shared.NewDomainErrorf("FORBIDDEN",
		"Cannot transition from %s to %s: %s is only reachable from %s",
		s, target, target, strings.Join(names, ", "))
}
