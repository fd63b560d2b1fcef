package commission

import (
	"fmt"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
)

// EligibilityPolicy decides whether an ancestor is credited.
// An ineligible ancestor is skipped but still consumes its depth.
type EligibilityPolicy func(ancestor domain.Ancestor) bool

// CreditAllStatuses credits every ancestor regardless of status
func CreditAllStatuses(domain.Ancestor) bool {
	return true
}

// CreditActiveOnly credits only active ancestors
func CreditActiveOnly(ancestor domain.Ancestor) bool {
	return ancestor.Status == domain.PartnerStatusActive
}

const (
	PolicyAllStatuses = "all_statuses"
	PolicyActiveOnly  = "active_only"
)

// PolicyByName maps a config value to a policy; empty selects CreditAllStatuses
func PolicyByName(name string) (EligibilityPolicy, error) {
	switch name {
	case "", PolicyAllStatuses:
		return CreditAllStatuses, nil
	case PolicyActiveOnly:
		return CreditActiveOnly, nil
	default:
		return nil, fmt.Errorf("unknown eligibility policy %q", name)
	}
}

// DefaultAccounts credits cash for sales and milestones and ly for signups
func DefaultAccounts() map[domain.EventKind]domain.AccountKind {
	return map[domain.EventKind]domain.AccountKind{
		domain.EventKindPurchase:       domain.AccountCash,
		domain.EventKindResupply:       domain.AccountCash,
		domain.EventKindMilestone:      domain.AccountCash,
		domain.EventKindReferralSignup: domain.AccountLY,
	}
}

// reasonFor picks the ledger reason of a credit at depth
func reasonFor(kind domain.EventKind, depth int) domain.ReasonCode {
	if depth > 1 {
		return domain.ReasonNetworkOverride
	}
	if kind == domain.EventKindReferralSignup {
		return domain.ReasonReferralReward
	}
	return domain.ReasonPurchaseBonus
}
