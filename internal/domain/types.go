package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountKind identifies one of the three per-partner ledger accounts
type AccountKind string

const (
	AccountLY   AccountKind = "ly"
	AccountCash AccountKind = "cash"
	AccountRWA  AccountKind = "rwa"
)

// AccountKinds lists every account kind in lock order
var AccountKinds = []AccountKind{AccountCash, AccountLY, AccountRWA}

// Valid reports whether k is a known account kind
func (k AccountKind) Valid() bool {
	return k == AccountLY || k == AccountCash || k == AccountRWA
}

// ReasonCode explains why a ledger entry was written
type ReasonCode string

const (
	ReasonPurchaseBonus   ReasonCode = "purchase_bonus"
	ReasonReferralReward  ReasonCode = "referral_reward"
	ReasonNetworkOverride ReasonCode = "network_override"
	ReasonPoolDividend    ReasonCode = "pool_dividend"
	ReasonTokenIssuance   ReasonCode = "token_issuance"
	ReasonCycleRollover   ReasonCode = "cycle_rollover"
	ReasonWithdrawal      ReasonCode = "withdrawal"
	ReasonRedemption      ReasonCode = "redemption"
	ReasonAdminAdjustment ReasonCode = "admin_adjustment"
	ReasonCorrection      ReasonCode = "correction"
)

// AllowsNegativeBalance reports whether an entry with this reason may leave ly or cash below zero
func (r ReasonCode) AllowsNegativeBalance() bool {
	return r == ReasonAdminAdjustment || r == ReasonCorrection
}

// BypassesFreeze reports whether an entry with this reason may debit a frozen account
func (r ReasonCode) BypassesFreeze() bool {
	return r == ReasonCycleRollover || r == ReasonCorrection
}

// PartnerStatus is the enrollment status of a partner
type PartnerStatus string

const (
	PartnerStatusPending   PartnerStatus = "pending"
	PartnerStatusActive    PartnerStatus = "active"
	PartnerStatusSuspended PartnerStatus = "suspended"
	PartnerStatusExpired   PartnerStatus = "expired"
)

var partnerTransitions = map[PartnerStatus][]PartnerStatus{
	PartnerStatusPending:   {PartnerStatusActive, PartnerStatusSuspended, PartnerStatusExpired},
	PartnerStatusActive:    {PartnerStatusSuspended, PartnerStatusExpired},
	PartnerStatusSuspended: {PartnerStatusActive, PartnerStatusExpired},
}

// CanTransitionTo reports whether a partner may move from s to next.
// Expired is terminal.
func (s PartnerStatus) CanTransitionTo(next PartnerStatus) bool {
	for _, allowed := range partnerTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CycleStatus is the lifecycle status of a bonus pool cycle
type CycleStatus string

const (
	CycleStatusActive  CycleStatus = "active"
	CycleStatusSettled CycleStatus = "settled"
)

// WithdrawalStatus is the status of a withdrawal request
type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusApproved  WithdrawalStatus = "approved"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
	WithdrawalStatusRejected  WithdrawalStatus = "rejected"
)

// CanTransitionTo reports whether a withdrawal may move from s to next
func (s WithdrawalStatus) CanTransitionTo(next WithdrawalStatus) bool {
	switch s {
	case WithdrawalStatusPending:
		return next == WithdrawalStatusApproved || next == WithdrawalStatusRejected
	case WithdrawalStatusApproved:
		return next == WithdrawalStatusCompleted
	default:
		return false
	}
}

// Outstanding reports whether a request in this status still reserves cash
func (s WithdrawalStatus) Outstanding() bool {
	return s == WithdrawalStatusPending || s == WithdrawalStatusApproved
}

// EventKind is the kind of a qualifying business event
type EventKind string

const (
	EventKindPurchase       EventKind = "purchase"
	EventKindResupply       EventKind = "resupply"
	EventKindReferralSignup EventKind = "referral_signup"
	EventKindMilestone      EventKind = "milestone"
)

// Valid reports whether k is a known event kind
func (k EventKind) Valid() bool {
	switch k {
	case EventKindPurchase, EventKindResupply, EventKindReferralSignup, EventKindMilestone:
		return true
	}
	return false
}

// TokenSource is the origin of an RWA token issuance
type TokenSource string

const (
	TokenSourcePackage      TokenSource = "package"
	TokenSourceNetworkOrder TokenSource = "network_order"
	TokenSourceMilestone    TokenSource = "milestone"
	TokenSourceReferral     TokenSource = "referral"
)

// Valid reports whether s is a known token source
func (s TokenSource) Valid() bool {
	switch s {
	case TokenSourcePackage, TokenSourceNetworkOrder, TokenSourceMilestone, TokenSourceReferral:
		return true
	}
	return false
}

// EventScope namespaces processed event ids so one business event can drive several idempotent steps
type EventScope string

const (
	EventScopeDistribution  EventScope = "distribution"
	EventScopePoolSales     EventScope = "pool_sales"
	EventScopePartnerJoined EventScope = "partner_joined"
)

// QualifyingEvent is the input of a commission distribution
type QualifyingEvent struct {
	ID        string    `json:"id"`
	PartnerID uuid.UUID `json:"partner_id"`
	Amount    int64     `json:"amount"`
	Kind      EventKind `json:"kind"`
}

// OrderPaidEvent is published by the order subsystem once payment is captured
type OrderPaidEvent struct {
	EventID   string    `json:"event_id"`
	OrderID   string    `json:"order_id"`
	PartnerID uuid.UUID `json:"partner_id"`
	Amount    int64     `json:"amount"`
	Kind      EventKind `json:"kind"`
	PaidAt    time.Time `json:"paid_at"`
}

// OrderKey identifies the paid order for every ledger effect it has; the event id only when no order id is given.
// Resubmissions of one order under new event ids share it.
func (e OrderPaidEvent) OrderKey() string {
	if e.OrderID != "" {
		return "order:" + e.OrderID
	}
	return e.EventID
}

// OrderEventID is the event id given to an order_paid event published without one
func OrderEventID(orderID string) string {
	return "order-" + orderID
}

// PartnerJoinedEvent is published by the enrollment subsystem when a signup completes
type PartnerJoinedEvent struct {
	EventID      string     `json:"event_id"`
	PartnerID    uuid.UUID  `json:"partner_id"`
	ReferrerID   *uuid.UUID `json:"referrer_id,omitempty"`
	ReferrerCode string     `json:"referrer_code,omitempty"`
	ReferralCode string     `json:"referral_code"`
	Tier         int        `json:"tier"`
	JoinedAt     time.Time  `json:"joined_at"`
}

// MilestoneEvent is published when a partner reaches a sales milestone
type MilestoneEvent struct {
	EventID   string    `json:"event_id"`
	PartnerID uuid.UUID `json:"partner_id"`
	Amount    int64     `json:"amount"`
	Tokens    int64     `json:"tokens"`
}

// EventSubject is the JetStream subject suffix of a business event
type EventSubject string

const (
	SubjectOrderPaid     EventSubject = "order_paid"
	SubjectPartnerJoined EventSubject = "partner_joined"
	SubjectMilestone     EventSubject = "milestone"
)

// Ancestor is one step of a referral chain walk
type Ancestor struct {
	PartnerID uuid.UUID     `json:"partner_id"`
	Depth     int           `json:"depth"`
	Status    PartnerStatus `json:"status"`
}

// Descendant is one node of a downline walk
type Descendant struct {
	PartnerID  uuid.UUID     `json:"partner_id"`
	ReferrerID uuid.UUID     `json:"referrer_id"`
	Depth      int           `json:"depth"`
	Status     PartnerStatus `json:"status"`
}

// ReferralSummary is the downline projection shown to partners
type ReferralSummary struct {
	PartnerID     uuid.UUID `json:"partner_id"`
	DirectCount   int64     `json:"direct_count"`
	TotalDownline int64     `json:"total_downline"`
	LevelCounts   []int64   `json:"level_counts"`
}

// BalanceDrift is an account whose cached balance disagrees with its ledger sum
type BalanceDrift struct {
	PartnerID     uuid.UUID   `json:"partner_id"`
	AccountKind   AccountKind `json:"account_kind"`
	CachedBalance int64       `json:"cached_balance"`
	LedgerSum     int64       `json:"ledger_sum"`
}
