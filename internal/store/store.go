package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore,PartnerStore=MockPartnerStore,LedgerStore=MockLedgerStore,CycleStore=MockCycleStore,WithdrawalStore=MockWithdrawalStore

// PartnerStore persists partners and the referral forest
type PartnerStore interface {
	// CreatePartner creates a partner with its three empty accounts and, when given, its referral edge
	CreatePartner(ctx context.Context, input CreatePartnerInput) (*schema.Partner, error)
	// GetPartner retrieves a partner with its accounts, nil when it does not exist
	GetPartner(ctx context.Context, id uuid.UUID) (*schema.Partner, error)
	// GetPartnerByReferralCode retrieves a partner by its referral code, nil when it does not exist
	GetPartnerByReferralCode(ctx context.Context, code string) (*schema.Partner, error)
	// UpdatePartnerStatus moves a partner to a new status if the transition is allowed
	UpdatePartnerStatus(ctx context.Context, id uuid.UUID, status domain.PartnerStatus) (*schema.Partner, error)
	// AssignReferrer creates the referral edge partnerID -> referrerID, rejecting cycles
	AssignReferrer(ctx context.Context, partnerID, referrerID uuid.UUID) error
	// GetAncestors walks up to maxDepth referrers starting at depth 1 in a single query
	GetAncestors(ctx context.Context, partnerID uuid.UUID, maxDepth int) ([]domain.Ancestor, error)
	// GetDescendants walks the downline up to maxDepth levels in a single query
	GetDescendants(ctx context.Context, partnerID uuid.UUID, maxDepth int) ([]domain.Descendant, error)
	// GetReferralSummary counts the downline per level up to maxDepth levels
	GetReferralSummary(ctx context.Context, partnerID uuid.UUID, maxDepth int) (*domain.ReferralSummary, error)
}

// LedgerStore persists ledger entries and cached balances
type LedgerStore interface {
	// AppendEntry appends one entry and updates the cached balance atomically
	AppendEntry(ctx context.Context, input AppendEntryInput) (*schema.LedgerEntry, error)
	// ApplyDistribution records an event as processed and appends all of its entries in one transaction
	ApplyDistribution(ctx context.Context, input ApplyDistributionInput) ([]schema.LedgerEntry, error)
	// GetBalance returns the cached balance of an account
	GetBalance(ctx context.Context, partnerID uuid.UUID, kind domain.AccountKind) (int64, error)
	// GetAvailableCash returns the cash balance minus outstanding withdrawal reservations
	GetAvailableCash(ctx context.Context, partnerID uuid.UUID) (int64, error)
	// ListLedgerEntries returns entries newest-first along with the total count
	ListLedgerEntries(ctx context.Context, filter LedgerEntryFilter) ([]schema.LedgerEntry, int64, error)
	// GetEntriesByReference returns every entry written for a reference id
	GetEntriesByReference(ctx context.Context, referenceID string) ([]schema.LedgerEntry, error)
	// FindBalanceDrift compares cached balances with ledger sums for a batch of partners
	FindBalanceDrift(ctx context.Context, afterPartnerID uuid.UUID, limit int) (*DriftBatch, error)
	// CheckAccountBalance re-derives one account's ledger sum under its lock, nil when consistent
	CheckAccountBalance(ctx context.Context, partnerID uuid.UUID, kind domain.AccountKind) (*domain.BalanceDrift, error)
	// FreezeAccount blocks further debits on an account
	FreezeAccount(ctx context.Context, partnerID uuid.UUID, kind domain.AccountKind, reason string) error
	// UnfreezeAccount lifts a freeze after manual reconciliation
	UnfreezeAccount(ctx context.Context, partnerID uuid.UUID, kind domain.AccountKind) error
}

// CycleStore persists bonus pool cycles
type CycleStore interface {
	// EnsureActiveCycle returns the active cycle, opening cycle 1 when no cycle exists yet
	EnsureActiveCycle(ctx context.Context, startsAt time.Time, length time.Duration) (*schema.BonusPoolCycle, error)
	// GetActiveCycle returns the active cycle, nil when there is none
	GetActiveCycle(ctx context.Context) (*schema.BonusPoolCycle, error)
	// GetCycleByNumber returns a cycle by its sequential number, nil when it does not exist
	GetCycleByNumber(ctx context.Context, number int64) (*schema.BonusPoolCycle, error)
	// AccumulateSales adds a sale's pool contribution to the active cycle, once per order id
	AccumulateSales(ctx context.Context, input AccumulateSalesInput) (*schema.BonusPoolCycle, error)
	// IssueTokens credits rwa tokens and increments the active cycle's token total
	IssueTokens(ctx context.Context, input IssueTokensInput) (*schema.LedgerEntry, error)
	// SettleCycle settles the given active cycle and opens the next one in one transaction
	SettleCycle(ctx context.Context, input SettleCycleInput) (*SettlementResult, error)
}

// WithdrawalStore persists withdrawal requests
type WithdrawalStore interface {
	// CreateWithdrawal reserves cash for a new pending request under the cash account lock
	CreateWithdrawal(ctx context.Context, input CreateWithdrawalInput) (*schema.WithdrawalRequest, error)
	// GetWithdrawal retrieves a withdrawal request, nil when it does not exist
	GetWithdrawal(ctx context.Context, id uuid.UUID) (*schema.WithdrawalRequest, error)
	// ListWithdrawals lists a partner's requests newest-first along with the total count
	ListWithdrawals(ctx context.Context, filter WithdrawalFilter) ([]schema.WithdrawalRequest, int64, error)
	// TransitionWithdrawal moves a request to a new status; completion appends the cash debit
	TransitionWithdrawal(ctx context.Context, input TransitionWithdrawalInput) (*schema.WithdrawalRequest, error)
}

// Store defines the interface for database operations
type Store interface {
	PartnerStore
	LedgerStore
	CycleStore
	WithdrawalStore
	CursorStore
}

// CreatePartnerInput is the input of CreatePartner
type CreatePartnerInput struct {
	ID           uuid.UUID
	ReferrerID   *uuid.UUID
	Tier         int
	Status       domain.PartnerStatus
	ReferralCode string
	// EventID and PayloadHash guard the enrollment against replays when set
	EventID     string
	PayloadHash string
}

// AppendEntryInput is one ledger movement
type AppendEntryInput struct {
	PartnerID   uuid.UUID
	AccountKind domain.AccountKind
	Delta       int64
	Reason      domain.ReasonCode
	ReferenceID string
	Metadata    map[string]interface{}
}

// ApplyDistributionInput is a set of entries guarded by one processed event
type ApplyDistributionInput struct {
	EventID     string
	Scope       domain.EventScope
	PayloadHash string
	Entries     []AppendEntryInput
}

// LedgerEntryFilter selects a page of one account's history
type LedgerEntryFilter struct {
	PartnerID   uuid.UUID
	AccountKind domain.AccountKind
	Limit       int
	Offset      int
}

// DriftBatch is one page of the balance reconciliation scan
type DriftBatch struct {
	// Checked is the number of partners scanned
	Checked int
	// LastPartnerID is the cursor for the next batch
	LastPartnerID uuid.UUID
	Drifts        []domain.BalanceDrift
}

// AccumulateSalesInput is the pool contribution of one paid order
type AccumulateSalesInput struct {
	OrderID      string
	Amount       int64
	Contribution int64
	PayloadHash  string
}

// IssueTokensInput is one rwa token issuance
type IssueTokensInput struct {
	PartnerID   uuid.UUID
	Count       int64
	Source      domain.TokenSource
	ReferenceID string
}

// SettleCycleInput is the input of SettleCycle
type SettleCycleInput struct {
	CycleID        int64
	SettledAt      time.Time
	NextLength     time.Duration
	CarryRemainder bool
}

// SettlementResult summarizes a settled cycle
type SettlementResult struct {
	Settled       schema.BonusPoolCycle
	Next          schema.BonusPoolCycle
	PerTokenValue int64
	Remainder     int64
	Participants  int64
	TotalPaid     int64
}

// CreateWithdrawalInput is the input of CreateWithdrawal
type CreateWithdrawalInput struct {
	ID        uuid.UUID
	PartnerID uuid.UUID
	Amount    int64
}

// WithdrawalFilter selects a page of a partner's withdrawal requests
type WithdrawalFilter struct {
	PartnerID uuid.UUID
	Status    *domain.WithdrawalStatus
	Limit     int
	Offset    int
}

// TransitionWithdrawalInput is the input of TransitionWithdrawal
type TransitionWithdrawalInput struct {
	ID     uuid.UUID
	To     domain.WithdrawalStatus
	Reason *string
}
