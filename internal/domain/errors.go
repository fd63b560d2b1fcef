package domain

import "errors"

var (
	// ErrCyclicReferral is returned when assigning a referrer would make a partner its own ancestor
	ErrCyclicReferral = errors.New("cyclic referral")

	// ErrReferrerAlreadySet is returned when a partner that already has a referrer is re-parented
	ErrReferrerAlreadySet = errors.New("referrer already set")

	// ErrInsufficientBalance is returned when a debit or withdrawal exceeds the available balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrDuplicateEvent is returned when an event id or ledger reference was already processed.
	// Callers treat it as success.
	ErrDuplicateEvent = errors.New("duplicate event")

	// ErrEventPayloadMismatch is returned when an event id is replayed with a different payload
	ErrEventPayloadMismatch = errors.New("event replayed with a different payload")

	// ErrSettlementInProgress is returned when a cycle is already being settled by another worker
	ErrSettlementInProgress = errors.New("settlement in progress")

	// ErrCycleAlreadySettled is returned when settling a cycle that is already settled
	ErrCycleAlreadySettled = errors.New("cycle already settled")

	// ErrNoActiveCycle is returned when no bonus pool cycle is active
	ErrNoActiveCycle = errors.New("no active cycle")

	// ErrCycleNotFound is returned when a bonus pool cycle is not found
	ErrCycleNotFound = errors.New("cycle not found")

	// ErrBalanceInvariantViolation is returned when a cached balance disagrees with its ledger sum
	ErrBalanceInvariantViolation = errors.New("balance invariant violation")

	// ErrAccountFrozen is returned when debiting an account frozen for reconciliation
	ErrAccountFrozen = errors.New("account frozen")

	// ErrPartnerNotFound is returned when a partner is not found
	ErrPartnerNotFound = errors.New("partner not found")

	// ErrPartnerAlreadyExists is returned when creating a partner whose id or referral code is taken
	ErrPartnerAlreadyExists = errors.New("partner already exists")

	// ErrWithdrawalNotFound is returned when a withdrawal request is not found
	ErrWithdrawalNotFound = errors.New("withdrawal not found")

	// ErrInvalidTransition is returned when a status change is not allowed from the current status
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidAmount is returned for zero, negative or out of range amounts
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidAccountKind is returned for an unknown ledger account kind
	ErrInvalidAccountKind = errors.New("invalid account kind")
)
