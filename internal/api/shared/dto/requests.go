package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
)

// CreateWithdrawalRequest represents the request body for POST /partners/:id/withdrawals
type CreateWithdrawalRequest struct {
	// Amount is in cash minor units
	Amount int64 `json:"amount"`
}

// Validate validates the request
func (r *CreateWithdrawalRequest) Validate() error {
	if r.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

// RejectWithdrawalRequest represents the request body for POST /admin/withdrawals/:id/reject
type RejectWithdrawalRequest struct {
	Reason string `json:"reason"`
}

// Validate validates the request
func (r *RejectWithdrawalRequest) Validate() error {
	r.Reason = strings.TrimSpace(r.Reason)
	if r.Reason == "" {
		return errors.New("reason is required")
	}
	return nil
}

// AdjustmentRequest represents the request body for POST /admin/partners/:id/adjustments
type AdjustmentRequest struct {
	AccountKind domain.AccountKind `json:"account_kind"`
	// Delta is signed; adjustments may leave the balance negative
	Delta int64 `json:"delta"`
	// ReferenceID makes the adjustment idempotent; one is generated when empty
	ReferenceID string `json:"reference_id,omitempty"`
	Note        string `json:"note,omitempty"`
}

// Validate validates the request
func (r *AdjustmentRequest) Validate() error {
	if !r.AccountKind.Valid() {
		return fmt.Errorf("invalid account_kind: %q", r.AccountKind)
	}
	if r.Delta == 0 {
		return errors.New("delta must not be zero")
	}
	return nil
}

// FreezeAccountRequest represents the request body for POST /admin/partners/:id/accounts/:kind/freeze
type FreezeAccountRequest struct {
	Reason string `json:"reason"`
}

// Validate validates the request
func (r *FreezeAccountRequest) Validate() error {
	r.Reason = strings.TrimSpace(r.Reason)
	if r.Reason == "" {
		return errors.New("reason is required")
	}
	return nil
}

// OrderPaidRequest represents the request body for POST /events/order-paid
type OrderPaidRequest struct {
	EventID   string           `json:"event_id,omitempty"`
	OrderID   string           `json:"order_id"`
	PartnerID uuid.UUID        `json:"partner_id"`
	Amount    int64            `json:"amount"`
	Kind      domain.EventKind `json:"kind,omitempty"`
	PaidAt    *time.Time       `json:"paid_at,omitempty"`
}

// Validate validates the request
func (r *OrderPaidRequest) Validate() error {
	if r.OrderID == "" {
		return errors.New("order_id is required")
	}
	if r.PartnerID == uuid.Nil {
		return errors.New("partner_id is required")
	}
	if r.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if r.Kind != "" && r.Kind != domain.EventKindPurchase && r.Kind != domain.EventKindResupply {
		return fmt.Errorf("kind must be %s or %s", domain.EventKindPurchase, domain.EventKindResupply)
	}
	return nil
}

// PartnerJoinedRequest represents the request body for POST /events/partner-joined
type PartnerJoinedRequest struct {
	EventID      string     `json:"event_id,omitempty"`
	PartnerID    uuid.UUID  `json:"partner_id"`
	ReferrerID   *uuid.UUID `json:"referrer_id,omitempty"`
	ReferrerCode string     `json:"referrer_code,omitempty"`
	ReferralCode string     `json:"referral_code"`
	Tier         int        `json:"tier"`
}

// Validate validates the request
func (r *PartnerJoinedRequest) Validate() error {
	if r.PartnerID == uuid.Nil {
		return errors.New("partner_id is required")
	}
	if strings.TrimSpace(r.ReferralCode) == "" {
		return errors.New("referral_code is required")
	}
	if r.Tier < 0 {
		return errors.New("tier must not be negative")
	}
	if r.ReferrerID != nil && r.ReferrerCode != "" {
		return errors.New("referrer_id and referrer_code are mutually exclusive")
	}
	return nil
}

// MilestoneRequest represents the request body for POST /events/milestone
type MilestoneRequest struct {
	EventID   string    `json:"event_id,omitempty"`
	PartnerID uuid.UUID `json:"partner_id"`
	Amount    int64     `json:"amount"`
	Tokens    int64     `json:"tokens"`
}

// Validate validates the request
func (r *MilestoneRequest) Validate() error {
	if r.PartnerID == uuid.Nil {
		return errors.New("partner_id is required")
	}
	if r.Amount < 0 || r.Tokens < 0 {
		return errors.New("amount and tokens must not be negative")
	}
	if r.Amount == 0 && r.Tokens == 0 {
		return errors.New("amount or tokens is required")
	}
	return nil
}
