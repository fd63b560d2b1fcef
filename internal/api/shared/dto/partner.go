package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/store/schema"
)

// AccountResponse is the state of one partner account
type AccountResponse struct {
	Kind         domain.AccountKind `json:"kind"`
	Balance      int64              `json:"balance"`
	Frozen       bool               `json:"frozen"`
	FrozenReason *string            `json:"frozen_reason,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// PartnerResponse is the partner projection with its three balances
type PartnerResponse struct {
	ID                   uuid.UUID            `json:"id"`
	ReferrerID           *uuid.UUID           `json:"referrer_id,omitempty"`
	Tier                 int                  `json:"tier"`
	Status               domain.PartnerStatus `json:"status"`
	ReferralCode         string               `json:"referral_code"`
	LYBalance            int64                `json:"ly_balance"`
	LYBalanceDisplay     string               `json:"ly_balance_display"`
	CashWalletBalance    int64                `json:"cash_wallet_balance"`
	CashWalletDisplay    string               `json:"cash_wallet_display"`
	AvailableCash        int64                `json:"available_cash"`
	AvailableCashDisplay string               `json:"available_cash_display"`
	RWATokens            int64                `json:"rwa_tokens"`
	Accounts             []AccountResponse    `json:"accounts"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

// MapPartnerToDTO maps a partner and its loaded accounts
func MapPartnerToDTO(p *schema.Partner, availableCash int64) *PartnerResponse {
	accounts := make([]AccountResponse, 0, len(p.Accounts))
	for _, a := range p.Accounts {
		accounts = append(accounts, AccountResponse{
			Kind:         a.AccountKind,
			Balance:      a.Balance,
			Frozen:       a.Frozen,
			FrozenReason: a.FrozenReason,
			UpdatedAt:    a.UpdatedAt,
		})
	}

	return &PartnerResponse{
		ID:                   p.ID,
		ReferrerID:           p.ReferrerID,
		Tier:                 p.Tier,
		Status:               p.Status,
		ReferralCode:         p.ReferralCode,
		LYBalance:            p.Balance(domain.AccountLY),
		LYBalanceDisplay:     FormatMinor(p.Balance(domain.AccountLY)),
		CashWalletBalance:    p.Balance(domain.AccountCash),
		CashWalletDisplay:    FormatMinor(p.Balance(domain.AccountCash)),
		AvailableCash:        availableCash,
		AvailableCashDisplay: FormatMinor(availableCash),
		RWATokens:            p.Balance(domain.AccountRWA),
		Accounts:             accounts,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

// ReferralSummaryResponse is the downline projection
type ReferralSummaryResponse struct {
	PartnerID     uuid.UUID `json:"partner_id"`
	Depth         int       `json:"depth"`
	DirectCount   int64     `json:"direct_count"`
	TotalDownline int64     `json:"total_downline"`
	LevelCounts   []int64   `json:"level_counts"`
}

// MapReferralSummaryToDTO maps a referral summary
func MapReferralSummaryToDTO(s *domain.ReferralSummary, depth int) *ReferralSummaryResponse {
	levels := s.LevelCounts
	if levels == nil {
		levels = []int64{}
	}
	return &ReferralSummaryResponse{
		PartnerID:     s.PartnerID,
		Depth:         depth,
		DirectCount:   s.DirectCount,
		TotalDownline: s.TotalDownline,
		LevelCounts:   levels,
	}
}
