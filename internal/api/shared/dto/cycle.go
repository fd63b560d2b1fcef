package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/feral-file/ff-partner-ledger/internal/bonuspool"
	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/store/schema"
)

// ActiveCycleResponse is the active bonus pool cycle, with the caller's stake when a partner is given
type ActiveCycleResponse struct {
	CycleNumber       int64      `json:"cycle_number"`
	PoolAmount        int64      `json:"pool_amount"`
	PoolAmountDisplay string     `json:"pool_amount_display"`
	TotalTokens       int64      `json:"total_tokens"`
	SalesTotal        int64      `json:"sales_total"`
	CarriedIn         int64      `json:"carried_in"`
	StartsAt          time.Time  `json:"starts_at"`
	EndsAt            time.Time  `json:"ends_at"`
	DaysRemaining     int64      `json:"days_remaining"`
	PartnerID         *uuid.UUID `json:"partner_id,omitempty"`
	PartnerTokens     *int64     `json:"partner_tokens,omitempty"`
	SharePercent      *string    `json:"share_percent,omitempty"`
}

// CycleResponse is a bonus pool cycle, settled or active
type CycleResponse struct {
	CycleNumber           int64              `json:"cycle_number"`
	Status                domain.CycleStatus `json:"status"`
	StartsAt              time.Time          `json:"starts_at"`
	EndsAt                time.Time          `json:"ends_at"`
	PoolAmount            int64              `json:"pool_amount"`
	PoolAmountDisplay     string             `json:"pool_amount_display"`
	TotalTokens           int64              `json:"total_tokens"`
	SalesTotal            int64              `json:"sales_total"`
	CarriedIn             int64              `json:"carried_in"`
	PerTokenValue         *int64             `json:"per_token_value,omitempty"`
	ParticipatingPartners *int64             `json:"participating_partners,omitempty"`
	Remainder             *int64             `json:"remainder,omitempty"`
	SettledAt             *time.Time         `json:"settled_at,omitempty"`
}

// SettlementResponse is the outcome of an admin settlement
type SettlementResponse struct {
	Settled        bool   `json:"settled"`
	AlreadySettled bool   `json:"already_settled"`
	CycleNumber    int64  `json:"cycle_number"`
	PerTokenValue  int64  `json:"per_token_value"`
	Participants   int64  `json:"participants"`
	TotalPaid      int64  `json:"total_paid"`
	Remainder      int64  `json:"remainder"`
	NextCycle      int64  `json:"next_cycle"`
	WorkflowID     string `json:"workflow_id"`
}

// MapCycleSummaryToDTO maps the active cycle summary
func MapCycleSummaryToDTO(s *bonuspool.CycleSummary) *ActiveCycleResponse {
	resp := &ActiveCycleResponse{
		CycleNumber:       s.CycleNumber,
		PoolAmount:        s.PoolAmount,
		PoolAmountDisplay: FormatMinor(s.PoolAmount),
		TotalTokens:       s.TotalTokens,
		SalesTotal:        s.SalesTotal,
		CarriedIn:         s.CarriedIn,
		StartsAt:          s.StartsAt,
		EndsAt:            s.EndsAt,
		DaysRemaining:     s.DaysRemaining,
	}
	if s.PartnerID != nil {
		tokens := s.PartnerTokens
		share := FormatBps(s.ShareBps)
		resp.PartnerID = s.PartnerID
		resp.PartnerTokens = &tokens
		resp.SharePercent = &share
	}
	return resp
}

// MapCycleToDTO maps a bonus pool cycle
func MapCycleToDTO(c *schema.BonusPoolCycle) *CycleResponse {
	return &CycleResponse{
		CycleNumber:           c.CycleNumber,
		Status:                c.Status,
		StartsAt:              c.StartsAt,
		EndsAt:                c.EndsAt,
		PoolAmount:            c.PoolAmount,
		PoolAmountDisplay:     FormatMinor(c.PoolAmount),
		TotalTokens:           c.TotalTokens,
		SalesTotal:            c.SalesTotal,
		CarriedIn:             c.CarriedIn,
		PerTokenValue:         c.PerTokenValue,
		ParticipatingPartners: c.ParticipatingPartners,
		Remainder:             c.Remainder,
		SettledAt:             c.SettledAt,
	}
}
