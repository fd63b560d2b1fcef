package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/store/schema"
)

// LedgerEntryResponse is one ledger movement
type LedgerEntryResponse struct {
	ID           int64                  `json:"id"`
	PartnerID    uuid.UUID              `json:"partner_id"`
	AccountKind  domain.AccountKind     `json:"account_kind"`
	Delta        int64                  `json:"delta"`
	BalanceAfter int64                  `json:"balance_after"`
	Reason       domain.ReasonCode      `json:"reason"`
	ReferenceID  string                 `json:"reference_id"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

// LedgerListResponse is a page of an account's history, newest first
type LedgerListResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
	Total   int64                 `json:"total"`
	Limit   int                   `json:"limit"`
	Offset  int                   `json:"offset"`
}

// AdjustmentResponse is the entry written by an admin adjustment
type AdjustmentResponse struct {
	Entry     LedgerEntryResponse `json:"entry"`
	Duplicate bool                `json:"duplicate"`
}

// MapLedgerEntryToDTO maps a ledger entry
func MapLedgerEntryToDTO(e schema.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:           e.ID,
		PartnerID:    e.PartnerID,
		AccountKind:  e.AccountKind,
		Delta:        e.Delta,
		BalanceAfter: e.BalanceAfter,
		Reason:       e.Reason,
		ReferenceID:  e.ReferenceID,
		Metadata:     e.Metadata,
		CreatedAt:    e.CreatedAt,
	}
}

// MapLedgerEntriesToDTO maps a page of ledger entries
func MapLedgerEntriesToDTO(entries []schema.LedgerEntry, total int64, limit, offset int) *LedgerListResponse {
	resp := &LedgerListResponse{
		Entries: make([]LedgerEntryResponse, 0, len(entries)),
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, MapLedgerEntryToDTO(e))
	}
	return resp
}
