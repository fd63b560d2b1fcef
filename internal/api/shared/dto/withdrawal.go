package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/store/schema"
)

// WithdrawalResponse is a withdrawal request
type WithdrawalResponse struct {
	ID            uuid.UUID               `json:"id"`
	PartnerID     uuid.UUID               `json:"partner_id"`
	Amount        int64                   `json:"amount"`
	AmountDisplay string                  `json:"amount_display"`
	Status        domain.WithdrawalStatus `json:"status"`
	RejectReason  *string                 `json:"reject_reason,omitempty"`
	LedgerEntryID *int64                  `json:"ledger_entry_id,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// WithdrawalListResponse is a page of a partner's withdrawal requests
type WithdrawalListResponse struct {
	Withdrawals []WithdrawalResponse `json:"withdrawals"`
	Total       int64                `json:"total"`
	Limit       int                  `json:"limit"`
	Offset      int                  `json:"offset"`
}

// MapWithdrawalToDTO maps a withdrawal request
func MapWithdrawalToDTO(w schema.WithdrawalRequest) WithdrawalResponse {
	return WithdrawalResponse{
		ID:            w.ID,
		PartnerID:     w.PartnerID,
		Amount:        w.Amount,
		AmountDisplay: FormatMinor(w.Amount),
		Status:        w.Status,
		RejectReason:  w.RejectReason,
		LedgerEntryID: w.LedgerEntryID,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

// MapWithdrawalsToDTO maps a page of withdrawal requests
func MapWithdrawalsToDTO(ws []schema.WithdrawalRequest, total int64, limit, offset int) *WithdrawalListResponse {
	resp := &WithdrawalListResponse{
		Withdrawals: make([]WithdrawalResponse, 0, len(ws)),
		Total:       total,
		Limit:       limit,
		Offset:      offset,
	}
	for _, w := range ws {
		resp.Withdrawals = append(resp.Withdrawals, MapWithdrawalToDTO(w))
	}
	return resp
}
