package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
)

// WithdrawalRequest represents the withdrawal_requests table
type WithdrawalRequest struct {
	ID        uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	PartnerID uuid.UUID `gorm:"column:partner_id;not null;type:uuid;index:idx_withdrawal_requests_partner_status,priority:1"`
	// Amount is in cash minor units
	Amount int64                   `gorm:"column:amount;not null"`
	Status domain.WithdrawalStatus `gorm:"column:status;not null;type:text;index:idx_withdrawal_requests_partner_status,priority:2"`
	// RejectReason is set when an admin rejects the request
	RejectReason *string `gorm:"column:reject_reason;type:text"`
	// LedgerEntryID is the debit written on completion
	LedgerEntryID *int64    `gorm:"column:ledger_entry_id"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the WithdrawalRequest model
func (WithdrawalRequest) TableName() string {
	return "withdrawal_requests"
}
