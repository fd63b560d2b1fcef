package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
)

// PartnerAccount represents the partner_accounts table - the cached balance of one (partner, account kind) pair.
// The row is the lock target for every balance mutation of that pair.
type PartnerAccount struct {
	// PartnerID references the owning partner
	PartnerID uuid.UUID `gorm:"column:partner_id;primaryKey;type:uuid"`
	// AccountKind is ly, cash or rwa
	AccountKind domain.AccountKind `gorm:"column:account_kind;primaryKey;type:text"`
	// Balance equals the sum of the account's ledger entry deltas
	Balance int64 `gorm:"column:balance;not null;default:0"`
	// Frozen blocks debits until the account is reconciled manually
	Frozen bool `gorm:"column:frozen;not null;default:false"`
	// FrozenReason records why the account was frozen
	FrozenReason *string `gorm:"column:frozen_reason;type:text"`
	// UpdatedAt is the timestamp of the last balance change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PartnerAccount model
func (PartnerAccount) TableName() string {
	return "partner_accounts"
}
